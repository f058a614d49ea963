package i18n

import "danube_tours/internal/domain"

// DefaultTranslations seeds the runtime table with the strings the
// booking flow and the public pages need. English is the reference
// locale and must stay complete; other languages fill in over time via
// the admin editor.
func DefaultTranslations() map[string]domain.LocalizedText {
	return map[string]domain.LocalizedText{
		"bookingRequestMessage": {
			domain.LocaleEN: "Hello! I would like to book the \"{tourTitle}\" tour.\n\n",
			domain.LocaleSR: "Zdravo! Želeo bih da rezervišem turu \"{tourTitle}\".\n\n",
			domain.LocaleDE: "Hallo! Ich möchte die Tour \"{tourTitle}\" buchen.\n\n",
			domain.LocaleRU: "Здравствуйте! Я хотел бы забронировать тур \"{tourTitle}\".\n\n",
		},
		"bookingDetails": {
			domain.LocaleEN: "Booking details:",
			domain.LocaleSR: "Detalji rezervacije:",
			domain.LocaleDE: "Buchungsdetails:",
			domain.LocaleRU: "Детали бронирования:",
		},
		"bookingDateLabel": {
			domain.LocaleEN: "Date:",
			domain.LocaleSR: "Datum:",
			domain.LocaleDE: "Datum:",
		},
		"bookingTimeLabel": {
			domain.LocaleEN: "Time:",
			domain.LocaleSR: "Vreme:",
			domain.LocaleDE: "Uhrzeit:",
		},
		"bookingPeopleLabel": {
			domain.LocaleEN: "Number of people:",
			domain.LocaleSR: "Broj osoba:",
			domain.LocaleDE: "Personenzahl:",
		},
		"bookingPriceLabel": {
			domain.LocaleEN: "Total price:",
			domain.LocaleSR: "Ukupna cena:",
			domain.LocaleDE: "Gesamtpreis:",
		},
		"bookingStartLocationLabel": {
			domain.LocaleEN: "Start location:",
			domain.LocaleSR: "Polazna lokacija:",
		},
		"bookingEndLocationLabel": {
			domain.LocaleEN: "End location:",
			domain.LocaleSR: "Krajnja lokacija:",
		},
		"bookingQuoteMessage": {
			domain.LocaleEN: "We are a group of {count} people. Please send us a custom offer.\n\n",
			domain.LocaleSR: "Mi smo grupa od {count} osoba. Molimo vas da nam pošaljete ponudu.\n\n",
		},
		"bookingLargeGroupCount": {
			domain.LocaleEN: "more than 8",
			domain.LocaleSR: "više od 8",
		},
		"generalInquiry": {
			domain.LocaleEN: "General Inquiry",
		},
		"errorStartCity": {
			domain.LocaleEN: "Please enter a starting city.",
			domain.LocaleSR: "Molimo unesite polazni grad.",
		},
		"errorEndCity": {
			domain.LocaleEN: "Please enter an ending city or mark it same as start.",
			domain.LocaleSR: "Molimo unesite krajnji grad ili označite da je isti kao polazni.",
		},
		"errorRequiredFields": {
			domain.LocaleEN: "Please fill in all required fields.",
			domain.LocaleSR: "Molimo popunite sva obavezna polja.",
		},
		"contactSuccessTitle": {
			domain.LocaleEN: "Thank you!",
			domain.LocaleSR: "Hvala vam!",
		},
		"contactSuccessMessage": {
			domain.LocaleEN: "Your inquiry has been sent. We will get back to you shortly.",
			domain.LocaleSR: "Vaš upit je poslat. Javićemo vam se uskoro.",
		},
		// City suggestions for the location step.
		"noviSad":         {domain.LocaleEN: "Novi Sad", domain.LocaleSR: "Novi Sad", domain.LocaleRU: "Нови-Сад"},
		"belgrade":        {domain.LocaleEN: "Belgrade", domain.LocaleSR: "Beograd", domain.LocaleRU: "Белград"},
		"subotica":        {domain.LocaleEN: "Subotica", domain.LocaleSR: "Subotica"},
		"sremskiKarlovci": {domain.LocaleEN: "Sremski Karlovci", domain.LocaleSR: "Sremski Karlovci"},
		"petrovaradin":    {domain.LocaleEN: "Petrovaradin", domain.LocaleSR: "Petrovaradin"},
		"sremskaMitrovica": {
			domain.LocaleEN: "Sremska Mitrovica",
			domain.LocaleSR: "Sremska Mitrovica",
		},
		// Country names for the phone prefix picker.
		"countrySerbia":  {domain.LocaleEN: "Serbia", domain.LocaleSR: "Srbija", domain.LocaleDE: "Serbien", domain.LocaleRU: "Сербия"},
		"countryGermany": {domain.LocaleEN: "Germany", domain.LocaleSR: "Nemačka", domain.LocaleDE: "Deutschland", domain.LocaleRU: "Германия"},
		"countryAustria": {domain.LocaleEN: "Austria", domain.LocaleSR: "Austrija", domain.LocaleDE: "Österreich"},
		"countryHungary": {domain.LocaleEN: "Hungary", domain.LocaleSR: "Mađarska"},
		"countryCroatia": {domain.LocaleEN: "Croatia", domain.LocaleSR: "Hrvatska"},
		"countryRussia":  {domain.LocaleEN: "Russia", domain.LocaleSR: "Rusija", domain.LocaleRU: "Россия"},
		"countryUSA":     {domain.LocaleEN: "United States", domain.LocaleSR: "Sjedinjene Države"},
		"countryUK":      {domain.LocaleEN: "United Kingdom", domain.LocaleSR: "Ujedinjeno Kraljevstvo"},
		"countryFrance":  {domain.LocaleEN: "France", domain.LocaleSR: "Francuska"},
		"countryItaly":   {domain.LocaleEN: "Italy", domain.LocaleSR: "Italija"},
		"countryChina":   {domain.LocaleEN: "China", domain.LocaleZhCN: "中国"},
		"countryIndia":   {domain.LocaleEN: "India", domain.LocaleHI: "भारत"},
	}
}

// PhonePrefix pairs a dialing code with the translation key of the
// country it belongs to.
type PhonePrefix struct {
	Code    string `json:"code"`
	NameKey string `json:"nameKey"`
}

// PhonePrefixes in display order; Serbia first because it is the
// default on the contact form.
var PhonePrefixes = []PhonePrefix{
	{Code: "+381", NameKey: "countrySerbia"},
	{Code: "+49", NameKey: "countryGermany"},
	{Code: "+43", NameKey: "countryAustria"},
	{Code: "+36", NameKey: "countryHungary"},
	{Code: "+385", NameKey: "countryCroatia"},
	{Code: "+7", NameKey: "countryRussia"},
	{Code: "+1", NameKey: "countryUSA"},
	{Code: "+44", NameKey: "countryUK"},
	{Code: "+33", NameKey: "countryFrance"},
	{Code: "+39", NameKey: "countryItaly"},
	{Code: "+86", NameKey: "countryChina"},
	{Code: "+91", NameKey: "countryIndia"},
}

// CitySuggestionKeys lists the translation keys offered as start/end
// city suggestions, in display order.
var CitySuggestionKeys = []string{
	"noviSad", "belgrade", "subotica", "sremskiKarlovci", "petrovaradin", "sremskaMitrovica",
}
