package domain

// Locale is a display-language code from the site's closed set.
type Locale string

const (
	LocaleSR   Locale = "sr"
	LocaleHR   Locale = "hr"
	LocaleME   Locale = "me"
	LocaleEN   Locale = "en"
	LocaleRU   Locale = "ru"
	LocaleDE   Locale = "de"
	LocaleUK   Locale = "uk"
	LocaleTR   Locale = "tr"
	LocaleES   Locale = "es"
	LocaleZhHK Locale = "zh-HK"
	LocaleZhCN Locale = "zh-CN"
	LocaleJA   Locale = "ja"
	LocaleHI   Locale = "hi"
)

// DefaultLocale is the reference language; every translation bag is
// expected to carry it.
const DefaultLocale = LocaleEN

var SupportedLocales = []Locale{
	LocaleSR, LocaleHR, LocaleME, LocaleEN, LocaleRU, LocaleDE, LocaleUK,
	LocaleTR, LocaleES, LocaleZhHK, LocaleZhCN, LocaleJA, LocaleHI,
}

// ParseLocale returns the matching supported locale, if any.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range SupportedLocales {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// LocalizedText is a per-locale text bag.
type LocalizedText map[Locale]string

// Resolve returns the text for loc, falling back to the reference
// locale, then to the empty string.
func (t LocalizedText) Resolve(loc Locale) string {
	if s, ok := t[loc]; ok && s != "" {
		return s
	}
	return t[DefaultLocale]
}

// LocalizedList is a per-locale list bag (e.g. included items).
type LocalizedList map[Locale][]string

func (l LocalizedList) Resolve(loc Locale) []string {
	if v, ok := l[loc]; ok && len(v) > 0 {
		return v
	}
	return l[DefaultLocale]
}
