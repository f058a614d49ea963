package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"danube_tours/internal/app"
	"danube_tours/internal/domain"
	"danube_tours/internal/i18n"
)

type Handlers struct {
	Q        *app.QueryService
	Bookings *app.BookingService
	Admin    *app.AdminService
	Tr       *i18n.Store
	Sessions *SessionStore
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/tours", h.listTours)
		r.Get("/tours/{id}", h.getTour)
		r.Get("/tours/{id}/slots", h.listSlots)
		r.Get("/tours/{id}/quote", h.getQuote)
		r.Get("/settings", h.getSettings)
		r.Get("/translations", h.listTranslations)
		r.Get("/locale", h.getLocale)
		r.Put("/locale", h.putLocale)
		r.Get("/cities", h.listCities)
		r.Get("/phone-prefixes", h.listPhonePrefixes)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.startBooking)
			r.Get("/{id}", h.getBooking)
			r.Post("/{id}/locations", h.submitLocations)
			r.Post("/{id}/back", h.backBooking)
			r.Post("/{id}/submit", h.submitBooking)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.adminLogin)
			r.Group(func(r chi.Router) {
				r.Use(h.Sessions.Require)
				r.Post("/logout", h.adminLogout)
				r.Get("/inquiries", h.adminInquiries)
				r.Patch("/inquiries/{id}/status", h.adminUpdateInquiryStatus)
				r.Get("/logs", h.adminLogEntries)
				r.Post("/tours", h.adminAddTour)
				r.Put("/tours/{id}", h.adminUpdateTour)
				r.Delete("/tours/{id}", h.adminDeleteTour)
				r.Put("/settings", h.adminUpdateSettings)
				r.Get("/translations", h.adminListTranslations)
				r.Put("/translations", h.adminUpsertTranslation)
			})
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeReadError maps read-path failures: a missing row is the
// client's 404, anything else means the upstream store misbehaved.
func writeReadError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", what+" not found")
		return
	}
	writeProblem(w, http.StatusBadGateway, "Upstream Error", "could not load "+what)
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// requestLocale resolves the visitor's locale from the cookie and the
// Accept-Language header, in that order.
func requestLocale(r *http.Request) domain.Locale {
	stored := ""
	if c, err := r.Cookie(i18n.CookieName); err == nil {
		stored = c.Value
	}
	return i18n.Resolve(stored, r.Header.Get("Accept-Language"))
}

// tourView is the public, localized projection of a tour. Price tiers
// stay verbatim so the client can render the pricing table.
type tourView struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Subtitle         string                  `json:"subtitle,omitempty"`
	ShortDescription string                  `json:"shortDescription"`
	LongDescription  string                  `json:"longDescription,omitempty"`
	Duration         string                  `json:"duration"`
	MaxPeople        int                     `json:"maxPeople"`
	Images           []string                `json:"images,omitempty"`
	Included         []string                `json:"included,omitempty"`
	PriceVariations  []domain.PriceVariation `json:"priceVariations"`
	IsFeatured       bool                    `json:"isFeatured"`
	SEO              *seoView                `json:"seo,omitempty"`
}

type seoView struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

func localizeTour(t domain.Tour, loc domain.Locale) tourView {
	v := tourView{
		ID:               t.ID,
		Title:            t.Title.Resolve(loc),
		Subtitle:         t.Subtitle.Resolve(loc),
		ShortDescription: t.ShortDescription.Resolve(loc),
		LongDescription:  t.LongDescription.Resolve(loc),
		Duration:         t.Duration.Resolve(loc),
		MaxPeople:        t.MaxPeople,
		Images:           t.Images,
		Included:         t.Included.Resolve(loc),
		PriceVariations:  t.PriceVariations,
		IsFeatured:       t.IsFeatured,
	}
	if t.SEO.MetaTitle.Resolve(loc) != "" || t.SEO.MetaDescription.Resolve(loc) != "" {
		v.SEO = &seoView{
			MetaTitle:       t.SEO.MetaTitle.Resolve(loc),
			MetaDescription: t.SEO.MetaDescription.Resolve(loc),
		}
	}
	return v
}

func (h *Handlers) listTours(w http.ResponseWriter, r *http.Request) {
	loc := requestLocale(r)
	tours, err := h.Q.ListTours(r.Context())
	if err != nil {
		writeReadError(w, err, "tours")
		return
	}
	featuredOnly := r.URL.Query().Get("featured") == "1"
	views := make([]tourView, 0, len(tours))
	for _, t := range tours {
		if !t.IsAvailable {
			continue
		}
		if featuredOnly && !t.IsFeatured {
			continue
		}
		views = append(views, localizeTour(t, loc))
	}
	w.Header().Set("Content-Language", string(loc))
	writeCached(w, r, views)
}

// priceInfo accompanies a tour detail when ?people= is present.
type priceInfo struct {
	People         string `json:"people"`
	PricePerPerson int    `json:"pricePerPerson,omitempty"`
	TotalPrice     int    `json:"totalPrice,omitempty"`
	QuoteRequired  bool   `json:"quoteRequired"`
}

func (h *Handlers) getTour(w http.ResponseWriter, r *http.Request) {
	loc := requestLocale(r)
	t, err := h.visibleTour(r)
	if err != nil {
		writeReadError(w, err, "tour")
		return
	}

	type detail struct {
		tourView
		Price *priceInfo `json:"price,omitempty"`
	}
	resp := detail{tourView: localizeTour(t, loc)}
	if raw := r.URL.Query().Get("people"); raw != "" {
		resp.Price = quoteFor(t, raw)
	}
	w.Header().Set("Content-Language", string(loc))
	writeCached(w, r, resp)
}

// quoteFor implements the price panel: per-person and total price for
// a concrete valid size, quote-required for large or oversized groups.
func quoteFor(t domain.Tour, raw string) *priceInfo {
	size := domain.ParsePartySize(raw)
	info := &priceInfo{People: raw}
	maxPeople := t.MaxPeople
	if maxPeople == 0 {
		maxPeople = 6
	}
	if !size.Concrete() || int(size) > maxPeople {
		info.QuoteRequired = true
		return info
	}
	per, ok := app.ResolvePrice(size, t.PriceVariations)
	if !ok {
		info.QuoteRequired = true
		return info
	}
	info.PricePerPerson = per
	info.TotalPrice = per * int(size)
	return info
}

// visibleTour resolves a tour for the public endpoints; unavailable
// tours are indistinguishable from missing ones.
func (h *Handlers) visibleTour(r *http.Request) (domain.Tour, error) {
	t, err := h.Q.GetTour(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return domain.Tour{}, err
	}
	if !t.IsAvailable {
		return domain.Tour{}, domain.ErrNotFound
	}
	return t, nil
}

func (h *Handlers) getQuote(w http.ResponseWriter, r *http.Request) {
	t, err := h.visibleTour(r)
	if err != nil {
		writeReadError(w, err, "tour")
		return
	}
	raw := r.URL.Query().Get("people")
	if raw == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid people", "people query parameter is required")
		return
	}
	writeJSON(w, http.StatusOK, quoteFor(t, raw))
}

func (h *Handlers) listSlots(w http.ResponseWriter, r *http.Request) {
	t, err := h.visibleTour(r)
	if err != nil {
		writeReadError(w, err, "tour")
		return
	}
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid date", "date must be YYYY-MM-DD")
		return
	}
	slots := app.AvailableSlots(date, app.ParseDurationHours(t.Duration.Resolve(domain.DefaultLocale)))
	writeJSON(w, http.StatusOK, map[string]any{"date": dateStr, "slots": slots})
}

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	st, err := h.Q.GetSettings(r.Context())
	if err != nil {
		writeReadError(w, err, "settings")
		return
	}
	writeCached(w, r, st)
}

func (h *Handlers) listTranslations(w http.ResponseWriter, r *http.Request) {
	loc := requestLocale(r)
	out := make(map[string]string)
	for _, key := range h.Tr.Keys() {
		out[key] = h.Tr.T(loc, key)
	}
	w.Header().Set("Content-Language", string(loc))
	writeCached(w, r, out)
}

func (h *Handlers) getLocale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"locale": string(requestLocale(r))})
}

func (h *Handlers) putLocale(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Locale string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected {\"locale\": \"..\"}")
		return
	}
	loc, ok := domain.ParseLocale(body.Locale)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid locale", "unsupported locale "+body.Locale)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    string(loc),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"locale": string(loc)})
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	loc := requestLocale(r)
	type city struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	}
	out := make([]city, 0, len(i18n.CitySuggestionKeys))
	for _, key := range i18n.CitySuggestionKeys {
		out = append(out, city{Key: key, Name: h.Tr.T(loc, key)})
	}
	w.Header().Set("Content-Language", string(loc))
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) listPhonePrefixes(w http.ResponseWriter, r *http.Request) {
	loc := requestLocale(r)
	type prefix struct {
		Code    string `json:"code"`
		Country string `json:"country"`
	}
	out := make([]prefix, 0, len(i18n.PhonePrefixes))
	for _, p := range i18n.PhonePrefixes {
		out = append(out, prefix{Code: p.Code, Country: h.Tr.T(loc, p.NameKey)})
	}
	w.Header().Set("Content-Language", string(loc))
	writeJSON(w, http.StatusOK, out)
}
