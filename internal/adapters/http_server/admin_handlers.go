package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"danube_tours/internal/domain"
)

func (h *Handlers) adminLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "email and password are required")
		return
	}
	sess, err := h.Admin.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid credentials")
			return
		}
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "sign-in failed")
		return
	}
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = nowPlusFallbackTTL()
	}
	token := h.Sessions.Put(sess)
	writeJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"expiresAt": sess.ExpiresAt,
	})
}

func (h *Handlers) adminLogout(w http.ResponseWriter, r *http.Request) {
	as := sessionFrom(r)
	h.Sessions.Drop(as.token)
	if err := h.Admin.Logout(r.Context(), as.sess); err != nil {
		// local session is gone regardless
		log.Warn().Err(err).Msg("remote sign-out failed")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminInquiries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.Inquiries(r.Context(), sessionFrom(r).sess)
	if err != nil {
		writeAdminError(w, err, "inquiries")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminUpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected {\"status\": \"..\"}")
		return
	}
	status := domain.InquiryStatus(body.Status)
	if !status.Valid() {
		writeProblem(w, http.StatusBadRequest, "Invalid status", "unknown inquiry status "+body.Status)
		return
	}
	updated, err := h.Admin.UpdateInquiryStatus(r.Context(), sessionFrom(r).sess, chi.URLParam(r, "id"), status)
	if err != nil {
		writeAdminError(w, err, "inquiry")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) adminLogEntries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.LogEntries(r.Context(), sessionFrom(r).sess)
	if err != nil {
		writeAdminError(w, err, "log entries")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) adminAddTour(w http.ResponseWriter, r *http.Request) {
	var t domain.Tour
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed tour")
		return
	}
	created, err := h.Admin.AddTour(r.Context(), sessionFrom(r).sess, t)
	if err != nil {
		writeAdminError(w, err, "tour")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) adminUpdateTour(w http.ResponseWriter, r *http.Request) {
	var t domain.Tour
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed tour")
		return
	}
	t.ID = chi.URLParam(r, "id")
	updated, err := h.Admin.UpdateTour(r.Context(), sessionFrom(r).sess, t)
	if err != nil {
		writeAdminError(w, err, "tour")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) adminDeleteTour(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteTour(r.Context(), sessionFrom(r).sess, chi.URLParam(r, "id")); err != nil {
		writeAdminError(w, err, "tour")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var st domain.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed settings")
		return
	}
	updated, err := h.Admin.UpdateSettings(r.Context(), sessionFrom(r).sess, st)
	if err != nil {
		writeAdminError(w, err, "settings")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) adminListTranslations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Tr.Snapshot())
}

func (h *Handlers) adminUpsertTranslation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key    string `json:"key"`
		Locale string `json:"locale"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Key == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "key and locale are required")
		return
	}
	loc, ok := domain.ParseLocale(body.Locale)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid locale", "unsupported locale "+body.Locale)
		return
	}
	h.Tr.Set(body.Key, loc, body.Text)
	w.WriteHeader(http.StatusNoContent)
}

func writeAdminError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "session rejected by the store")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", what+" not found")
	default:
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "store operation on "+what+" failed")
	}
}
