package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"danube_tours/internal/app"
)

// bookingView is the wire shape of a form; the server-held record is
// the source of truth, the client only renders it.
type bookingView struct {
	ID             string `json:"id"`
	TourID         string `json:"tourId,omitempty"`
	TourName       string `json:"tourName"`
	Locale         string `json:"locale"`
	Step           string `json:"step"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	People         string `json:"people,omitempty"`
	StartCity      string `json:"startCity,omitempty"`
	StartStreet    string `json:"startStreet,omitempty"`
	EndCity        string `json:"endCity,omitempty"`
	EndStreet      string `json:"endStreet,omitempty"`
	EndSameAsStart bool   `json:"endSameAsStart"`
	Email          string `json:"email,omitempty"`
	PhonePrefix    string `json:"phonePrefix"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Message        string `json:"message"`
}

func viewOf(f app.BookingForm) bookingView {
	return bookingView{
		ID:             f.ID,
		TourID:         f.TourID,
		TourName:       f.TourName,
		Locale:         string(f.Locale),
		Step:           f.Step.String(),
		Date:           f.Date,
		Time:           f.Time,
		People:         f.RawPeople,
		StartCity:      f.StartCity,
		StartStreet:    f.StartStreet,
		EndCity:        f.EndCity,
		EndStreet:      f.EndStreet,
		EndSameAsStart: f.EndSameAsStart,
		Email:          f.Email,
		PhonePrefix:    f.PhonePrefix,
		PhoneNumber:    f.PhoneNumber,
		Message:        f.Message,
	}
}

func (h *Handlers) startBooking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TourID string `json:"tourId"`
		Date   string `json:"date"`
		Time   string `json:"time"`
		People string `json:"people"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed booking request")
			return
		}
	}
	f, err := h.Bookings.Start(r.Context(), app.StartParams{
		TourID: body.TourID,
		Date:   body.Date,
		Time:   body.Time,
		People: body.People,
		Locale: requestLocale(r),
	})
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Upstream Error", "could not start booking")
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(f))
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	f, err := h.Bookings.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeBookingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(f))
}

func (h *Handlers) submitLocations(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StartCity   string `json:"startCity"`
		StartStreet string `json:"startStreet"`
		EndCity     string `json:"endCity"`
		EndStreet   string `json:"endStreet"`
		SameAsStart bool   `json:"endSameAsStart"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed locations")
		return
	}
	f, err := h.Bookings.SubmitLocations(chi.URLParam(r, "id"), app.LocationParams{
		StartCity:   body.StartCity,
		StartStreet: body.StartStreet,
		EndCity:     body.EndCity,
		EndStreet:   body.EndStreet,
		SameAsStart: body.SameAsStart,
	})
	if err != nil {
		h.writeBookingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(f))
}

func (h *Handlers) backBooking(w http.ResponseWriter, r *http.Request) {
	f, err := h.Bookings.Back(chi.URLParam(r, "id"))
	if err != nil {
		h.writeBookingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(f))
}

func (h *Handlers) submitBooking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		PhonePrefix string `json:"phonePrefix"`
		PhoneNumber string `json:"phoneNumber"`
		Message     string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed contact details")
		return
	}
	f, err := h.Bookings.Submit(r.Context(), chi.URLParam(r, "id"), app.ContactParams{
		Email:       body.Email,
		PhonePrefix: body.PhonePrefix,
		PhoneNumber: body.PhoneNumber,
		Message:     body.Message,
	})
	if err != nil {
		h.writeBookingError(w, r, err)
		return
	}
	resp := struct {
		bookingView
		Title   string `json:"successTitle"`
		Details string `json:"successMessage"`
	}{
		bookingView: viewOf(f),
		Title:       h.Tr.T(f.Locale, "contactSuccessTitle"),
		Details:     h.Tr.T(f.Locale, "contactSuccessMessage"),
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeBookingError renders form-flow failures: validation errors carry
// the translated message for the visitor's locale as a 422.
func (h *Handlers) writeBookingError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *app.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Failed", h.Tr.T(requestLocale(r), ve.Key))
	case errors.Is(err, app.ErrFormNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "booking form not found or expired")
	case errors.Is(err, app.ErrAlreadySubmitted):
		writeProblem(w, http.StatusConflict, "Conflict", "booking form already submitted")
	case errors.Is(err, app.ErrWrongStep):
		writeProblem(w, http.StatusConflict, "Conflict", "transition not allowed from the current step")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "booking operation failed")
	}
}
