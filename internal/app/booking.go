package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"danube_tours/internal/domain"
	"danube_tours/internal/i18n"
)

// The contact flow is a two-step form: locations first, then contact
// details, then submitted. Forms are held server-side per booking
// session and expire lazily; there is no background sweeper.

type BookingStep int

const (
	StepLocations BookingStep = iota + 1
	StepContact
	StepSubmitted
)

func (s BookingStep) String() string {
	switch s {
	case StepLocations:
		return "locations"
	case StepContact:
		return "contact"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

// ValidationError carries a translation key; the HTTP layer renders it
// in the form's locale.
type ValidationError struct{ Key string }

func (e *ValidationError) Error() string { return e.Key }

var (
	ErrStartCityRequired = &ValidationError{Key: "errorStartCity"}
	ErrEndCityRequired   = &ValidationError{Key: "errorEndCity"}
	ErrRequiredFields    = &ValidationError{Key: "errorRequiredFields"}

	ErrFormNotFound     = errors.New("booking form not found")
	ErrAlreadySubmitted = errors.New("booking form already submitted")
	ErrWrongStep        = errors.New("transition not allowed from this step")
)

type BookingForm struct {
	ID        string
	TourID    string
	TourName  string
	Locale    domain.Locale
	Step      BookingStep
	CreatedAt time.Time

	// Raw booking query parameters, kept verbatim for the log entry.
	Date      string
	Time      string
	RawPeople string
	People    domain.PartySize

	StartCity      string
	StartStreet    string
	EndCity        string
	EndStreet      string
	EndSameAsStart bool

	Email       string
	PhonePrefix string
	PhoneNumber string
	Message     string
}

// TourFinder resolves a tour id to its current record (cached reads).
type TourFinder interface {
	GetTour(ctx context.Context, id string) (domain.Tour, error)
}

type BookingService struct {
	tours    TourFinder
	store    domain.Store
	notifier domain.Notifier
	tr       *i18n.Store
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	forms map[string]*BookingForm
}

func NewBookingService(tours TourFinder, store domain.Store, notifier domain.Notifier, tr *i18n.Store, ttl time.Duration) *BookingService {
	return &BookingService{
		tours:    tours,
		store:    store,
		notifier: notifier,
		tr:       tr,
		ttl:      ttl,
		now:      time.Now,
		forms:    make(map[string]*BookingForm),
	}
}

type StartParams struct {
	TourID string
	Date   string
	Time   string
	People string
	Locale domain.Locale
}

// Start opens a new form seeded from the booking query parameters and
// composes the initial message: a priced variant when date, time and a
// concrete party size are present, a quote variant for large or
// oversized groups, and a bare greeting otherwise.
func (s *BookingService) Start(ctx context.Context, p StartParams) (BookingForm, error) {
	loc := p.Locale
	if loc == "" {
		loc = domain.DefaultLocale
	}
	f := &BookingForm{
		ID:          uuid.NewString(),
		TourID:      p.TourID,
		TourName:    s.tr.T(loc, "generalInquiry"),
		Locale:      loc,
		Step:        StepLocations,
		CreatedAt:   s.now(),
		Date:        p.Date,
		Time:        p.Time,
		RawPeople:   p.People,
		People:      domain.ParsePartySize(p.People),
		PhonePrefix: "+381",
	}
	if p.TourID != "" {
		tour, err := s.tours.GetTour(ctx, p.TourID)
		if err != nil {
			// unknown tour: fall through to a general inquiry
			log.Warn().Str("tour", p.TourID).Err(err).Msg("booking started for unknown tour")
		} else {
			f.TourName = s.tr.Localize(tour.Title, loc)
			f.Message = s.seedMessage(loc, tour, f)
		}
	}

	s.mu.Lock()
	s.sweepLocked()
	s.forms[f.ID] = f
	s.mu.Unlock()
	return *f, nil
}

func (s *BookingService) seedMessage(loc domain.Locale, tour domain.Tour, f *BookingForm) string {
	title := s.tr.Localize(tour.Title, loc)
	msg := strings.ReplaceAll(s.tr.T(loc, "bookingRequestMessage"), "{tourTitle}", title)

	maxPeople := tour.MaxPeople
	if maxPeople == 0 {
		maxPeople = 6
	}

	switch {
	case f.RawPeople != "" && (f.People.IsLargeGroup() || int(f.People) > maxPeople):
		count := f.RawPeople
		if f.People.IsLargeGroup() {
			count = s.tr.T(loc, "bookingLargeGroupCount")
		}
		msg += strings.ReplaceAll(s.tr.T(loc, "bookingQuoteMessage"), "{count}", count)
	case f.Date != "" && f.Time != "" && f.People.Concrete():
		total := 0
		if t, ok := TotalPrice(f.People, tour.PriceVariations); ok {
			total = t
		}
		msg += fmt.Sprintf("%s\n%s %s\n%s %s\n%s %s\n%s €%d\n\n",
			s.tr.T(loc, "bookingDetails"),
			s.tr.T(loc, "bookingDateLabel"), f.Date,
			s.tr.T(loc, "bookingTimeLabel"), f.Time,
			s.tr.T(loc, "bookingPeopleLabel"), f.People,
			s.tr.T(loc, "bookingPriceLabel"), total,
		)
	}
	return msg
}

// Get returns a snapshot of the form.
func (s *BookingService) Get(id string) (BookingForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.getLocked(id)
	if err != nil {
		return BookingForm{}, err
	}
	return *f, nil
}

type LocationParams struct {
	StartCity   string
	StartStreet string
	EndCity     string
	EndStreet   string
	SameAsStart bool
}

// SubmitLocations is the Step1 -> Step2 transition. It validates the
// cities, then splices the start/end location lines into the booking
// details section of the message, removing any previous location lines
// first so that repeated back-and-continue runs never duplicate them.
func (s *BookingService) SubmitLocations(id string, p LocationParams) (BookingForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.getLocked(id)
	if err != nil {
		return BookingForm{}, err
	}
	if f.Step == StepSubmitted {
		return BookingForm{}, ErrAlreadySubmitted
	}
	if strings.TrimSpace(p.StartCity) == "" {
		return BookingForm{}, ErrStartCityRequired
	}
	if !p.SameAsStart && strings.TrimSpace(p.EndCity) == "" {
		return BookingForm{}, ErrEndCityRequired
	}

	f.StartCity, f.StartStreet = p.StartCity, p.StartStreet
	f.EndCity, f.EndStreet = p.EndCity, p.EndStreet
	f.EndSameAsStart = p.SameAsStart

	start := joinLocation(f.StartStreet, f.StartCity)
	end := start
	if !f.EndSameAsStart {
		end = joinLocation(f.EndStreet, f.EndCity)
	}
	f.Message = s.insertLocationLines(f.Locale, f.Message, start, end)
	f.Step = StepContact
	return *f, nil
}

// Back returns to the location step without losing contact fields.
// Calling it while already on Step1 is a no-op.
func (s *BookingService) Back(id string) (BookingForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.getLocked(id)
	if err != nil {
		return BookingForm{}, err
	}
	if f.Step == StepSubmitted {
		return BookingForm{}, ErrAlreadySubmitted
	}
	f.Step = StepLocations
	return *f, nil
}

type ContactParams struct {
	Email       string
	PhonePrefix string
	PhoneNumber string
	Message     string
}

// Submit is the Step2 -> Submitted transition: validate the contact
// fields, persist the inquiry and its log entry, then mirror the log
// to the sheet webhook. The remote writes are best-effort after
// validation passes; their failure is logged and the visitor still
// sees a submitted form.
func (s *BookingService) Submit(ctx context.Context, id string, p ContactParams) (BookingForm, error) {
	s.mu.Lock()
	f, err := s.getLocked(id)
	if err != nil {
		s.mu.Unlock()
		return BookingForm{}, err
	}
	if f.Step == StepSubmitted {
		s.mu.Unlock()
		return BookingForm{}, ErrAlreadySubmitted
	}
	if f.Step != StepContact {
		s.mu.Unlock()
		return BookingForm{}, ErrWrongStep
	}

	// stash what was typed before validating, so a failed attempt (or a
	// trip back to the location step) does not lose the entered values
	f.Email = p.Email
	f.PhoneNumber = p.PhoneNumber
	if p.PhonePrefix != "" {
		f.PhonePrefix = p.PhonePrefix
	}
	if p.Message != "" {
		f.Message = p.Message
	}
	if strings.TrimSpace(p.Email) == "" || strings.TrimSpace(p.PhoneNumber) == "" || strings.TrimSpace(p.Message) == "" {
		s.mu.Unlock()
		return BookingForm{}, ErrRequiredFields
	}
	f.Step = StepSubmitted

	phone := f.PhonePrefix + " " + f.PhoneNumber
	start := joinLocation(f.StartStreet, f.StartCity)
	end := start
	if !f.EndSameAsStart {
		end = joinLocation(f.EndStreet, f.EndCity)
	}
	draft := domain.InquiryDraft{
		Email:         f.Email,
		Phone:         phone,
		TourName:      f.TourName,
		Message:       f.Message,
		StartLocation: start,
		EndLocation:   end,
	}
	now := s.now()
	entry := domain.LogEntry{
		EntryDate:      now.Format("2006-01-02"),
		EntryTime:      now.Format("15:04:05"),
		NumberOfPeople: orNA(f.RawPeople),
		TourName:       f.TourName,
		StartLocation:  start,
		EndLocation:    end,
		BookingDate:    orNA(f.Date),
		BookingTime:    orNA(f.Time),
		Email:          f.Email,
		Phone:          phone,
		Message:        f.Message,
	}
	snapshot := *f
	s.mu.Unlock()

	if _, err := s.store.AddInquiry(ctx, draft); err != nil {
		log.Error().Err(err).Msg("add inquiry failed")
	}
	if _, err := s.store.AddLogEntry(ctx, entry); err != nil {
		log.Error().Err(err).Msg("add log entry failed")
	}
	// best-effort mirror; the authoritative write already happened
	if err := s.notifier.LogBooking(ctx, entry); err != nil {
		log.Warn().Err(err).Msg("sheet webhook failed")
	}
	return snapshot, nil
}

// ---- internals ----

func (s *BookingService) getLocked(id string) (*BookingForm, error) {
	f, ok := s.forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	if s.expired(f) {
		delete(s.forms, id)
		return nil, ErrFormNotFound
	}
	return f, nil
}

func (s *BookingService) expired(f *BookingForm) bool {
	return s.ttl > 0 && s.now().Sub(f.CreatedAt) > s.ttl
}

func (s *BookingService) sweepLocked() {
	for id, f := range s.forms {
		if s.expired(f) {
			delete(s.forms, id)
		}
	}
}

// insertLocationLines finds the booking-details section and puts the
// start/end location lines right after the time line. Prior location
// lines are dropped first, which makes the operation idempotent. A
// message without the section (general inquiry) passes through as is.
func (s *BookingService) insertLocationLines(loc domain.Locale, msg, start, end string) string {
	header := s.tr.T(loc, "bookingDetails") + "\n"
	timeLabel := s.tr.T(loc, "bookingTimeLabel")
	startLabel := s.tr.T(loc, "bookingStartLocationLabel")
	endLabel := s.tr.T(loc, "bookingEndLocationLabel")

	before, details, found := strings.Cut(msg, header)
	if !found {
		return msg
	}
	lines := strings.Split(details, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, startLabel) || strings.HasPrefix(trimmed, endLabel) {
			continue
		}
		kept = append(kept, line)
	}
	timeIdx := -1
	for i, line := range kept {
		if strings.HasPrefix(strings.TrimSpace(line), timeLabel) {
			timeIdx = i
			break
		}
	}
	if timeIdx == -1 {
		return msg
	}
	out := make([]string, 0, len(kept)+2)
	out = append(out, kept[:timeIdx+1]...)
	out = append(out, startLabel+" "+start, endLabel+" "+end)
	out = append(out, kept[timeIdx+1:]...)
	return before + header + strings.Join(out, "\n")
}

func joinLocation(street, city string) string {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	if street == "" {
		return city
	}
	return street + ", " + city
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
