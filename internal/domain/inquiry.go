package domain

// InquiryStatus moves forward New -> In Progress -> Completed; the
// admin UI offers all three at any time and no ordering is enforced.
type InquiryStatus string

const (
	StatusNew        InquiryStatus = "New"
	StatusInProgress InquiryStatus = "In Progress"
	StatusCompleted  InquiryStatus = "Completed"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Inquiry struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"` // server-assigned creation timestamp
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	TourName      string        `json:"tourName"` // denormalized display name, not a key
	Message       string        `json:"message"`
	Status        InquiryStatus `json:"status"`
	StartLocation string        `json:"startLocation"`
	EndLocation   string        `json:"endLocation"`
}

// InquiryDraft is what a visitor submits; id, date and status are
// assigned by the store (status starts as New).
type InquiryDraft struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	TourName      string `json:"tourName"`
	Message       string `json:"message"`
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
}

// LogEntry is an append-only booking audit record. Party size and the
// booking date/time are kept as the raw query-string values and may be
// "N/A".
type LogEntry struct {
	ID             string `json:"id,omitempty"`
	EntryDate      string `json:"entryDate"`
	EntryTime      string `json:"entryTime"`
	NumberOfPeople string `json:"numberOfPeople"`
	TourName       string `json:"tourName"`
	StartLocation  string `json:"startLocation"`
	EndLocation    string `json:"endLocation"`
	BookingDate    string `json:"bookingDate"`
	BookingTime    string `json:"bookingTime"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
}
