package tablestore

import (
	"context"
	"net/url"
	"strconv"

	"danube_tours/internal/domain"
)

// Collection names in the hosted store.
const (
	tableTours      = "tours"
	tableInquiries  = "inquiries"
	tableSettings   = "settings"
	tableLogEntries = "log_entries"
)

var _ domain.Store = (*Client)(nil)

func (c *Client) ListTours(ctx context.Context) ([]domain.Tour, error) {
	rows, err := c.selectRows(ctx, tableTours, nil, "")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Tour, 0, len(rows))
	for _, r := range rows {
		t, err := tourFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (c *Client) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	q := url.Values{"id": {"eq." + strconv.Itoa(domain.SettingsRowID)}, "limit": {"1"}}
	rows, err := c.selectRows(ctx, tableSettings, q, "")
	if err != nil {
		return domain.SiteSettings{}, err
	}
	if len(rows) == 0 {
		return domain.SiteSettings{}, domain.ErrNotFound
	}
	return settingsFromRow(rows[0])
}

func (c *Client) AddInquiry(ctx context.Context, draft domain.InquiryDraft) (domain.Inquiry, error) {
	body, err := toRow(draft)
	if err != nil {
		return domain.Inquiry{}, err
	}
	created, err := c.insertRow(ctx, tableInquiries, body, "")
	if err != nil {
		return domain.Inquiry{}, err
	}
	return inquiryFromRow(created)
}

func (c *Client) AddLogEntry(ctx context.Context, e domain.LogEntry) (domain.LogEntry, error) {
	e.ID = ""
	body, err := toRow(e)
	if err != nil {
		return domain.LogEntry{}, err
	}
	created, err := c.insertRow(ctx, tableLogEntries, body, "")
	if err != nil {
		return domain.LogEntry{}, err
	}
	return logEntryFromRow(created)
}

func (c *Client) ListInquiries(ctx context.Context, s domain.Session) ([]domain.Inquiry, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	q := url.Values{"order": {"created_at.desc"}}
	rows, err := c.selectRows(ctx, tableInquiries, q, s.AccessToken)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Inquiry, 0, len(rows))
	for _, r := range rows {
		iq, err := inquiryFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, iq)
	}
	return out, nil
}

func (c *Client) ListLogEntries(ctx context.Context, s domain.Session) ([]domain.LogEntry, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	q := url.Values{"order": {"created_at.desc"}}
	rows, err := c.selectRows(ctx, tableLogEntries, q, s.AccessToken)
	if err != nil {
		return nil, err
	}
	out := make([]domain.LogEntry, 0, len(rows))
	for _, r := range rows {
		e, err := logEntryFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *Client) UpdateInquiryStatus(ctx context.Context, s domain.Session, id string, status domain.InquiryStatus) (domain.Inquiry, error) {
	if !s.Valid() {
		return domain.Inquiry{}, domain.ErrUnauthorized
	}
	updated, err := c.updateRows(ctx, tableInquiries, idFilter(id), row{"status": string(status)}, s.AccessToken)
	if err != nil {
		return domain.Inquiry{}, err
	}
	return inquiryFromRow(updated)
}

func (c *Client) AddTour(ctx context.Context, s domain.Session, t domain.Tour) (domain.Tour, error) {
	if !s.Valid() {
		return domain.Tour{}, domain.ErrUnauthorized
	}
	body, err := tourToRow(t)
	if err != nil {
		return domain.Tour{}, err
	}
	created, err := c.insertRow(ctx, tableTours, body, s.AccessToken)
	if err != nil {
		return domain.Tour{}, err
	}
	return tourFromRow(created)
}

func (c *Client) UpdateTour(ctx context.Context, s domain.Session, t domain.Tour) (domain.Tour, error) {
	if !s.Valid() {
		return domain.Tour{}, domain.ErrUnauthorized
	}
	body, err := tourToRow(t)
	if err != nil {
		return domain.Tour{}, err
	}
	updated, err := c.updateRows(ctx, tableTours, idFilter(t.ID), body, s.AccessToken)
	if err != nil {
		return domain.Tour{}, err
	}
	return tourFromRow(updated)
}

func (c *Client) DeleteTour(ctx context.Context, s domain.Session, id string) error {
	if !s.Valid() {
		return domain.ErrUnauthorized
	}
	return c.deleteRows(ctx, tableTours, idFilter(id), s.AccessToken)
}

func (c *Client) UpdateSettings(ctx context.Context, s domain.Session, st domain.SiteSettings) (domain.SiteSettings, error) {
	if !s.Valid() {
		return domain.SiteSettings{}, domain.ErrUnauthorized
	}
	body, err := toRow(st)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	filter := url.Values{"id": {"eq." + strconv.Itoa(domain.SettingsRowID)}}
	updated, err := c.updateRows(ctx, tableSettings, filter, body, s.AccessToken)
	if err != nil {
		return domain.SiteSettings{}, err
	}
	return settingsFromRow(updated)
}
