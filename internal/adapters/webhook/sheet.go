package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"danube_tours/internal/adapters/observability"
	"danube_tours/internal/domain"
)

// Sheet posts booking log entries to an external spreadsheet webhook.
// The call is best-effort: callers log the returned error and move on,
// the response body is never consumed.
type Sheet struct {
	url string
	hc  *http.Client
}

func NewSheet(url string) *Sheet {
	return &Sheet{url: url, hc: &http.Client{Timeout: 10 * time.Second}}
}

func (s *Sheet) LogBooking(ctx context.Context, e domain.LogEntry) error {
	if s.url == "" {
		return nil // webhook not configured
	}
	e.ID = ""
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("sheet", "log", 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	observability.ObserveExternal("sheet", "log", resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sheet webhook: status %d", resp.StatusCode)
	}
	return nil
}
