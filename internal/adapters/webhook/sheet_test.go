package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"danube_tours/internal/adapters/webhook"
	"danube_tours/internal/domain"
)

func TestLogBooking_PostsEntryWithoutID(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	s := webhook.NewSheet(ts.URL)
	err := s.LogBooking(context.Background(), domain.LogEntry{
		ID:             "local-only",
		EntryDate:      "2026-05-01",
		EntryTime:      "10:00:00",
		NumberOfPeople: "2",
		TourName:       "City Tour",
		Email:          "ana@example.com",
	})
	require.NoError(t, err)

	assert.NotContains(t, got, "id", "local row id must not leak to the sheet")
	assert.Equal(t, "2026-05-01", got["entryDate"])
	assert.Equal(t, "City Tour", got["tourName"])
}

func TestLogBooking_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := webhook.NewSheet(ts.URL)
	err := s.LogBooking(context.Background(), domain.LogEntry{})
	assert.Error(t, err)
}

func TestLogBooking_NoURLIsNoop(t *testing.T) {
	s := webhook.NewSheet("")
	assert.NoError(t, s.LogBooking(context.Background(), domain.LogEntry{}))
}
