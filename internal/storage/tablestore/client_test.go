package tablestore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"danube_tours/internal/domain"
	"danube_tours/internal/storage/tablestore"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*tablestore.Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	c, err := tablestore.New(ts.URL, "api-key", 100) // high RPS for tests
	require.NoError(t, err)
	return c, ts
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := tablestore.New("", "key", 10)
	assert.Error(t, err)
}

func TestListTours_RequestShapeAndMapping(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/tours", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "api-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer api-key", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"id":           7,
			"title":        map[string]any{"en": "City Tour", "zh-_h_k": "城市之旅"},
			"max_people":   6,
			"is_available": true,
			"price_variations": []map[string]any{
				{"persons": "1-2", "price": 60},
			},
		}})
	})

	tours, err := c.ListTours(context.Background())
	require.NoError(t, err)
	require.Len(t, tours, 1)

	tour := tours[0]
	assert.Equal(t, "7", tour.ID, "numeric row id normalizes to string")
	assert.Equal(t, "City Tour", tour.Title[domain.LocaleEN])
	assert.Equal(t, "城市之旅", tour.Title[domain.LocaleZhHK], "locale map keys survive conversion")
	assert.Equal(t, 6, tour.MaxPeople)
	assert.True(t, tour.IsAvailable)
	require.Len(t, tour.PriceVariations, 1)
	assert.Equal(t, 60, tour.PriceVariations[0].Price)
}

func TestAddInquiry_SendsSnakeCaseBody(t *testing.T) {
	var got map[string]any
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/inquiries", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		got["id"] = "inq-1"
		got["status"] = "New"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]map[string]any{got})
	})

	created, err := c.AddInquiry(context.Background(), domain.InquiryDraft{
		Email:         "ana@example.com",
		Phone:         "+381 641234567",
		TourName:      "City Tour",
		Message:       "hello",
		StartLocation: "Main St 1, Novi Sad",
		EndLocation:   "Belgrade",
	})
	require.NoError(t, err)

	assert.Equal(t, "Main St 1, Novi Sad", got["start_location"])
	assert.Equal(t, "City Tour", got["tour_name"])
	assert.NotContains(t, got, "startLocation")

	assert.Equal(t, "inq-1", created.ID)
	assert.Equal(t, domain.StatusNew, created.Status)
}

func TestProtectedOps_RequireValidSession(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the store without a session")
	})

	_, err := c.ListInquiries(context.Background(), domain.Session{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expired := domain.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)}
	_, err = c.ListInquiries(context.Background(), expired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListInquiries_UsesSessionBearer(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		assert.Equal(t, "api-key", r.Header.Get("apikey"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"id":         "inq-1",
			"email":      "ana@example.com",
			"status":     "New",
			"created_at": "2026-05-01T10:00:00Z",
		}})
	})

	sess := domain.Session{AccessToken: "session-token"}
	out, err := c.ListInquiries(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-05-01T10:00:00Z", out[0].Date, "created_at surfaces as the inquiry date")
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrUnauthorized},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusNotAcceptable, domain.ErrNotFound},
	}
	for _, tt := range tests {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		_, err := c.ListTours(context.Background())
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}

func TestServerErrorSurfacesStatusText(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.ListTours(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSignIn(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "correct" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "session-token",
			"expires_in":   3600,
		})
	})

	sess, err := c.SignIn(context.Background(), "admin@example.com", "correct")
	require.NoError(t, err)
	assert.Equal(t, "session-token", sess.AccessToken)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	_, err = c.SignIn(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateSettings_PatchesFixedRow(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/settings", r.URL.Path)
		assert.Equal(t, "eq.1", r.URL.Query().Get("id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new.jpg", body["hero_image"])

		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "hero_image": "new.jpg"}})
	})

	sess := domain.Session{AccessToken: "tok"}
	updated, err := c.UpdateSettings(context.Background(), sess, domain.SiteSettings{HeroImage: "new.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", updated.HeroImage)
}

func TestAddTour_OmitsEmptyID(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "id")

		body["id"] = "t-9"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]map[string]any{body})
	})

	sess := domain.Session{AccessToken: "tok"}
	created, err := c.AddTour(context.Background(), sess, domain.Tour{
		Title: domain.LocalizedText{domain.LocaleEN: "New Tour"},
	})
	require.NoError(t, err)
	assert.Equal(t, "t-9", created.ID)
}
