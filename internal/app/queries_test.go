package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"danube_tours/internal/app"
	"danube_tours/internal/domain"
)

func TestListTours_CacheMissThenHit(t *testing.T) {
	store := &fakeStore{tours: []domain.Tour{
		{ID: "t1", Title: domain.LocalizedText{domain.LocaleEN: "City Tour"}},
	}}
	cache := &fakeCache{}
	q := app.NewQueryService(store, cache, 10*time.Minute)

	// Miss (first time, populates cache)
	tours, err := q.ListTours(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(tours) != 1 || tours[0].ID != "t1" {
		t.Fatalf("unexpected tours: %+v", tours)
	}

	// Mutate store to ensure second read indeed comes from cache
	store.tours[0].ID = "SHOULD NOT SEE THIS"

	tours2, err := q.ListTours(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if tours2[0].ID != "t1" {
		t.Fatalf("expected cached tour, got %+v", tours2[0])
	}
}

func TestGetTour_FindsInCachedList(t *testing.T) {
	store := &fakeStore{tours: []domain.Tour{
		{ID: "t1"},
		{ID: "t2", MaxPeople: 8},
	}}
	q := app.NewQueryService(store, &fakeCache{}, time.Minute)

	got, err := q.GetTour(context.Background(), "t2")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.MaxPeople != 8 {
		t.Fatalf("unexpected tour: %+v", got)
	}

	if _, err := q.GetTour(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSettings_Cache(t *testing.T) {
	store := &fakeStore{st: domain.SiteSettings{HeroImage: "hero.jpg"}}
	cache := &fakeCache{}
	q := app.NewQueryService(store, cache, time.Minute)

	st, err := q.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if st.HeroImage != "hero.jpg" {
		t.Fatalf("unexpected settings: %+v", st)
	}

	store.st.HeroImage = "changed.jpg"
	st2, _ := q.GetSettings(context.Background())
	if st2.HeroImage != "hero.jpg" {
		t.Fatalf("expected cached settings, got %+v", st2)
	}
}

func TestListTours_StoreErrorPropagates(t *testing.T) {
	store := &fakeStore{listErr: errors.New("boom")}
	q := app.NewQueryService(store, &fakeCache{}, time.Minute)

	if _, err := q.ListTours(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
