package i18n

import (
	"sort"
	"sync"

	"danube_tours/internal/domain"
)

// Store holds the key -> locale -> text table. It is seeded at startup
// and editable at runtime through the admin API.
type Store struct {
	mu sync.RWMutex
	m  map[string]domain.LocalizedText
}

func NewStore(seed map[string]domain.LocalizedText) *Store {
	m := make(map[string]domain.LocalizedText, len(seed))
	for k, bag := range seed {
		cp := make(domain.LocalizedText, len(bag))
		for loc, s := range bag {
			cp[loc] = s
		}
		m[k] = cp
	}
	return &Store{m: m}
}

// T looks a key up in the requested locale, falling back to the
// reference locale, then to the raw key.
func (s *Store) T(loc domain.Locale, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if bag, ok := s.m[key]; ok {
		if v := bag.Resolve(loc); v != "" {
			return v
		}
	}
	return key
}

// Localize resolves a per-locale text bag carried on an entity.
func (s *Store) Localize(bag domain.LocalizedText, loc domain.Locale) string {
	return bag.Resolve(loc)
}

// Set upserts one translation. An empty text removes the locale entry.
func (s *Store) Set(key string, loc domain.Locale, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bag, ok := s.m[key]
	if !ok {
		bag = domain.LocalizedText{}
		s.m[key] = bag
	}
	if text == "" {
		delete(bag, loc)
		return
	}
	bag[loc] = text
}

// Keys returns all known translation keys, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a deep copy of the whole table for the admin editor.
func (s *Store) Snapshot() map[string]domain.LocalizedText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.LocalizedText, len(s.m))
	for k, bag := range s.m {
		cp := make(domain.LocalizedText, len(bag))
		for loc, v := range bag {
			cp[loc] = v
		}
		out[k] = cp
	}
	return out
}
