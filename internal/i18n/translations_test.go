package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"danube_tours/internal/domain"
	"danube_tours/internal/i18n"
)

func seedStore() *i18n.Store {
	return i18n.NewStore(map[string]domain.LocalizedText{
		"greeting": {
			domain.LocaleEN: "Hello",
			domain.LocaleSR: "Zdravo",
		},
		"englishOnly": {
			domain.LocaleEN: "Only in English",
		},
	})
}

func TestT_FallbackChain(t *testing.T) {
	s := seedStore()

	assert.Equal(t, "Zdravo", s.T(domain.LocaleSR, "greeting"))
	// missing locale falls back to the reference locale
	assert.Equal(t, "Only in English", s.T(domain.LocaleSR, "englishOnly"))
	// unknown key falls back to the key itself
	assert.Equal(t, "missingKey", s.T(domain.LocaleEN, "missingKey"))
}

func TestSet_UpsertAndRemove(t *testing.T) {
	s := seedStore()

	s.Set("greeting", domain.LocaleDE, "Hallo")
	assert.Equal(t, "Hallo", s.T(domain.LocaleDE, "greeting"))

	// empty text removes the entry; lookup falls back to en again
	s.Set("greeting", domain.LocaleDE, "")
	assert.Equal(t, "Hello", s.T(domain.LocaleDE, "greeting"))

	s.Set("brandNew", domain.LocaleEN, "Fresh")
	assert.Equal(t, "Fresh", s.T(domain.LocaleEN, "brandNew"))
}

func TestNewStore_CopiesSeed(t *testing.T) {
	seed := map[string]domain.LocalizedText{
		"greeting": {domain.LocaleEN: "Hello"},
	}
	s := i18n.NewStore(seed)
	seed["greeting"][domain.LocaleEN] = "MUTATED"

	assert.Equal(t, "Hello", s.T(domain.LocaleEN, "greeting"))
}

func TestSnapshot_IsDetached(t *testing.T) {
	s := seedStore()
	snap := s.Snapshot()
	snap["greeting"][domain.LocaleEN] = "MUTATED"

	assert.Equal(t, "Hello", s.T(domain.LocaleEN, "greeting"))
}

func TestKeys_Sorted(t *testing.T) {
	s := seedStore()
	assert.Equal(t, []string{"englishOnly", "greeting"}, s.Keys())
}

func TestDefaultTranslations_EnglishComplete(t *testing.T) {
	for key, bag := range i18n.DefaultTranslations() {
		assert.NotEmpty(t, bag[domain.LocaleEN], "key %q has no reference text", key)
	}
}
