package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"danube_tours/internal/domain"
	"danube_tours/internal/i18n"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		accept string
		want   domain.Locale
	}{
		{"stored wins over header", "ru", "de-DE,de;q=0.9", domain.LocaleRU},
		{"invalid stored falls to header", "klingon", "de-DE,de;q=0.9", domain.LocaleDE},
		{"exact supported code", "", "sr", domain.LocaleSR},
		{"latin serbian folds to sr", "", "sr-Latn-RS", domain.LocaleSR},
		{"bare chinese maps to simplified", "", "zh", domain.LocaleZhCN},
		{"hong kong chinese stays traditional", "", "zh-HK", domain.LocaleZhHK},
		{"regional variant strips to base", "", "de-AT", domain.LocaleDE},
		{"quality ordering respected", "", "fr;q=1.0,tr;q=0.8", domain.LocaleTR},
		{"unsupported language defaults", "", "fr-FR", domain.DefaultLocale},
		{"empty everything defaults", "", "", domain.DefaultLocale},
		{"malformed header defaults", "", ";;;", domain.DefaultLocale},
		{"montenegrin stored value", "me", "", domain.LocaleME},
		{"montenegrin header", "", "me", domain.LocaleME},
		{"montenegrin with fallbacks", "", "me, sr;q=0.5", domain.LocaleME},
		{"unknown first tag keeps later ones usable", "", "xx, sr;q=0.5", domain.LocaleSR},
		{"montenegrin regional variant", "", "me-ME", domain.LocaleME},
		{"case-insensitive header tag", "", "ZH-hk", domain.LocaleZhHK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Resolve(tt.stored, tt.accept))
		})
	}
}
