package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"danube_tours/internal/domain"
)

// CookieName is the fixed key the locale preference is stored under.
const CookieName = "locale"

// Locales offered to the matcher. Montenegrin ("me") is not a
// registered subtag — the parser rejects the whole header when it
// appears — so headers are matched token by token first and the
// matcher only sees what that pass could not place.
var matchLocales = []domain.Locale{
	domain.LocaleEN, domain.LocaleSR, domain.LocaleHR, domain.LocaleRU,
	domain.LocaleDE, domain.LocaleUK, domain.LocaleTR, domain.LocaleES,
	domain.LocaleZhHK, domain.LocaleZhCN, domain.LocaleJA, domain.LocaleHI,
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(matchLocales))
	for i, l := range matchLocales {
		tags[i] = language.MustParse(string(l))
	}
	matcher = language.NewMatcher(tags)
}

// Resolve picks the active display language: a stored preference wins,
// then the best Accept-Language match, then the reference locale.
func Resolve(stored, acceptLanguage string) domain.Locale {
	if loc, ok := domain.ParseLocale(stored); ok {
		return loc
	}
	// First pass over the raw header tokens, in order. This keeps
	// unregistered codes like "me" working and survives headers the
	// strict parser rejects outright.
	for _, raw := range headerTags(acceptLanguage) {
		if loc, ok := closedSetMatch(raw); ok {
			return loc
		}
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLocale
	}
	if _, idx, conf := matcher.Match(tags...); conf > language.No {
		return matchLocales[idx]
	}
	return domain.DefaultLocale
}

// headerTags splits an Accept-Language header into its language tokens,
// dropping quality weights. Header order stands in for q-ordering; real
// clients send tags highest-quality first.
func headerTags(header string) []string {
	parts := strings.Split(header, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		tag, _, _ := strings.Cut(p, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// closedSetMatch maps a single language tag onto the supported set:
// exact code first, then the base language, with sr-Latn folded into sr
// and bare zh onto zh-CN. Tags compare case-insensitively per RFC 5646.
func closedSetMatch(raw string) (domain.Locale, bool) {
	if loc, ok := domain.ParseLocale(canonTag(raw)); ok {
		return loc, true
	}
	base, _, _ := strings.Cut(strings.ToLower(raw), "-")
	switch base {
	case "sr":
		return domain.LocaleSR, true
	case "zh":
		return domain.LocaleZhCN, true
	}
	return domain.ParseLocale(base)
}

// canonTag lowercases the language subtag and uppercases the region,
// the shape the supported-locale codes use ("zh-hk" -> "zh-HK").
func canonTag(raw string) string {
	base, rest, found := strings.Cut(raw, "-")
	if !found {
		return strings.ToLower(base)
	}
	return strings.ToLower(base) + "-" + strings.ToUpper(rest)
}
