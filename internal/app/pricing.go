package app

import (
	"strconv"
	"strings"

	"danube_tours/internal/domain"
)

// ResolvePrice walks the tiers in authored order and returns the
// per-person price of the first tier whose inclusive range covers the
// party size. A false result is not an error: it means no tier covers
// the size and the group needs a custom quote. Callers are expected to
// gate size zero, sizes above the tour maximum and the large-group
// sentinel before asking for a price.
func ResolvePrice(size domain.PartySize, tiers []domain.PriceVariation) (int, bool) {
	n := int(size)
	for _, tier := range tiers {
		min, max, ok := parsePersonRange(tier.Persons)
		if !ok {
			continue
		}
		if n >= min && n <= max {
			return tier.Price, true
		}
	}
	return 0, false
}

// TotalPrice is per-person price times head count, defined only when a
// tier matches.
func TotalPrice(size domain.PartySize, tiers []domain.PriceVariation) (int, bool) {
	per, ok := ResolvePrice(size, tiers)
	if !ok {
		return 0, false
	}
	return per * int(size), true
}

// parsePersonRange reads "min-max" or a single value; malformed tiers
// are skipped rather than rejected, matching how the authoring UI has
// always treated them.
func parsePersonRange(s string) (min, max int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	max = min
	if len(parts) == 2 {
		max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, false
		}
	}
	return min, max, true
}
