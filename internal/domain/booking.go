package domain

import "strconv"

// PartySize is the shared number-of-people selection. Zero means no
// selection was made yet.
type PartySize int

// LargeGroup is the distinguished selection meaning "more people than
// the standard dropdown offers". Its wire value is 99 for query-string
// compatibility; code should only ever compare via IsLargeGroup.
const LargeGroup PartySize = 99

func (p PartySize) IsLargeGroup() bool { return p == LargeGroup }

// Concrete reports whether p is a real, priceable head count.
func (p PartySize) Concrete() bool { return p > 0 && !p.IsLargeGroup() }

func (p PartySize) String() string { return strconv.Itoa(int(p)) }

// ParsePartySize reads the query-string form; empty or malformed input
// yields zero ("unset").
func ParsePartySize(s string) PartySize {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return PartySize(n)
}
