package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is the ephemeral in-memory result of one successful upstream
// fetch, before it is applied to the durable currency store. The store
// remains the source of truth; a snapshot only exists for the duration of a
// refresh run.
type RateSnapshot struct {
	Base      string
	Rates     map[string]decimal.Decimal
	FetchedAt time.Time
}

// Rate returns the fetched rate for code and whether the payload contained it.
func (s *RateSnapshot) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := s.Rates[code]
	return rate, ok
}

// Codes returns all fetched currency codes sorted alphabetically, so a
// refresh run applies rates in a deterministic order.
func (s *RateSnapshot) Codes() []string {
	codes := make([]string, 0, len(s.Rates))
	for code := range s.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Empty reports whether the snapshot carries nothing to apply.
func (s *RateSnapshot) Empty() bool {
	return len(s.Rates) == 0
}
