package generate

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Anomaly injection rates. The key anomalies are deliberately rare so that
// a generated data set still looks plausible at a glance.
const (
	skipKeyProbability       = 0.10
	duplicateKeyProbability  = 0.05
	nonWorkdayProbability    = 0.10
	arithmeticErrProbability = 0.10
)

// keySequence issues primary key values, optionally injecting gaps and
// duplicates into the sequence.
type keySequence struct {
	rng  *rand.Rand
	skip bool
	dup  bool
	next int
	prev int
}

func newKeySequence(rng *rand.Rand, skip, dup bool) *keySequence {
	return &keySequence{rng: rng, skip: skip, dup: dup, next: 1}
}

// Next returns the following key. With duplicates on it occasionally
// re-issues the previous key without advancing; with skips on it
// occasionally jumps the sequence forward by two.
func (k *keySequence) Next() int {
	if k.dup && k.prev != 0 && k.rng.Float64() < duplicateKeyProbability {
		return k.prev
	}

	id := k.next
	k.next++
	if k.skip && k.rng.Float64() < skipKeyProbability {
		k.next++
	}

	k.prev = id
	return id
}

// Workday policy codes for invoice dates.
const (
	WorkdaysWeekdays = "weekdays"
	WorkdaysMonSat   = "monsat"
	WorkdaysAllWeek  = "allweek"
)

func workday(day time.Weekday, policy string) bool {
	switch policy {
	case WorkdaysMonSat:
		return day != time.Sunday
	case WorkdaysAllWeek:
		return true
	default:
		return day != time.Saturday && day != time.Sunday
	}
}

// rollToWorkday moves a date forward to the next day the policy allows.
func rollToWorkday(t time.Time, policy string) time.Time {
	for !workday(t.Weekday(), policy) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// perturbAmount shifts a money amount by a random cent value between 0.01
// and 0.99, in either direction. Used for the arithmetic-errors anomaly.
func perturbAmount(rng *rand.Rand, amount decimal.Decimal) decimal.Decimal {
	cents := int64(1 + rng.Intn(99))
	if rng.Intn(2) == 0 {
		cents = -cents
	}
	return amount.Add(decimal.New(cents, -2))
}
