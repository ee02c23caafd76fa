// Package ordernum produces the human-readable order identifiers in the
// form ORD-YYYYMMDD-NNNN, where NNNN is a zero-padded counter scoped to
// one calendar day. The day boundary is computed in UTC.
//
// The functions here are pure; serializing concurrent allocations is the
// caller's job (the checkout service scans the day's numbers under a row
// lock inside the order-insert transaction, with a unique index on
// order_number as backstop).
package ordernum

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const prefix = "ORD"

// DayPrefix returns the shared prefix of every order number allocated on
// the UTC day of t, e.g. "ORD-20250917-".
func DayPrefix(t time.Time) string {
	return fmt.Sprintf("%s-%s-", prefix, t.UTC().Format("20060102"))
}

// Next computes the next number for the UTC day of now given the numbers
// already allocated that day. Numbers with a missing or unparseable
// suffix contribute 0 to the running max instead of failing the
// allocation.
func Next(now time.Time, existing []string) string {
	day := DayPrefix(now)

	max := 0
	for _, number := range existing {
		if n := suffixValue(number, day); n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%04d", day, max+1)
}

func suffixValue(number, dayPrefix string) int {
	rest, ok := strings.CutPrefix(number, dayPrefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
