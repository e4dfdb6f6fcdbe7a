// Package report turns extracted journal intervals into an invoice and
// renders it as plain text, a table, or JSON.
package report

import (
	"errors"
	"time"

	"notework/internal/journal"
	"notework/pkg/timeutil"
)

// DefaultRate is the hourly billing rate used when none is configured.
const DefaultRate = 150.00

// ErrNoIntervals reports that filtering left nothing to invoice.
var ErrNoIntervals = errors.New("no intervals in range")

// Invoice totals a set of billable intervals. PeriodStart and PeriodEnd are
// the first interval's start and the last interval's end.
type Invoice struct {
	Intervals   []journal.Interval
	Rate        float64
	TotalHours  float64
	Total       float64
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Filter keeps intervals whose end date falls inside the inclusive day range.
// A zero bound is open.
func Filter(intervals []journal.Interval, from, to time.Time) []journal.Interval {
	var out []journal.Interval
	for _, iv := range intervals {
		day := iv.Day()
		if !from.IsZero() && day.Before(timeutil.DayOf(from)) {
			continue
		}
		if !to.IsZero() && day.After(timeutil.DayOf(to)) {
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Build sums the intervals into an invoice at the given hourly rate.
func Build(intervals []journal.Interval, rate float64) (*Invoice, error) {
	if len(intervals) == 0 {
		return nil, ErrNoIntervals
	}
	inv := &Invoice{
		Intervals:   intervals,
		Rate:        rate,
		PeriodStart: intervals[0].Start,
		PeriodEnd:   intervals[len(intervals)-1].End,
	}
	for _, iv := range intervals {
		inv.TotalHours += iv.Hours()
	}
	inv.Total = inv.TotalHours * rate
	return inv, nil
}
