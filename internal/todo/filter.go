package todo

import (
	"regexp"
	"time"
)

// Filter selects which items a scan reports. The zero value keeps everything.
type Filter struct {
	Owner    string         // keep only items owned by this name
	NotOwner string         // drop items owned by this name
	Meeting  *regexp.Regexp // keep only meetings whose id matches
	Overdue  bool           // keep only items past their due date
	Now      time.Time      // reference time for Overdue; zero means time.Now()
}

// Match reports whether the item passes every configured predicate.
func (f Filter) Match(it Item) bool {
	if f.Owner != "" && !it.HasOwner(f.Owner) {
		return false
	}
	if f.NotOwner != "" && it.HasOwner(f.NotOwner) {
		return false
	}
	if f.Meeting != nil && !f.Meeting.MatchString(it.Meeting) {
		return false
	}
	if f.Overdue {
		now := f.Now
		if now.IsZero() {
			now = time.Now()
		}
		if !it.Overdue(now) {
			return false
		}
	}
	return true
}
