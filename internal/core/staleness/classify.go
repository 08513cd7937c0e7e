// Package staleness classifies joined contacts as stale or active against a
// cutoff derived from a lookback window.
package staleness

import (
	"fmt"
	"time"

	"github.com/example/dormant/internal/core/roster"
)

// Window is the lookback policy. Months are calendar months.
type Window struct {
	Months int
	Days   int
}

// DefaultWindow is three calendar months.
func DefaultWindow() Window {
	return Window{Months: 3}
}

// Validate rejects negative or empty windows.
func (w Window) Validate() error {
	if w.Months < 0 || w.Days < 0 {
		return fmt.Errorf("window must not be negative (months=%d, days=%d)", w.Months, w.Days)
	}
	if w.Months == 0 && w.Days == 0 {
		return fmt.Errorf("window must span at least one day")
	}
	return nil
}

// String renders the window for humans, e.g. "3 months" or "1 month 10 days".
func (w Window) String() string {
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	switch {
	case w.Months > 0 && w.Days > 0:
		return plural(w.Months, "month") + " " + plural(w.Days, "day")
	case w.Months > 0:
		return plural(w.Months, "month")
	default:
		return plural(w.Days, "day")
	}
}

// Cutoff returns now minus the window in epoch milliseconds.
// Months are subtracted from the calendar month with the day clamped to the
// target month's length (May 31 - 3 months = Feb 28/29), then days are
// subtracted. Calculation happens in now's location.
func (w Window) Cutoff(now time.Time) int64 {
	return subtractMonths(now, w.Months).AddDate(0, 0, -w.Days).UnixMilli()
}

func subtractMonths(t time.Time, months int) time.Time {
	if months == 0 {
		return t
	}
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	// Month arithmetic on the first of the month never overflows.
	first := time.Date(y, m-time.Month(months), 1, hh, mm, ss, t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Classified is the terminal result for one contact.
type Classified struct {
	Contact         roster.Contact
	LastInteraction int64
	HasInteraction  bool
	IsStale         bool
	IdleDays        int
}

// Classify marks each contact stale iff it has no interaction or its last
// interaction is strictly before cutoff. Roster order is preserved.
// now and cutoff are epoch milliseconds and are not validated.
func Classify(joined []roster.Joined, cutoff, now int64) []Classified {
	out := make([]Classified, 0, len(joined))
	for _, j := range joined {
		c := Classified{
			Contact:         j.Contact,
			LastInteraction: j.LastInteraction,
			HasInteraction:  j.HasInteraction,
			IsStale:         !j.HasInteraction || j.LastInteraction < cutoff,
		}
		if j.HasInteraction && now > j.LastInteraction {
			c.IdleDays = int((now - j.LastInteraction) / int64(24*time.Hour/time.Millisecond))
		}
		out = append(out, c)
	}
	return out
}

// Summary counts a classification run.
type Summary struct {
	Total          int
	Stale          int
	Active         int
	NeverContacted int
}

// Summarize tallies classified contacts.
func Summarize(classified []Classified) Summary {
	s := Summary{Total: len(classified)}
	for _, c := range classified {
		if c.IsStale {
			s.Stale++
		} else {
			s.Active++
		}
		if !c.HasInteraction {
			s.NeverContacted++
		}
	}
	return s
}
