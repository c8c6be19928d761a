package stoppage

import (
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/timeline"
)

const secondsPerMinute = 60

// Ledger owns the recorded stoppage events for one match and answers
// aggregate queries over them. It never mutates its input.
//
// Sums are taken over raw durations without deduplicating overlapping
// entries. Stoppages are operator-recorded and disjoint in practice,
// and the displayed added-time figures are calibrated to the plain
// sum, so overlaps are tolerated rather than corrected.
type Ledger struct {
	events []Event
}

func NewLedger(events []Event) *Ledger {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.DurationSeconds < 0 {
			e.DurationSeconds = 0
		}
		if e.StartSecond < 0 {
			e.StartSecond = 0
		}
		out = append(out, e)
	}
	return &Ledger{events: out}
}

func (l *Ledger) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func (l *Ledger) TotalByPeriod(p period.Period) int {
	total := 0
	for _, e := range l.events {
		if e.Period == p {
			total += e.DurationSeconds
		}
	}
	return total
}

func (l *Ledger) Total() int {
	total := 0
	for _, e := range l.events {
		total += e.DurationSeconds
	}
	return total
}

func (l *Ledger) TotalByType(t Type) int {
	total := 0
	for _, e := range l.events {
		if e.Type == t {
			total += e.DurationSeconds
		}
	}
	return total
}

// Count reports how many stoppages of the given type were recorded.
// An empty team counts all sides.
func (l *Ledger) Count(t Type, team Team) int {
	count := 0
	for _, e := range l.events {
		if e.Type != t {
			continue
		}
		if team != TeamNone && e.Beneficiary != team {
			continue
		}
		count++
	}
	return count
}

// SuggestedAddedTime is the period's stoppage total rounded up to the
// next whole minute, in seconds. No discount or cap is applied.
func (l *Ledger) SuggestedAddedTime(p period.Period) int {
	total := l.TotalByPeriod(p)
	if total == 0 {
		return 0
	}
	minutes := (total + secondsPerMinute - 1) / secondsPerMinute
	return minutes * secondsPerMinute
}

func (l *Ledger) SuggestedAddedMinutes(p period.Period) int {
	return l.SuggestedAddedTime(p) / secondsPerMinute
}

// Intervals returns the stoppage windows of one period, used to work
// out how much stoppage time fell inside each player's on-field
// intervals.
func (l *Ledger) Intervals(p period.Period) []timeline.Interval {
	out := make([]timeline.Interval, 0, len(l.events))
	for _, e := range l.events {
		if e.Period != p {
			continue
		}
		out = append(out, e.Interval())
	}
	return out
}
