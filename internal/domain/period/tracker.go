package period

// StoppageTotals is the slice of the stoppage ledger the tracker needs.
type StoppageTotals interface {
	TotalByPeriod(p Period) int
}

// Tracker derives effective play time per period from the observed
// durations and the recorded stoppage time. All queries take the live
// elapsed seconds of the currently running period, if any; ended and
// not-started periods ignore it.
type Tracker struct {
	records  []Record
	stoppage StoppageTotals
}

func NewTracker(records []Record, stoppage StoppageTotals) *Tracker {
	ordered := make([]Record, 0, len(records))
	for _, p := range Ordered {
		for _, r := range records {
			if r.Period == p {
				ordered = append(ordered, r)
				break
			}
		}
	}
	return &Tracker{records: ordered, stoppage: stoppage}
}

func (t *Tracker) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

func (t *Tracker) ObservedDuration(p Period, liveElapsed int) int {
	for _, r := range t.records {
		if r.Period == p {
			return r.ObservedAt(liveElapsed)
		}
	}
	return 0
}

// EffectivePlayTime is observed duration minus recorded stoppage time,
// floored at zero. An operator can record more stoppage than the
// period lasted; the floor absorbs that instead of going negative.
func (t *Tracker) EffectivePlayTime(p Period, liveElapsed int) int {
	observed := t.ObservedDuration(p, liveElapsed)
	effective := observed - t.stoppageFor(p)
	return clampSeconds(effective)
}

func (t *Tracker) TotalEffectivePlayTime(liveElapsed int) int {
	total := 0
	for _, r := range t.records {
		total += t.EffectivePlayTime(r.Period, liveElapsed)
	}
	return total
}

func (t *Tracker) TotalMatchDuration(liveElapsed int) int {
	total := 0
	for _, r := range t.records {
		total += r.ObservedAt(liveElapsed)
	}
	return total
}

// EffectivePercentage is 100 * effective / total, 0 when nothing has
// been played yet.
func (t *Tracker) EffectivePercentage(liveElapsed int) float64 {
	total := t.TotalMatchDuration(liveElapsed)
	if total == 0 {
		return 0
	}
	return 100 * float64(t.TotalEffectivePlayTime(liveElapsed)) / float64(total)
}

func (t *Tracker) stoppageFor(p Period) int {
	if t.stoppage == nil {
		return 0
	}
	return clampSeconds(t.stoppage.TotalByPeriod(p))
}

func clampSeconds(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
