package substitution

import (
	"sort"

	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/timeline"
)

// PlayingTime is one row of the per-player playing-time table.
type PlayingTime struct {
	PlayerID         string
	PlayerName       string
	ShirtNumber      int
	Position         roster.Position
	IsStarter        bool
	TotalSeconds     int
	EffectiveSeconds int
}

// Reconstructor rebuilds, from the starting roster and the ordered
// substitution events, the on-field intervals of every player. It is a
// pure projection: build once from a snapshot, query as often as
// needed.
//
// The replay is deliberately forgiving. A substitution whose outgoing
// player is not on the field skips the close but still brings the
// incoming player on; an incoming player who is already on the field
// is left untouched, so no player ever holds two open intervals at
// once. Both cases come from live operator corrections and must not
// abort the match computation.
type Reconstructor struct {
	rows      []*playerState
	byID      map[string]*playerState
	intervals map[period.Period]map[string][]timeline.Interval
}

type playerState struct {
	entry    roster.Entry
	rostered bool
}

// Reconstruct replays the substitution events over the periods that
// have started. The on-field set carries across period boundaries:
// whoever is on the field when a period ends re-opens at second zero
// of the next started period. liveElapsed bounds the currently running
// period, if any.
func Reconstruct(entries []roster.Entry, events []Event, records []period.Record, liveElapsed int) *Reconstructor {
	r := &Reconstructor{
		byID:      make(map[string]*playerState, len(entries)),
		intervals: make(map[period.Period]map[string][]timeline.Interval),
	}
	for _, entry := range entries {
		r.addPlayer(entry, true)
	}

	onField := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsStarter() {
			onField[entry.PlayerID] = true
		}
	}

	recordByPeriod := make(map[period.Period]period.Record, len(records))
	for _, rec := range records {
		recordByPeriod[rec.Period] = rec
	}

	for _, p := range period.Ordered {
		rec, ok := recordByPeriod[p]
		if !ok || rec.State == period.StateNotStarted {
			continue
		}
		r.replayPeriod(p, rec.ObservedAt(liveElapsed), sortedPeriodEvents(events, p), onField)
	}

	return r
}

func (r *Reconstructor) replayPeriod(p period.Period, endSecond int, events []Event, onField map[string]bool) {
	open := make(map[string]int, len(onField))
	for playerID := range onField {
		open[playerID] = 0
	}

	for _, e := range events {
		second := e.Second
		if second < 0 {
			second = 0
		}

		if e.PlayerOutID != "" {
			if startedAt, ok := open[e.PlayerOutID]; ok {
				r.record(p, e.PlayerOutID, startedAt, second)
				delete(open, e.PlayerOutID)
				delete(onField, e.PlayerOutID)
			}
			r.noteName(e.PlayerOutID, e.PlayerOutName)
		}

		if e.PlayerInID != "" {
			if _, alreadyOn := open[e.PlayerInID]; !alreadyOn {
				open[e.PlayerInID] = second
				onField[e.PlayerInID] = true
			}
			r.noteName(e.PlayerInID, e.PlayerInName)
		}
	}

	for playerID, startedAt := range open {
		r.record(p, playerID, startedAt, endSecond)
	}
}

func (r *Reconstructor) record(p period.Period, playerID string, start, end int) {
	byPlayer, ok := r.intervals[p]
	if !ok {
		byPlayer = make(map[string][]timeline.Interval)
		r.intervals[p] = byPlayer
	}
	byPlayer[playerID] = append(byPlayer[playerID], timeline.Closed(start, end))
}

// noteName registers a player seen only in the event stream, such as a
// bench player missing from the recorded roster.
func (r *Reconstructor) noteName(playerID, playerName string) {
	if playerID == "" {
		return
	}
	if state, ok := r.byID[playerID]; ok {
		if state.entry.PlayerName == "" {
			state.entry.PlayerName = playerName
		}
		return
	}
	r.addPlayer(roster.Entry{PlayerID: playerID, PlayerName: playerName}, false)
}

func (r *Reconstructor) addPlayer(entry roster.Entry, rostered bool) {
	if _, ok := r.byID[entry.PlayerID]; ok {
		return
	}
	state := &playerState{entry: entry, rostered: rostered}
	r.rows = append(r.rows, state)
	r.byID[entry.PlayerID] = state
}

// IntervalsFor returns the closed on-field intervals of one player in
// one period, in replay order.
func (r *Reconstructor) IntervalsFor(p period.Period, playerID string) []timeline.Interval {
	byPlayer := r.intervals[p]
	out := make([]timeline.Interval, len(byPlayer[playerID]))
	copy(out, byPlayer[playerID])
	return out
}

// TotalSeconds is a player's raw on-field time summed over all periods.
func (r *Reconstructor) TotalSeconds(playerID string) int {
	total := 0
	for _, byPlayer := range r.intervals {
		for _, iv := range byPlayer[playerID] {
			total += iv.Duration(0)
		}
	}
	return total
}

// EffectiveSeconds subtracts from a player's on-field time the
// stoppage time that fell inside their intervals, period by period.
func (r *Reconstructor) EffectiveSeconds(playerID string, ledger *stoppage.Ledger) int {
	total := r.TotalSeconds(playerID)
	if ledger == nil {
		return total
	}

	lost := 0
	for p, byPlayer := range r.intervals {
		playerIntervals := byPlayer[playerID]
		if len(playerIntervals) == 0 {
			continue
		}
		for _, stop := range ledger.Intervals(p) {
			for _, iv := range playerIntervals {
				lost += iv.OverlapSeconds(stop, 0)
			}
		}
	}

	effective := total - lost
	if effective < 0 {
		effective = 0
	}
	return effective
}

// PlayingTimes builds the playing-time table, ordered by shirt number
// then name. Bench players who never entered stay in the table with
// zero time unless playedOnly is set.
func (r *Reconstructor) PlayingTimes(ledger *stoppage.Ledger, playedOnly bool) []PlayingTime {
	out := make([]PlayingTime, 0, len(r.rows))
	for _, state := range r.rows {
		total := r.TotalSeconds(state.entry.PlayerID)
		if playedOnly && total == 0 {
			continue
		}
		out = append(out, PlayingTime{
			PlayerID:         state.entry.PlayerID,
			PlayerName:       state.entry.PlayerName,
			ShirtNumber:      state.entry.ShirtNumber,
			Position:         state.entry.Position,
			IsStarter:        state.rostered && state.entry.IsStarter(),
			TotalSeconds:     total,
			EffectiveSeconds: r.EffectiveSeconds(state.entry.PlayerID, ledger),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ShirtNumber != out[j].ShirtNumber {
			return out[i].ShirtNumber < out[j].ShirtNumber
		}
		return out[i].PlayerName < out[j].PlayerName
	})

	return out
}

func sortedPeriodEvents(events []Event, p period.Period) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Period == p {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Second < out[j].Second
	})
	return out
}
