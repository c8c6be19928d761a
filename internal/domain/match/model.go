package match

import (
	"fmt"
	"time"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
)

// Match is one tracked match: its periods, roster and raw event lists.
// The statistics engine treats a Match value as an immutable snapshot;
// writes go through the recorder, which serializes them per match.
type Match struct {
	ID         string
	HomeTeam   string
	AwayTeam   string
	KickoffAt  time.Time
	Finished   bool
	FinishedAt *time.Time

	Periods       []period.Record
	Roster        []roster.Entry
	Stoppages     []stoppage.Event
	Substitutions []substitution.Event
	Cards         []card.Event
	Goals         []goal.Event
}

func New(id, homeTeam, awayTeam string, kickoffAt time.Time) Match {
	periods := make([]period.Record, 0, len(period.Ordered))
	for _, p := range period.Ordered {
		periods = append(periods, period.NewRecord(p))
	}
	return Match{
		ID:        id,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		KickoffAt: kickoffAt,
		Periods:   periods,
	}
}

func (m Match) PeriodRecord(p period.Period) (period.Record, bool) {
	for _, rec := range m.Periods {
		if rec.Period == p {
			return rec, true
		}
	}
	return period.Record{}, false
}

// RunningPeriod returns the period currently in play, if any.
func (m Match) RunningPeriod() (period.Period, bool) {
	for _, rec := range m.Periods {
		if rec.State == period.StateRunning {
			return rec.Period, true
		}
	}
	return "", false
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeam == "" {
		return fmt.Errorf("home team is required")
	}
	if m.AwayTeam == "" {
		return fmt.Errorf("away team is required")
	}
	seen := make(map[string]struct{}, len(m.Roster))
	for _, entry := range m.Roster {
		if err := entry.Validate(); err != nil {
			return err
		}
		if _, dup := seen[entry.PlayerID]; dup {
			return fmt.Errorf("duplicate roster player: %s", entry.PlayerID)
		}
		seen[entry.PlayerID] = struct{}{}
	}
	return nil
}
