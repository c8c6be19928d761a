package memory

import (
	"fmt"
	"time"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/match"
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
)

const MatchIDSeedDerby = "match-derby-2026-03"

// SeedMatches returns one finished demo match: a full 90 minutes with
// stoppages, two substitutions, cards and goals. It backs local runs
// and usecase tests.
func SeedMatches() []match.Match {
	finishedAt := time.Date(2026, 3, 14, 16, 52, 0, 0, time.UTC)

	m := match.Match{
		ID:         MatchIDSeedDerby,
		HomeTeam:   "FC Moulin",
		AwayTeam:   "AS Riviere",
		KickoffAt:  time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Finished:   true,
		FinishedAt: &finishedAt,
		Periods: []period.Record{
			{Period: period.FirstHalf, State: period.StateEnded, RegulationSeconds: 2700, ObservedSeconds: 2760},
			{Period: period.SecondHalf, State: period.StateEnded, RegulationSeconds: 2700, ObservedSeconds: 2880},
			period.NewRecord(period.ExtraFirst),
			period.NewRecord(period.ExtraSecond),
		},
		Roster: seedRoster(),
		Stoppages: []stoppage.Event{
			{ID: "stp-1", Period: period.FirstHalf, Type: stoppage.TypeInjury, Beneficiary: stoppage.TeamAway, StartSecond: 1020, DurationSeconds: 95},
			{ID: "stp-2", Period: period.FirstHalf, Type: stoppage.TypeVAR, StartSecond: 2400, DurationSeconds: 140},
			{ID: "stp-3", Period: period.SecondHalf, Type: stoppage.TypeSubstitution, Beneficiary: stoppage.TeamHome, StartSecond: 1210, DurationSeconds: 40},
			{ID: "stp-4", Period: period.SecondHalf, Type: stoppage.TypeMisconduct, Beneficiary: stoppage.TeamAway, StartSecond: 2100, DurationSeconds: 160},
		},
		Substitutions: []substitution.Event{
			{ID: "sub-1", Period: period.SecondHalf, Second: 1200, PlayerOutID: "derby-p08", PlayerOutName: "Hugo Marchal", PlayerInID: "derby-p12", PlayerInName: "Ilias Benali"},
			{ID: "sub-2", Period: period.SecondHalf, Second: 2250, PlayerOutID: "derby-p10", PlayerOutName: "Theo Lacroix", PlayerInID: "derby-p13", PlayerInName: "Marc Dubois"},
		},
		Cards: []card.Event{
			{ID: "crd-1", Period: period.FirstHalf, Second: 1980, PlayerID: "derby-p05", PlayerName: "Karim Said", Type: card.TypeYellow},
			{ID: "crd-2", Period: period.SecondHalf, Second: 2110, PlayerID: "derby-p02", PlayerName: "Jules Perrin", Type: card.TypeYellow, Served: true},
		},
		Goals: []goal.Event{
			{ID: "gl-1", Period: period.FirstHalf, Second: 1530, IsHome: true, PlayerName: "Theo Lacroix"},
			{ID: "gl-2", Period: period.SecondHalf, Second: 700, IsHome: false, PlayerName: "Remi Caron"},
			{ID: "gl-3", Period: period.SecondHalf, Second: 2600, IsHome: true, PlayerName: "Ilias Benali"},
		},
	}

	return []match.Match{m}
}

func seedRoster() []roster.Entry {
	names := []string{
		"Lucas Bernard", "Jules Perrin", "Noah Fabre", "Adam Rey", "Karim Said",
		"Louis Garnier", "Evan Morel", "Hugo Marchal", "Nathan Colin", "Theo Lacroix", "Sacha Lemoine",
	}
	positions := []roster.Position{
		roster.PositionGoalkeeper,
		roster.PositionDefender, roster.PositionDefender, roster.PositionDefender, roster.PositionDefender,
		roster.PositionMidfielder, roster.PositionMidfielder, roster.PositionMidfielder,
		roster.PositionForward, roster.PositionForward, roster.PositionForward,
	}

	entries := make([]roster.Entry, 0, 14)
	for i, name := range names {
		entries = append(entries, roster.Entry{
			PlayerID:    fmt.Sprintf("derby-p%02d", i+1),
			PlayerName:  name,
			ShirtNumber: i + 1,
			Position:    positions[i],
			Status:      roster.StatusStarter,
		})
	}

	bench := []struct {
		name     string
		position roster.Position
	}{
		{"Ilias Benali", roster.PositionMidfielder},
		{"Marc Dubois", roster.PositionForward},
		{"Yanis Roche", roster.PositionDefender},
	}
	for i, b := range bench {
		entries = append(entries, roster.Entry{
			PlayerID:    fmt.Sprintf("derby-p%02d", i+12),
			PlayerName:  b.name,
			ShirtNumber: i + 12,
			Position:    b.position,
			Status:      roster.StatusSubstitute,
		})
	}

	return entries
}
