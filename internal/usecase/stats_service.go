package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/match"
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
)

// StatsService is the read side: a pure projection of a match snapshot
// into time statistics. It never mutates the snapshot, so recomputing
// any aggregate from the same event lists yields identical results.
type StatsService struct {
	matchRepo match.Repository
}

func NewStatsService(matchRepo match.Repository) *StatsService {
	return &StatsService{matchRepo: matchRepo}
}

// ReportOptions tune one report computation. LiveElapsedSeconds is the
// live clock of the currently running period, supplied by the caller
// and never stored.
type ReportOptions struct {
	LiveElapsedSeconds int
	PlayedOnly         bool
}

type PeriodBreakdownRow struct {
	Period                period.Period
	State                 period.State
	RegulationSeconds     int
	ObservedSeconds       int
	StoppageSeconds       int
	EffectiveSeconds      int
	SuggestedAddedMinutes int
}

type StoppageBreakdownRow struct {
	Type         stoppage.Type
	Count        int
	HomeCount    int
	AwayCount    int
	TotalSeconds int
}

type MatchReport struct {
	MatchID          string
	HomeTeam         string
	AwayTeam         string
	Finished         bool
	HomeGoals        int
	AwayGoals        int
	TotalSeconds     int
	EffectiveSeconds int
	StoppageSeconds  int
	EffectivePercent float64
	Periods          []PeriodBreakdownRow
	Stoppages        []StoppageBreakdownRow
	Cards            card.Tally
	Players          []substitution.PlayingTime
}

func (s *StatsService) Report(ctx context.Context, matchID string, opts ReportOptions) (MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Report")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return MatchReport{}, err
	}
	return BuildReport(m, opts), nil
}

func (s *StatsService) PlayerPlayingTimes(ctx context.Context, matchID string, opts ReportOptions) ([]substitution.PlayingTime, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerPlayingTimes")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	ledger := stoppage.NewLedger(m.Stoppages)
	rec := substitution.Reconstruct(m.Roster, m.Substitutions, m.Periods, opts.LiveElapsedSeconds)
	return rec.PlayingTimes(ledger, opts.PlayedOnly), nil
}

func (s *StatsService) StoppageBreakdown(ctx context.Context, matchID string) ([]StoppageBreakdownRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.StoppageBreakdown")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return stoppageBreakdown(stoppage.NewLedger(m.Stoppages)), nil
}

// ListReports computes the report of every stored match. Matches are
// independent pure computations, so they fan out on a bounded pool.
func (s *StatsService) ListReports(ctx context.Context, opts ReportOptions) ([]MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListReports")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	p := pool.NewWithResults[MatchReport]().WithMaxGoroutines(4)
	for _, m := range matches {
		p.Go(func() MatchReport {
			return BuildReport(m, opts)
		})
	}
	return p.Wait(), nil
}

func (s *StatsService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return m, nil
}

// BuildReport derives the full statistics view from one match
// snapshot. It is the composition point of the ledger, the period
// tracker and the substitution reconstructor.
func BuildReport(m match.Match, opts ReportOptions) MatchReport {
	ledger := stoppage.NewLedger(m.Stoppages)
	tracker := period.NewTracker(m.Periods, ledger)
	rec := substitution.Reconstruct(m.Roster, m.Substitutions, m.Periods, opts.LiveElapsedSeconds)

	homeGoals, awayGoals := goal.Score(m.Goals)

	report := MatchReport{
		MatchID:          m.ID,
		HomeTeam:         m.HomeTeam,
		AwayTeam:         m.AwayTeam,
		Finished:         m.Finished,
		HomeGoals:        homeGoals,
		AwayGoals:        awayGoals,
		TotalSeconds:     tracker.TotalMatchDuration(opts.LiveElapsedSeconds),
		EffectiveSeconds: tracker.TotalEffectivePlayTime(opts.LiveElapsedSeconds),
		StoppageSeconds:  ledger.Total(),
		EffectivePercent: tracker.EffectivePercentage(opts.LiveElapsedSeconds),
		Stoppages:        stoppageBreakdown(ledger),
		Cards:            card.TallyOf(m.Cards),
		Players:          rec.PlayingTimes(ledger, opts.PlayedOnly),
	}

	for _, r := range tracker.Records() {
		report.Periods = append(report.Periods, PeriodBreakdownRow{
			Period:                r.Period,
			State:                 r.State,
			RegulationSeconds:     r.RegulationSeconds,
			ObservedSeconds:       tracker.ObservedDuration(r.Period, opts.LiveElapsedSeconds),
			StoppageSeconds:       ledger.TotalByPeriod(r.Period),
			EffectiveSeconds:      tracker.EffectivePlayTime(r.Period, opts.LiveElapsedSeconds),
			SuggestedAddedMinutes: ledger.SuggestedAddedMinutes(r.Period),
		})
	}

	return report
}

func stoppageBreakdown(ledger *stoppage.Ledger) []StoppageBreakdownRow {
	out := make([]StoppageBreakdownRow, 0, len(stoppage.AllTypes))
	for _, t := range stoppage.AllTypes {
		row := StoppageBreakdownRow{
			Type:         t,
			Count:        ledger.Count(t, stoppage.TeamNone),
			HomeCount:    ledger.Count(t, stoppage.TeamHome),
			AwayCount:    ledger.Count(t, stoppage.TeamAway),
			TotalSeconds: ledger.TotalByType(t),
		}
		if row.Count == 0 && row.TotalSeconds == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}
