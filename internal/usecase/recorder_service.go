package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/match"
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
	idgen "github.com/coachpad/matchtime/internal/platform/id"
	"github.com/coachpad/matchtime/internal/platform/logging"
)

// RecorderService owns writes during a live match: events are appended
// as they happen on the pitch, never mutated. Once a match is finished
// only the merge flow may add events. Negative seconds in incoming
// payloads are clamped to zero, matching the engine's read side.
type RecorderService struct {
	matchRepo match.Repository
	ids       idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewRecorderService(matchRepo match.Repository, ids idgen.Generator, logger *logging.Logger) *RecorderService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RecorderService{
		matchRepo: matchRepo,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

type CreateMatchInput struct {
	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time
	Roster    []roster.Entry
}

func (s *RecorderService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.CreateMatch")
	defer span.End()

	input.HomeTeam = strings.TrimSpace(input.HomeTeam)
	input.AwayTeam = strings.TrimSpace(input.AwayTeam)

	matchID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	m := match.New(matchID, input.HomeTeam, input.AwayTeam, input.KickoffAt)
	m.Roster = input.Roster
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Save(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	s.logger.Info(ctx, "match created",
		"match_id", m.ID,
		"home_team", m.HomeTeam,
		"away_team", m.AwayTeam,
		"roster_size", len(m.Roster),
	)
	return m, nil
}

// StartPeriod moves a period from not-started to running. Only one
// period may run at a time.
func (s *RecorderService) StartPeriod(ctx context.Context, matchID string, p period.Period) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.StartPeriod")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		if !p.IsValid() {
			return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, p)
		}
		if running, ok := m.RunningPeriod(); ok {
			return fmt.Errorf("%w: period %s is still running", ErrPeriodState, running)
		}
		for i, rec := range m.Periods {
			if rec.Period != p {
				continue
			}
			if rec.State != period.StateNotStarted {
				return fmt.Errorf("%w: period %s already %s", ErrPeriodState, p, rec.State)
			}
			m.Periods[i].State = period.StateRunning
			return nil
		}
		return fmt.Errorf("%w: period %s not tracked for match", ErrInvalidInput, p)
	})
}

// EndPeriod closes a running period and fixes its observed duration.
// The transition is one-way.
func (s *RecorderService) EndPeriod(ctx context.Context, matchID string, p period.Period, observedSeconds int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.EndPeriod")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		if observedSeconds < 0 {
			observedSeconds = 0
		}
		for i, rec := range m.Periods {
			if rec.Period != p {
				continue
			}
			if rec.State != period.StateRunning {
				return fmt.Errorf("%w: period %s is %s, not running", ErrPeriodState, p, rec.State)
			}
			m.Periods[i].State = period.StateEnded
			m.Periods[i].ObservedSeconds = observedSeconds
			return nil
		}
		return fmt.Errorf("%w: period %s not tracked for match", ErrInvalidInput, p)
	})
}

func (s *RecorderService) AppendStoppage(ctx context.Context, matchID string, e stoppage.Event) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.AppendStoppage")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		if !e.Period.IsValid() {
			return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, e.Period)
		}
		if !e.Type.IsValid() {
			return fmt.Errorf("%w: unknown stoppage type %q", ErrInvalidInput, e.Type)
		}
		if e.Beneficiary != stoppage.TeamNone && e.Beneficiary != stoppage.TeamHome && e.Beneficiary != stoppage.TeamAway {
			return fmt.Errorf("%w: unknown beneficiary %q", ErrInvalidInput, e.Beneficiary)
		}
		if err := s.assignID(&e.ID); err != nil {
			return err
		}
		if e.StartSecond < 0 {
			e.StartSecond = 0
		}
		if e.DurationSeconds < 0 {
			e.DurationSeconds = 0
		}
		m.Stoppages = append(m.Stoppages, e)
		return nil
	})
}

func (s *RecorderService) AppendSubstitution(ctx context.Context, matchID string, e substitution.Event) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.AppendSubstitution")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		if !e.Period.IsValid() {
			return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, e.Period)
		}
		if e.PlayerInID == "" && e.PlayerOutID == "" {
			return fmt.Errorf("%w: substitution needs at least one player reference", ErrInvalidInput)
		}
		if err := s.assignID(&e.ID); err != nil {
			return err
		}
		if e.Second < 0 {
			e.Second = 0
		}
		m.Substitutions = append(m.Substitutions, e)
		return nil
	})
}

func (s *RecorderService) RecordCard(ctx context.Context, matchID string, e card.Event) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.RecordCard")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		if !e.Period.IsValid() {
			return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, e.Period)
		}
		if !e.Type.IsValid() {
			return fmt.Errorf("%w: unknown card type %q", ErrInvalidInput, e.Type)
		}
		if e.PlayerName == "" {
			return fmt.Errorf("%w: card player name is required", ErrInvalidInput)
		}
		if err := s.assignID(&e.ID); err != nil {
			return err
		}
		if e.Second < 0 {
			e.Second = 0
		}
		e.Served = false
		m.Cards = append(m.Cards, e)
		return nil
	})
}

// ServeCard marks a card as served. The record stays in the event list
// so historical aggregates keep counting it.
func (s *RecorderService) ServeCard(ctx context.Context, matchID, cardID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.ServeCard")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		for i, e := range m.Cards {
			if e.ID == cardID {
				m.Cards[i].Served = true
				return nil
			}
		}
		return fmt.Errorf("%w: card %s", ErrNotFound, cardID)
	})
}

func (s *RecorderService) RecordGoal(ctx context.Context, matchID string, e goal.Event) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.RecordGoal")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		if !e.Period.IsValid() {
			return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, e.Period)
		}
		if err := s.assignID(&e.ID); err != nil {
			return err
		}
		if e.Second < 0 {
			e.Second = 0
		}
		m.Goals = append(m.Goals, e)
		return nil
	})
}

// FinishMatch seals the match: a running period, if any, is ended at
// the supplied observed duration first. After this only merge may
// append events.
func (s *RecorderService) FinishMatch(ctx context.Context, matchID string, runningObservedSeconds int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecorderService.FinishMatch")
	defer span.End()

	return s.update(ctx, matchID, func(m *match.Match) error {
		if runningObservedSeconds < 0 {
			runningObservedSeconds = 0
		}
		for i, rec := range m.Periods {
			if rec.State == period.StateRunning {
				m.Periods[i].State = period.StateEnded
				m.Periods[i].ObservedSeconds = runningObservedSeconds
			}
		}
		m.Finished = true
		finishedAt := s.now().UTC()
		m.FinishedAt = &finishedAt
		return nil
	})
}

func (s *RecorderService) update(ctx context.Context, matchID string, mutate func(*match.Match) error) (match.Match, error) {
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
	if m.Finished {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrMatchFinished, matchID)
	}

	if err := mutate(&m); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Save(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}
	return m, nil
}

func (s *RecorderService) assignID(target *string) error {
	if *target != "" {
		return nil
	}
	generated, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("generate event id: %w", err)
	}
	*target = generated
	return nil
}
