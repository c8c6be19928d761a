package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/match"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
	"github.com/coachpad/matchtime/internal/platform/logging"
)

// MergeService imports events recorded elsewhere (another device, a
// file export) into a stored match. Duplicates are skipped by event id
// or content fingerprint; this is the one write path allowed on a
// finished match.
type MergeService struct {
	matchRepo match.Repository
	logger    *logging.Logger
}

func NewMergeService(matchRepo match.Repository, logger *logging.Logger) *MergeService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MergeService{matchRepo: matchRepo, logger: logger}
}

type MergeInput struct {
	Stoppages     []stoppage.Event
	Substitutions []substitution.Event
	Cards         []card.Event
	Goals         []goal.Event
}

type MergeResult struct {
	Appended int
	Skipped  int
}

func (s *MergeService) MergeEvents(ctx context.Context, matchID string, input MergeInput) (MergeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MergeService.MergeEvents")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MergeResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MergeResult{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return MergeResult{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}

	known := make(map[string]struct{})
	for _, e := range m.Stoppages {
		known[match.StoppageFingerprint(e)] = struct{}{}
	}
	for _, e := range m.Substitutions {
		known[match.SubstitutionFingerprint(e)] = struct{}{}
	}
	for _, e := range m.Cards {
		known[match.CardFingerprint(e)] = struct{}{}
	}
	for _, e := range m.Goals {
		known[match.GoalFingerprint(e)] = struct{}{}
	}

	var result MergeResult
	appendOnce := func(fingerprint string, add func()) {
		if _, dup := known[fingerprint]; dup {
			result.Skipped++
			return
		}
		known[fingerprint] = struct{}{}
		add()
		result.Appended++
	}

	for _, e := range input.Stoppages {
		appendOnce(match.StoppageFingerprint(e), func() { m.Stoppages = append(m.Stoppages, e) })
	}
	for _, e := range input.Substitutions {
		appendOnce(match.SubstitutionFingerprint(e), func() { m.Substitutions = append(m.Substitutions, e) })
	}
	for _, e := range input.Cards {
		appendOnce(match.CardFingerprint(e), func() { m.Cards = append(m.Cards, e) })
	}
	for _, e := range input.Goals {
		appendOnce(match.GoalFingerprint(e), func() { m.Goals = append(m.Goals, e) })
	}

	if result.Appended > 0 {
		if err := s.matchRepo.Save(ctx, m); err != nil {
			return MergeResult{}, fmt.Errorf("save merged match: %w", err)
		}
	}

	s.logger.Info(ctx, "events merged",
		"match_id", matchID,
		"appended", result.Appended,
		"skipped", result.Skipped,
	)
	return result, nil
}
