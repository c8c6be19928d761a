package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/match"
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
)

// MatchRepository keeps match snapshots in memory. Reads hand out deep
// copies so the stats engine always computes over a stable snapshot.
type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(seed []match.Match) *MatchRepository {
	matches := make(map[string]match.Match, len(seed))
	for _, m := range seed {
		matches[m.ID] = cloneMatch(m)
	}
	return &MatchRepository{matches: matches}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(m), true, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, cloneMatch(m))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) Save(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[m.ID] = cloneMatch(m)
	return nil
}

func cloneMatch(m match.Match) match.Match {
	out := m
	out.Periods = append([]period.Record(nil), m.Periods...)
	out.Roster = append([]roster.Entry(nil), m.Roster...)
	out.Stoppages = append([]stoppage.Event(nil), m.Stoppages...)
	out.Substitutions = append([]substitution.Event(nil), m.Substitutions...)
	out.Cards = append([]card.Event(nil), m.Cards...)
	out.Goals = append([]goal.Event(nil), m.Goals...)
	if m.FinishedAt != nil {
		finishedAt := *m.FinishedAt
		out.FinishedAt = &finishedAt
	}
	return out
}
