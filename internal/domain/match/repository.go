package match

import "context"

// Repository stores match snapshots. Save replaces the whole snapshot;
// the recorder is the only writer during a live match.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	Save(ctx context.Context, m Match) error
}
