package substitution

import "github.com/coachpad/matchtime/internal/domain/period"

// Event is one substitution recorded on a period's clock. Events are
// ordered by Second within a period; ties keep insertion order.
type Event struct {
	ID            string
	Period        period.Period
	Second        int
	PlayerOutID   string
	PlayerOutName string
	PlayerInID    string
	PlayerInName  string
}
