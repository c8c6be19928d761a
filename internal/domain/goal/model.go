package goal

import "github.com/coachpad/matchtime/internal/domain/period"

// Event is one goal. The time engine never derives anything from
// goals; they only feed the score summary.
type Event struct {
	ID         string
	Period     period.Period
	Second     int
	IsHome     bool
	PlayerName string
}

func Score(events []Event) (home, away int) {
	for _, e := range events {
		if e.IsHome {
			home++
		} else {
			away++
		}
	}
	return home, away
}
