package roster

import "fmt"

// Position represents football position categories shown on the
// playing-time table.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Status says whether a player starts on the field or on the bench.
type Status string

const (
	StatusStarter    Status = "TITULAIRE"
	StatusSubstitute Status = "REMPLACANT"
)

// Entry is one rostered player for a match.
type Entry struct {
	PlayerID    string
	PlayerName  string
	ShirtNumber int
	Position    Position
	Status      Status
}

func (e Entry) IsStarter() bool {
	return e.Status == StatusStarter
}

func (e Entry) Validate() error {
	if e.PlayerID == "" {
		return fmt.Errorf("roster entry player id is required")
	}
	if e.PlayerName == "" {
		return fmt.Errorf("roster entry player name is required")
	}
	if e.ShirtNumber <= 0 {
		return fmt.Errorf("roster entry shirt number must be greater than zero")
	}
	if _, ok := AllPositions[e.Position]; !ok {
		return fmt.Errorf("invalid roster position: %s", e.Position)
	}
	if e.Status != StatusStarter && e.Status != StatusSubstitute {
		return fmt.Errorf("invalid roster status: %s", e.Status)
	}
	return nil
}

// Starters filters the entries that begin the match on the field.
func Starters(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsStarter() {
			out = append(out, e)
		}
	}
	return out
}
