package card

import "github.com/coachpad/matchtime/internal/domain/period"

// Type is the card shown to a player.
type Type string

const (
	TypeYellow       Type = "YELLOW"
	TypeSecondYellow Type = "SECOND_YELLOW"
	TypeRed          Type = "RED"
	TypeWhite        Type = "WHITE"
)

var AllTypes = []Type{TypeYellow, TypeSecondYellow, TypeRed, TypeWhite}

func (t Type) IsValid() bool {
	for _, known := range AllTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Event is one card shown during the match. Served is a tombstone: the
// card has been logically purged (suspension served, correction) but
// the record stays for historical stats. Cards are never physically
// deleted.
type Event struct {
	ID         string
	Period     period.Period
	Second     int
	PlayerID   string
	PlayerName string
	Type       Type
	Served     bool
}

// Active filters out served cards. Historical aggregates use the full
// list instead.
func Active(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Served {
			continue
		}
		out = append(out, e)
	}
	return out
}

func CountByType(events []Event, t Type, includeServed bool) int {
	count := 0
	for _, e := range events {
		if e.Type != t {
			continue
		}
		if e.Served && !includeServed {
			continue
		}
		count++
	}
	return count
}

// Tally holds per-type card counts. Served cards are included; callers
// that want live discipline state use Active first.
type Tally struct {
	Yellow       int
	SecondYellow int
	Red          int
	White        int
}

func TallyOf(events []Event) Tally {
	var t Tally
	for _, e := range events {
		switch e.Type {
		case TypeYellow:
			t.Yellow++
		case TypeSecondYellow:
			t.SecondYellow++
		case TypeRed:
			t.Red++
		case TypeWhite:
			t.White++
		}
	}
	return t
}
