package stoppage

import (
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/timeline"
)

// Type categorizes a recorded interruption of play.
type Type string

const (
	TypeInjury       Type = "INJURY"
	TypeSubstitution Type = "SUBSTITUTION"
	TypeVAR          Type = "VAR"
	TypeMisconduct   Type = "MISCONDUCT"
	TypeOther        Type = "OTHER"
)

var AllTypes = []Type{TypeInjury, TypeSubstitution, TypeVAR, TypeMisconduct, TypeOther}

func (t Type) IsValid() bool {
	for _, known := range AllTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Team identifies the side a stoppage benefited. Empty means no side
// in particular.
type Team string

const (
	TeamHome Team = "HOME"
	TeamAway Team = "AWAY"
	TeamNone Team = ""
)

// Event is one recorded stoppage on a period's clock.
type Event struct {
	ID              string
	Period          period.Period
	Type            Type
	Beneficiary     Team
	StartSecond     int
	DurationSeconds int
}

func (e Event) Interval() timeline.Interval {
	start := e.StartSecond
	if start < 0 {
		start = 0
	}
	dur := e.DurationSeconds
	if dur < 0 {
		dur = 0
	}
	return timeline.Closed(start, start+dur)
}
