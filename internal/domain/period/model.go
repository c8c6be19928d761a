package period

import "fmt"

// Period is one discrete phase of the match with its own clock.
type Period string

const (
	FirstHalf   Period = "1H"
	SecondHalf  Period = "2H"
	ExtraFirst  Period = "ET1"
	ExtraSecond Period = "ET2"
)

// Ordered fixes the play order of periods.
var Ordered = []Period{FirstHalf, SecondHalf, ExtraFirst, ExtraSecond}

const (
	regulationHalfSeconds  = 45 * 60
	regulationExtraSeconds = 15 * 60
)

func Parse(v string) (Period, error) {
	for _, p := range Ordered {
		if string(p) == v {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", v)
}

// Index returns the position of the period in play order, -1 for an
// unknown value.
func (p Period) Index() int {
	for i, known := range Ordered {
		if known == p {
			return i
		}
	}
	return -1
}

func (p Period) IsValid() bool {
	return p.Index() >= 0
}

func DefaultRegulationSeconds(p Period) int {
	switch p {
	case ExtraFirst, ExtraSecond:
		return regulationExtraSeconds
	default:
		return regulationHalfSeconds
	}
}

// State is the lifecycle of a period. Transitions only move forward:
// not-started -> running -> ended.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateRunning    State = "RUNNING"
	StateEnded      State = "ENDED"
)

// Record tracks regulation versus observed duration for one period.
// ObservedSeconds is authoritative only once the period has ended; a
// running period is measured against the caller-supplied live elapsed
// seconds instead.
type Record struct {
	Period            Period
	State             State
	RegulationSeconds int
	ObservedSeconds   int
}

func NewRecord(p Period) Record {
	return Record{
		Period:            p,
		State:             StateNotStarted,
		RegulationSeconds: DefaultRegulationSeconds(p),
	}
}

// ObservedAt reports how many seconds of this period have been played.
// A period that never started contributes zero.
func (r Record) ObservedAt(liveElapsed int) int {
	switch r.State {
	case StateEnded:
		return clampSeconds(r.ObservedSeconds)
	case StateRunning:
		return clampSeconds(liveElapsed)
	default:
		return 0
	}
}
