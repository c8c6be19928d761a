package stoppage

import (
	"testing"

	"github.com/coachpad/matchtime/internal/domain/period"
)

func TestLedgerTotals(t *testing.T) {
	ledger := NewLedger([]Event{
		{ID: "s1", Period: period.FirstHalf, Type: TypeInjury, Beneficiary: TeamHome, StartSecond: 600, DurationSeconds: 90},
		{ID: "s2", Period: period.FirstHalf, Type: TypeVAR, StartSecond: 1500, DurationSeconds: 45},
		{ID: "s3", Period: period.SecondHalf, Type: TypeInjury, Beneficiary: TeamAway, StartSecond: 300, DurationSeconds: 120},
		{ID: "s4", Period: period.SecondHalf, Type: TypeSubstitution, Beneficiary: TeamHome, StartSecond: 2000, DurationSeconds: 30},
	})

	if got := ledger.TotalByPeriod(period.FirstHalf); got != 135 {
		t.Fatalf("first half total: got=%d want=135", got)
	}
	if got := ledger.TotalByPeriod(period.ExtraFirst); got != 0 {
		t.Fatalf("unplayed period total: got=%d want=0", got)
	}
	if got := ledger.Total(); got != 285 {
		t.Fatalf("match total: got=%d want=285", got)
	}
	if got := ledger.TotalByType(TypeInjury); got != 210 {
		t.Fatalf("injury total: got=%d want=210", got)
	}
	if got := ledger.Count(TypeInjury, TeamNone); got != 2 {
		t.Fatalf("injury count all teams: got=%d want=2", got)
	}
	if got := ledger.Count(TypeInjury, TeamAway); got != 1 {
		t.Fatalf("injury count away: got=%d want=1", got)
	}
	if got := ledger.Count(TypeVAR, TeamHome); got != 0 {
		t.Fatalf("var count home: got=%d want=0", got)
	}
}

func TestLedgerEmpty(t *testing.T) {
	ledger := NewLedger(nil)

	if got := ledger.Total(); got != 0 {
		t.Fatalf("empty total: got=%d want=0", got)
	}
	if got := ledger.SuggestedAddedTime(period.FirstHalf); got != 0 {
		t.Fatalf("empty added time: got=%d want=0", got)
	}
	if got := ledger.Count(TypeOther, TeamNone); got != 0 {
		t.Fatalf("empty count: got=%d want=0", got)
	}
}

func TestLedgerClampsNegativeDurations(t *testing.T) {
	ledger := NewLedger([]Event{
		{ID: "s1", Period: period.FirstHalf, Type: TypeOther, StartSecond: -10, DurationSeconds: -50},
		{ID: "s2", Period: period.FirstHalf, Type: TypeOther, StartSecond: 100, DurationSeconds: 40},
	})

	if got := ledger.TotalByPeriod(period.FirstHalf); got != 40 {
		t.Fatalf("clamped total: got=%d want=40", got)
	}
}

func TestLedgerOverlappingEventsAreSummedAsRecorded(t *testing.T) {
	// Two stoppages recorded over the same window still both count:
	// the plain sum is the documented policy.
	ledger := NewLedger([]Event{
		{ID: "s1", Period: period.FirstHalf, Type: TypeInjury, StartSecond: 100, DurationSeconds: 60},
		{ID: "s2", Period: period.FirstHalf, Type: TypeVAR, StartSecond: 120, DurationSeconds: 60},
	})

	if got := ledger.TotalByPeriod(period.FirstHalf); got != 120 {
		t.Fatalf("overlapping sum: got=%d want=120", got)
	}
}

func TestSuggestedAddedTime(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		wantSeconds int
		wantMinutes int
	}{
		{name: "exact minutes", total: 120, wantSeconds: 120, wantMinutes: 2},
		{name: "rounds up", total: 121, wantSeconds: 180, wantMinutes: 3},
		{name: "under a minute", total: 5, wantSeconds: 60, wantMinutes: 1},
		{name: "zero", total: 0, wantSeconds: 0, wantMinutes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []Event
			if tt.total > 0 {
				events = []Event{{ID: "s1", Period: period.SecondHalf, Type: TypeInjury, DurationSeconds: tt.total}}
			}
			ledger := NewLedger(events)

			if got := ledger.SuggestedAddedTime(period.SecondHalf); got != tt.wantSeconds {
				t.Fatalf("added seconds: got=%d want=%d", got, tt.wantSeconds)
			}
			if got := ledger.SuggestedAddedMinutes(period.SecondHalf); got != tt.wantMinutes {
				t.Fatalf("added minutes: got=%d want=%d", got, tt.wantMinutes)
			}
		})
	}
}
