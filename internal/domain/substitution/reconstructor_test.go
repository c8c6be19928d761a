package substitution

import (
	"fmt"
	"testing"

	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
)

func fullRoster() []roster.Entry {
	entries := make([]roster.Entry, 0, 14)
	for i := 1; i <= 11; i++ {
		entries = append(entries, roster.Entry{
			PlayerID:    fmt.Sprintf("p%02d", i),
			PlayerName:  fmt.Sprintf("Starter %02d", i),
			ShirtNumber: i,
			Position:    roster.PositionMidfielder,
			Status:      roster.StatusStarter,
		})
	}
	for i := 12; i <= 14; i++ {
		entries = append(entries, roster.Entry{
			PlayerID:    fmt.Sprintf("p%02d", i),
			PlayerName:  fmt.Sprintf("Bench %02d", i),
			ShirtNumber: i,
			Position:    roster.PositionForward,
			Status:      roster.StatusSubstitute,
		})
	}
	return entries
}

func endedPeriod(p period.Period, observed int) period.Record {
	return period.Record{Period: p, State: period.StateEnded, RegulationSeconds: 2700, ObservedSeconds: observed}
}

func TestReconstructStarterSubbedOut(t *testing.T) {
	// A starter substituted at second M has played exactly M seconds.
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 1500, PlayerOutID: "p01", PlayerOutName: "Starter 01", PlayerInID: "p12", PlayerInName: "Bench 12"},
	}

	r := Reconstruct(fullRoster(), events, []period.Record{endedPeriod(period.FirstHalf, 2700)}, 0)

	if got := r.TotalSeconds("p01"); got != 1500 {
		t.Fatalf("subbed starter total: got=%d want=1500", got)
	}
	if got := r.TotalSeconds("p12"); got != 1200 {
		t.Fatalf("incoming player total: got=%d want=1200", got)
	}
	if got := r.TotalSeconds("p13"); got != 0 {
		t.Fatalf("unused bench total: got=%d want=0", got)
	}
}

func TestReconstructScenarioElevenSlots(t *testing.T) {
	// Two substitutions in one 2700s period: the aggregate on-field
	// seconds must equal the period duration times eleven slots.
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 1200, PlayerOutID: "p03", PlayerInID: "p12"},
		{ID: "sub2", Period: period.FirstHalf, Second: 2000, PlayerOutID: "p07", PlayerInID: "p13"},
	}

	r := Reconstruct(fullRoster(), events, []period.Record{endedPeriod(period.FirstHalf, 2700)}, 0)

	sum := 0
	for _, row := range r.PlayingTimes(stoppage.NewLedger(nil), false) {
		sum += row.TotalSeconds
	}
	if want := 2700 * 11; sum != want {
		t.Fatalf("aggregate on-field seconds: got=%d want=%d", sum, want)
	}
}

func TestReconstructDoubleSubOffIsNoOpClose(t *testing.T) {
	// p01 leaves at 600. A later event names p01 as outgoing again:
	// the close is a no-op but p13 still enters, and no negative
	// interval may appear.
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 600, PlayerOutID: "p01", PlayerInID: "p12"},
		{ID: "sub2", Period: period.FirstHalf, Second: 1800, PlayerOutID: "p01", PlayerInID: "p13"},
	}

	r := Reconstruct(fullRoster(), events, []period.Record{endedPeriod(period.FirstHalf, 2700)}, 0)

	if got := r.TotalSeconds("p01"); got != 600 {
		t.Fatalf("p01 total after duplicate off: got=%d want=600", got)
	}
	if got := r.TotalSeconds("p13"); got != 900 {
		t.Fatalf("p13 total: got=%d want=900", got)
	}
	for _, p := range period.Ordered {
		for _, playerID := range []string{"p01", "p12", "p13"} {
			for _, iv := range r.IntervalsFor(p, playerID) {
				if iv.Duration(0) < 0 {
					t.Fatalf("negative interval for %s in %s", playerID, p)
				}
			}
		}
	}
}

func TestReconstructDuplicateEntryKeepsSingleOpenInterval(t *testing.T) {
	// An erroneous second entry for a player already on the field must
	// not create a concurrently open interval.
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 900, PlayerOutID: "p02", PlayerInID: "p12"},
		{ID: "sub2", Period: period.FirstHalf, Second: 1200, PlayerOutID: "", PlayerInID: "p12"},
	}

	r := Reconstruct(fullRoster(), events, []period.Record{endedPeriod(period.FirstHalf, 2700)}, 0)

	intervals := r.IntervalsFor(period.FirstHalf, "p12")
	if len(intervals) != 1 {
		t.Fatalf("p12 interval count: got=%d want=1", len(intervals))
	}
	if got := r.TotalSeconds("p12"); got != 1800 {
		t.Fatalf("p12 total: got=%d want=1800", got)
	}
}

func TestReconstructIntervalsNeverOverlap(t *testing.T) {
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 600, PlayerOutID: "p01", PlayerInID: "p12"},
		{ID: "sub2", Period: period.FirstHalf, Second: 1500, PlayerOutID: "p12", PlayerInID: "p01"},
		{ID: "sub3", Period: period.SecondHalf, Second: 300, PlayerOutID: "p01", PlayerInID: "p12"},
	}
	records := []period.Record{
		endedPeriod(period.FirstHalf, 2700),
		endedPeriod(period.SecondHalf, 2700),
	}

	r := Reconstruct(fullRoster(), events, records, 0)

	for _, p := range period.Ordered {
		for i := 1; i <= 14; i++ {
			playerID := fmt.Sprintf("p%02d", i)
			intervals := r.IntervalsFor(p, playerID)
			for a := 0; a < len(intervals); a++ {
				for b := a + 1; b < len(intervals); b++ {
					if intervals[a].Overlaps(intervals[b], 0) {
						t.Fatalf("player %s has overlapping intervals in %s", playerID, p)
					}
				}
			}
		}
	}
}

func TestReconstructCarriesOnFieldSetAcrossPeriods(t *testing.T) {
	// p05 leaves in the first half and must not reappear in the
	// second; their replacement plays the whole second half.
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 2400, PlayerOutID: "p05", PlayerInID: "p14"},
	}
	records := []period.Record{
		endedPeriod(period.FirstHalf, 2700),
		endedPeriod(period.SecondHalf, 2700),
	}

	r := Reconstruct(fullRoster(), events, records, 0)

	if got := r.TotalSeconds("p05"); got != 2400 {
		t.Fatalf("p05 total: got=%d want=2400", got)
	}
	if got := r.TotalSeconds("p14"); got != 300+2700 {
		t.Fatalf("p14 total: got=%d want=3000", got)
	}
	if got := len(r.IntervalsFor(period.SecondHalf, "p05")); got != 0 {
		t.Fatalf("p05 must not re-open in second half, got %d intervals", got)
	}
}

func TestReconstructUnknownIncomingPlayerEntersFromBench(t *testing.T) {
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 1000, PlayerOutID: "p01", PlayerInID: "ghost-1", PlayerInName: "Trialist"},
	}

	r := Reconstruct(fullRoster(), events, []period.Record{endedPeriod(period.FirstHalf, 2700)}, 0)

	if got := r.TotalSeconds("ghost-1"); got != 1700 {
		t.Fatalf("unrostered incoming total: got=%d want=1700", got)
	}

	rows := r.PlayingTimes(stoppage.NewLedger(nil), false)
	found := false
	for _, row := range rows {
		if row.PlayerID == "ghost-1" {
			found = true
			if row.PlayerName != "Trialist" {
				t.Fatalf("unrostered player name: got=%q", row.PlayerName)
			}
			if row.IsStarter {
				t.Fatal("unrostered player must not be flagged starter")
			}
		}
	}
	if !found {
		t.Fatal("unrostered player missing from playing-time table")
	}
}

func TestReconstructRunningPeriodClosesAtLiveElapsed(t *testing.T) {
	records := []period.Record{
		endedPeriod(period.FirstHalf, 2700),
		{Period: period.SecondHalf, State: period.StateRunning, RegulationSeconds: 2700},
	}

	r := Reconstruct(fullRoster(), nil, records, 1200)

	if got := r.TotalSeconds("p01"); got != 2700+1200 {
		t.Fatalf("running period total: got=%d want=3900", got)
	}
}

func TestPlayingTimesOrderingAndFilter(t *testing.T) {
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 1200, PlayerOutID: "p04", PlayerInID: "p12"},
	}

	r := Reconstruct(fullRoster(), events, []period.Record{endedPeriod(period.FirstHalf, 2700)}, 0)

	all := r.PlayingTimes(stoppage.NewLedger(nil), false)
	if len(all) != 14 {
		t.Fatalf("default table must include bench players: got=%d want=14", len(all))
	}
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.ShirtNumber > cur.ShirtNumber {
			t.Fatalf("rows not ordered by shirt number: %d before %d", prev.ShirtNumber, cur.ShirtNumber)
		}
	}

	played := r.PlayingTimes(stoppage.NewLedger(nil), true)
	if len(played) != 12 {
		t.Fatalf("played-only table: got=%d want=12", len(played))
	}
	for _, row := range played {
		if row.TotalSeconds == 0 {
			t.Fatalf("played-only table contains zero-time player %s", row.PlayerID)
		}
	}
}

func TestEffectiveSecondsSubtractsStoppageOverlap(t *testing.T) {
	// p01 plays 0..1500. Stoppages: 600..720 (inside), 1450..1550
	// (straddles the exit), 2000..2100 (after). Only the overlap
	// counts against the player.
	events := []Event{
		{ID: "sub1", Period: period.FirstHalf, Second: 1500, PlayerOutID: "p01", PlayerInID: "p12"},
	}
	ledger := stoppage.NewLedger([]stoppage.Event{
		{ID: "s1", Period: period.FirstHalf, Type: stoppage.TypeInjury, StartSecond: 600, DurationSeconds: 120},
		{ID: "s2", Period: period.FirstHalf, Type: stoppage.TypeVAR, StartSecond: 1450, DurationSeconds: 100},
		{ID: "s3", Period: period.FirstHalf, Type: stoppage.TypeOther, StartSecond: 2000, DurationSeconds: 100},
	})

	r := Reconstruct(fullRoster(), events, []period.Record{endedPeriod(period.FirstHalf, 2700)}, 0)

	if got := r.EffectiveSeconds("p01", ledger); got != 1500-120-50 {
		t.Fatalf("p01 effective: got=%d want=%d", got, 1500-120-50)
	}
	// p12 plays 1500..2700 and absorbs the tail of s2 plus all of s3.
	if got := r.EffectiveSeconds("p12", ledger); got != 1200-50-100 {
		t.Fatalf("p12 effective: got=%d want=%d", got, 1200-50-100)
	}
}
