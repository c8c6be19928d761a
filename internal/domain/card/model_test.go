package card

import (
	"testing"

	"github.com/coachpad/matchtime/internal/domain/period"
)

func sampleCards() []Event {
	return []Event{
		{ID: "c1", Period: period.FirstHalf, Second: 900, PlayerID: "p1", PlayerName: "Durand", Type: TypeYellow},
		{ID: "c2", Period: period.FirstHalf, Second: 1800, PlayerID: "p2", PlayerName: "Martin", Type: TypeYellow, Served: true},
		{ID: "c3", Period: period.SecondHalf, Second: 600, PlayerID: "p2", PlayerName: "Martin", Type: TypeSecondYellow},
		{ID: "c4", Period: period.SecondHalf, Second: 601, PlayerID: "p2", PlayerName: "Martin", Type: TypeRed},
		{ID: "c5", Period: period.SecondHalf, Second: 2000, PlayerName: "Unknown Bench", Type: TypeWhite},
	}
}

func TestActiveExcludesServed(t *testing.T) {
	active := Active(sampleCards())

	if len(active) != 4 {
		t.Fatalf("active count: got=%d want=4", len(active))
	}
	for _, e := range active {
		if e.Served {
			t.Fatalf("served card %s leaked into active list", e.ID)
		}
	}
}

func TestCountByType(t *testing.T) {
	events := sampleCards()

	if got := CountByType(events, TypeYellow, true); got != 2 {
		t.Fatalf("yellow including served: got=%d want=2", got)
	}
	if got := CountByType(events, TypeYellow, false); got != 1 {
		t.Fatalf("yellow active only: got=%d want=1", got)
	}
	if got := CountByType(events, TypeRed, true); got != 1 {
		t.Fatalf("red: got=%d want=1", got)
	}
}

func TestTallyCountsServedCards(t *testing.T) {
	// Serving a card marks it purged but it still counts historically.
	got := TallyOf(sampleCards())
	want := Tally{Yellow: 2, SecondYellow: 1, Red: 1, White: 1}

	if got != want {
		t.Fatalf("tally: got=%+v want=%+v", got, want)
	}
}
