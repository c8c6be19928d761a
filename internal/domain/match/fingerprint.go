package match

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
)

// Event fingerprints identify duplicates during merge/import. An event
// with an ID is keyed by it; otherwise the fingerprint hashes the
// fields that make the event unique in the recorded clock.

func StoppageFingerprint(e stoppage.Event) string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return contentHash(fmt.Sprintf("stoppage|%s|%s|%s|%d|%d",
		e.Period, e.Type, e.Beneficiary, e.StartSecond, e.DurationSeconds))
}

func SubstitutionFingerprint(e substitution.Event) string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return contentHash(fmt.Sprintf("substitution|%s|%d|%s|%s",
		e.Period, e.Second, e.PlayerOutID, e.PlayerInID))
}

func CardFingerprint(e card.Event) string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return contentHash(fmt.Sprintf("card|%s|%d|%s|%s|%s",
		e.Period, e.Second, e.PlayerID, e.PlayerName, e.Type))
}

func GoalFingerprint(e goal.Event) string {
	if e.ID != "" {
		return "id:" + e.ID
	}
	return contentHash(fmt.Sprintf("goal|%s|%d|%t|%s",
		e.Period, e.Second, e.IsHome, e.PlayerName))
}

func contentHash(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return "fp:" + hex.EncodeToString(sum[:8])
}
