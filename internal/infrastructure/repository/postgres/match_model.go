package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         string       `db:"id"`
	HomeTeam   string       `db:"home_team"`
	AwayTeam   string       `db:"away_team"`
	KickoffAt  time.Time    `db:"kickoff_at"`
	Finished   bool         `db:"finished"`
	FinishedAt *time.Time   `db:"finished_at"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  sql.NullTime `db:"updated_at"`
}

type periodTableModel struct {
	MatchID           string `db:"match_id"`
	Period            string `db:"period"`
	State             string `db:"state"`
	RegulationSeconds int    `db:"regulation_seconds"`
	ObservedSeconds   int    `db:"observed_seconds"`
}

type rosterTableModel struct {
	MatchID     string `db:"match_id"`
	PlayerID    string `db:"player_id"`
	PlayerName  string `db:"player_name"`
	ShirtNumber int    `db:"shirt_number"`
	Position    string `db:"position"`
	Status      string `db:"status"`
}

type stoppageTableModel struct {
	ID              string         `db:"id"`
	MatchID         string         `db:"match_id"`
	Period          string         `db:"period"`
	StoppageType    string         `db:"stoppage_type"`
	Beneficiary     sql.NullString `db:"beneficiary"`
	StartSecond     int            `db:"start_second"`
	DurationSeconds int            `db:"duration_seconds"`
}

type substitutionTableModel struct {
	ID            string `db:"id"`
	MatchID       string `db:"match_id"`
	Period        string `db:"period"`
	Second        int    `db:"second"`
	PlayerOutID   string `db:"player_out_id"`
	PlayerOutName string `db:"player_out_name"`
	PlayerInID    string `db:"player_in_id"`
	PlayerInName  string `db:"player_in_name"`
	Seq           int    `db:"seq"`
}

type cardTableModel struct {
	ID         string         `db:"id"`
	MatchID    string         `db:"match_id"`
	Period     string         `db:"period"`
	Second     int            `db:"second"`
	PlayerID   sql.NullString `db:"player_id"`
	PlayerName string         `db:"player_name"`
	CardType   string         `db:"card_type"`
	Served     bool           `db:"served"`
}

type goalTableModel struct {
	ID         string `db:"id"`
	MatchID    string `db:"match_id"`
	Period     string `db:"period"`
	Second     int    `db:"second"`
	IsHome     bool   `db:"is_home"`
	PlayerName string `db:"player_name"`
}
