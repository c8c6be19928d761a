package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/coachpad/matchtime/internal/domain/card"
	"github.com/coachpad/matchtime/internal/domain/goal"
	"github.com/coachpad/matchtime/internal/domain/match"
	"github.com/coachpad/matchtime/internal/domain/period"
	"github.com/coachpad/matchtime/internal/domain/roster"
	"github.com/coachpad/matchtime/internal/domain/stoppage"
	"github.com/coachpad/matchtime/internal/domain/substitution"
)

// MatchRepository persists match snapshots across seven tables. Save
// replaces the child rows inside one transaction; the event lists are
// small (low hundreds per match at most), so a full rewrite is cheaper
// than diffing.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	var row matchTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT id, home_team, away_team, kickoff_at, finished, finished_at, created_at, updated_at
		   FROM matches WHERE id = $1`, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Match{}, false, nil
	}
	if err != nil {
		return match.Match{}, false, errors.Wrap(err, "select match")
	}

	m := match.Match{
		ID:         row.ID,
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
		KickoffAt:  row.KickoffAt,
		Finished:   row.Finished,
		FinishedAt: row.FinishedAt,
	}
	if err := r.loadChildren(ctx, &m); err != nil {
		return match.Match{}, false, err
	}
	return m, true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	var rows []matchTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, home_team, away_team, kickoff_at, finished, finished_at, created_at, updated_at
		   FROM matches ORDER BY kickoff_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m := match.Match{
			ID:         row.ID,
			HomeTeam:   row.HomeTeam,
			AwayTeam:   row.AwayTeam,
			KickoffAt:  row.KickoffAt,
			Finished:   row.Finished,
			FinishedAt: row.FinishedAt,
		}
		if err := r.loadChildren(ctx, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) loadChildren(ctx context.Context, m *match.Match) error {
	var periodRows []periodTableModel
	err := r.db.SelectContext(ctx, &periodRows,
		`SELECT match_id, period, state, regulation_seconds, observed_seconds
		   FROM match_periods WHERE match_id = $1`, m.ID)
	if err != nil {
		return errors.Wrap(err, "select match periods")
	}
	for _, row := range periodRows {
		m.Periods = append(m.Periods, period.Record{
			Period:            period.Period(row.Period),
			State:             period.State(row.State),
			RegulationSeconds: row.RegulationSeconds,
			ObservedSeconds:   row.ObservedSeconds,
		})
	}

	var rosterRows []rosterTableModel
	err = r.db.SelectContext(ctx, &rosterRows,
		`SELECT match_id, player_id, player_name, shirt_number, position, status
		   FROM match_roster WHERE match_id = $1 ORDER BY shirt_number, player_name`, m.ID)
	if err != nil {
		return errors.Wrap(err, "select match roster")
	}
	for _, row := range rosterRows {
		m.Roster = append(m.Roster, roster.Entry{
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			ShirtNumber: row.ShirtNumber,
			Position:    roster.Position(row.Position),
			Status:      roster.Status(row.Status),
		})
	}

	var stoppageRows []stoppageTableModel
	err = r.db.SelectContext(ctx, &stoppageRows,
		`SELECT id, match_id, period, stoppage_type, beneficiary, start_second, duration_seconds
		   FROM match_stoppages WHERE match_id = $1 ORDER BY period, start_second, id`, m.ID)
	if err != nil {
		return errors.Wrap(err, "select match stoppages")
	}
	for _, row := range stoppageRows {
		m.Stoppages = append(m.Stoppages, stoppage.Event{
			ID:              row.ID,
			Period:          period.Period(row.Period),
			Type:            stoppage.Type(row.StoppageType),
			Beneficiary:     stoppage.Team(row.Beneficiary.String),
			StartSecond:     row.StartSecond,
			DurationSeconds: row.DurationSeconds,
		})
	}

	var subRows []substitutionTableModel
	err = r.db.SelectContext(ctx, &subRows,
		`SELECT id, match_id, period, second, player_out_id, player_out_name, player_in_id, player_in_name, seq
		   FROM match_substitutions WHERE match_id = $1 ORDER BY seq`, m.ID)
	if err != nil {
		return errors.Wrap(err, "select match substitutions")
	}
	for _, row := range subRows {
		m.Substitutions = append(m.Substitutions, substitution.Event{
			ID:            row.ID,
			Period:        period.Period(row.Period),
			Second:        row.Second,
			PlayerOutID:   row.PlayerOutID,
			PlayerOutName: row.PlayerOutName,
			PlayerInID:    row.PlayerInID,
			PlayerInName:  row.PlayerInName,
		})
	}

	var cardRows []cardTableModel
	err = r.db.SelectContext(ctx, &cardRows,
		`SELECT id, match_id, period, second, player_id, player_name, card_type, served
		   FROM match_cards WHERE match_id = $1 ORDER BY period, second, id`, m.ID)
	if err != nil {
		return errors.Wrap(err, "select match cards")
	}
	for _, row := range cardRows {
		m.Cards = append(m.Cards, card.Event{
			ID:         row.ID,
			Period:     period.Period(row.Period),
			Second:     row.Second,
			PlayerID:   row.PlayerID.String,
			PlayerName: row.PlayerName,
			Type:       card.Type(row.CardType),
			Served:     row.Served,
		})
	}

	var goalRows []goalTableModel
	err = r.db.SelectContext(ctx, &goalRows,
		`SELECT id, match_id, period, second, is_home, player_name
		   FROM match_goals WHERE match_id = $1 ORDER BY period, second, id`, m.ID)
	if err != nil {
		return errors.Wrap(err, "select match goals")
	}
	for _, row := range goalRows {
		m.Goals = append(m.Goals, goal.Event{
			ID:         row.ID,
			Period:     period.Period(row.Period),
			Second:     row.Second,
			IsHome:     row.IsHome,
			PlayerName: row.PlayerName,
		})
	}

	return nil
}

func (r *MatchRepository) Save(ctx context.Context, m match.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin save match tx")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO matches (id, home_team, away_team, kickoff_at, finished, finished_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   home_team = EXCLUDED.home_team,
		   away_team = EXCLUDED.away_team,
		   kickoff_at = EXCLUDED.kickoff_at,
		   finished = EXCLUDED.finished,
		   finished_at = EXCLUDED.finished_at,
		   updated_at = NOW()`,
		m.ID, m.HomeTeam, m.AwayTeam, m.KickoffAt, m.Finished, m.FinishedAt)
	if err != nil {
		return errors.Wrap(err, "upsert match")
	}

	for _, table := range []string{
		"match_periods", "match_roster", "match_stoppages",
		"match_substitutions", "match_cards", "match_goals",
	} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE match_id = $1`, m.ID); err != nil {
			return errors.Wrapf(err, "clear %s", table)
		}
	}

	for _, rec := range m.Periods {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_periods (match_id, period, state, regulation_seconds, observed_seconds)
			 VALUES ($1, $2, $3, $4, $5)`,
			m.ID, string(rec.Period), string(rec.State), rec.RegulationSeconds, rec.ObservedSeconds)
		if err != nil {
			return errors.Wrap(err, "insert match period")
		}
	}

	for _, entry := range m.Roster {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_roster (match_id, player_id, player_name, shirt_number, position, status)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ID, entry.PlayerID, entry.PlayerName, entry.ShirtNumber, string(entry.Position), string(entry.Status))
		if err != nil {
			return errors.Wrap(err, "insert roster entry")
		}
	}

	for _, e := range m.Stoppages {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_stoppages (id, match_id, period, stoppage_type, beneficiary, start_second, duration_seconds)
			 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`,
			e.ID, m.ID, string(e.Period), string(e.Type), string(e.Beneficiary), e.StartSecond, e.DurationSeconds)
		if err != nil {
			return errors.Wrap(err, "insert stoppage event")
		}
	}

	// seq preserves insertion order, the tie-breaker for substitutions
	// recorded at the same second.
	for seq, e := range m.Substitutions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_substitutions (id, match_id, period, second, player_out_id, player_out_name, player_in_id, player_in_name, seq)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.ID, m.ID, string(e.Period), e.Second, e.PlayerOutID, e.PlayerOutName, e.PlayerInID, e.PlayerInName, seq)
		if err != nil {
			return errors.Wrap(err, "insert substitution event")
		}
	}

	for _, e := range m.Cards {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_cards (id, match_id, period, second, player_id, player_name, card_type, served)
			 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)`,
			e.ID, m.ID, string(e.Period), e.Second, e.PlayerID, e.PlayerName, string(e.Type), e.Served)
		if err != nil {
			return errors.Wrap(err, "insert card event")
		}
	}

	for _, e := range m.Goals {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_goals (id, match_id, period, second, is_home, player_name)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, m.ID, string(e.Period), e.Second, e.IsHome, e.PlayerName)
		if err != nil {
			return errors.Wrap(err, "insert goal event")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit save match tx")
	}
	return nil
}
