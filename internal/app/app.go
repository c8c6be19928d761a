package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/coachpad/matchtime/internal/config"
	"github.com/coachpad/matchtime/internal/domain/match"
	"github.com/coachpad/matchtime/internal/infrastructure/repository/memory"
	"github.com/coachpad/matchtime/internal/infrastructure/repository/postgres"
	"github.com/coachpad/matchtime/internal/interfaces/httpapi"
	idgen "github.com/coachpad/matchtime/internal/platform/id"
	"github.com/coachpad/matchtime/internal/platform/logging"
	"github.com/coachpad/matchtime/internal/usecase"
)

// NewHTTPServer wires the repository, services and router into one
// ready-to-run server. The returned cleanup closes the database
// connection when one was opened; it is safe to call on a nil-db setup.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	matchRepo, cleanup, err := newMatchRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	statsSvc := usecase.NewStatsService(matchRepo)
	recorderSvc := usecase.NewRecorderService(matchRepo, idgen.NewRandomGenerator(), logger)
	mergeSvc := usecase.NewMergeService(matchRepo, logger)

	handler := httpapi.NewHandler(statsSvc, recorderSvc, mergeSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func newMatchRepository(cfg config.Config) (match.Repository, func() error, error) {
	if cfg.DBURL == "" {
		var seed []match.Match
		if cfg.SeedDemoData {
			seed = memory.SeedMatches()
		}
		return memory.NewMatchRepository(seed), func() error { return nil }, nil
	}

	db, err := sqlx.Connect("postgres", cfg.DBURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	return postgres.NewMatchRepository(db), db.Close, nil
}
