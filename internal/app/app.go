package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/chelstats/chelstats/internal/config"
	"github.com/chelstats/chelstats/internal/ea"
	"github.com/chelstats/chelstats/internal/infrastructure/repository/postgres"
	"github.com/chelstats/chelstats/internal/interfaces/httpapi"
	"github.com/chelstats/chelstats/internal/notification"
	"github.com/chelstats/chelstats/internal/platform/logging"
	"github.com/chelstats/chelstats/internal/platform/resilience"
	"github.com/chelstats/chelstats/internal/usecase"
)

// App owns the process-wide resources built from configuration.
type App struct {
	Server *http.Server
	DB     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if err := EnsureSchemaCurrent(cfg.DBURL, MigrationsDir()); err != nil {
		return nil, err
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	matchRepo := postgres.NewMatchRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	playerStatsRepo := postgres.NewPlayerStatsRepository(db)
	teamStatsRepo := postgres.NewTeamStatsRepository(db)
	rawDataRepo := postgres.NewRawDataRepository(db)

	var eaMatches usecase.EAMatchSource
	if cfg.EAProxyEnabled {
		eaMatches = ea.NewClient(ea.ClientConfig{
			BaseURL:    cfg.EAProxyBaseURL,
			MatchType:  cfg.EAProxyMatchType,
			Timeout:    cfg.EAProxyTimeout,
			MaxRetries: cfg.EAProxyMaxRetries,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.EAProxyCircuitEnabled,
				FailureThreshold: cfg.EAProxyCircuitFailureCount,
				OpenTimeout:      cfg.EAProxyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.EAProxyCircuitHalfOpenMax,
			},
		}, logger)
	}

	var announcer usecase.ImportAnnouncer
	if cfg.DiscordEnabled {
		discord, err := notification.NewDiscordAnnouncer(cfg.DiscordBotToken, cfg.DiscordChannelID)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("build discord announcer: %w", err)
		}
		announcer = discord
	}

	importService := usecase.NewImportService(
		matchRepo,
		teamRepo,
		playerStatsRepo,
		teamStatsRepo,
		rawDataRepo,
		playerRepo,
		eaMatches,
		announcer,
		cfg.StatLineBatchSize,
		logger,
	)
	matchService := usecase.NewMatchService(matchRepo, playerStatsRepo, teamStatsRepo)
	teamService := usecase.NewTeamService(teamRepo, playerRepo)
	recalcService := usecase.NewRecalcService(matchRepo, playerStatsRepo, teamStatsRepo, cfg.RecalcWorkers, logger)

	handler := httpapi.NewHandler(importService, matchService, teamService, recalcService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.ImportToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, DB: db}, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
