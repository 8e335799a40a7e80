package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/lifeboard/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/lifeboard/internal/adapters/handler/http"
	adapterMCP "github.com/comitanigiacomo/lifeboard/internal/adapters/handler/mcp"
	"github.com/comitanigiacomo/lifeboard/internal/adapters/repository"
	"github.com/comitanigiacomo/lifeboard/internal/config"
	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/core/services"
	"github.com/comitanigiacomo/lifeboard/internal/core/state"
	"github.com/comitanigiacomo/lifeboard/internal/core/workers"
	"github.com/comitanigiacomo/lifeboard/internal/logging"
)

type repositories struct {
	days       domain.DayRepository
	activities domain.ActivityRepository
	habits     domain.HabitRepository
	logs       domain.HabitLogRepository
	goals      domain.GoalRepository
	monthly    domain.MonthlyGoalRepository
	wheels     domain.WheelRepository
}

type app struct {
	router    *gin.Engine
	dashboard *state.Dashboard
	db        *sqlx.DB
	redis     *redis.Client
}

func openRepositories(cfg *config.Config) (repositories, *sqlx.DB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logging.Warn().Msg("Using the in-memory store, data is lost on exit")
		store := repository.NewMemoryStore()
		return repositories{
			days:       store.Days(),
			activities: store.Activities(),
			habits:     store.Habits(),
			logs:       store.HabitLogs(),
			goals:      store.Goals(),
			monthly:    store.MonthlyGoals(),
			wheels:     store.Wheels(),
		}, nil, nil
	}

	dsn := cfg.Database.DSN()

	logging.Info().Str("host", cfg.Database.Host).Msg("Connecting to database...")
	db, err := repository.NewPostgresDB(dsn)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := repository.RunMigrations(dsn); err != nil {
		db.Close()
		return repositories{}, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logging.Info().Msg("Database connected and migrated.")

	return repositories{
		days:       repository.NewPostgresDayRepository(db),
		activities: repository.NewPostgresActivityRepository(db),
		habits:     repository.NewPostgresHabitRepository(db),
		logs:       repository.NewPostgresHabitLogRepository(db),
		goals:      repository.NewPostgresGoalRepository(db),
		monthly:    repository.NewPostgresMonthlyGoalRepository(db),
		wheels:     repository.NewPostgresWheelRepository(db),
	}, db, nil
}

// newApp wires storage, services, the application state and the router.
// Background work stops when ctx is cancelled.
func newApp(ctx context.Context, cfg *config.Config, startTime time.Time) (*app, error) {
	repos, db, err := openRepositories(cfg)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logging.Warn().Err(err).Msg("Redis unavailable, running without cache")
		} else {
			repos.habits = repository.NewCachedHabitRepository(repos.habits, rdb)
			logging.Info().Msg("Redis cache enabled")
		}
	}

	loc := cfg.Dashboard.Location()

	streakWorker := workers.NewStreakWorker(repos.habits, repos.logs, loc)
	streakWorker.Start(ctx)

	days := services.NewDayService(repos.days, repos.activities)
	habits := services.NewHabitService(repos.habits, repos.logs, streakWorker)
	goals := services.NewGoalService(repos.goals)
	monthly := services.NewMonthlyGoalService(repos.monthly)
	wheels := services.NewWheelService(repos.wheels)
	reports := services.NewDashboardService(days, habits, goals, monthly, wheels)

	dashboard := state.NewDashboard(reports, cfg.Dashboard.Year, loc)
	if err := dashboard.Refresh(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial dashboard load failed, MCP tools will retry")
	}

	clock := adapterHTTP.NewClock(loc)
	mcpServer := adapterMCP.New(dashboard, reports, version)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		DayHandler:         adapterHTTP.NewDayHandler(days, clock),
		HabitHandler:       adapterHTTP.NewHabitHandler(habits, reports, clock),
		GoalHandler:        adapterHTTP.NewGoalHandler(goals, monthly, reports, clock),
		WheelHandler:       adapterHTTP.NewWheelHandler(wheels, reports, clock),
		DashboardHandler:   adapterHTTP.NewDashboardHandler(reports, clock),
		MCP:                adapterMCP.NewHTTPHandler(mcpServer),
		DB:                 db,
		Redis:              rdb,
		StartTime:          startTime,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
	})

	return &app{router: router, dashboard: dashboard, db: db, redis: rdb}, nil
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
