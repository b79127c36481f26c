package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/config"
	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/database"
	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/observability"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// Infrastructure bundles the process-wide resources the app depends on.
type Infrastructure interface {
	Postgres() *database.Postgres
	Redis() *database.Redis
	Logger() *zap.Logger
	MetricsHandler() http.Handler
	MeterProvider() *metric.MeterProvider

	Shutdown(ctx context.Context) error
}

type infrastructure struct {
	postgres       *database.Postgres
	redis          *database.Redis
	logger         *zap.Logger
	metricsHandler http.Handler
	meterProvider  *metric.MeterProvider
}

var _ Infrastructure = &infrastructure{}

// NewInfrastructure brings up logging, both stores and telemetry.
// Anything already opened is closed again when a later step fails, so
// callers never hold a half-initialized bundle.
func NewInfrastructure(ctx context.Context, cfg config.Config) (*infrastructure, error) {
	logger, err := observability.InitLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var opened []func() error
	closeOpened := func() {
		for _, closeFn := range opened {
			_ = closeFn()
		}
	}

	postgres, err := database.NewPostgres(cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	opened = append(opened, postgres.Close)

	redis, err := database.NewRedis(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		closeOpened()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	opened = append(opened, redis.Close)

	meterProvider, metricsHandler, err := observability.InitTelemetry("cardapio-api")
	if err != nil {
		closeOpened()
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	return &infrastructure{
		postgres:       postgres,
		redis:          redis,
		logger:         logger,
		metricsHandler: metricsHandler,
		meterProvider:  meterProvider,
	}, nil
}

func (i *infrastructure) Postgres() *database.Postgres { return i.postgres }

func (i *infrastructure) Redis() *database.Redis { return i.redis }

func (i *infrastructure) Logger() *zap.Logger { return i.logger }

func (i *infrastructure) MetricsHandler() http.Handler { return i.metricsHandler }

func (i *infrastructure) MeterProvider() *metric.MeterProvider { return i.meterProvider }

// Shutdown tears everything down concurrently and reports every failure,
// not just the first one.
func (i *infrastructure) Shutdown(ctx context.Context) error {
	closers := []func() error{
		i.postgres.Close,
		i.redis.Close,
		i.logger.Sync,
		func() error { return observability.Shutdown(ctx, i.meterProvider, i.logger) },
	}

	errs := make(chan error, len(closers))
	for _, closeFn := range closers {
		go func(f func() error) { errs <- f() }(closeFn)
	}

	var result error
	for range closers {
		result = errors.Join(result, <-errs)
	}
	return result
}
