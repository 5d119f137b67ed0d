package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/carehub-api/internal/config"
	appointmentHandler "github.com/jwalitptl/carehub-api/internal/handler/appointment"
	"github.com/jwalitptl/carehub-api/internal/handler/health"
	notificationHandler "github.com/jwalitptl/carehub-api/internal/handler/notification"
	patientHandler "github.com/jwalitptl/carehub-api/internal/handler/patient"
	promhandler "github.com/jwalitptl/carehub-api/internal/handler/prometheus"
	providerHandler "github.com/jwalitptl/carehub-api/internal/handler/provider"
	"github.com/jwalitptl/carehub-api/internal/middleware"
	"github.com/jwalitptl/carehub-api/internal/repository/memory"
	"github.com/jwalitptl/carehub-api/internal/router"
	"github.com/jwalitptl/carehub-api/internal/seed"
	appointmentService "github.com/jwalitptl/carehub-api/internal/service/appointment"
	eventService "github.com/jwalitptl/carehub-api/internal/service/event"
	notificationService "github.com/jwalitptl/carehub-api/internal/service/notification"
	patientService "github.com/jwalitptl/carehub-api/internal/service/patient"
	providerService "github.com/jwalitptl/carehub-api/internal/service/provider"
	"github.com/jwalitptl/carehub-api/pkg/logger"
	"github.com/jwalitptl/carehub-api/pkg/messaging"
	"github.com/jwalitptl/carehub-api/pkg/messaging/redis"
	"github.com/jwalitptl/carehub-api/pkg/metrics"
	"github.com/jwalitptl/carehub-api/pkg/simulate"
	"github.com/jwalitptl/carehub-api/pkg/worker"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level: logger.ParseLevel(cfg.Log.Level),
		JSON:  cfg.Log.JSON,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal(err, "server exited with error")
	}
	log.Info("server exited properly")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(cfg.Metrics.Namespace, registry)

	sim := simulate.New(simulate.Config{
		MinDelay:    cfg.Simulation.MinDelay,
		MaxDelay:    cfg.Simulation.MaxDelay,
		FailureRate: cfg.Simulation.FailureRate,
		Seed:        cfg.Simulation.Seed,
	}, m)

	// Seed once at startup
	repos := memory.NewStore(seed.Generate(time.Now())).Repositories()
	events := eventService.NewEventService(repos.Outbox, log.With("event_service"))

	broker, err := newBroker(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer broker.Close()

	processor, err := worker.NewOutboxProcessor(repos.Outbox, broker, worker.OutboxProcessorConfig{
		BatchSize:     cfg.Outbox.BatchSize,
		PollInterval:  cfg.Outbox.PollInterval,
		RetryAttempts: cfg.Outbox.RetryAttempts,
		RetryDelay:    cfg.Outbox.RetryDelay,
	}, log, m)
	if err != nil {
		return err
	}
	go processor.Start(ctx)
	go worker.NewOutboxCleanupWorker(repos.Outbox, cfg.Outbox.Retention, cfg.Outbox.CleanupInterval, log).Start(ctx)

	var metricsH *promhandler.Handler
	if cfg.Metrics.Enabled {
		metricsH = promhandler.New(registry)
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins

	routerConfig := router.RouterConfig{
		ServiceName:    "carehub-api",
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxBodySize:    cfg.Server.MaxBodySize,
		CORSConfig:     corsConfig,
	}
	if cfg.RateLimit.Enabled {
		routerConfig.RateLimit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		routerConfig.RateBurst = cfg.RateLimit.Burst
	}

	r := router.NewRouter(
		routerConfig,
		log,
		m,
		metricsH,
		health.NewHandler(health.Checker{Name: "broker", Check: broker.Ping}),
		patientHandler.NewHandler(patientService.NewService(repos.Patients, repos.Appointments, repos.Vitals, repos.Notes, sim, events, log)),
		appointmentHandler.NewHandler(appointmentService.NewService(repos.Appointments, sim, events, log)),
		providerHandler.NewHandler(providerService.NewService(repos.Providers, repos.Appointments, sim)),
		notificationHandler.NewHandler(notificationService.NewService(repos.Notifications, sim, events, log)),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func newBroker(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (messaging.Broker, error) {
	if cfg.Redis.URL == "" {
		log.Info("no Redis URL configured, events will only be logged")
		return messaging.NewLogBroker(log), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	broker, err := redis.NewRedisBroker(connectCtx, redis.Config{
		URL:           cfg.Redis.URL,
		ChannelPrefix: cfg.Redis.ChannelPrefix,
		MaxRetries:    cfg.Redis.MaxRetries,
		RetryBackoff:  cfg.Redis.RetryBackoff,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
	}, log, m)
	if err != nil {
		return nil, err
	}
	return broker, nil
}
