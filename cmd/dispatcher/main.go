package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/delivery"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/health"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/reminder"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/rule"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/router"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/server"
	"github.com/aliskhannn/reminder-dispatcher/internal/channel"
	"github.com/aliskhannn/reminder-dispatcher/internal/config"
	"github.com/aliskhannn/reminder-dispatcher/internal/metrics"
	"github.com/aliskhannn/reminder-dispatcher/internal/migrations"
	"github.com/aliskhannn/reminder-dispatcher/internal/rabbitmq/queue"
	deliveryrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/delivery"
	reminderrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/reminder"
	rulerepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/rule"
	targetrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/target"
	"github.com/aliskhannn/reminder-dispatcher/internal/scheduler"
	deliverysvc "github.com/aliskhannn/reminder-dispatcher/internal/service/delivery"
	dispatchsvc "github.com/aliskhannn/reminder-dispatcher/internal/service/dispatch"
	remindersvc "github.com/aliskhannn/reminder-dispatcher/internal/service/reminder"
	rulesvc "github.com/aliskhannn/reminder-dispatcher/internal/service/rule"
	"github.com/aliskhannn/reminder-dispatcher/internal/worker"
)

const poolStatsSpec = "@every 30s"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if cfg.Database.Migrate {
		if err := migrations.Up(ctx, db.Master); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	names := queue.Names{
		Dispatch:   cfg.Notification.DispatchQueue,
		Retry:      cfg.Notification.RetryQueue,
		DeadLetter: cfg.Notification.DeadLetterQueue,
	}

	if err := queue.DeclareTopology(ch, names); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to declare queues")
	}

	q := queue.NewDispatchQueue(ch, names, cfg.Retry, cfg.Workers.Count)

	m := metrics.New(prometheus.DefaultRegisterer)

	deliveryRepo := deliveryrepo.NewRepository(db)
	reminderRepo := reminderrepo.NewRepository(db)
	ruleRepo := rulerepo.NewRepository(db)
	targetRepo := targetrepo.NewRepository(db)

	deliveryService := deliverysvc.NewService(deliveryRepo, reminderRepo, rdb, cfg.Retry)
	reminderService := remindersvc.NewService(reminderRepo, deliveryService, cfg.Notification.OverdueGrace)
	ruleService := rulesvc.NewService(ruleRepo, reminderRepo, targetRepo, deliveryService, cfg.Notification.CancelInFlightOnRegenerate)

	resolver := channel.NewResolver(cfg.Notification.Channels(), channel.DefaultSenders())
	dispatchService := dispatchsvc.NewService(reminderRepo, deliveryService, q, resolver, m, dispatchsvc.Options{
		MaxAttempts:  cfg.Notification.Attempts(),
		RetryDelay:   cfg.Notification.RetryDelay,
		RetryBackoff: cfg.Notification.RetryBackoff,
	})

	var wg sync.WaitGroup

	if cfg.Workers.Enabled {
		dispatcher := worker.NewDispatcher(q, dispatchService, deliveryService)

		wg.Add(1)
		go func() {
			defer wg.Done()
			dispatcher.Run(ctx, cfg.Workers.Count)
		}()
	}

	sched := scheduler.New(dispatchService, reminderService)

	if err := sched.Every(poolStatsSpec, func() { m.RecordDBPoolStats(db.Master.Stats()) }); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to schedule pool stats")
	}

	if cfg.Scheduler.Enabled {
		if err := sched.Schedule(ctx, cfg.Scheduler.Cron); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to schedule due reminder scan")
		}
	}

	sched.Start()

	r := router.New(router.Handlers{
		Rules:      rule.NewHandler(ruleService, val),
		Reminders:  reminder.NewHandler(reminderService, val),
		Deliveries: delivery.NewHandler(deliveryService, dispatchService, val),
		Health: health.NewHandler(map[string]health.Check{
			"postgres": db.Master.PingContext,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
	}, m, promhttp.Handler())
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("reminder dispatcher started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	sched.Stop()
	wg.Wait()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
