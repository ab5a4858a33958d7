package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/staff/internal/api"
	"github.com/samandr77/microservices/staff/internal/api/events"
	"github.com/samandr77/microservices/staff/internal/clients/mailer"
	"github.com/samandr77/microservices/staff/internal/clients/mqtt"
	"github.com/samandr77/microservices/staff/internal/clients/push"
	"github.com/samandr77/microservices/staff/internal/livesync"
	"github.com/samandr77/microservices/staff/internal/repository"
	"github.com/samandr77/microservices/staff/internal/service"
	"github.com/samandr77/microservices/staff/internal/session"
	"github.com/samandr77/microservices/staff/pkg/broker"
	"github.com/samandr77/microservices/staff/pkg/config"
	"github.com/samandr77/microservices/staff/pkg/job"
	"github.com/samandr77/microservices/staff/pkg/logger"
	"github.com/samandr77/microservices/staff/pkg/postgres"
)

const (
	ReadTimeout     = 20 * time.Second
	ShutdownTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.Logger.Level))
	slog.SetDefault(l)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	redisClient, err := session.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	panicOnErr("connect to redis", err)
	defer redisClient.Close()

	sessions := session.NewStore(session.NewRedisKV(redisClient))

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.JobChangesTopic, cfg.Kafka.AssignmentsTopic)
	defer producer.Close()

	feed := livesync.NewChangeFeed()

	var live service.LivePublisher

	if cfg.MQTT.Enabled {
		publisher := mqtt.New(l, cfg.MQTT)

		err = publisher.Connect(ctx)
		panicOnErr("connect to mqtt", err)
		defer publisher.Close()

		live = publisher
	}

	s, err := service.New(cfg, repo, sessions, producer, push.NewClient(cfg.Push), mailer.New(cfg.Mailer), feed, live)
	panicOnErr("new service", err)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.AssignmentsTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.AssignmentsTopic, eventHandler.OnJobAssigned).Consume(ctx)

		// every instance serves its own live streams, so each one reads all job changes
		feedConsumer := broker.NewBroadcastConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID+"-feed",
			cfg.Kafka.JobChangesTopic)
		defer feedConsumer.Close()

		feedConsumer.Handle(cfg.Kafka.JobChangesTopic, feed.HandleMessage).Consume(ctx)
	}

	jobs := job.NewService(l).
		RegisterJob("mark_overdue", cfg.Jobs.OverdueInterval, s.MarkOverdue).
		RegisterJob("purge_notifications", cfg.Jobs.NotificationPurgeInterval, s.PurgeNotifications).
		RegisterJob("clear_pin_locks", cfg.Jobs.PINLockCleanupInterval, s.ClearExpiredPINLocks)

	jobs.Start(ctx)
	defer jobs.Stop()

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     router,
		ReadTimeout: ReadTimeout,
		// no WriteTimeout: /jobs/live keeps the connection open and bounds each write itself
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
