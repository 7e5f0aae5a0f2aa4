// Package main wires the HTTP server for the bug tracking service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Swayam792/Bugwise-Backend/config"
	"github.com/Swayam792/Bugwise-Backend/internal/notifier"
	"github.com/Swayam792/Bugwise-Backend/internal/repository"
	"github.com/Swayam792/Bugwise-Backend/internal/search"
	"github.com/Swayam792/Bugwise-Backend/internal/transport/http/middleware"
	handlers_fiber "github.com/Swayam792/Bugwise-Backend/internal/transport/http/server/handlers-fiber"
	"github.com/Swayam792/Bugwise-Backend/internal/triage"
	"github.com/Swayam792/Bugwise-Backend/internal/usecase"
	"github.com/Swayam792/Bugwise-Backend/internal/usecase/domain"
	"github.com/Swayam792/Bugwise-Backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	index, err := search.New(cfg.Search.IndexPath, log)
	if err != nil {
		log.Errorw("search index initialization error", "error", err)
		return
	}
	defer func() {
		_ = index.Close()
	}()

	var publisher notifier.Publisher
	if cfg.AMQP.Enabled {
		broker, err := notifier.New(cfg.AMQP.URL, log)
		if err != nil {
			log.Errorw("amqp initialization error", "error", err)
			return
		}
		defer func() {
			_ = broker.Close()
		}()
		publisher = broker

		consumer, err := notifier.NewConsumer(broker, repo, log)
		if err != nil {
			log.Errorw("amqp consumer initialization error", "error", err)
			return
		}
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Errorw("notification consumer stopped", "error", err)
			}
		}()
	}

	var triager domain.Triager
	if cfg.AI.Enabled {
		triager = triage.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	}

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, index, publisher, triager, timeout, cfg.Assignment.RequireSkillMatch)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.Actor())

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.RegisterRoutes(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
