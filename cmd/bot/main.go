package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/srs-flashcards-bot/internal/config"
	"github.com/aliskhannn/srs-flashcards-bot/internal/delivery/telegram"
	"github.com/aliskhannn/srs-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/srs-flashcards-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/srs-flashcards-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/srs-flashcards-bot/internal/logger"
	"github.com/aliskhannn/srs-flashcards-bot/internal/repository"
	"github.com/aliskhannn/srs-flashcards-bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	loc, err := entities.ParseTimezoneLocation(cfg.Timezone)
	if err != nil {
		return err
	}
	clock := service.ClockIn(loc)

	// Initialize repositories.
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsPath)
	if err != nil {
		return err
	}
	lg.Info("question bank loaded",
		zap.Int("questions", len(questionRepo.GetAll())),
		zap.Strings("topics", questionRepo.Topics()),
	)

	backend, closeBackend, err := newDocumentBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBackend()

	progressRepo, err := repository.NewProgressRepository(ctx, backend)
	if err != nil {
		return err
	}

	// Initialize services.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	sessionService := service.NewSessionService(questionRepo, progressRepo, clock, rng)
	progressService := service.NewProgressService(questionRepo, progressRepo, clock, cfg.DailyGoal, lg)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env == "local"

	lg.Info("authorized on account",
		zap.String("username", bot.Self.UserName),
		zap.Int64("admin_id", cfg.AdminID),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("timezone", loc.String()),
	)

	handler := telegram.NewHandler(
		bot,
		lg,
		questionRepo,
		sessionService,
		progressService,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg.AdminID,
	)

	if err := handler.RegisterCommands(); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Reminders.Enabled {
		reminderService := service.NewReminderService(progressRepo, clock, cfg.Reminders.Schedule, lg)
		reminderService.SetNotifier(handler)

		g.Go(func() error {
			return reminderService.Start(ctx)
		})
	}

	g.Go(func() error {
		return handler.Run(ctx)
	})

	return g.Wait()
}

// newDocumentBackend opens the configured progress document storage.
func newDocumentBackend(ctx context.Context, cfg *config.Config) (repository.DocumentBackend, func(), error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return repository.NewFileBackend(cfg.Storage.ProgressPath), func() {}, nil
	}

	dsn, err := cfg.Storage.DSN()
	if err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.Storage.MaxConnections),
		MaxConnLifetime: cfg.Storage.MaxConnLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	documents := pgrepo.NewProgressDocumentRepository(pool)
	if err := documents.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return documents, pool.Close, nil
}
