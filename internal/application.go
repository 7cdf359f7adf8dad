package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/history"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game session on the given input and output.
// Exit, end of input and interrupt signals end the session without an error.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "session", uuid.NewString())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	slot, closeSlot, err := openSlot(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open save slot: %w", err)
	}

	defer func() {
		if err = closeSlot(); err != nil {
			log.Error("could not close save slot", "error", err)
		}
	}()

	return play(ctx, log, conf, slot, console.New(in, out))
}

func play(ctx context.Context, log *slog.Logger, conf *config.Config, slot repository.SlotRepository, term *console.Console) error {
	mode, err := term.SelectMode(ctx)
	if isSessionEnd(err) {
		log.Info("Session ended before the game started", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not select mode: %w", err)
	}

	controller, err := tictactoe.NewGameController(
		log,
		term,
		slot,
		service.NewBotService(service.RandomChooser()),
		mode,
		history.WithLimit(conf.HistoryLimit),
	)
	if err != nil {
		return fmt.Errorf("could not set up game: %w", err)
	}

	result, err := controller.Run(ctx)
	if isSessionEnd(err) {
		log.Info("Session ended", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	log.Info("Session finished", "result", string(result))

	return nil
}

func isSessionEnd(err error) bool {
	return errors.Is(err, apperror.ErrExit) || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

func openSlot(ctx context.Context, conf *config.Config) (repository.SlotRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.SaveSlot.Backend {
	case repository.BackendRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSlotRepository(redisStorage.Connection, conf.SaveSlot.Key), redisStorage.Close, nil
	case repository.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSlotRepository(sqliteStorage.Connection, conf.SaveSlot.Key), sqliteStorage.Close, nil
	case repository.BackendFile:
		return repository.NewFileSlotRepository(conf.SaveSlot.Path), noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, conf.SaveSlot.Backend)
	}
}
