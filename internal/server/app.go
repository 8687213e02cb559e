// Package server initializes and runs the main application server.
// It opens the database, restores outstanding expiry schedules, and starts
// the scheduler, notification dispatcher and gRPC endpoint, shutting all of
// them down gracefully on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lasttx/willkeeper/internal/cryptox"
	"github.com/lasttx/willkeeper/internal/logging"
	"github.com/lasttx/willkeeper/internal/notify"
	"github.com/lasttx/willkeeper/internal/scheduler"
	"github.com/lasttx/willkeeper/internal/server/config"
	"github.com/lasttx/willkeeper/internal/server/repositories/repomanager"
	"github.com/lasttx/willkeeper/internal/server/services"
	"github.com/lasttx/willkeeper/internal/transfer"

	gs "github.com/lasttx/willkeeper/internal/server/grpc"
)

// messageKeySalt pins the KDF salt for the at-rest message key. Rotating it
// invalidates every stored personal message.
var messageKeySalt = []byte("willkeeper.message.v1")

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	scheduler         *scheduler.MemoryScheduler
	dispatcher        *notify.AsyncDispatcher
	willService       *services.WillService
	attachmentService *services.AttachmentService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	cipher, err := cryptox.NewCipher(cryptox.DeriveKey([]byte(c.SecretKey), messageKeySalt))
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager(cipher)
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	sched := scheduler.NewMemoryScheduler(logger)
	dispatcher := notify.NewAsyncDispatcher(notify.NewLogSender(logger), c.NotifyQueueSize, logger)

	ws := services.NewWillService(db, rm, sched, dispatcher, transfer.NewLedger(), c, logger)
	as := services.NewAttachmentService(db, rm, c)

	return &App{
		config:            c,
		logger:            logger,
		db:                db,
		scheduler:         sched,
		dispatcher:        dispatcher,
		willService:       ws,
		attachmentService: as,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.willService, app.attachmentService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.scheduler.Run(ctx, app.willService.HandleScheduledAction)
	}()

	// Timer registrations are in-process; the store decides what to re-arm.
	if err := app.willService.RestoreSchedules(ctx); err != nil {
		app.logger.Error(ctx, "schedule restore failed", "error", err.Error())
		cancelFunc()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.dispatcher.Close()
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err.Error())
	}
}
