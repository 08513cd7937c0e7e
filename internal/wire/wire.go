// Package wire provides dependency injection for the dormant application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	cliadapter "github.com/example/dormant/internal/adapters/cli"
	"github.com/example/dormant/internal/adapters/filesystem"
	"github.com/example/dormant/internal/adapters/resilient"
	"github.com/example/dormant/internal/adapters/sqlite"
	"github.com/example/dormant/internal/app"
	"github.com/example/dormant/internal/config"
	"github.com/example/dormant/internal/db"
	"github.com/example/dormant/internal/logging"
	"github.com/example/dormant/internal/ports/primary"
)

// Options are the process-wide settings from root flags.
type Options struct {
	Dir     string // directory holding .dormant/config.jsonc and .env files
	Verbose bool
}

var (
	opts    Options
	once    sync.Once
	initErr error

	cfg      *config.Config
	logger   *logrus.Logger
	database *sql.DB

	session        *app.ReviewSessionImpl
	importService  primary.ImportService
	historyService primary.DeletionHistoryService
)

// Configure records root flag values. It must run before any accessor.
func Configure(o Options) {
	opts = o
}

// Init loads config and opens the database. Safe to call repeatedly.
func Init() error {
	once.Do(func() {
		initErr = initServices()
	})
	return initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() error {
	logger = logging.NewLogger(os.Getenv(config.EnvLogLevel))
	config.LoadEnv(opts.Dir, logger)

	loaded, err := config.LoadConfig(opts.Dir)
	if err != nil {
		return err
	}
	cfg = loaded

	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	if opts.Verbose {
		logger.SetLevel(logging.DebugLevel)
	}

	dbPath, err := cfg.ResolveDatabasePath()
	if err != nil {
		return err
	}
	database, err = db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.WithField("path", dbPath).Debug("snapshot database opened")

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	contactRepo := sqlite.NewContactRepository(database)
	callRepo := sqlite.NewCallLogRepository(database)
	messageRepo := sqlite.NewMessageLogRepository(database)
	snapshotRepo := sqlite.NewSnapshotRepository(database)
	deletionLogRepo := sqlite.NewDeletionLogRepository(database)
	sink := resilient.NewRetryingSink(contactRepo, resilient.DefaultRetryConfig(cfg.DeleteRetries), logger)

	// Create effect executor with injected adapters
	executor := app.NewEffectExecutor(sink, deletionLogRepo, logger)

	// Create services (primary ports implementation)
	pipeline := app.NewPipelineService(callRepo, messageRepo, contactRepo, cfg.Window.Policy(), logger)
	coordinator := app.NewDeletionCoordinator(executor, app.DeletionCoordinatorConfig{
		Protect:     cfg.Protect,
		Concurrency: cfg.DeleteConcurrency,
	}, logger)
	session = app.NewReviewSession(pipeline, coordinator, logger)
	importService = app.NewImportService(filesystem.NewExportReader(), snapshotRepo, logger)
	historyService = app.NewDeletionHistoryService(deletionLogRepo)

	return nil
}

// Close releases the database if it was opened.
func Close() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	return logger
}

// Database returns the snapshot database connection.
func Database() *sql.DB {
	return database
}

// Session returns the singleton ReviewSession.
func Session() primary.ReviewSession {
	return session
}

// ContactAdapter returns a new ContactAdapter writing to the given output.
func ContactAdapter(out io.Writer) *cliadapter.ContactAdapter {
	return cliadapter.NewContactAdapter(session, out)
}

// DeletionAdapter returns a new DeletionAdapter over the session's coordinator.
func DeletionAdapter(out io.Writer) *cliadapter.DeletionAdapter {
	return cliadapter.NewDeletionAdapter(session.Coordinator(), out)
}

// HistoryAdapter returns a new HistoryAdapter writing to the given output.
func HistoryAdapter(out io.Writer) *cliadapter.HistoryAdapter {
	return cliadapter.NewHistoryAdapter(historyService, out)
}

// ImportAdapter returns a new ImportAdapter writing to the given output.
func ImportAdapter(out io.Writer) *cliadapter.ImportAdapter {
	return cliadapter.NewImportAdapter(importService, out)
}

// Dir returns the configured working directory.
func Dir() string {
	return opts.Dir
}
