// Package app wires configuration, storage, logging and console output into
// the createsuperuser command and runs it once.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gatepass/internal/config"
	"github.com/dmitrijs2005/gatepass/internal/console"
	"github.com/dmitrijs2005/gatepass/internal/logging"
	"github.com/dmitrijs2005/gatepass/internal/passwords"
	"github.com/dmitrijs2005/gatepass/internal/provisioner"
	"github.com/dmitrijs2005/gatepass/internal/repositories/repomanager"
	"github.com/dmitrijs2005/gatepass/internal/userstore"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	provisioner *provisioner.Provisioner
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp connects to the database, applies migrations and builds the
// provisioner. Status lines go to stdout, structured logs to stderr.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewJSONLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := newApp(ctx, c, db, repomanager.NewPostgresRepositoryManager(), console.New(os.Stdout), logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, db *sql.DB, rm repomanager.RepositoryManager, printer provisioner.Printer, logger logging.Logger) (*App, error) {
	if c.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	logger.Debug(ctx, "database ready")

	store := userstore.New(rm.Accounts(db), passwords.NewHasher(c.PasswordCost))

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		provisioner: provisioner.New(store, printer, logger),
	}, nil
}

// Run provisions the superuser once and returns the outcome.
func (app *App) Run(ctx context.Context) provisioner.Outcome {
	app.logger.Info(ctx, "provisioning superuser", "username", app.config.UserName, "email", app.config.Email)

	out := app.provisioner.EnsureAdmin(ctx, provisioner.Request{
		UserName: app.config.UserName,
		Email:    app.config.Email,
		Password: app.config.Password,
		NoInput:  app.config.NoInput,
	})

	app.logger.Info(ctx, "provisioning finished", "outcome", out.Kind.String(), "reason", string(out.Reason))
	return out
}

func (app *App) Close() error {
	return app.db.Close()
}

// ReportStartupError prints err the same way a failed creation is reported,
// for failures that happen before the provisioner exists.
func ReportStartupError(w io.Writer, err error) {
	console.New(w).Errorf("Error creating superuser: %v", err)
}
