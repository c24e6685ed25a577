// Package app wires configuration, logging, storage and the to-do services
// into one application value.
package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nhle/todolists/internal/logging"
	"github.com/nhle/todolists/internal/model"
	"github.com/nhle/todolists/internal/store"
	"github.com/nhle/todolists/internal/todo"
)

// App holds the collaborators a command needs.
type App struct {
	Config *model.AppConfig
	Logger *log.Logger
	Lists  *todo.Lists
	Items  *todo.Items

	store *store.SQLiteStore
}

// New opens the configured database and builds the services.
// Log output goes to logOut.
func New(cfg *model.AppConfig, logOut io.Writer, opts ...todo.Option) (*App, error) {
	logger := logging.New(logOut, cfg.Log)

	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", cfg.Database.Path, err)
	}
	logger.Debug("store opened", "path", cfg.Database.Path)

	opts = append([]todo.Option{todo.WithDefaultDueIn(cfg.DefaultDueIn())}, opts...)
	return &App{
		Config: cfg,
		Logger: logger,
		Lists:  todo.NewLists(s, logger.WithPrefix("lists"), opts...),
		Items:  todo.NewItems(s, logger.WithPrefix("items"), opts...),
		store:  s,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.store.Close()
}
