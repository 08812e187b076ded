// Package cli implements the interactive moodkeeper front end: a small REPL
// over the record store. It owns no record state of its own; every action is
// a store call, and the only thing kept here is the session.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/config"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/session"
	"github.com/dmitrijs2005/moodkeeper/internal/store"
)

type App struct {
	config   *config.Config
	store    *store.Store
	sessions *session.Manager
	db       *sql.DB
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	adminUnlocked bool
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := store.OpenDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DBPath, "err", err)
		return nil, err
	}

	return &App{
		config:   cfg,
		store:    store.New(db, log.With("component", "store")),
		sessions: session.NewManager(),
		db:       db,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

func (a *App) username() string {
	return a.sessions.Username()
}

// openBoard returns the key of the board the user currently has open.
func (a *App) openBoard() string {
	if s := a.sessions.Current(); s != nil {
		return s.Board
	}
	return ""
}

// requireLogin returns the active session or tells the user to log in.
func (a *App) requireLogin() (*session.Session, error) {
	s := a.sessions.Current()
	if s == nil {
		fmt.Fprintln(a.out, "Please log in first")
		return nil, common.ErrNotLoggedIn
	}
	return s, nil
}

func (a *App) Run(ctx context.Context) {
	// command lines and prompt answers go through the same buffered reader
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	s := a.sessions.Current()
	if s == nil {
		return ""
	}
	out := s.Username
	if s.Board != "" {
		out += " @" + s.Board
	}
	if a.adminUnlocked {
		out += " [admin]"
	}
	return out
}
