// Package cli implements the shadowevents command tree. Each subcommand is a
// thin view over the remote API: one request, one rendered result.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"shadow-events-cli/internal/api"
	"shadow-events-cli/internal/pkg/config"
	"shadow-events-cli/internal/pkg/token"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger
	tokens *token.Store
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	tokenPath, err := cfg.Token.ResolvePath()
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		logger: newLogger(cfg.Log),
		tokens: token.NewStore(tokenPath),
	}, nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// anonClient returns a client without credentials, for login and signup.
func (a *App) anonClient() (*api.Client, error) {
	return api.NewClient(a.cfg.API, "", a.logger)
}

// authedClient returns a client carrying the stored bearer token.
func (a *App) authedClient() (*api.Client, error) {
	bearer, err := a.tokens.Load()
	if err != nil {
		if errors.Is(err, token.ErrNotLoggedIn) {
			return nil, errors.New("not logged in; run `shadowevents login` first")
		}
		return nil, err
	}
	if err := token.CheckExpiry(bearer, time.Now()); err != nil {
		return nil, errors.New("your session has expired; run `shadowevents login` again")
	}
	return api.NewClient(a.cfg.API, bearer, a.logger)
}

// requireRole fails fast client-side when the stored token's role claim does
// not cover the command; the server still enforces authorization.
func (a *App) requireRole(role string) error {
	bearer, err := a.tokens.Load()
	if err != nil {
		return err
	}
	claims, err := token.Peek(bearer)
	if err != nil {
		return nil
	}
	if claims.Role != "" && claims.Role != role {
		return fmt.Errorf("this command needs the %q role (logged in as %q)", role, claims.Role)
	}
	return nil
}
