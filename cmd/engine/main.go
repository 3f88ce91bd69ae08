package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"skillbridge-engine/internal/auth"
	"skillbridge-engine/internal/config"
	"skillbridge-engine/internal/events"
	"skillbridge-engine/internal/httpapi"
	"skillbridge-engine/internal/recommend"
	"skillbridge-engine/internal/scheduler"
	"skillbridge-engine/internal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("engine exited")
	}
}

func run(log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("SKILLBRIDGE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// Single-instance guard: two engines on one data dir would fight over
	// the sqlite file.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("data dir lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another engine instance holds %s", lock.Path())
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		raw, err := config.Load(userCfgPath)
		if err != nil {
			return raw, err
		}
		normalized, vr := config.NormalizeAndValidate(raw)
		if !vr.OK() {
			return raw, fmt.Errorf("invalid config: %v", vr.Errors)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load (%s): %w", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "skillbridge.db")
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		return err
	}

	users := store.Users{DB: db.Pool}
	sessions := store.Sessions{DB: db.Pool}

	seed := func() (int, error) {
		return store.SeedUsers(ctx, users, auth.HashPassword)
	}
	if cfg.Seed.Enabled {
		added, err := seed()
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if added > 0 {
			log.Info().Int("added", added).Msg("seeded demo users")
		}
	}

	secret := os.Getenv(cfg.Auth.SecretEnv)
	tokens, err := auth.NewTokens(secret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	if err != nil {
		return fmt.Errorf("auth setup (%s): %w", cfg.Auth.SecretEnv, err)
	}

	hub := events.NewHub()
	engine := recommend.New(users, log.With().Str("component", "recommend").Logger(), cfg.Recommend.Parallelism)

	// Background sweep flipping overdue pending sessions to expired.
	go scheduler.Every(ctx,
		time.Duration(cfg.Sessions.ExpireSweepSeconds)*time.Second,
		"session-expiry",
		log.With().Str("component", "scheduler").Logger(),
		func(ctx context.Context) error {
			n, err := sessions.ExpirePending(ctx, time.Now().UTC())
			if err != nil {
				return err
			}
			if n > 0 {
				hub.Publish(events.MakeEvent("", events.TypeSessionsExpired, 1, map[string]any{"count": n}))
			}
			return nil
		})

	mux := httpapi.NewMux(httpapi.Deps{
		Engine:      engine,
		Users:       users,
		Sessions:    sessions,
		Tokens:      tokens,
		Hub:         hub,
		Log:         log.With().Str("component", "http").Logger(),
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		SeedUsers:   seed,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog(log),
		httpapi.Recover(log),
		httpapi.Cors,
		httpapi.RateLimit(cfg.HTTP.RatePerSecond, cfg.HTTP.Burst),
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", "http://"+addr).Str("db", dbPath).Msg("engine listening")

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	log.Info().Msg("engine stopped")
	return nil
}
