package commands

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/logging"
	"tableflip.dev/weekend/pkg/store"
)

// session is everything a command needs to act on the saved weekend.
type session struct {
	cfg     store.Config
	log     *zap.Logger
	store   *store.Store
	planner *app.Planner
}

// openSession loads config, builds the logger and store, then hydrates a
// planner from disk.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogLevel(), cfg.LogFormat())
	if err != nil {
		return nil, err
	}
	st, err := store.Load(cfg, store.WithLogger(log))
	if err != nil {
		return nil, err
	}
	p := app.New(st, app.WithLogger(log))
	if err := p.Hydrate(ctx); err != nil {
		return nil, err
	}
	log.Debug("session open", zap.String("path", cfg.BasePath()))
	return &session{cfg: cfg, log: log, store: st, planner: p}, nil
}

func (s *session) Close() {
	_ = s.log.Sync()
}
