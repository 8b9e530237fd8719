package root

import (
	"context"

	"github.com/mHappah3019/fittracker-sub000/internal/config"
	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

func loadConfig() (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, nil, err
	}

	path := cfg.DB.Path
	if path == "" {
		path, err = storage.ResolveDBPath()
		if err != nil {
			return nil, cfg, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, cfg, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc := engine.NewService(db)
	svc.SetEvent(engine.EventState{Active: cfg.Event.Active, Multiplier: cfg.Event.Multiplier})
	svc.SetRolloverPageSize(cfg.Rollover.PageSize)
	return svc, cfg, cleanup, nil
}
