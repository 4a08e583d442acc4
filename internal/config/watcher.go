package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"chainsentry/internal/detect"

	"go.uber.org/zap"
)

type ReloadFunc func(detect.KnownAddresses) error

// Watcher polls the known-address file and hands every changed version to reload.
type Watcher struct {
	logs     *zap.SugaredLogger
	path     string
	interval time.Duration
	reload   ReloadFunc
	modTime  time.Time
	size     int64
}

func NewWatcher(logger *zap.SugaredLogger, path string, interval time.Duration, reload ReloadFunc) *Watcher {
	return &Watcher{
		logs:     logger,
		path:     path,
		interval: interval,
		reload:   reload,
	}
}

func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changed, err := w.Poll()
			if err != nil {
				w.logs.Errorw("known addresses reload failed",
					"path", w.path,
					"error", err)
				continue
			}
			if changed {
				w.logs.Infow("known addresses reloaded", "path", w.path)
			}
		}
	}
}

// Poll reloads the file if it changed since the last successful poll.
func (w *Watcher) Poll() (bool, error) {
	info, err := os.Stat(w.path)
	if err != nil {
		return false, fmt.Errorf("stat known addresses: %w", err)
	}
	if info.ModTime().Equal(w.modTime) && info.Size() == w.size {
		return false, nil
	}

	known, err := LoadKnownAddresses(w.path)
	if err != nil {
		return false, err
	}
	if err := w.reload(known); err != nil {
		return false, fmt.Errorf("apply known addresses: %w", err)
	}

	w.modTime = info.ModTime()
	w.size = info.Size()
	return true, nil
}
