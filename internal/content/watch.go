package content

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Store hands out the current Library and swaps it on reload.
type Store struct {
	lib atomic.Pointer[Library]
}

// NewStore wraps an initial library.
func NewStore(lib *Library) *Store {
	s := &Store{}
	s.lib.Store(lib)
	return s
}

// Library returns the current library.
func (s *Store) Library() *Library { return s.lib.Load() }

// Replace swaps in a new library.
func (s *Store) Replace(lib *Library) { s.lib.Store(lib) }

const reloadDebounce = 250 * time.Millisecond

// Watch reloads dir whenever a site file changes, until ctx is done.
// A file that fails to load keeps the previous library in place.
func (s *Store) Watch(ctx context.Context, dir, defaultName string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	logger.Info("watching content", zap.String("dir", dir))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isSiteFile(filepath.Base(ev.Name)) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// editors save in bursts
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			lib, err := LoadDir(dir, defaultName)
			if err != nil {
				logger.Warn("content reload failed", zap.Error(err))
				continue
			}
			s.Replace(lib)
			logger.Info("content reloaded", zap.Strings("sites", lib.Names()))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("content watcher error", zap.Error(err))
		}
	}
}
