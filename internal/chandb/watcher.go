package chandb

import (
	"context"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/streammapparr/streammatch/internal/log"
)

// watchSettle is how long the watcher waits after the last filesystem
// event before reloading, so a batch of file writes triggers one reload.
const watchSettle = 500 * time.Millisecond

// Watch reloads the store whenever a *_channels.json file in dir changes.
// It blocks until ctx is done or the watcher fails.
func Watch(ctx context.Context, dir string, store *Store, logger zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	logger.Info().Str(log.FieldDatabaseDir, dir).Msg("watching channel databases")

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, "_channels.json") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchSettle)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(watchSettle)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("channel database watch error")

		case <-fire:
			timer = nil
			fire = nil
			if err := store.Reload(ctx, dir, logger); err != nil {
				logger.Error().Err(err).Str(log.FieldDatabaseDir, dir).
					Msg("channel database reload failed, keeping previous snapshot")
			}
		}
	}
}
