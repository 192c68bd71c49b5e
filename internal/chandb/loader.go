package chandb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/streammapparr/streammatch/internal/log"
)

// fileChannel is the on-disk entry shape of a *_channels.json database.
type fileChannel struct {
	Type        string `json:"type"`
	Callsign    string `json:"callsign"`
	ChannelName string `json:"channel_name"`
	Category    string `json:"category"`
}

// LoadDir reads every *_channels.json file in dir and builds a snapshot.
// Malformed files are logged and skipped rather than failing the whole
// load; a directory without database files yields an empty snapshot and a
// warning. Files are decoded concurrently but assembled in sorted filename
// order so premium candidate order stays deterministic.
func LoadDir(ctx context.Context, dir string, logger zerolog.Logger) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(dir, "*_channels.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn().Str(log.FieldDatabaseDir, dir).Msg("no channel database files found")
		return NewSnapshot(nil), nil
	}
	sort.Strings(files)

	perFile := make([][]Record, len(files))
	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			records, err := loadFile(file, logger)
			if err != nil {
				logger.Error().Err(err).Str(log.FieldFile, filepath.Base(file)).
					Msg("skipping unreadable channel database file")
				return nil
			}
			perFile[i] = records
			return nil
		})
	}
	_ = g.Wait()

	var all []Record
	for _, records := range perFile {
		all = append(all, records...)
	}
	snap := NewSnapshot(all)
	logger.Info().
		Int(log.FieldFiles, len(files)).
		Int(log.FieldBroadcast, snap.BroadcastCount()).
		Int(log.FieldPremium, snap.PremiumCount()).
		Msg("channel databases loaded")
	return snap, nil
}

func loadFile(path string, logger zerolog.Logger) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []fileChannel
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	skipped := 0
	for _, e := range entries {
		switch ParseChannelType(e.Type) {
		case Broadcast:
			callsign := strings.TrimSpace(e.Callsign)
			if callsign == "" {
				skipped++
				continue
			}
			records = append(records, Record{
				Type:     Broadcast,
				Callsign: callsign,
				Name:     strings.TrimSpace(e.ChannelName),
				Category: e.Category,
			})
		default:
			name := strings.TrimSpace(e.ChannelName)
			if name == "" {
				skipped++
				continue
			}
			records = append(records, Record{
				Type:     Premium,
				Name:     name,
				Category: e.Category,
			})
		}
	}
	if skipped > 0 {
		logger.Debug().Str(log.FieldFile, filepath.Base(path)).
			Int(log.FieldSkipped, skipped).
			Msg("skipped entries without callsign or channel name")
	}
	return records, nil
}

// Reload builds a fresh snapshot from dir and swaps it into the store.
// On error the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context, dir string, logger zerolog.Logger) error {
	snap, err := LoadDir(ctx, dir, logger)
	if err != nil {
		return err
	}
	s.Swap(snap)
	return nil
}
