package chandb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeDB(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "cable_channels.json", `[
		{"type": "Premium", "channel_name": "CNN", "category": "News"},
		{"type": "Premium", "channel_name": "HBO", "category": "Movies"},
		{"type": "Premium", "channel_name": "", "category": "Dropped"}
	]`)
	writeDB(t, dir, "ota_channels.json", `[
		{"type": "Broadcast (OTA)", "callsign": "KABC-TV", "channel_name": "ABC 7", "category": "Local"},
		{"type": "Broadcast (OTA)", "callsign": "", "channel_name": "No Callsign"},
		{"type": "Premium", "channel_name": "Showtime", "category": "Movies"}
	]`)
	writeDB(t, dir, "ignored.json", `not a database file`)

	snap, err := LoadDir(context.Background(), dir, zerolog.Nop())
	require.NoError(t, err)

	require.Equal(t, 1, snap.BroadcastCount())
	require.Equal(t, 3, snap.PremiumCount())
	// Premium candidates follow sorted filename order.
	require.Equal(t, []string{"CNN", "HBO", "Showtime"}, snap.PremiumNames())

	rec := snap.ByCallsign("KABC")
	require.NotNil(t, rec)
	require.Equal(t, "ABC 7", rec.Name)
	require.Equal(t, "Local", rec.Category)
}

func TestLoadDirSkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "bad_channels.json", `{broken`)
	writeDB(t, dir, "good_channels.json", `[{"type": "Premium", "channel_name": "CNN"}]`)

	snap, err := LoadDir(context.Background(), dir, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, []string{"CNN"}, snap.PremiumNames())
}

func TestLoadDirEmptyDirectory(t *testing.T) {
	snap, err := LoadDir(context.Background(), t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 0, snap.BroadcastCount())
	require.Equal(t, 0, snap.PremiumCount())
}

func TestLoadDirCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, t.TempDir(), zerolog.Nop())
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreReload(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "cable_channels.json", `[{"type": "Premium", "channel_name": "CNN"}]`)

	store := NewStore()
	require.NoError(t, store.Reload(context.Background(), dir, zerolog.Nop()))
	require.Equal(t, []string{"CNN"}, store.Snapshot().PremiumNames())

	writeDB(t, dir, "extra_channels.json", `[{"type": "Premium", "channel_name": "HBO"}]`)
	require.NoError(t, store.Reload(context.Background(), dir, zerolog.Nop()))
	require.Equal(t, []string{"CNN", "HBO"}, store.Snapshot().PremiumNames())
}

func TestStoreReloadKeepsSnapshotOnError(t *testing.T) {
	dir := t.TempDir()
	writeDB(t, dir, "cable_channels.json", `[{"type": "Premium", "channel_name": "CNN"}]`)

	store := NewStore()
	require.NoError(t, store.Reload(context.Background(), dir, zerolog.Nop()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, store.Reload(ctx, dir, zerolog.Nop()))
	require.Equal(t, []string{"CNN"}, store.Snapshot().PremiumNames())
}
