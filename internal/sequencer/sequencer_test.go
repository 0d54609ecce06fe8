package sequencer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timbenroeck/macos-capture-transcripts/internal/logger"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("/exports/export_2024-03-05-14-07-09.json")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local), ts)

	_, err = ParseTimestamp("export_latest.json")
	assert.Error(t, err)

	_, err = ParseTimestamp("export_2024-13-45-99-99-99.json")
	assert.Error(t, err)
}

func TestSequenceOrdersByTimestamp(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "export_2024-01-01-10-00-30.json"))
	touch(t, filepath.Join(dir, "b_2024-01-01-10-00-00.json"))
	touch(t, filepath.Join(dir, "a_2024-01-01-10-00-00.json"))
	touch(t, filepath.Join(dir, "nested", "deeper", "export_2024-01-01-09-59-59.JSON"))
	touch(t, filepath.Join(dir, "export_no_time.json"))
	touch(t, filepath.Join(dir, "notes_2024-01-01-08-00-00.txt"))
	touch(t, filepath.Join(dir, ".hidden_2024-01-01-08-00-00.json"))

	res, err := New("", logger.Nop()).Sequence(context.Background(), dir)
	require.NoError(t, err)

	var names []string
	for _, e := range res.Entries {
		names = append(names, filepath.Base(e.Path))
	}
	assert.Equal(t, []string{
		"export_2024-01-01-09-59-59.JSON",
		"a_2024-01-01-10-00-00.json",
		"b_2024-01-01-10-00-00.json",
		"export_2024-01-01-10-00-30.json",
	}, names)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, filepath.Join(dir, "export_no_time.json"), res.Skipped[0].Path)
	assert.NotEmpty(t, res.Skipped[0].Reason)
}

func TestSequenceMissingDirectory(t *testing.T) {
	_, err := New("", logger.Nop()).Sequence(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSequenceRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export_2024-01-01-10-00-00.json")
	touch(t, path)

	_, err := New("", logger.Nop()).Sequence(context.Background(), path)
	assert.Error(t, err)
}

func TestSequenceCustomPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top_2024-01-01-10-00-00.json"))
	touch(t, filepath.Join(dir, "sub", "deep_2024-01-01-10-00-01.json"))

	res, err := New("*.json", logger.Nop()).Sequence(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "top_2024-01-01-10-00-00.json", filepath.Base(res.Entries[0].Path))
}
