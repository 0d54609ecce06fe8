package sequencer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Sequence walks dir recursively and returns matching files sorted by the
// timestamp in their names. Ties are broken by file name, then path.
func (s *implSequencer) Sequence(ctx context.Context, dir string) (Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Result{}, fmt.Errorf("stat input directory: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%s is not a directory", dir)
	}
	if _, err := os.ReadDir(dir); err != nil {
		return Result{}, fmt.Errorf("read input directory: %w", err)
	}

	var res Result
	fsys := os.DirFS(dir)
	err = doublestar.GlobWalk(fsys, s.pattern, func(path string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		full := filepath.Join(dir, filepath.FromSlash(path))

		ts, err := ParseTimestamp(d.Name())
		if err != nil {
			s.logger.Warn(ctx, "Skipping file due to missing/unparsable timestamp: %s", full)
			res.Skipped = append(res.Skipped, Skipped{Path: full, Reason: err.Error()})
			return nil
		}
		res.Entries = append(res.Entries, Entry{Path: full, Time: ts})
		return nil
	}, doublestar.WithNoFollow(), doublestar.WithCaseInsensitive())
	if err != nil {
		return Result{}, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.SliceStable(res.Entries, func(i, j int) bool {
		a, b := res.Entries[i], res.Entries[j]
		if !a.Time.Equal(b.Time) {
			return a.Time.Before(b.Time)
		}
		if an, bn := filepath.Base(a.Path), filepath.Base(b.Path); an != bn {
			return an < bn
		}
		return a.Path < b.Path
	})

	s.logger.Debug(ctx, "Sequenced %d snapshot files (%d skipped) in %s", len(res.Entries), len(res.Skipped), dir)
	return res, nil
}
