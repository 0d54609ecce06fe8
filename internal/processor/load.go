package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/timbenroeck/macos-capture-transcripts/internal/sequencer"
	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// collect returns the snapshots to reconcile, in order. Files that cannot be
// placed or decoded are counted in rep and skipped.
func (p *implProcessor) collect(ctx context.Context, inputPath string, isDir bool, rep *Report) ([]transcript.Snapshot, error) {
	if !isDir {
		rep.Files = 1
		ts, _ := sequencer.ParseTimestamp(inputPath)
		snap, err := p.load(ctx, inputPath, ts)
		if err != nil {
			p.logger.Warn(ctx, "Skipping file %s: %v", inputPath, err)
			rep.SkippedDecode++
			return nil, nil
		}
		return []transcript.Snapshot{snap}, nil
	}

	res, err := p.sequencer.Sequence(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("sequence snapshots: %w", err)
	}
	rep.Files = len(res.Entries) + len(res.Skipped)
	rep.SkippedTimestamp = len(res.Skipped)

	p.logger.Info(ctx, "Found %d snapshot files with timestamps. Processing in chronological order...", len(res.Entries))

	snaps := make([]transcript.Snapshot, 0, len(res.Entries))
	for i, e := range res.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.logger.Debug(ctx, "Processing file %d/%d: %s", i+1, len(res.Entries), e.Path)

		snap, err := p.load(ctx, e.Path, e.Time)
		if err != nil {
			p.logger.Warn(ctx, "Skipping file %s: %v", e.Path, err)
			rep.SkippedDecode++
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// load decodes and extracts one snapshot file
func (p *implProcessor) load(ctx context.Context, path string, ts time.Time) (transcript.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return transcript.Snapshot{}, fmt.Errorf("read: %w", err)
	}
	root, err := snapshot.Parse(raw)
	if err != nil {
		return transcript.Snapshot{}, err
	}

	return transcript.Snapshot{
		Time:       ts,
		Source:     path,
		Utterances: p.extractor.Extract(root),
	}, nil
}
