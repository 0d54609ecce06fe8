package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// Process orchestrates the whole run: sequence, extract, reconcile, write.
// Only a missing input or a failed text write is fatal.
func (p *implProcessor) Process(ctx context.Context, inputPath string) (Report, error) {
	startTime := time.Now()
	var rep Report

	info, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return rep, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return rep, fmt.Errorf("stat input: %w", err)
	}

	p.logger.Info(ctx, "Processing %s transcript input: %s", p.cfg.Source, inputPath)

	// Step 1: Order and extract snapshots
	snaps, err := p.collect(ctx, inputPath, info.IsDir(), &rep)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return rep, fmt.Errorf("%w: %v", ErrInputNotFound, err)
		}
		return rep, err
	}

	// Step 2: Reconcile overlapping snapshots
	utterances := p.reconcile(ctx, snaps, &rep)

	// Step 3: Coalesce speakers and write the transcript
	blocks := transcript.Coalesce(utterances)
	rep.Utterances = len(utterances)
	rep.Blocks = len(blocks)

	name := outputName(inputPath, info.IsDir())
	rep.OutputPath = filepath.Join(p.cfg.Output.Dir, name+p.text.Ext())
	if len(utterances) == 0 {
		p.logger.Warn(ctx, "No transcript content found after processing all files")
	}
	if err := p.text.Write(ctx, rep.OutputPath, name, blocks); err != nil {
		return rep, err
	}

	// Step 4: Optional renditions never fail the run
	if p.docx != nil {
		docxPath := filepath.Join(p.cfg.Output.Dir, name+p.docx.Ext())
		if err := p.docx.Write(ctx, docxPath, name, blocks); err != nil {
			p.logger.Warn(ctx, "Failed to write docx transcript: %v", err)
		} else {
			rep.DocxPath = docxPath
		}
	}
	if p.summarizer != nil && len(blocks) > 0 {
		rep.SummaryPath = p.summarize(ctx, name, transcript.FormatBlocks(blocks))
	}

	rep.Duration = time.Since(startTime)
	p.logger.Info(ctx, "Transcript written to %s (%d utterances, %d blocks, %s)",
		rep.OutputPath, rep.Utterances, rep.Blocks, rep.Duration.Round(time.Millisecond))
	return rep, nil
}

// reconcile merges snapshots strictly in order
func (p *implProcessor) reconcile(ctx context.Context, snaps []transcript.Snapshot, rep *Report) []transcript.Utterance {
	r := transcript.NewReconciler(p.cfg.Reconcile.LookbackWindow, p.cfg.Reconcile.MinOverlapLen)

	for _, s := range snaps {
		if len(s.Utterances) == 0 {
			p.logger.Debug(ctx, "No transcript parts found in %s", s.Source)
			rep.EmptySnapshots++
			continue
		}

		m := r.Reconcile(s.Utterances)
		switch {
		case m.Seed:
			p.logger.Debug(ctx, "Seeded transcript with %d parts from %s", m.Appended, filepath.Base(s.Source))
		case m.Matched:
			p.logger.Debug(ctx, "Overlap of %d in %s, added %d new parts (from index %d)",
				m.Overlap.Size, filepath.Base(s.Source), m.Appended, m.Start)
		default:
			p.logger.Warn(ctx, "No overlap found for %s (longest run %d < %d), appending all %d parts",
				filepath.Base(s.Source), m.Overlap.Size, p.cfg.Reconcile.MinOverlapLen, m.Appended)
			rep.NoOverlap = append(rep.NoOverlap, s.Source)
		}
	}

	p.logger.Info(ctx, "Total unique transcript parts collected: %d", r.Transcript().Len())
	return r.Transcript().Utterances()
}
