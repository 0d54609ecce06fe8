package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

const fallbackName = "transcript_export"

// outputName derives the transcript file name from the input: the directory
// base name, or the file name without its extension.
func outputName(inputPath string, isDir bool) string {
	clean := filepath.Clean(inputPath)
	if isDir {
		if abs, err := filepath.Abs(clean); err == nil {
			clean = abs
		}
		name := filepath.Base(clean)
		if name == "." || name == string(filepath.Separator) || name == "" {
			return fallbackName
		}
		return name
	}

	base := filepath.Base(clean)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return fallbackName
	}
	return name
}

// summarize writes the meeting notes next to the transcript and returns
// their path, or "" on failure.
func (p *implProcessor) summarize(ctx context.Context, name, text string) string {
	p.logger.Info(ctx, "Summarizing transcript with %s", p.cfg.Summary.Model)

	md, err := p.summarizer.Summarize(ctx, name, text)
	if err != nil {
		p.logger.Warn(ctx, "Failed to summarize transcript: %v", err)
		return ""
	}

	path := filepath.Join(p.cfg.Output.Dir, name+".summary.md")
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write summary %s: %v", path, err)
		return ""
	}
	return path
}
