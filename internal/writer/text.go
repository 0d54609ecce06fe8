package writer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

type textWriter struct{}

func (w *textWriter) Ext() string { return ".txt" }

// Write renders blocks as text. An empty block list produces an empty file.
func (w *textWriter) Write(ctx context.Context, path, title string, blocks []transcript.Block) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &Error{Path: path, Err: fmt.Errorf("create output dir: %w", err)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{Path: path, Err: fmt.Errorf("close: %w", cerr)}
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(transcript.FormatBlocks(blocks)); err != nil {
		return &Error{Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &Error{Path: path, Err: fmt.Errorf("flush: %w", err)}
	}
	return nil
}
