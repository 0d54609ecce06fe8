package writer

import (
	"context"

	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// Writer renders coalesced transcript blocks to a file
type Writer interface {
	Write(ctx context.Context, path, title string, blocks []transcript.Block) error
	// Ext is the file extension produced, including the dot.
	Ext() string
}

// Error wraps a failure to produce an output file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "write " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
