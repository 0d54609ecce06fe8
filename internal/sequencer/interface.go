package sequencer

import (
	"context"
	"time"
)

// Sequencer discovers snapshot files and orders them chronologically
type Sequencer interface {
	Sequence(ctx context.Context, dir string) (Result, error)
}

// Entry is one snapshot file with the timestamp embedded in its name.
type Entry struct {
	Path string
	Time time.Time
}

// Skipped is a candidate file left out of the sequence.
type Skipped struct {
	Path   string
	Reason string
}

// Result is the ordered sequence plus the files that could not be placed.
type Result struct {
	Entries []Entry
	Skipped []Skipped
}
