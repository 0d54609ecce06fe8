package processor

import (
	"errors"
	"time"
)

// ErrInputNotFound is returned when the input path does not exist or
// cannot be read.
var ErrInputNotFound = errors.New("input not found")

// Report summarizes one run.
type Report struct {
	Files            int
	SkippedTimestamp int
	SkippedDecode    int
	EmptySnapshots   int
	NoOverlap        []string
	Utterances       int
	Blocks           int
	OutputPath       string
	DocxPath         string
	SummaryPath      string
	Duration         time.Duration
}
