package sequencer

import (
	"github.com/timbenroeck/macos-capture-transcripts/internal/logger"
)

// DefaultPattern matches every JSON export below the input directory.
const DefaultPattern = "**/*.json"

type implSequencer struct {
	pattern string
	logger  logger.Logger
}

// New creates a Sequencer matching files against a doublestar pattern.
func New(pattern string, log logger.Logger) Sequencer {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &implSequencer{
		pattern: pattern,
		logger:  log,
	}
}
