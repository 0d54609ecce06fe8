// Package extractor reads utterances out of snapshot trees, one strategy per
// capture source.
package extractor

import (
	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// Extractor turns one snapshot tree into its on-screen utterance sequence
type Extractor interface {
	Extract(root *snapshot.Node) []transcript.Utterance
}
