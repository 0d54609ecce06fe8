package extractor

import (
	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// MatchResult tells a traversal whether a node was a transcript unit. A
// matched node is never searched further, even when its utterance is empty.
type MatchResult struct {
	Matched   bool
	Utterance transcript.Utterance
	// Keep is false when the matched unit normalized to empty text.
	Keep bool
}

// NotMatched is the zero MatchResult.
var NotMatched = MatchResult{}

// Matched wraps a normalized utterance.
func Matched(u transcript.Utterance, keep bool) MatchResult {
	return MatchResult{Matched: true, Utterance: u, Keep: keep}
}

// Matcher classifies a single node.
type Matcher func(n *snapshot.Node) MatchResult

// Collect walks root in pre-order and gathers the utterances of matching
// nodes without descending into them.
func Collect(root *snapshot.Node, match Matcher) []transcript.Utterance {
	var out []transcript.Utterance
	snapshot.Walk(root, func(n *snapshot.Node) bool {
		if n.Empty() {
			return false
		}
		r := match(n)
		if !r.Matched {
			return true
		}
		if r.Keep {
			out = append(out, r.Utterance)
		}
		return false
	})
	return out
}
