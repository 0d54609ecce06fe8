package extractor

import (
	"regexp"
	"strings"

	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

var reClock = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// IsClock reports whether s looks like HH:MM or HH:MM:SS.
func IsClock(s string) bool {
	return reClock.MatchString(strings.TrimSpace(s))
}

// findTable returns the first AXTable in pre-order, root included.
func findTable(root *snapshot.Node) *snapshot.Node {
	return snapshot.Find(root, snapshot.ByRole(snapshot.RoleTable, ""))
}

// firstCell returns the first child of a row, or nil.
func firstCell(row *snapshot.Node) *snapshot.Node {
	return row.Child(0)
}

// timedUtterance normalizes a tabular line. ok is false for empty dialogue.
func timedUtterance(speaker, timestamp, text string) (transcript.Utterance, bool) {
	u, ok := transcript.NewUtterance(speaker, text)
	u.Timestamp = strings.TrimSpace(timestamp)
	return u, ok
}
