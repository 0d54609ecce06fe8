package extractor

import (
	"strings"

	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// rowTable reads transcript tables where every row carries its own speaker,
// timestamp and dialogue.
type rowTable struct{}

func (e *rowTable) Extract(root *snapshot.Node) []transcript.Utterance {
	table := findTable(root)
	if table == nil {
		return nil
	}

	var out []transcript.Utterance
	for _, row := range table.Children() {
		if !row.Is(snapshot.RoleRow) {
			continue
		}
		cell := firstCell(row)
		if !cell.Is(snapshot.RoleCell) {
			continue
		}
		if u, ok := readRow(cell); ok {
			out = append(out, u)
		}
	}
	return out
}

// readRow requires a speaker, a timestamp and dialogue; anything less drops
// the row.
func readRow(cell *snapshot.Node) (transcript.Utterance, bool) {
	var speaker, timestamp, dialogue string
	for _, c := range cell.Children() {
		switch c.Role() {
		case snapshot.RoleStaticText:
			v, _ := c.Value()
			v = strings.TrimSpace(v)
			switch {
			case IsClock(v):
				timestamp = v
			case !strings.Contains(v, ":"):
				speaker = v
			}
		case snapshot.RoleScrollArea:
			if dialogue != "" {
				continue
			}
			for _, g := range c.Children() {
				if g.Is(snapshot.RoleTextArea) {
					dialogue, _ = g.Value()
					break
				}
			}
		}
	}

	if speaker == "" || timestamp == "" || strings.TrimSpace(dialogue) == "" {
		return transcript.Utterance{}, false
	}
	return timedUtterance(speaker, timestamp, dialogue)
}
