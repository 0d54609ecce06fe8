package extractor

import (
	"strings"

	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// bufferedTable reads transcript tables where a row with an image marker
// names the next speaker, a row starting with a clock time opens a new line,
// and any other text row continues the current line.
type bufferedTable struct{}

type lineBuffer struct {
	speaker   string
	timestamp string
	parts     []string
	out       []transcript.Utterance
}

func (b *lineBuffer) flush() {
	if b.speaker != "" && b.timestamp != "" && len(b.parts) > 0 {
		if u, ok := timedUtterance(b.speaker, b.timestamp, strings.Join(b.parts, " ")); ok {
			b.out = append(b.out, u)
		}
	}
	b.parts = nil
}

func (e *bufferedTable) Extract(root *snapshot.Node) []transcript.Utterance {
	table := findTable(root)
	if table == nil {
		return nil
	}

	var buf lineBuffer
	for _, row := range table.Children() {
		cell := firstCell(row)
		if cell == nil || len(cell.Children()) == 0 {
			continue
		}
		fragments, hasImage := classifyCell(cell)

		switch {
		case hasImage:
			buf.flush()
			buf.timestamp = ""
			buf.speaker = transcript.UnknownSpeaker
			if len(fragments) > 0 {
				if s := transcript.NormalizeSpeaker(fragments[0]); s != "" {
					buf.speaker = s
				}
			}
		case len(fragments) == 0 || buf.speaker == "":
			continue
		case IsClock(fragments[0]):
			buf.flush()
			buf.timestamp = strings.TrimSpace(fragments[0])
			buf.parts = append(buf.parts, fragments[1:]...)
		default:
			buf.parts = append(buf.parts, fragments...)
		}
	}
	buf.flush()
	return buf.out
}

// classifyCell splits a cell's children into text fragments and an image
// marker flag.
func classifyCell(cell *snapshot.Node) ([]string, bool) {
	var fragments []string
	hasImage := false
	for _, c := range cell.Children() {
		switch c.Role() {
		case snapshot.RoleImage:
			hasImage = true
		case snapshot.RoleTextArea, snapshot.RoleStaticText:
			if v, ok := c.Value(); ok {
				if v = transcript.NormalizeText(v); v != "" {
					fragments = append(fragments, v)
				}
			}
		}
	}
	return fragments, hasImage
}
