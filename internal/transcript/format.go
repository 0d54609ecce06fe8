package transcript

import "strings"

// Block is a run of consecutive utterances by one speaker.
type Block struct {
	Speaker   string
	Timestamp string
	Text      string
}

// Header renders the block's speaker line.
func (b Block) Header() string {
	speaker := b.Speaker
	if speaker == "" {
		speaker = UnknownSpeaker
	}
	if b.Timestamp != "" {
		return "[" + speaker + "] " + b.Timestamp
	}
	return "[" + speaker + "]"
}

// Coalesce merges consecutive same-speaker utterances. A block keeps the
// timestamp of its first utterance.
func Coalesce(us []Utterance) []Block {
	var blocks []Block
	var parts []string
	var cur Block

	flush := func() {
		if len(parts) > 0 {
			cur.Text = strings.Join(parts, " ")
			blocks = append(blocks, cur)
		}
		parts = parts[:0]
	}

	for i, u := range us {
		if i == 0 || u.Speaker != cur.Speaker {
			flush()
			cur = Block{Speaker: u.Speaker, Timestamp: u.Timestamp}
		}
		if u.Text != "" {
			parts = append(parts, u.Text)
		}
	}
	flush()
	return blocks
}

// FormatBlocks renders blocks separated by a blank line.
func FormatBlocks(blocks []Block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(b.Header())
		sb.WriteString("\n")
		sb.WriteString(b.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Format coalesces and renders a transcript. An empty transcript renders as "".
func Format(us []Utterance) string {
	return FormatBlocks(Coalesce(us))
}
