// Package transcript reconciles overlapping caption snapshots into one
// de-duplicated transcript and renders it as speaker blocks.
package transcript

import (
	"regexp"
	"strings"
	"time"
)

// UnknownSpeaker labels utterances whose speaker could not be read.
const UnknownSpeaker = "Unknown Speaker"

var reSpeakerSuffix = regexp.MustCompile(`\s*\(.*\)\s*$`)

// Utterance is one normalized caption line. Timestamp is only set by
// table-sourced captures and does not take part in equality.
type Utterance struct {
	Speaker   string
	Text      string
	Timestamp string
}

// NewUtterance normalizes speaker and text. ok is false when the text is
// empty after normalization.
func NewUtterance(speaker, text string) (Utterance, bool) {
	u := Utterance{
		Speaker: NormalizeSpeaker(speaker),
		Text:    NormalizeText(text),
	}
	return u, u.Text != ""
}

// Same reports whether two utterances carry the same speaker and text.
func (u Utterance) Same(o Utterance) bool {
	return u.Speaker == o.Speaker && u.Text == o.Text
}

// NormalizeText collapses whitespace runs to single spaces and trims the ends.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeSpeaker strips a trailing parenthetical such as "(Guest)".
func NormalizeSpeaker(s string) string {
	return strings.TrimSpace(reSpeakerSuffix.ReplaceAllString(NormalizeText(s), ""))
}

// Snapshot is the utterance sequence extracted from one capture.
type Snapshot struct {
	Time       time.Time
	Source     string
	Utterances []Utterance
}
