package extractor

import (
	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

// captionGroups reads live captions rendered as nested groups:
//
//	AXGroup
//	├── AXGroup → AXStaticText (speaker)
//	└── AXStaticText (text)
type captionGroups struct {
	region string
}

func (e *captionGroups) Extract(root *snapshot.Node) []transcript.Utterance {
	scope := root
	if e.region != "" {
		scope = snapshot.Find(root, snapshot.ByRole(snapshot.RoleGroup, e.region))
		if scope == nil {
			return nil
		}
	}
	return Collect(scope, matchCaptionGroup)
}

func matchCaptionGroup(n *snapshot.Node) MatchResult {
	if !n.Is(snapshot.RoleGroup) || len(n.Children()) != 2 {
		return NotMatched
	}
	label, body := n.Child(0), n.Child(1)
	if !label.Is(snapshot.RoleGroup) || !body.Is(snapshot.RoleStaticText) {
		return NotMatched
	}
	text, ok := body.Value()
	if !ok {
		return NotMatched
	}
	speaker, ok := speakerLabel(label)
	if !ok {
		return NotMatched
	}

	u, keep := transcript.NewUtterance(speaker, text)
	return Matched(u, keep)
}

// speakerLabel prefers the single static-text descendant of the label group
// and otherwise takes the first static-text value in pre-order.
func speakerLabel(group *snapshot.Node) (string, bool) {
	texts := snapshot.Descendants(group, snapshot.RoleStaticText)
	if len(texts) == 1 {
		if v, ok := texts[0].Value(); ok {
			return v, true
		}
	}
	for _, t := range texts {
		if v, ok := t.Value(); ok {
			return v, true
		}
	}
	return "", false
}
