package extractor

import (
	"fmt"
	"sort"
)

// Capture sources understood by New.
const (
	SourceTeams = "teams"
	SourceZoom  = "zoom"
	SourceWebex = "webex"
)

// DefaultCaptionRegion is the description of the Teams live captions group.
const DefaultCaptionRegion = "Live Captions"

// Options tunes extraction.
type Options struct {
	// CaptionRegion restricts caption-group extraction to the AXGroup with
	// this description. Empty scans the whole document.
	CaptionRegion string
}

// New returns the Extractor for a capture source
func New(source string, opts Options) (Extractor, error) {
	switch source {
	case SourceTeams:
		return &captionGroups{region: opts.CaptionRegion}, nil
	case SourceZoom:
		return &bufferedTable{}, nil
	case SourceWebex:
		return &rowTable{}, nil
	default:
		return nil, fmt.Errorf("unknown capture source %q (want one of %v)", source, Sources())
	}
}

// Sources lists the supported capture source names.
func Sources() []string {
	s := []string{SourceTeams, SourceZoom, SourceWebex}
	sort.Strings(s)
	return s
}
