package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timbenroeck/macos-capture-transcripts/internal/snapshot"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

const teamsExport = `{
  "role": "AXWindow",
  "title": "Meeting | Microsoft Teams",
  "children": [
    {"role": "AXGroup", "description": "Chat", "children": [
      {"role": "AXGroup", "children": [
        {"role": "AXGroup", "children": [{"role": "AXStaticText", "value": "Bot"}]},
        {"role": "AXStaticText", "value": "not a caption"}
      ]}
    ]},
    {"role": "AXGroup", "description": "Live Captions", "children": [
      {"role": "AXGroup", "children": [
        {"role": "AXGroup", "children": [
          {"role": "AXGroup", "children": [
            {"role": "AXGroup", "children": [{"role": "AXStaticText", "value": "Jane Doe (Guest)"}]},
            {"role": "AXStaticText", "value": "Hello   world  "}
          ]},
          {"role": "AXGroup", "children": [
            {"role": "AXGroup", "children": [{"role": "AXStaticText", "value": "John Smith"}]},
            {"role": "AXStaticText", "value": "   "}
          ]}
        ]},
        {"role": "AXGroup", "children": [
          {"role": "AXGroup", "children": [
            {"role": "AXImage", "description": "avatar"},
            {"role": "AXGroup", "children": [{"role": "AXStaticText", "value": "John Smith"}]},
            {"role": "AXStaticText", "value": "(Organizer)"}
          ]},
          {"role": "AXStaticText", "value": "Can everyone hear me?"}
        ]}
      ]}
    ]}
  ]
}`

func mustParse(t *testing.T, raw string) *snapshot.Node {
	t.Helper()
	root, err := snapshot.Parse([]byte(raw))
	require.NoError(t, err)
	return root
}

func TestCaptionGroupsExtract(t *testing.T) {
	e, err := New(SourceTeams, Options{CaptionRegion: DefaultCaptionRegion})
	require.NoError(t, err)

	got := e.Extract(mustParse(t, teamsExport))
	assert.Equal(t, []transcript.Utterance{
		{Speaker: "Jane Doe", Text: "Hello world"},
		{Speaker: "John Smith", Text: "Can everyone hear me?"},
	}, got)
}

func TestCaptionGroupsRequiresRegion(t *testing.T) {
	e, err := New(SourceTeams, Options{CaptionRegion: "Some Other Region"})
	require.NoError(t, err)

	assert.Empty(t, e.Extract(mustParse(t, teamsExport)))
}

func TestCaptionGroupsWholeDocument(t *testing.T) {
	e, err := New(SourceTeams, Options{})
	require.NoError(t, err)

	got := e.Extract(mustParse(t, teamsExport))
	require.Len(t, got, 3)
	assert.Equal(t, transcript.Utterance{Speaker: "Bot", Text: "not a caption"}, got[0])
}

func TestCaptionGroupsRootIsRegion(t *testing.T) {
	raw := `{"role": "AXGroup", "description": "Live Captions", "children": [
	  {"role": "AXGroup", "children": [
	    {"role": "AXGroup", "children": [{"role": "AXStaticText", "value": "A"}]},
	    {"role": "AXStaticText", "value": "first"}
	  ]},
	  {"role": "AXGroup", "children": [
	    {"role": "AXGroup", "children": [{"role": "AXStaticText", "value": "B"}]},
	    {"role": "AXStaticText"}
	  ]}
	]}`

	e, err := New(SourceTeams, Options{CaptionRegion: DefaultCaptionRegion})
	require.NoError(t, err)

	assert.Equal(t, []transcript.Utterance{{Speaker: "A", Text: "first"}}, e.Extract(mustParse(t, raw)))
}

func TestMatchCaptionGroup(t *testing.T) {
	st := func(v string) *snapshot.Node {
		return snapshot.NewNode(snapshot.RoleStaticText, map[string]string{snapshot.AttrValue: v})
	}
	group := func(children ...*snapshot.Node) *snapshot.Node {
		return snapshot.NewNode(snapshot.RoleGroup, nil, children...)
	}

	tests := []struct {
		name    string
		node    *snapshot.Node
		matched bool
		keep    bool
		speaker string
	}{
		{"unit", group(group(st("A")), st("hi")), true, true, "A"},
		{"empty text still matches", group(group(st("A")), st(" ")), true, false, "A"},
		{"nested speaker fallback", group(group(group(st("B"), st("x"))), st("hi")), true, true, "B"},
		{"three children", group(group(st("A")), st("hi"), st("x")), false, false, ""},
		{"label not group", group(st("A"), st("hi")), false, false, ""},
		{"no speaker text", group(group(), st("hi")), false, false, ""},
		{"body without value", group(group(st("A")), snapshot.NewNode(snapshot.RoleStaticText, nil)), false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := matchCaptionGroup(tt.node)
			assert.Equal(t, tt.matched, r.Matched)
			assert.Equal(t, tt.keep, r.Keep)
			if tt.matched {
				assert.Equal(t, tt.speaker, r.Utterance.Speaker)
			}
		})
	}
}

func TestCollectStopsAtMatch(t *testing.T) {
	inner := snapshot.NewNode(snapshot.RoleStaticText, map[string]string{snapshot.AttrValue: "inner"})
	outer := snapshot.NewNode(snapshot.RoleGroup, nil, inner)

	calls := 0
	got := Collect(outer, func(n *snapshot.Node) MatchResult {
		calls++
		return Matched(transcript.Utterance{Speaker: "S", Text: "t"}, true)
	})

	assert.Equal(t, 1, calls)
	assert.Len(t, got, 1)
}

func TestNewUnknownSource(t *testing.T) {
	_, err := New("skype", Options{})
	assert.Error(t, err)
	assert.Equal(t, []string{"teams", "webex", "zoom"}, Sources())
}
