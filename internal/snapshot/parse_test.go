package snapshot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject(t *testing.T) {
	raw := []byte(`{
  "role": "AXGroup",
  "description": "Live Captions",
  "children": [
    {"role": "AXStaticText", "value": "Hello"},
    {"role": "AXRow", "value": 42, "help": true},
    "stray",
    null
  ]
}`)

	root, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, RoleGroup, root.Role())
	assert.Equal(t, "Live Captions", root.Description())
	require.Len(t, root.Children(), 2)

	v, ok := root.Child(0).Value()
	assert.True(t, ok)
	assert.Equal(t, "Hello", v)

	v, ok = root.Child(1).Value()
	assert.True(t, ok)
	assert.Equal(t, "42", v)
	help, _ := root.Child(1).Attr(AttrHelp)
	assert.Equal(t, "true", help)

	assert.Nil(t, root.Child(5))
}

func TestParseTopLevelArray(t *testing.T) {
	root, err := Parse([]byte(`[{"role":"AXTable"},{"role":"AXGroup"}]`))
	require.NoError(t, err)

	assert.Equal(t, "", root.Role())
	require.Len(t, root.Children(), 2)
	assert.True(t, root.Child(0).Is(RoleTable))
}

func TestParseDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"truncated", `{"role": "AXGroup", "children": [`},
		{"scalar", `"just a string"`},
		{"garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			var de *DecodeError
			assert.True(t, errors.As(err, &de), "want DecodeError, got %T", err)
		})
	}
}

func TestNodeEmpty(t *testing.T) {
	assert.True(t, (*Node)(nil).Empty())
	assert.True(t, NewNode("", nil).Empty())
	assert.False(t, NewNode(RoleGroup, nil).Empty())
	assert.False(t, NewNode("", map[string]string{AttrValue: "x"}).Empty())
}
