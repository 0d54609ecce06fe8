package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const childrenKey = "children"

// DecodeError reports a snapshot that is not a well-formed tree.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode snapshot: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Parse decodes one exported snapshot. A top-level array becomes a root with
// an empty role whose children are the array's objects.
func Parse(raw []byte) (*Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, &DecodeError{Err: fmt.Errorf("empty input")}
	}
	if !json.Valid(raw) {
		var probe any
		err := json.Unmarshal(raw, &probe)
		if err == nil {
			err = fmt.Errorf("invalid json")
		}
		return nil, &DecodeError{Err: err}
	}

	n, ok, err := decodeValue(raw)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if !ok {
		return nil, &DecodeError{Err: fmt.Errorf("top-level value is neither an object nor an array")}
	}
	return n, nil
}

// decodeValue turns a JSON object or array into a node. Scalars report ok=false.
func decodeValue(raw json.RawMessage) (*Node, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false, nil
	}
	switch raw[0] {
	case '{':
		n, err := decodeObject(raw)
		return n, err == nil, err
	case '[':
		children, err := decodeChildren(raw)
		if err != nil {
			return nil, false, err
		}
		return &Node{children: children}, true, nil
	default:
		return nil, false, nil
	}
}

func decodeObject(raw json.RawMessage) (*Node, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	n := &Node{}
	for key, val := range fields {
		if key == childrenKey {
			children, err := decodeChildren(val)
			if err != nil {
				return nil, fmt.Errorf("children: %w", err)
			}
			n.children = children
			continue
		}
		s, ok := scalarText(val)
		if !ok {
			continue
		}
		if key == "role" {
			n.role = s
			continue
		}
		if n.attrs == nil {
			n.attrs = make(map[string]string)
		}
		n.attrs[key] = s
	}
	return n, nil
}

// decodeChildren keeps object and array entries and drops scalars.
func decodeChildren(raw json.RawMessage) ([]*Node, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		// children that is not a list holds nothing traversable
		return nil, nil
	}
	out := make([]*Node, 0, len(items))
	for _, item := range items {
		c, ok, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// scalarText renders strings verbatim and numbers/booleans as literal text.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case 't', 'f':
		b, err := strconv.ParseBool(string(raw))
		if err != nil {
			return "", false
		}
		return strconv.FormatBool(b), true
	case 'n':
		return "", false
	case '{', '[':
		return "", false
	default:
		return string(raw), true
	}
}
