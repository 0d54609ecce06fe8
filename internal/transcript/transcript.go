package transcript

// Transcript is the append-only utterance sequence of a whole session.
type Transcript struct {
	items []Utterance
}

// Len returns the number of utterances.
func (t *Transcript) Len() int {
	return len(t.items)
}

// Utterances returns a copy of the accumulated utterances.
func (t *Transcript) Utterances() []Utterance {
	out := make([]Utterance, len(t.items))
	copy(out, t.items)
	return out
}

// Tail returns at most n of the most recent utterances.
func (t *Transcript) Tail(n int) []Utterance {
	if n <= 0 || n >= len(t.items) {
		return t.items
	}
	return t.items[len(t.items)-n:]
}

func (t *Transcript) append(us ...Utterance) {
	t.items = append(t.items, us...)
}
