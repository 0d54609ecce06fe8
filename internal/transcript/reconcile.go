package transcript

const (
	DefaultLookback   = 30
	DefaultMinOverlap = 3
)

// Run locates a common contiguous block: Prev is its start in the lookback
// tail, Next its start in the new snapshot.
type Run struct {
	Prev int
	Next int
	Size int
}

// LongestCommonRun finds the longest block of utterances appearing
// contiguously in both a and b. Among equally long blocks the one starting
// earliest in a, then earliest in b, wins.
func LongestCommonRun(a, b []Utterance) Run {
	var best Run
	if len(a) == 0 || len(b) == 0 {
		return best
	}

	// prev[j+1] holds the run length ending at a[i-1], b[j].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := range a {
		for j := range b {
			if a[i].Same(b[j]) {
				cur[j+1] = prev[j] + 1
				if cur[j+1] > best.Size {
					best = Run{Prev: i - cur[j+1] + 1, Next: j - cur[j+1] + 1, Size: cur[j+1]}
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}

// Merge describes one reconciliation step.
type Merge struct {
	Seed     bool
	Overlap  Run
	Matched  bool
	Start    int
	Appended int
}

// Reconciler owns a Transcript and grows it one snapshot at a time. Calls
// must follow snapshot chronological order.
type Reconciler struct {
	lookback   int
	minOverlap int
	transcript Transcript
}

// NewReconciler creates a Reconciler. Non-positive arguments fall back to the
// defaults.
func NewReconciler(lookback, minOverlap int) *Reconciler {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	if minOverlap <= 0 {
		minOverlap = DefaultMinOverlap
	}
	return &Reconciler{lookback: lookback, minOverlap: minOverlap}
}

// Reconcile appends the part of next not already present at the end of the
// transcript. Without an overlap of at least minOverlap utterances every
// utterance of next is appended.
func (r *Reconciler) Reconcile(next []Utterance) Merge {
	if r.transcript.Len() == 0 {
		r.transcript.append(next...)
		return Merge{Seed: true, Appended: len(next)}
	}

	m := Merge{Overlap: LongestCommonRun(r.transcript.Tail(r.lookback), next)}
	if m.Overlap.Size >= r.minOverlap {
		m.Matched = true
		m.Start = m.Overlap.Next + m.Overlap.Size
	}

	fresh := next[m.Start:]
	r.transcript.append(fresh...)
	m.Appended = len(fresh)
	return m
}

// Transcript returns the accumulated transcript.
func (r *Reconciler) Transcript() *Transcript {
	return &r.transcript
}

// Reconcile runs a fresh Reconciler over snapshots in order.
func Reconcile(snapshots [][]Utterance, lookback, minOverlap int) []Utterance {
	r := NewReconciler(lookback, minOverlap)
	for _, s := range snapshots {
		r.Reconcile(s)
	}
	return r.transcript.Utterances()
}
