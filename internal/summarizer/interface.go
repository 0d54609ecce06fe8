package summarizer

import "context"

// Summarizer turns a rendered meeting transcript into markdown notes.
type Summarizer interface {
	Summarize(ctx context.Context, title, transcript string) (string, error)
}
