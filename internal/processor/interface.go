package processor

import "context"

// Processor turns a snapshot directory (or a single export file) into one
// reconciled transcript on disk
type Processor interface {
	Process(ctx context.Context, inputPath string) (Report, error)
}
