package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per quiet period after matching files change.
// changed lists the paths seen since the previous call.
type EventHandler func(ctx context.Context, changed []string) error
