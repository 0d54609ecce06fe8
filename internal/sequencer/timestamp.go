package sequencer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"
)

// TimestampLayout is the YYYY-MM-DD-HH-MM-SS stamp the exporter embeds in
// file names.
const TimestampLayout = "2006-01-02-15-04-05"

var reTimestamp = regexp.MustCompile(`\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}`)

// ParseTimestamp extracts the embedded timestamp from a file name.
func ParseTimestamp(name string) (time.Time, error) {
	base := filepath.Base(name)
	stamp := reTimestamp.FindString(base)
	if stamp == "" {
		return time.Time{}, fmt.Errorf("no %s timestamp in %q", "YYYY-MM-DD-HH-MM-SS", base)
	}
	ts, err := time.ParseInLocation(TimestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", stamp, err)
	}
	return ts, nil
}
