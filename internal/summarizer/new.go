package summarizer

import (
	"os"
	"strings"

	"github.com/timbenroeck/macos-capture-transcripts/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	generate   generateFunc
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	s := &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
	s.generate = s.callGemini
	return s
}

// KeysFromEnv reads comma-separated API keys from the named variable.
func KeysFromEnv(name string) []string {
	var keys []string
	for _, k := range strings.Split(os.Getenv(name), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
