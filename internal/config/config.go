package config

import (
	"fmt"
	"time"

	"github.com/timbenroeck/macos-capture-transcripts/internal/extractor"
	"github.com/timbenroeck/macos-capture-transcripts/internal/sequencer"
	"github.com/timbenroeck/macos-capture-transcripts/internal/transcript"
)

type Config struct {
	Source    string          `yaml:"source"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	Extract   ExtractConfig   `yaml:"extract"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Watch     WatchConfig     `yaml:"watch"`
	Summary   SummaryConfig   `yaml:"summary"`
}

type ReconcileConfig struct {
	LookbackWindow int `yaml:"lookback_window"`
	MinOverlapLen  int `yaml:"min_overlap_len"`
}

type ExtractConfig struct {
	// CaptionRegionLabel is a pointer so an explicit "" (scan everything)
	// differs from an unset value.
	CaptionRegionLabel *string `yaml:"caption_region_label"`
}

type InputConfig struct {
	Pattern string `yaml:"pattern"`
}

type OutputConfig struct {
	Dir  string `yaml:"dir"`
	Docx bool   `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type SummaryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Model      string `yaml:"model"`
	APIKeysEnv string `yaml:"api_keys_env"`
}

// CaptionRegion returns the configured caption container label.
func (c *Config) CaptionRegion() string {
	if c.Extract.CaptionRegionLabel == nil {
		return extractor.DefaultCaptionRegion
	}
	return *c.Extract.CaptionRegionLabel
}

func (c *Config) Validate() error {
	if c.Source == "" {
		c.Source = extractor.SourceTeams
	}
	if _, err := extractor.New(c.Source, extractor.Options{}); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if c.Reconcile.LookbackWindow < 0 {
		return fmt.Errorf("reconcile.lookback_window must be positive")
	}
	if c.Reconcile.MinOverlapLen < 0 {
		return fmt.Errorf("reconcile.min_overlap_len must be positive")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}

	if c.Reconcile.LookbackWindow == 0 {
		c.Reconcile.LookbackWindow = transcript.DefaultLookback
	}
	if c.Reconcile.MinOverlapLen == 0 {
		c.Reconcile.MinOverlapLen = transcript.DefaultMinOverlap
	}
	if c.Input.Pattern == "" {
		c.Input.Pattern = sequencer.DefaultPattern
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "converted_transcripts"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 2 * time.Second
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}
	if c.Summary.APIKeysEnv == "" {
		c.Summary.APIKeysEnv = "GEMINI_API_KEYS"
	}

	return nil
}
