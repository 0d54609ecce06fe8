package processor

import (
	"context"

	"github.com/timbenroeck/macos-capture-transcripts/internal/config"
	"github.com/timbenroeck/macos-capture-transcripts/internal/extractor"
	"github.com/timbenroeck/macos-capture-transcripts/internal/logger"
	"github.com/timbenroeck/macos-capture-transcripts/internal/sequencer"
	"github.com/timbenroeck/macos-capture-transcripts/internal/summarizer"
	"github.com/timbenroeck/macos-capture-transcripts/internal/writer"
)

type implProcessor struct {
	cfg        *config.Config
	sequencer  sequencer.Sequencer
	extractor  extractor.Extractor
	text       writer.Writer
	docx       writer.Writer
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Processor instance. sum may be nil to skip summaries.
func New(cfg *config.Config, seq sequencer.Sequencer, ext extractor.Extractor, sum summarizer.Summarizer, log logger.Logger) Processor {
	p := &implProcessor{
		cfg:        cfg,
		sequencer:  seq,
		extractor:  ext,
		text:       writer.NewText(),
		summarizer: sum,
		logger:     log,
	}
	if cfg.Output.Docx {
		p.docx = writer.NewDocx()
	}
	return p
}

// NewFromConfig wires the default collaborators described by cfg.
func NewFromConfig(cfg *config.Config, log logger.Logger) (Processor, error) {
	ext, err := extractor.New(cfg.Source, extractor.Options{CaptionRegion: cfg.CaptionRegion()})
	if err != nil {
		return nil, err
	}

	var sum summarizer.Summarizer
	if cfg.Summary.Enabled {
		keys := summarizer.KeysFromEnv(cfg.Summary.APIKeysEnv)
		if len(keys) > 0 {
			sum = summarizer.New(keys, cfg.Summary.Model, log)
		} else {
			log.Warn(context.Background(), "Summary enabled but %s holds no API keys, skipping summaries", cfg.Summary.APIKeysEnv)
		}
	}

	return New(cfg, sequencer.New(cfg.Input.Pattern, log), ext, sum, log), nil
}
