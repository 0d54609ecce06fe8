package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/timbenroeck/macos-capture-transcripts/internal/config"
	"github.com/timbenroeck/macos-capture-transcripts/internal/extractor"
	"github.com/timbenroeck/macos-capture-transcripts/internal/logger"
	"github.com/timbenroeck/macos-capture-transcripts/internal/processor"
	"github.com/timbenroeck/macos-capture-transcripts/internal/watcher"
)

const defaultConfigPath = "config.yaml"

type options struct {
	configPath string
	source     string
	outputDir  string
	lookback   int
	minOverlap int
	logLevel   string
	docx       bool
	watch      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "transcripts <input>",
		Short: "Rebuild one meeting transcript from periodic caption snapshots",
		Long: `Reads accessibility snapshots exported from a meeting app (a directory of
export_YYYY-MM-DD-HH-MM-SS.json files, or a single export file), removes the
content repeated between consecutive snapshots and writes one transcript with
consecutive lines of the same speaker merged.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args[0], opts.watch)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "YAML configuration file")
	f.StringVarP(&opts.source, "source", "s", extractor.SourceTeams, fmt.Sprintf("Capture source %v", extractor.Sources()))
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for the transcript (default converted_transcripts)")
	f.IntVar(&opts.lookback, "lookback", 0, "Recent utterances compared when looking for overlap (default 30)")
	f.IntVar(&opts.minOverlap, "min-overlap", 0, "Shortest run of identical utterances accepted as overlap (default 3)")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.BoolVar(&opts.docx, "docx", false, "Also write a .docx rendition")
	f.BoolVarP(&opts.watch, "watch", "w", false, "Keep running and rebuild the transcript when new snapshots arrive")

	return cmd
}

// loadConfig reads the YAML file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadOptional(opts.configPath)
	}
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("source") {
		cfg.Source = opts.source
	}
	if f.Changed("output-dir") {
		cfg.Output.Dir = opts.outputDir
	}
	if f.Changed("lookback") {
		cfg.Reconcile.LookbackWindow = opts.lookback
	}
	if f.Changed("min-overlap") {
		cfg.Reconcile.MinOverlapLen = opts.minOverlap
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if f.Changed("docx") {
		cfg.Output.Docx = opts.docx
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, input string, watch bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewWithOptions(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	proc, err := processor.NewFromConfig(cfg, log)
	if err != nil {
		return err
	}

	rep, err := proc.Process(ctx, input)
	if err != nil {
		return err
	}
	logReport(ctx, log, rep)

	if !watch {
		return nil
	}

	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("--watch needs a directory input")
	}

	w, err := watcher.New(input, cfg.Input.Pattern, func(ctx context.Context, changed []string) error {
		log.Info(ctx, "%d snapshot files changed, rebuilding transcript", len(changed))
		rep, err := proc.Process(ctx, input)
		if err != nil {
			return err
		}
		logReport(ctx, log, rep)
		return nil
	}, log, cfg.Watch.Debounce)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s for new snapshots. Press Ctrl+C to stop", input)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(context.Background(), "Transcript watcher stopped")
	return nil
}

func logReport(ctx context.Context, log logger.Logger, rep processor.Report) {
	log.Info(ctx, "Files: %d, skipped (no timestamp): %d, skipped (decode error): %d, empty: %d",
		rep.Files, rep.SkippedTimestamp, rep.SkippedDecode, rep.EmptySnapshots)
	if len(rep.NoOverlap) > 0 {
		log.Warn(ctx, "%d snapshots merged without overlap; text around them may repeat", len(rep.NoOverlap))
	}
	log.Info(ctx, "Combined transcript successfully written to %s", rep.OutputPath)
	if rep.DocxPath != "" {
		log.Info(ctx, "Docx transcript: %s", rep.DocxPath)
	}
	if rep.SummaryPath != "" {
		log.Info(ctx, "Meeting summary: %s", rep.SummaryPath)
	}
}
