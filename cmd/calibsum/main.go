package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/calibsum/internal/aggregate"
	"github.com/hyperifyio/calibsum/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		filePath    string
		configPath  string
		outputPDF   string
		reportEvery time.Duration
		verbose     bool
	)

	flag.StringVar(&filePath, "file", os.Getenv("CALIBSUM_FILE"), "Path to the input text file (required)")
	flag.StringVar(&configPath, "config", os.Getenv("CALIBSUM_CONFIG"), "Optional YAML or JSON config file")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path for a PDF run summary")
	flag.DurationVar(&reportEvery, "report.every", aggregate.DefaultReportEvery, "Minimum interval between progress reports")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:     filePath,
		OutputPDFPath: outputPDF,
		ReportEvery:   reportEvery,
		Verbose:       verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("cannot load config file")
			os.Exit(1)
		}
		if err := app.ApplyFileConfig(&cfg, fc); err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("invalid config file")
			os.Exit(1)
		}
	}
	app.ApplyEnvToConfig(&cfg)

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		// Exit code policy: 1 only when the input file cannot be opened.
		// Defective lines degrade the sum, never the exit code.
		if errors.Is(err, app.ErrOpenInput) {
			log.Error().Err(err).Str("file", cfg.InputPath).Msg("cannot open input")
			os.Exit(1)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(0)
	}
}

func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}
