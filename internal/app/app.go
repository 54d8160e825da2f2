package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/calibsum/internal/aggregate"
)

// ErrOpenInput marks a failure to open the input file. Per the exit code
// policy this is the only fatal condition; the CLI maps it to exit 1.
var ErrOpenInput = errors.New("open input")

// App wires the configuration to one accumulation run.
type App struct {
	cfg Config
	out io.Writer
}

func New(cfg Config) *App {
	return &App{cfg: cfg, out: os.Stdout}
}

// Run opens the input file and accumulates calibration values to the end of
// the stream. Everything past a successful open is best-effort: defective
// lines and artifact failures degrade the result, not the exit code.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenInput, err)
	}
	defer f.Close()

	log.Debug().Str("file", a.cfg.InputPath).Dur("reportEvery", a.cfg.ReportEvery).Msg("starting run")

	s := &aggregate.Summarizer{
		Name:        a.cfg.InputPath,
		Out:         a.out,
		ReportEvery: a.cfg.ReportEvery,
	}
	totals, elapsed, err := s.Run(f)
	if err != nil {
		log.Warn().Err(err).Str("file", a.cfg.InputPath).Msg("input ended early")
	}

	if a.cfg.OutputPDFPath != "" {
		if err := writeSummaryPDF(a.cfg.OutputPDFPath, a.cfg.InputPath, totals, elapsed); err != nil {
			log.Warn().Err(err).Str("out", a.cfg.OutputPDFPath).Msg("PDF summary failed")
		} else {
			log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote PDF summary")
		}
	}
	return nil
}
