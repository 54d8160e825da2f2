package app

import (
	"os"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("CALIBSUM_FILE")
	}
	if cfg.OutputPDFPath == "" {
		cfg.OutputPDFPath = os.Getenv("CALIBSUM_OUTPUT_PDF")
	}
	if cfg.ReportEvery == 0 {
		if v := os.Getenv("CALIBSUM_REPORT_EVERY"); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				cfg.ReportEvery = d
			}
		}
	}
}
