package app

import "time"

// Config holds runtime configuration for one calibration run.
type Config struct {
	InputPath     string
	OutputPDFPath string

	// Reporting
	ReportEvery time.Duration

	// Behavior
	Verbose bool
}
