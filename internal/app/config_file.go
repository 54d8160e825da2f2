package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/calibsum/internal/aggregate"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to the flag names.
type FileConfig struct {
	File string `yaml:"file" json:"file"`

	Report struct {
		// Every is a Go duration string, e.g. "10s" or "1m".
		Every string `yaml:"every" json:"every"`
	} `yaml:"report" json:"report"`

	Output struct {
		PDF string `yaml:"pdf" json:"pdf"`
	} `yaml:"output" json:"output"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their flag defaults. Flags should already have been parsed; the
// file supplies defaults without overriding explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) error {
	if cfg == nil {
		return nil
	}

	if cfg.InputPath == "" && fc.File != "" {
		cfg.InputPath = fc.File
	}
	if cfg.OutputPDFPath == "" && fc.Output.PDF != "" {
		cfg.OutputPDFPath = fc.Output.PDF
	}
	if (cfg.ReportEvery == 0 || cfg.ReportEvery == aggregate.DefaultReportEvery) && fc.Report.Every != "" {
		d, err := time.ParseDuration(fc.Report.Every)
		if err != nil {
			return fmt.Errorf("report.every: %w", err)
		}
		cfg.ReportEvery = d
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	return nil
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if trim(cfg.InputPath) == "" {
		return errors.New("config: input file path is required (set -file or CALIBSUM_FILE)")
	}
	if cfg.ReportEvery < 0 {
		return errors.New("config: report interval must not be negative")
	}
	return nil
}

func trim(s string) string {
	i := 0
	j := len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n' || s[j-1] == '\r') {
		j--
	}
	return s[i:j]
}
