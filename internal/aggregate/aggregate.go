// Package aggregate drives one best-effort accumulation run over a stream of
// calibration lines: it reads line by line, sums the per-line calibration
// values, and emits throttled progress reports plus a final summary.
package aggregate

import (
	"bufio"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hyperifyio/calibsum/internal/digits"
)

// DefaultReportEvery is the minimum interval between progress reports when
// the caller does not set one.
const DefaultReportEvery = 10 * time.Second

// Totals are the counters of a single run. Incorrect counts lines that
// yielded no calibration value: empty lines and lines with no digit at all.
// Lines that could not be decoded are reported and skipped without being
// counted as incorrect.
type Totals struct {
	Lines     int
	Incorrect int
	Sum       uint64
}

// Summarizer accumulates calibration values over one input stream. Reports
// go to Out. Name is used only in diagnostics.
type Summarizer struct {
	Name        string
	Out         io.Writer
	ReportEvery time.Duration
}

// Run processes r to the end and returns the totals and the elapsed
// monotonic duration. Line-level defects never fail the run; a mid-stream
// read error ends it early with whatever was accumulated.
func (s *Summarizer) Run(r io.Reader) (Totals, time.Duration, error) {
	every := s.ReportEvery
	if every <= 0 {
		every = DefaultReportEvery
	}
	p := message.NewPrinter(language.English)

	var t Totals
	start := time.Now()
	lastReport := start

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		t.Lines++
		line := sc.Text()
		switch {
		case line == "":
			t.Incorrect++
		case !utf8.ValidString(line):
			log.Warn().Str("file", s.Name).Int("line", t.Lines).Msg("broken line; skipping")
		default:
			if v, ok := digits.Extract(line); ok {
				t.Sum += uint64(v)
			} else {
				t.Incorrect++
			}
		}

		if now := time.Now(); now.Sub(lastReport) > every {
			lastReport = now
			p.Fprintf(s.Out, "%s Parsed lines: %d, Incorrect lines: %d, Total amount: %d\n",
				now.Format(time.RFC3339), t.Lines, t.Incorrect, t.Sum)
		}
	}
	err := sc.Err()
	elapsed := time.Since(start)

	p.Fprintf(s.Out, "%s Parsed lines: %d, Incorrect lines: %d, Total amount: %d, Elapsed: %s\n",
		time.Now().Format(time.RFC3339), t.Lines, t.Incorrect, t.Sum, elapsed.Round(time.Millisecond))
	p.Fprintf(s.Out, "\nTotal amount: %d\n", t.Sum)

	if err != nil {
		return t, elapsed, fmt.Errorf("read input: %w", err)
	}
	return t, elapsed, nil
}
