// Package digits finds the first and last digit of a line of text, where a
// digit is either a literal ASCII digit or a spelled-out English number word
// ("one" through "nine"). Spelled words may overlap each other's characters;
// each directional scan reports the nearest valid match from its direction.
package digits

import "strconv"

// word associates a fixed-length probe with the full spelling and the digit
// character it denotes.
type word struct {
	probe string
	full  string
	digit byte
}

// probeLen is the shortest prefix/suffix length that tells the nine number
// words apart. A 3-byte window match commits a position to exactly one
// candidate word.
const probeLen = 3

var forward = [9]word{
	{"one", "one", '1'},
	{"two", "two", '2'},
	{"six", "six", '6'},
	{"fou", "four", '4'},
	{"fiv", "five", '5'},
	{"nin", "nine", '9'},
	{"sev", "seven", '7'},
	{"eig", "eight", '8'},
	{"thr", "three", '3'},
}

var backward = [9]word{
	{"one", "one", '1'},
	{"two", "two", '2'},
	{"six", "six", '6'},
	{"our", "four", '4'},
	{"ive", "five", '5'},
	{"ine", "nine", '9'},
	{"ven", "seven", '7'},
	{"ght", "eight", '8'},
	{"ree", "three", '3'},
}

func init() {
	// A probe hit stops the table walk at that position, which is only
	// correct while probes stay mutually unique. Anyone extending the word
	// set must keep that property.
	for _, tbl := range [][9]word{forward, backward} {
		seen := make(map[string]struct{}, len(tbl))
		for _, w := range tbl {
			if _, dup := seen[w.probe]; dup {
				panic("digits: duplicate probe " + w.probe)
			}
			seen[w.probe] = struct{}{}
		}
	}
}

// ScanResult is the outcome of a single directional scan. Digit is 0 when
// the scan found nothing. Stop is the position the scan stopped at — the
// start of the match on a hit, the exhaustion point otherwise — and bounds
// the opposite-direction scan.
type ScanResult struct {
	Digit byte
	Stop  int
}

// Find scans line left to right and returns the first literal or spelled
// digit. Input is byte-oriented; the number words are pure ASCII, so byte
// windows are safe even on UTF-8 input.
func Find(line string) ScanResult {
	n := len(line)
	for pos := 0; pos < n; pos++ {
		if c := line[pos]; c >= '0' && c <= '9' {
			return ScanResult{Digit: c, Stop: pos}
		}
		rest := n - pos
		if rest < probeLen {
			continue
		}
		for _, w := range forward {
			if line[pos:pos+probeLen] != w.probe {
				continue
			}
			if rest >= len(w.full) && line[pos:pos+len(w.full)] == w.full {
				return ScanResult{Digit: w.digit, Stop: pos}
			}
			break
		}
	}
	return ScanResult{Stop: n}
}

// ReverseFind scans line right to left and returns the last literal or
// spelled digit. pos is interpreted as the end-exclusive boundary of the
// text still unscanned. foundPos, the forward scan's stop position, is a
// lower bound on how far left this scan may go, so territory left of the
// forward match is never rescanned. The bound is exclusive of the match
// itself: a lone digit is still re-found from this direction.
func ReverseFind(line string, foundPos int) ScanResult {
	pos := len(line)
	for pos > foundPos {
		if c := line[pos-1]; c >= '0' && c <= '9' {
			return ScanResult{Digit: c, Stop: pos}
		}
		if pos < probeLen {
			pos--
			continue
		}
		for _, w := range backward {
			if line[pos-probeLen:pos] != w.probe {
				continue
			}
			if pos >= len(w.full) && line[pos-len(w.full):pos] == w.full {
				return ScanResult{Digit: w.digit, Stop: pos - len(w.full)}
			}
			break
		}
		pos--
	}
	return ScanResult{Stop: pos}
}

// Extract returns the calibration value of line: the first digit followed by
// the last digit, parsed as a base-10 integer. A line with a single digit
// yields that digit twice. ok is false when either scan finds nothing.
func Extract(line string) (value int, ok bool) {
	first := Find(line)
	last := ReverseFind(line, first.Stop)
	if first.Digit == 0 || last.Digit == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(string([]byte{first.Digit, last.Digit}))
	if err != nil {
		return 0, false
	}
	return v, true
}
