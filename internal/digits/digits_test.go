package digits

import "testing"

func TestFind(t *testing.T) {
	cases := []struct {
		line string
		want ScanResult
	}{
		{"eightwothree", ScanResult{Digit: '8', Stop: 0}},
		{"abcone2threexyz", ScanResult{Digit: '1', Stop: 3}},
		{"treb7uchet", ScanResult{Digit: '7', Stop: 4}},
		{"7pqrstsixteen", ScanResult{Digit: '7', Stop: 0}},
		{"abcdefg", ScanResult{Stop: 7}},
		{"", ScanResult{Stop: 0}},
		{"tw", ScanResult{Stop: 2}},
		{"twone", ScanResult{Digit: '2', Stop: 0}},
	}
	for _, c := range cases {
		if got := Find(c.line); got != c.want {
			t.Errorf("Find(%q) = %+v; want %+v", c.line, got, c.want)
		}
	}
}

func TestReverseFind(t *testing.T) {
	cases := []struct {
		line     string
		foundPos int
		want     ScanResult
	}{
		{"eightwothree", 0, ScanResult{Digit: '3', Stop: 7}},
		{"abcone2threexyz", 3, ScanResult{Digit: '3', Stop: 7}},
		{"treb7uchet", 4, ScanResult{Digit: '7', Stop: 5}},
		{"7pqrstsixteen", 0, ScanResult{Digit: '6', Stop: 6}},
		// Bounded by the forward scan's exhaustion point: nothing left to scan.
		{"abcdefg", 7, ScanResult{Stop: 7}},
		{"abcdefg", 0, ScanResult{Stop: 0}},
		{"twone", 0, ScanResult{Digit: '1', Stop: 2}},
	}
	for _, c := range cases {
		if got := ReverseFind(c.line, c.foundPos); got != c.want {
			t.Errorf("ReverseFind(%q, %d) = %+v; want %+v", c.line, c.foundPos, got, c.want)
		}
	}
}

func TestExtract(t *testing.T) {
	cases := []struct {
		line  string
		value int
		ok    bool
	}{
		{"eightwothree", 83, true},
		{"abcone2threexyz", 13, true},
		{"treb7uchet", 77, true},
		{"7pqrstsixteen", 76, true},
		{"abcdefg", 0, false},
		// Overlapping words resolve per direction.
		{"twone", 21, true},
		{"oneight", 18, true},
		{"zoneight234", 14, true},
		// A lone digit or word is seen from both directions, like the 7 in
		// treb7uchet: the backward bound is exclusive of the match itself.
		{"abc5def", 55, true},
		{"five", 55, true},
		{"", 0, false},
	}
	for _, c := range cases {
		v, ok := Extract(c.line)
		if v != c.value || ok != c.ok {
			t.Errorf("Extract(%q) = (%d, %v); want (%d, %v)", c.line, v, ok, c.value, c.ok)
		}
	}
}

// The first probe hit at a position ends the table walk, so probes must be
// mutually unique within each table, and each probe must actually be the
// word's own prefix or suffix.
func TestProbesUnique(t *testing.T) {
	for name, tbl := range map[string][9]word{"forward": forward, "backward": backward} {
		seen := map[string]string{}
		for _, w := range tbl {
			if len(w.probe) != probeLen {
				t.Errorf("%s table: probe %q is not %d bytes", name, w.probe, probeLen)
			}
			if prev, dup := seen[w.probe]; dup {
				t.Errorf("%s table: probe %q shared by %q and %q", name, w.probe, prev, w.full)
			}
			seen[w.probe] = w.full
		}
	}
	for _, w := range forward {
		if w.full[:probeLen] != w.probe {
			t.Errorf("forward probe %q is not a prefix of %q", w.probe, w.full)
		}
	}
	for _, w := range backward {
		if w.full[len(w.full)-probeLen:] != w.probe {
			t.Errorf("backward probe %q is not a suffix of %q", w.probe, w.full)
		}
	}
}
