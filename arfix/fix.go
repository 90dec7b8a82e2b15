package arfix

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/arabicfix/arscript"
)

// Fix rewrites text into display order for a client without bidi support.
//
// Steps, in this order:
//
//  1. MapDigits, if opts.ConvertDigits is set
//  2. IsolateLTRRuns
//  3. ReverseCodepoints
//  4. WrapDirection, if opts.WrapWithDirectionMarks is set
//
// Steps 2 and 3 are always applied. Fix is a pure function of its arguments.
func Fix(text string, opts Options) string {
	s := text
	if opts.ConvertDigits {
		s = MapDigits(s)
	}
	s = IsolateLTRRuns(s)
	s = ReverseCodepoints(s)
	if opts.WrapWithDirectionMarks {
		s = WrapDirection(s)
	}
	tracer().Debugf("fixed %q -> %q", text, s)
	return s
}

// --- Digits ----------------------------------------------------------------

// EasternDigitZero is ARABIC-INDIC DIGIT ZERO. Digits 1…9 follow contiguously.
const EasternDigitZero = '\u0660'

// MapDigits replaces every ASCII digit 0…9 with the Eastern Arabic-Indic digit
// at the same position (U+0660…U+0669). All other code-points are copied.
// The number of code-points does not change.
func MapDigits(s string) string {
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	// bytes < 0x80 never occur inside a multi-byte UTF-8 sequence
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteRune(EasternDigitZero + rune(c-'0'))
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// --- Reversal --------------------------------------------------------------

// ReverseCodepoints reverses the sequence of code-points of s. Multi-byte
// encodings are moved as a whole, so the result is valid UTF-8 whenever s is.
// An invalid byte is treated as a unit of its own.
//
// For valid UTF-8, ReverseCodepoints(ReverseCodepoints(s)) == s.
func ReverseCodepoints(s string) string {
	n := len(s)
	if n < 2 {
		return s
	}
	buf := make([]byte, n)
	for i := 0; i < n; {
		_, w := utf8.DecodeRuneInString(s[i:])
		copy(buf[n-i-w:], s[i:i+w])
		i += w
	}
	return string(buf)
}

// --- Direction marks -------------------------------------------------------

// WrapDirection prepends and appends a RIGHT-TO-LEFT MARK to s.
// It is not idempotent: wrapping twice results in four marks.
func WrapDirection(s string) string {
	const rlm = string(RLM)
	return rlm + s + rlm
}

// StripMarks removes all ALM and RLM code-points from s. Applied to the
// output of IsolateLTRRuns it restores the input.
func StripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ALM || r == RLM {
			return -1
		}
		return r
	}, s)
}

// --- LTR runs --------------------------------------------------------------

// Run is a maximal sequence of code-points of the LTR class (see
// arscript.IsLTR), given as a byte range [Start, End) of the scanned string.
type Run struct {
	Start, End int
}

type scanState uint8

const (
	outside scanState = iota // last code-point not in LTR class
	inRun                    // inside a run
)

// scanRuns calls fn for every maximal LTR run of s, from left to right.
func scanRuns(s string, fn func(Run)) {
	state, start := outside, 0
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		ltr := arscript.IsLTR(r)
		switch {
		case state == outside && ltr:
			state, start = inRun, i
		case state == inRun && !ltr:
			state = outside
			fn(Run{Start: start, End: i})
		}
		i += w
	}
	if state == inRun {
		fn(Run{Start: start, End: len(s)})
	}
}

// LTRRuns returns the LTR runs of s. Runs do not overlap and are returned in
// text order.
func LTRRuns(s string) []Run {
	var runs []Run
	scanRuns(s, func(run Run) {
		runs = append(runs, run)
	})
	return runs
}

// IsolateLTRRuns inserts an ARABIC LETTER MARK in front of every LTR run of s.
// Code-points of runs and everything between runs are copied unchanged.
// The result has exactly one code-point more per run than s.
func IsolateLTRRuns(s string) string {
	var b strings.Builder
	last := 0
	scanRuns(s, func(run Run) {
		if b.Len() == 0 {
			b.Grow(len(s) + 16)
		}
		b.WriteString(s[last:run.Start])
		b.WriteRune(ALM)
		b.WriteString(s[run.Start:run.End])
		last = run.End
	})
	if b.Len() == 0 {
		return s // no runs found
	}
	b.WriteString(s[last:])
	return b.String()
}
