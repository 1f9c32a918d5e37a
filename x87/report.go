package x87

import (
	"fmt"
	"io"
)

// Reporter receives one line per test disagreement. A mismatch is a
// diagnostic, never a fatal error, so Reporter has no way to abort a
// run — it can only record what it's told.
type Reporter interface {
	Reportf(format string, args ...any)
}

// writerReporter is a plain-text sink: it formats and writes a line,
// nothing more, the way a small command-line tool talks to the user
// with bare fmt.Printf rather than a logging framework.
type writerReporter struct {
	w io.Writer
}

// NewWriterReporter returns a Reporter that writes one line per call to w.
func NewWriterReporter(w io.Writer) Reporter {
	return writerReporter{w: w}
}

func (r writerReporter) Reportf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// mismatchLine renders the mismatch line in the required format:
// "<input> resulted in <soft-output> and <hard-output>".
func mismatchLine(input, soft, hard fmt.Stringer) (string, []any) {
	return "%s resulted in %s and %s", []any{input, soft, hard}
}

func reportMismatch(rep Reporter, input, soft, hard fmt.Stringer) {
	format, args := mismatchLine(input, soft, hard)
	rep.Reportf(format, args...)
}

// CountingReporter wraps another Reporter and counts how many lines it
// was asked to emit, for tests that want "zero mismatches" as a
// pass/fail signal rather than scraping text output.
type CountingReporter struct {
	Inner Reporter
	Count int
}

func (c *CountingReporter) Reportf(format string, args ...any) {
	c.Count++
	if c.Inner != nil {
		c.Inner.Reportf(format, args...)
	}
}
