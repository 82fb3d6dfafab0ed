// Package scanner measures the allocated on-disk size of directory trees.
//
// The default implementation, Pool, is a fixed pool of worker goroutines
// draining a shared queue of pending directories; termination is detected
// cooperatively without a coordinator. Walker is an alternative built on
// fastwalk that produces the same totals.
package scanner

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/enratl/mdu/internal/model"
)

// Progress is a snapshot of the running scan counters.
type Progress struct {
	Files  int64
	Dirs   int64
	Blocks int64 // 512-byte blocks found so far
}

// A Scanner measures the allocated on-disk size of a set of root paths.
type Scanner interface {
	// Scan measures every root in order and returns one total per root.
	// Per-path failures are reported to the error stream and reflected in
	// the errored flag; totals are still best-effort complete.
	Scan(roots []string) (totals []model.Total, errored bool)

	// Progress returns a snapshot of the running counters. It is safe to
	// call concurrently with Scan.
	Progress() Progress
}

// counters holds the atomically updated scan counters shared by all workers.
type counters struct {
	files  atomic.Int64
	dirs   atomic.Int64
	blocks atomic.Int64
}

// Progress returns a snapshot of the counters.
func (c *counters) Progress() Progress {
	return Progress{
		Files:  c.files.Load(),
		Dirs:   c.dirs.Load(),
		Blocks: c.blocks.Load(),
	}
}

// status records whether any path failed during a scan. Diagnostics are
// written to errw as they happen; the flag is only ever set, never cleared,
// and is read once when the scan is over.
type status struct {
	errw    io.Writer
	errored atomic.Bool
}

// reportf writes one diagnostic line and marks the scan as errored.
func (s *status) reportf(format string, args ...any) {
	s.errored.Store(true)
	fmt.Fprintf(s.errw, "mdu: "+format+"\n", args...)
}
