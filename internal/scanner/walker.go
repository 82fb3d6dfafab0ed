package scanner

import (
	"io"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/enratl/mdu/internal/logging"
	"github.com/enratl/mdu/internal/model"
)

// Walker is the fastwalk-based scanner. It produces the same per-root
// totals as Pool; the traversal scheduling is fastwalk's own. Roots are
// walked one after another.
type Walker struct {
	counters
	status
}

// NewWalker creates a fastwalk-based scanner.
func NewWalker() *Walker {
	return &Walker{
		status: status{errw: os.Stderr},
	}
}

// SetErrorOutput redirects per-path diagnostics, which default to stderr.
func (w *Walker) SetErrorOutput(out io.Writer) {
	w.errw = out
}

// Scan measures every root in order.
func (w *Walker) Scan(roots []string) ([]model.Total, bool) {
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	logging.Debug.Debugw("fastwalk scan starting", "roots", len(roots))

	totals := make([]model.Total, len(roots))
	for id, root := range roots {
		blocks, isDir, err := probe(root)
		if err != nil {
			w.reportf("cannot access '%s': %v", root, err)
		}
		w.blocks.Add(blocks)

		sum := blocks
		if isDir {
			w.dirs.Add(1)

			walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					w.reportf("cannot access '%s': %v", path, err)
					return nil
				}
				// The root's own blocks were credited before the walk.
				if path == root {
					return nil
				}

				blocks, isDir, err := probe(path)
				if err != nil {
					w.reportf("cannot access '%s': %v", path, err)
					return nil
				}

				atomic.AddInt64(&sum, blocks)
				w.blocks.Add(blocks)
				if isDir {
					w.dirs.Add(1)
				} else {
					w.files.Add(1)
				}
				return nil
			})
			if walkErr != nil {
				w.reportf("cannot read directory '%s': %v", root, walkErr)
			}
		} else if err == nil {
			w.files.Add(1)
		}

		totals[id] = model.Total{Path: root, Blocks: atomic.LoadInt64(&sum)}
	}

	return totals, w.errored.Load()
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
