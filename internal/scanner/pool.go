package scanner

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/enratl/mdu/internal/logging"
	"github.com/enratl/mdu/internal/model"
)

// Pool is the queue-driven scanner: a fixed number of worker goroutines
// cooperatively drain a shared queue of pending directories. Each root path
// gets one accumulator slot; any worker that discovers size attributable to
// a root adds to that root's slot. The pool always runs to quiescence.
type Pool struct {
	counters
	status

	workers int
	queue   *workQueue
	totals  []int64 // one slot per root, indexed by root id
}

// NewPool creates a pool with the given number of workers.
// Non-positive counts are clamped to 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		status:  status{errw: os.Stderr},
	}
}

// SetErrorOutput redirects per-path diagnostics, which default to stderr.
func (p *Pool) SetErrorOutput(w io.Writer) {
	p.errw = w
}

// Scan measures every root in order. Roots are seeded before any worker
// starts: each root's own blocks are credited to its slot up front and root
// directories become the first pending items. Workers then run until the
// queue is empty and all of them are simultaneously idle.
func (p *Pool) Scan(roots []string) ([]model.Total, bool) {
	p.queue = newWorkQueue(p.workers)
	p.totals = make([]int64, len(roots))

	for id, root := range roots {
		blocks, isDir, err := probe(root)
		if err != nil {
			p.reportf("cannot access '%s': %v", root, err)
		}
		p.totals[id] = blocks
		p.blocks.Add(blocks)
		if isDir {
			p.dirs.Add(1)
			p.queue.push(pendingDir{rootID: id, path: root})
		} else if err == nil {
			p.files.Add(1)
		}
	}

	logging.Debug.Debugw("pool scan starting",
		"workers", p.workers, "roots", len(roots))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			p.run(worker)
		}(i)
	}
	wg.Wait()

	pushed, popped := p.queue.stats()
	logging.Debug.Debugw("pool scan finished",
		"pushed", pushed, "popped", popped, "errored", p.errored.Load())

	totals := make([]model.Total, len(roots))
	for id, root := range roots {
		totals[id] = model.Total{Path: root, Blocks: atomic.LoadInt64(&p.totals[id])}
	}
	return totals, p.errored.Load()
}

// run is one worker's loop: claim a pending directory, expand it, repeat.
// next returns false only once global termination has been declared.
func (p *Pool) run(worker int) {
	for {
		d, ok := p.queue.next(worker)
		if !ok {
			return
		}
		p.expand(d)
	}
}

// Ensure Pool implements Scanner
var _ Scanner = (*Pool)(nil)
