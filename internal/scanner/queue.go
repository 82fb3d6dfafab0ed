package scanner

import "sync"

// pendingDir is one unit of work: a directory waiting to be listed, tagged
// with the root it belongs to. Ownership of the path transfers with the
// descriptor: whoever pops it expands it, exactly once.
type pendingDir struct {
	rootID int
	path   string
}

// workQueue couples the pending-directory stack with the per-worker idle
// flags. Both live under one mutex on purpose: the decision to block and the
// decision to declare termination must be made against a consistent view of
// "is there work, and is anyone still producing it". Splitting the locks
// would reintroduce the lost-wake-up race.
type workQueue struct {
	mu   sync.Mutex
	cond *sync.Cond

	items []pendingDir // LIFO; new work is pushed and popped at the tail
	idle  []bool       // indexed by worker id
	done  bool         // set once, by the last worker to go idle

	// lifetime counters, for invariant checks in tests
	pushed int64
	popped int64
}

func newWorkQueue(workers int) *workQueue {
	q := &workQueue{
		idle: make([]bool, workers),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends one pending directory and wakes a single worker. One signal
// per item: a woken worker is entitled to exactly one unit of work.
func (q *workQueue) push(d pendingDir) {
	q.mu.Lock()
	q.items = append(q.items, d)
	q.pushed++
	q.mu.Unlock()
	q.cond.Signal()
}

// next blocks until an item is available or global termination is declared.
// The calling worker marks itself idle first; if the queue is empty and
// every worker is idle, no item can ever be produced again, so the caller
// declares termination and wakes everyone. The check and the block happen
// under the same mutex that guards push, so a worker can never miss the
// wake-up for an item pushed concurrently with its idle check.
func (q *workQueue) next(worker int) (pendingDir, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.idle[worker] = true

	for len(q.items) == 0 && !q.done {
		if q.allIdle() {
			q.done = true
			q.cond.Broadcast()
			return pendingDir{}, false
		}
		q.cond.Wait()
	}
	if q.done {
		return pendingDir{}, false
	}

	q.idle[worker] = false
	n := len(q.items) - 1
	d := q.items[n]
	q.items[n] = pendingDir{}
	q.items = q.items[:n]
	q.popped++
	return d, true
}

// allIdle reports whether every worker is idle. Caller must hold q.mu.
func (q *workQueue) allIdle() bool {
	for _, idle := range q.idle {
		if !idle {
			return false
		}
	}
	return true
}

// stats returns the lifetime push/pop counts. Caller must not hold q.mu.
func (q *workQueue) stats() (pushed, popped int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pushed, q.popped
}
