package scanner

import (
	"os"
	"path/filepath"
	"sync/atomic"
)

// expand lists one pending directory, pushes its subdirectories back onto
// the queue, and adds the blocks of every entry to the owning root's
// accumulator. A failing entry is reported and skipped; its siblings and
// the rest of the traversal are unaffected.
func (p *Pool) expand(d pendingDir) {
	f, err := os.Open(d.path)
	if err != nil {
		p.reportf("cannot read directory '%s': %v", d.path, err)
		return
	}

	names, err := f.Readdirnames(-1)
	if err != nil {
		// Keep whatever was listed before the failure.
		p.reportf("cannot read directory '%s': %v", d.path, err)
	}

	var local int64
	for _, name := range names {
		child := filepath.Join(d.path, name)

		blocks, isDir, err := probe(child)
		if err != nil {
			p.reportf("cannot access '%s': %v", child, err)
			continue
		}

		local += blocks
		p.blocks.Add(blocks)

		// A subdirectory's own blocks are credited here, by its parent's
		// expansion; its contents are credited when it is popped.
		if isDir {
			p.dirs.Add(1)
			p.queue.push(pendingDir{rootID: d.rootID, path: child})
		} else {
			p.files.Add(1)
		}
	}

	if err := f.Close(); err != nil {
		p.reportf("cannot close directory '%s': %v", d.path, err)
	}

	atomic.AddInt64(&p.totals[d.rootID], local)
}
