package breach

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Context.Debug is true.
type debugStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
	batchCount   int
}

// debugLog prints timing and draw-call stats to stderr.
func (c *Context) debugLog() {
	if !c.Debug {
		return
	}
	s := c.dbg
	total := s.traverseTime + s.sortTime + s.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[breach] traverse: %v | sort: %v | submit: %v | total: %v\n",
		s.traverseTime, s.sortTime, s.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[breach] triangles: %d | batches: %d\n",
		s.commandCount, s.batchCount)
}

// debugCheckStackDepth warns on stderr if the matrix stack grows past the
// threshold, a sign of a missing PopMatrix somewhere in the graph.
const debugMaxStackDepth = 32

func (c *Context) debugCheckStackDepth() {
	if len(c.modelStack) > debugMaxStackDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[breach] warning: matrix stack depth %d exceeds %d\n",
			len(c.modelStack), debugMaxStackDepth)
	}
}
