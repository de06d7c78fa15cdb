package pipeline

// dedupWindowSize bounds the set of remembered event ids. Ids older than the
// window are evicted FIFO and become eligible for reprocessing; that is a
// documented limitation of the bounded window, not a bug.
const dedupWindowSize = 1000

// dedupWindow is a fixed-capacity FIFO set of recently seen event ids.
// Eviction is strictly by insertion order; a duplicate hit does not refresh
// recency.
type dedupWindow struct {
	capacity int
	ring     []string
	head     int
	seen     map[string]struct{}
}

func newDedupWindow(capacity int) *dedupWindow {
	return &dedupWindow{
		capacity: capacity,
		ring:     make([]string, 0, capacity),
		seen:     make(map[string]struct{}, capacity),
	}
}

// observe records the id and reports whether it was new. Empty ids cannot be
// deduplicated and always count as new.
func (w *dedupWindow) observe(id string) bool {
	if id == "" {
		return true
	}
	if _, duplicate := w.seen[id]; duplicate {
		return false
	}

	if len(w.ring) < w.capacity {
		w.ring = append(w.ring, id)
	} else {
		delete(w.seen, w.ring[w.head])
		w.ring[w.head] = id
		w.head = (w.head + 1) % w.capacity
	}
	w.seen[id] = struct{}{}
	return true
}

func (w *dedupWindow) len() int {
	return len(w.seen)
}

func (w *dedupWindow) reset() {
	w.ring = w.ring[:0]
	w.head = 0
	clear(w.seen)
}
