package pipeline

import (
	"fmt"
	"testing"
)

func TestDedupWindowDiscardsDuplicates(t *testing.T) {
	window := newDedupWindow(dedupWindowSize)

	if !window.observe("evt_1") {
		t.Fatalf("expected first observation to be new")
	}
	if window.observe("evt_1") {
		t.Fatalf("expected second observation to be a duplicate")
	}
}

func TestDedupWindowEvictsOldestFIFO(t *testing.T) {
	window := newDedupWindow(dedupWindowSize)

	for i := 0; i < 1100; i++ {
		window.observe(fmt.Sprintf("evt_%d", i))
	}

	if got := window.len(); got != dedupWindowSize {
		t.Fatalf("expected window to stay at %d entries, got %d", dedupWindowSize, got)
	}

	// The earliest ~100 ids fell out of the window and are processable again.
	if !window.observe("evt_0") {
		t.Fatalf("expected evicted id to be treated as new")
	}
	if window.observe("evt_1099") {
		t.Fatalf("expected recent id to still be deduplicated")
	}
}

func TestDedupWindowDuplicateDoesNotRefreshRecency(t *testing.T) {
	window := newDedupWindow(3)

	window.observe("evt_a")
	window.observe("evt_b")
	window.observe("evt_c")
	window.observe("evt_a") // duplicate, must not move evt_a to the back
	window.observe("evt_d") // evicts evt_a

	if !window.observe("evt_a") {
		t.Fatalf("expected evt_a to be evicted despite the duplicate hit")
	}
}

func TestDedupWindowIgnoresEmptyIDs(t *testing.T) {
	window := newDedupWindow(3)

	if !window.observe("") || !window.observe("") {
		t.Fatalf("expected empty ids to always process")
	}
	if got := window.len(); got != 0 {
		t.Fatalf("expected empty ids to not occupy the window, got %d entries", got)
	}
}
