package main

import "testing"

// TestWorkQueuePushWaitForItem verifies a pushed frame is delivered to
// WaitForItem in order.
func TestWorkQueuePushWaitForItem(t *testing.T) {
	q := NewWorkQueue()
	q.Push(1)
	q.Push(2)

	frame, ok := q.WaitForItem()
	if !ok || frame != 1 {
		t.Fatalf("WaitForItem = (%d, %v), want (1, true)", frame, ok)
	}
	frame, ok = q.WaitForItem()
	if !ok || frame != 2 {
		t.Fatalf("WaitForItem = (%d, %v), want (2, true)", frame, ok)
	}
}

// TestWorkQueueTryPop verifies the non-blocking variant reports nothing
// pending on an empty queue, then drains a pushed item.
func TestWorkQueueTryPop(t *testing.T) {
	q := NewWorkQueue()

	if _, ok := q.TryPop(); ok {
		t.Fatalf("TryPop on an empty queue reported ok=true")
	}

	q.Push(7)
	frame, ok := q.TryPop()
	if !ok || frame != 7 {
		t.Fatalf("TryPop = (%d, %v), want (7, true)", frame, ok)
	}
	if _, ok := q.TryPop(); ok {
		t.Fatalf("TryPop after draining the only item reported ok=true")
	}
}

// TestWorkQueueEndProcessingReleasesWaiter verifies closing the queue
// unblocks WaitForItem with ok=false, and that it is safe to call
// EndProcessingByRenderingThread more than once.
func TestWorkQueueEndProcessingReleasesWaiter(t *testing.T) {
	q := NewWorkQueue()

	done := make(chan struct{})
	go func() {
		_, ok := q.WaitForItem()
		if ok {
			t.Errorf("WaitForItem after close: ok = true, want false")
		}
		close(done)
	}()

	q.EndProcessingByRenderingThread()
	q.EndProcessingByRenderingThread() // must not panic on double-close
	<-done
}

// TestWorkQueuePushAfterCloseIsNoOp verifies a Push racing with or
// following EndProcessingByRenderingThread never panics and is silently
// dropped.
func TestWorkQueuePushAfterCloseIsNoOp(t *testing.T) {
	q := NewWorkQueue()
	q.EndProcessingByRenderingThread()
	q.Push(42) // must not panic
}
