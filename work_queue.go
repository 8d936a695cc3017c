// work_queue.go - the single-producer/single-consumer hand-off between
// the emulator actor and the renderer actor (§5, §9: "the WorkQueue is
// the only necessary cross-thread shared state").
//
// Grounded on the teacher's atomic.Bool running-flag convention (see
// cpu_ie64.go, video_ted.go) for the close signal, with the queue
// itself a buffered channel rather than a hand-rolled ring buffer: a
// channel already gives the blocking-producer-on-full / blocking-
// consumer-on-empty behaviour §5 asks for without extra bookkeeping.

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2026 ionpsx contributors
https://github.com/ionpsx/core
License: GPLv3 or later
*/

package main

import "sync/atomic"

// workItem is one unit handed from the emulator actor to the renderer
// actor: a GPU frame boundary crossing, carried as a sequence number
// rather than a framebuffer copy, since rasterisation itself is out of
// scope (§1 Non-goals) and the renderer here only needs to know a new
// frame is ready to present.
type workItem struct {
	frame uint64
}

const workQueueDepth = 4

// WorkQueue is the emulator-actor-to-renderer-actor SPSC channel (§5).
// Producer is always the emulator actor; consumer is always the
// renderer actor. A channel of depth workQueueDepth gives backpressure
// for free: a full queue blocks the producer at its next cycle-billing
// boundary exactly as §5 specifies.
type WorkQueue struct {
	items  chan workItem
	closed atomic.Bool
}

func NewWorkQueue() *WorkQueue {
	return &WorkQueue{items: make(chan workItem, workQueueDepth)}
}

// Push enqueues a frame boundary, blocking if the queue is full. It is
// a no-op once the queue has been ended. Only the emulator actor calls
// this.
func (q *WorkQueue) Push(frame uint64) {
	if q.closed.Load() {
		return
	}
	defer func() { recover() }() // closed concurrently with this send
	q.items <- workItem{frame: frame}
}

// WaitForItem blocks until a frame boundary is available or the queue
// has been ended, matching §5's WorkQueue_waitForItem suspension point.
// The renderer actor is the sole caller.
func (q *WorkQueue) WaitForItem() (frame uint64, ok bool) {
	item, ok := <-q.items
	return item.frame, ok
}

// TryPop returns a pending frame boundary without blocking. Used by a
// renderer that cannot afford to block its own callback-driven loop
// (the ebiten backend's Update, which ebiten itself schedules), rather
// than running as a dedicated blocking consumer thread.
func (q *WorkQueue) TryPop() (frame uint64, ok bool) {
	select {
	case item, ok := <-q.items:
		return item.frame, ok
	default:
		return 0, false
	}
}

// EndProcessingByRenderingThread releases a blocked WaitForItem and
// marks the queue closed so subsequent Push calls are no-ops (§5:
// "emulator signals endProcessingByRenderingThread to release the
// renderer"). Safe to call once from the emulator actor during
// shutdown.
func (q *WorkQueue) EndProcessingByRenderingThread() {
	if q.closed.CompareAndSwap(false, true) {
		close(q.items)
	}
}
