package main

import (
	"testing"
	"time"
)

// TestRunEmulatorActorPushesFrameAndShuts verifies the emulator actor
// runs CPU blocks, bills elapsed cycles to the bus, pushes a work item
// on every vblank frame boundary, and that Shutdown unblocks both the
// actor loop and the renderer's WaitForItem (§5's actor/shutdown
// model).
func TestRunEmulatorActorPushesFrameAndShuts(t *testing.T) {
	c := NewConsole(NewHeadlessGpuSink(), NewHeadlessSpuSink())
	c.CPU.pc = 0 // all-zero RAM decodes as a stream of NOPs

	actorDone := make(chan struct{})
	go func() {
		c.RunEmulatorActor()
		close(actorDone)
	}()

	deadline := time.After(2 * time.Second)
	var sawFrame bool
	for !sawFrame {
		select {
		case <-deadline:
			t.Fatalf("no frame observed on the work queue within the deadline")
		default:
		}
		if _, ok := c.Work.TryPop(); ok {
			sawFrame = true
			break
		}
		time.Sleep(time.Millisecond)
	}

	c.Shutdown()

	select {
	case <-actorDone:
	case <-time.After(2 * time.Second):
		t.Fatalf("RunEmulatorActor did not return after Shutdown")
	}

	if _, ok := c.Work.WaitForItem(); ok {
		t.Fatalf("WaitForItem after Shutdown returned ok=true, want the queue closed")
	}
}

// TestRunEmulatorActorPauseHaltsCycleProgress verifies Paused stops the
// CPU from advancing (§5's pause gate checked at the top of every
// block).
func TestRunEmulatorActorPauseHaltsCycleProgress(t *testing.T) {
	c := NewConsole(NewHeadlessGpuSink(), NewHeadlessSpuSink())
	c.CPU.pc = 0
	c.Paused.Store(true)

	actorDone := make(chan struct{})
	go func() {
		c.RunEmulatorActor()
		close(actorDone)
	}()

	time.Sleep(20 * time.Millisecond)
	before := c.CPU.Cycles()
	time.Sleep(20 * time.Millisecond)
	after := c.CPU.Cycles()
	if after != before {
		t.Fatalf("CPU cycles advanced from %d to %d while Paused", before, after)
	}

	c.Shutdown()
	select {
	case <-actorDone:
	case <-time.After(2 * time.Second):
		t.Fatalf("RunEmulatorActor did not return after Shutdown while paused")
	}
}

// TestRunRendererActorStopsOnClose verifies the renderer actor returns
// once the work queue is closed, and that it invokes present for each
// delivered frame first.
func TestRunRendererActorStopsOnClose(t *testing.T) {
	c := NewConsole(NewHeadlessGpuSink(), NewHeadlessSpuSink())

	var got []uint64
	done := make(chan struct{})
	go func() {
		c.RunRendererActor(func(frame uint64) { got = append(got, frame) })
		close(done)
	}()

	c.Work.Push(1)
	c.Work.Push(2)
	c.Work.EndProcessingByRenderingThread()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("RunRendererActor did not return after the queue closed")
	}

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("present calls = %v, want [1 2]", got)
	}
}
