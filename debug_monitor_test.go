package main

import (
	"os"
	"testing"
	"time"
)

// TestDebugMonitorReadLoopTogglesPauseAndQuits verifies 'p' flips the
// console's Paused flag and 'q' calls Shutdown and returns, by feeding
// readLoop synthetic stdin bytes through an os.Pipe rather than a real
// TTY (Start's raw-mode setup is skipped entirely here).
func TestDebugMonitorReadLoopTogglesPauseAndQuits(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	origStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = origStdin }()

	c := NewConsole(NewHeadlessGpuSink(), NewHeadlessSpuSink())
	m := NewDebugMonitor(c)

	go func() {
		w.Write([]byte("p"))
		time.Sleep(10 * time.Millisecond)
		w.Write([]byte("q"))
		w.Close()
	}()

	done := make(chan struct{})
	go func() {
		m.readLoop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("readLoop did not return after 'q'")
	}

	if !c.Paused.Load() {
		t.Fatalf("Paused not toggled true after 'p'")
	}
	if !c.Quit.Load() {
		t.Fatalf("Quit not set after 'q'")
	}
}
