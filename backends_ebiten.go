//go:build !headless

// backends_ebiten.go - host-loop wiring for the windowed build: ebiten
// owns the process's main thread, so the renderer actor described in
// §5 is folded into its Update/Draw callbacks rather than run as a
// second blocking goroutine (see gpu_sink_ebiten.go's WorkQueue drain).

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

import "fmt"

// newBackends constructs the windowed GPU/SPU output pair.
func newBackends() (GpuSink, SpuSink, func(), error) {
	gpu := NewEbitenGpuSink()

	spu, err := NewOtoSpuSink()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("backends: %w", err)
	}

	cleanup := func() { spu.Close() }
	return gpu, spu, cleanup, nil
}

// runHostLoop drives ebiten's event pump on the calling (main) thread,
// per ebiten's requirement that RunGame own the platform thread (§5's
// host driver role). It returns once the window is closed, at which
// point the emulator actor is signalled to stop.
func runHostLoop(c *Console) {
	gpu, ok := c.GPU.(*EbitenGpuSink)
	if !ok {
		return
	}
	gpu.SetWorkQueue(c.Work)
	if err := gpu.Run("ionpsx"); err != nil {
		fmt.Printf("Display closed: %v\n", err)
	}
	c.Shutdown()
}
