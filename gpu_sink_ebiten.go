//go:build !headless

// gpu_sink_ebiten.go - ebiten-backed GpuSink: presents a flat colour
// field driven by GP0 fills so the window shows visible life without
// this core taking on rasterisation (§1 Non-goals).

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

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenGpuSink wires GP0/GP1 traffic into an ebiten.Game so a host
// window is visible while the console runs. The colour field it shows
// is a diagnostic aid (last GP0(0x02) quick-fill colour), not an
// attempt at GPU rasterisation.
type EbitenGpuSink struct {
	mu   sync.Mutex
	core gpuCore
	fill color.RGBA

	controller *ControllerIO
	work       *WorkQueue
	frameSeen  uint64
	width      int
	height     int
}

func NewEbitenGpuSink() *EbitenGpuSink {
	return &EbitenGpuSink{core: newGPUCore(), width: 640, height: 480}
}

// SetController wires the pad input source (§4.9); called once during
// host setup after both the console and its GPU sink exist.
func (e *EbitenGpuSink) SetController(c *ControllerIO) { e.controller = c }

// SetWorkQueue lets Update drain frame-boundary notifications the
// emulator actor posts (§5), folding the renderer actor's consumption
// of WorkQueue into ebiten's own callback-driven loop instead of a
// second blocking thread, since ebiten requires its RunGame loop to
// drive Update/Draw from the same goroutine that started it.
func (e *EbitenGpuSink) SetWorkQueue(q *WorkQueue) { e.work = q }

func (e *EbitenGpuSink) WriteGP0(v uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v>>24 == 0x02 { // quick rectangle fill: low 24 bits are BGR555-ish RGB
		e.fill = color.RGBA{R: byte(v), G: byte(v >> 8), B: byte(v >> 16), A: 0xFF}
	}
	e.core.writeGP0(v)
}

func (e *EbitenGpuSink) WriteGP1(v uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.core.writeGP1(v)
}

func (e *EbitenGpuSink) ReadData() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.core.readData
}

func (e *EbitenGpuSink) ReadStatus() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.core.readStatus()
}

func (e *EbitenGpuSink) AddDotCycles(n uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.core.addDotCycles(n)
}

func (e *EbitenGpuSink) PollVBlank() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.core.pollVBlank()
}

func (e *EbitenGpuSink) FrameCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.core.getFrameCount()
}

// Run starts the ebiten event loop on the calling goroutine, per
// ebiten's requirement that RunGame own the platform's main thread
// (the teacher's EbitenOutput.Start instead backgrounds RunGame and
// waits on a vsync channel; the host driver here calls Run directly
// from main so the window owns the process's initial OS thread).
func (e *EbitenGpuSink) Run(title string) error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(e)
}

func (e *EbitenGpuSink) Update() error {
	if e.controller != nil {
		e.pollPad()
	}
	if e.work != nil {
		for {
			frame, ok := e.work.TryPop()
			if !ok {
				break
			}
			e.frameSeen = frame
		}
	}
	return nil
}

func (e *EbitenGpuSink) Draw(screen *ebiten.Image) {
	e.mu.Lock()
	c := e.fill
	e.mu.Unlock()
	screen.Fill(c)
}

func (e *EbitenGpuSink) Layout(_, _ int) (int, int) {
	return e.width, e.height
}

// pollPad feeds a handful of digital pad keys into the controller's
// RX FIFO (§4.9); this core does not emulate the full SIO handshake a
// real pad performs, only enough wire traffic to exercise ControllerIO.
func (e *EbitenGpuSink) pollPad() {
	keys := map[ebiten.Key]byte{
		ebiten.KeyArrowUp:    0x10,
		ebiten.KeyArrowDown:  0x40,
		ebiten.KeyArrowLeft:  0x80,
		ebiten.KeyArrowRight: 0x20,
		ebiten.KeyZ:          0x01,
		ebiten.KeyX:          0x02,
	}
	for key, bit := range keys {
		if ebiten.IsKeyPressed(key) {
			e.controller.PushRX(bit)
		}
	}
}
