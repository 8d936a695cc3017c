// console.go - the single-owner aggregate replacing the source's cyclic
// CPU<->bus<->device object graph (§9): Console holds every subsystem
// by value-or-pointer and is the one thing both actors described in §5
// share a reference to.
//
// Grounded on the teacher's machine_bus.go construction order (bus
// first, then the devices that register into it, then the CPU last so
// it can see a fully wired bus) and on its atomic.Bool running-flag
// convention for the quit signal (cpu_ie64.go, video_ted.go).

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
	"fmt"
	"sync/atomic"
	"time"
)

// cpuClockHz is the R3051's clock rate; one emulated second of
// progress is this many billed cycles (§5).
const cpuClockHz = 33868800

// blockCycles is how many cycles the emulator actor runs between
// sync-billing/backpressure checks: small enough to keep VBlank timing
// and the work queue responsive, large enough to keep the per-block
// overhead off the hot path.
const blockCycles = 2000

// Console is the aggregate owner of every subsystem (§9's answer to
// the cyclic object graph): the bus, the CPU, and the handles the host
// driver needs to run the two actors described in §5.
type Console struct {
	Bus *SystemInterlink
	CPU *R3051
	GPU GpuSink
	SPU SpuSink

	Work   *WorkQueue
	Quit   atomic.Bool
	Paused atomic.Bool

	frame uint64
}

// NewConsole wires one console instance: bus first, then the CPU that
// drives it, matching the teacher's bus-before-CPU construction order.
func NewConsole(gpu GpuSink, spu SpuSink) *Console {
	bus := NewSystemInterlink(gpu, spu)
	return &Console{
		Bus:  bus,
		CPU:  NewR3051(bus),
		GPU:  gpu,
		SPU:  spu,
		Work: NewWorkQueue(),
	}
}

// LoadBIOS installs the BIOS image; a fatal setup error if data is not
// exactly BIOS_SIZE bytes (§6).
func (c *Console) LoadBIOS(data []byte) error {
	if err := c.Bus.LoadBIOS(data); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

// AttachCdImage wires an optional CD image into the drive (§6); a nil
// image leaves the drive reporting an empty tray.
func (c *Console) AttachCdImage(img *CdImage) {
	c.Bus.cdrom.AttachImage(img)
}

// RunEmulatorActor is the emulator actor's loop body (§5): run blocks
// of CPU steps, bill the elapsed cycles to the bus's timed subsystems
// once per block, and push a work item to the renderer whenever a
// frame boundary (a vblank) is crossed. It returns when Quit is set,
// checked at the top of every block per §5's cancellation model.
//
// The caller runs this on its own dedicated goroutine; it is the only
// goroutine that ever touches Bus, CPU, GPU or SPU registers directly.
func (c *Console) RunEmulatorActor() {
	defer c.Work.EndProcessingByRenderingThread()

	var lastCycles uint64
	for !c.Quit.Load() {
		if c.Paused.Load() {
			time.Sleep(time.Millisecond)
			continue
		}
		startCycles := c.CPU.Cycles()
		for c.CPU.Cycles()-startCycles < blockCycles {
			c.CPU.Step()
		}
		elapsed := uint32(c.CPU.Cycles() - lastCycles)
		lastCycles = c.CPU.Cycles()

		c.Bus.AppendSyncCycles(elapsed)

		if c.GPU != nil {
			if n := c.GPU.FrameCount(); n != c.frame {
				c.frame = n
				c.Work.Push(c.frame)
			}
		}
	}
}

// RunRendererActor is the renderer actor's loop body (§5): block on
// the work queue and hand each frame boundary to present, a closure
// supplied by the host driver (the headless driver passes nil; the
// ebiten backend does not run this loop and drains the queue from its
// own Update instead). It returns once the queue is closed by the
// emulator actor's shutdown.
func (c *Console) RunRendererActor(present func(frame uint64)) {
	for {
		frame, ok := c.Work.WaitForItem()
		if !ok {
			return
		}
		if present != nil {
			present(frame)
		}
	}
}

// Shutdown flips the shared quit flag (§5's release/acquire signal);
// both actors observe it at their next loop-head check.
func (c *Console) Shutdown() {
	c.Quit.Store(true)
}
