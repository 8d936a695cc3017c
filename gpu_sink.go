// gpu_sink.go - the GPU's GP0/GP1/GPUREAD/GPUSTAT register surface as
// seen from the system bus. Rasterisation itself is out of scope (§1
// Non-goals): this core treats the GPU as an opaque collaborator it
// submits command words to and reads status/vblank timing from.
//
// Grounded on the teacher's VideoOutput interface (video_interface.go)
// for the split between a register/timing core and a presentation
// backend selected by the headless build tag, and on audio_chip.go's
// cycle-accumulator-with-remainder pattern for converting CPU cycles
// into the GPU's own dot-clock domain.

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

// GpuSink is the bus-facing surface any GPU presentation backend must
// offer. AddDotCycles is charged CPU cycles every retired block
// (§4.5's append_sync_cycles); PollVBlank reports (and clears) whether
// a vertical blank boundary was crossed since the last call, so the
// interlink can raise the VBlank IRQ line itself.
type GpuSink interface {
	WriteGP0(v uint32)
	WriteGP1(v uint32)
	ReadData() uint32
	ReadStatus() uint32
	AddDotCycles(n uint32)
	PollVBlank() bool
	FrameCount() uint64
}

// GPUSTAT bits this core's register model actually sets (the rest of
// the 32-bit word is rasteriser configuration this core stores but
// never interprets).
const (
	gpustatReadyCmdWord  = 1 << 26
	gpustatReadyVRAMRead = 1 << 27
	gpustatReadyDMABlock = 1 << 28
	gpustatInterlaceOdd  = 1 << 31
)

// cpuCyclesPerFrame approximates one NTSC video frame at the console's
// ~33.8688 MHz CPU clock and 60 Hz refresh (§4.6 shares this 7:11
// CPU:GPU dot-clock ratio with the timer module's dot/hblank source).
const cpuCyclesPerFrame = 564480

// gpuCore is the shared register/timing state both the ebiten-backed
// and headless GpuSink implementations embed. It never touches a
// framebuffer; the embedding backend decides what (if anything) to
// present.
type gpuCore struct {
	gpustat    uint32
	readData   uint32
	frameCycle uint32
	vblankHit  bool
	evenOdd    bool
	frameCount uint64
}

func newGPUCore() gpuCore {
	return gpuCore{
		gpustat: gpustatReadyCmdWord | gpustatReadyVRAMRead | gpustatReadyDMABlock,
	}
}

func (g *gpuCore) writeGP0(v uint32) {
	// Command/data FIFO intake. This core does not rasterise (§1
	// Non-goals); GP0(0xC0) "copy VRAM->CPU" is the one opcode whose
	// reply this core must be able to source, so GPUREAD simply
	// mirrors the last word submitted.
	g.readData = v
}

func (g *gpuCore) writeGP1(v uint32) {
	switch v >> 24 {
	case 0x00: // reset GPU
		g.gpustat = gpustatReadyCmdWord | gpustatReadyVRAMRead | gpustatReadyDMABlock
		g.readData = 0
	case 0x03: // display enable/disable, bit 0 of the param mirrors into GPUSTAT bit 23
		if v&1 != 0 {
			g.gpustat |= 1 << 23
		} else {
			g.gpustat &^= 1 << 23
		}
	}
}

func (g *gpuCore) readStatus() uint32 {
	if g.evenOdd {
		return g.gpustat | gpustatInterlaceOdd
	}
	return g.gpustat &^ gpustatInterlaceOdd
}

func (g *gpuCore) addDotCycles(n uint32) {
	g.frameCycle += n
	for g.frameCycle >= cpuCyclesPerFrame {
		g.frameCycle -= cpuCyclesPerFrame
		g.vblankHit = true
		g.evenOdd = !g.evenOdd
		g.frameCount++
	}
}

func (g *gpuCore) pollVBlank() bool {
	hit := g.vblankHit
	g.vblankHit = false
	return hit
}

func (g *gpuCore) getFrameCount() uint64 { return g.frameCount }
