// instruction_cache.go - the R3051's 4 KiB direct-mapped instruction cache.
//
// Grounded on the teacher's machine_bus.go IORegion/fast-page pattern
// (small fixed-size arrays plus a tag array indexed by a masked address)
// adapted to PSX's documented I-cache geometry: 256 lines of 16 bytes,
// direct-mapped, tag+valid per line.

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2026 ionpsx contributors
https://github.com/ionpsx/core
License: GPLv3 or later
*/

package main

const (
	icacheLineSize  = 16
	icacheLineCount = 256
	icacheSize      = icacheLineSize * icacheLineCount // 4 KiB
	icacheIndexMask = icacheLineCount - 1
	icacheOffsetMask = icacheLineSize - 1
)

// instructionCache models the I-cache as the BIOS and kernel actually
// observe it: a byte array it can be written through while isolated
// (Status.IsC), plus a tag/valid array the R3051 consults on fetch.
type instructionCache struct {
	data  [icacheSize]byte
	tags  [icacheLineCount]uint32
	valid [icacheLineCount]bool
}

func newInstructionCache() *instructionCache {
	return &instructionCache{}
}

func (ic *instructionCache) Reset() {
	for i := range ic.valid {
		ic.valid[i] = false
		ic.tags[i] = 0
	}
}

func icacheLine(physAddr uint32) uint32 {
	return (physAddr >> 4) & icacheIndexMask
}

func icacheTag(physAddr uint32) uint32 {
	return physAddr &^ (icacheSize - 1)
}

// checkForHit reports whether physAddr's line is resident with a
// matching tag.
func (ic *instructionCache) checkForHit(physAddr uint32) bool {
	line := icacheLine(physAddr)
	return ic.valid[line] && ic.tags[line] == icacheTag(physAddr)
}

// refillLine marks physAddr's line valid for its tag. The caller is
// responsible for having already placed the fetched words into data via
// writeWord (the R3051 fills a line one word at a time during a cache
// miss, exactly as the real core's bus sequencer does).
func (ic *instructionCache) refillLine(physAddr uint32) {
	line := icacheLine(physAddr)
	ic.tags[line] = icacheTag(physAddr)
	ic.valid[line] = true
}

// invalidateLine drops the validity of physAddr's line without touching
// its bytes. The R3051's cache-isolated store path writes bytes without
// calling it.
func (ic *instructionCache) invalidateLine(physAddr uint32) {
	ic.valid[icacheLine(physAddr)] = false
}

// readWord assembles a big-endian word from four consecutive bytes
// (§4.2): the byte at the lowest address is the most significant. The
// bytes are collected in address order and then run through
// swapEndianness.
func (ic *instructionCache) readWord(physAddr uint32) uint32 {
	off := physAddr & ^uint32(3) & (icacheSize - 1)
	packed := uint32(ic.data[off]) | uint32(ic.data[off+1])<<8 |
		uint32(ic.data[off+2])<<16 | uint32(ic.data[off+3])<<24
	return swapEndianness(packed)
}

// writeWord is readWord's inverse: it stores value's bytes so that a
// later readWord reassembles the same big-endian-ordered word.
func (ic *instructionCache) writeWord(physAddr uint32, value uint32) {
	off := physAddr & ^uint32(3) & (icacheSize - 1)
	packed := swapEndianness(value)
	ic.data[off] = byte(packed)
	ic.data[off+1] = byte(packed >> 8)
	ic.data[off+2] = byte(packed >> 16)
	ic.data[off+3] = byte(packed >> 24)
}

func (ic *instructionCache) writeByte(physAddr uint32, value byte) {
	ic.data[physAddr&(icacheSize-1)] = value
}
