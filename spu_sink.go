// spu_sink.go - the SPU's register surface as an opaque collaborator
// (§1 Non-goals: SPU synthesis is out of scope). This core only needs
// to hand register writes somewhere and keep a PCM pull-player alive
// so the rest of the bus wiring (IRQ-enable bit, DMA target) has
// somewhere real to land.

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

// SpuSink is the bus-facing surface any SPU audio backend must offer.
// Register semantics (voice parameters, reverb, ADSR) are entirely the
// sink's business; the core only ever does a raw register read/write.
type SpuSink interface {
	ReadRegister(offset uint32) uint16
	WriteRegister(offset uint32, v uint16)
	Start() error
	Close() error
}

// spuRegisterFile is the shared flat register store both backends
// embed: 512 halfwords covers the 1 KiB IO_SPU_BASE-IO_SPU_END
// (0x1F801C00-0x1F801FFF) range.
type spuRegisterFile struct {
	regs [512]uint16
}

func (s *spuRegisterFile) read(offset uint32) uint16 {
	idx := (offset / 2) % uint32(len(s.regs))
	return s.regs[idx]
}

func (s *spuRegisterFile) write(offset uint32, v uint16) {
	idx := (offset / 2) % uint32(len(s.regs))
	s.regs[idx] = v
}
