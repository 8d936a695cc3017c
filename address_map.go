// address_map.go - physical and virtual address map for the PSX console core.
//
// Mirrors the teacher's registers.go convention of a single file that
// centralises region boundaries and membership-test helpers, with the
// per-device detail documented beside the device that owns it.

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

// Physical address ranges (post-COP0 translation), per spec §3.
const (
	RAM_BASE  = 0x00000000
	RAM_SIZE  = 2 * 1024 * 1024
	RAM_END   = RAM_BASE + RAM_SIZE - 1
	RAM_MASK  = RAM_SIZE - 1

	EXP1_BASE = 0x1F000000
	EXP1_END  = 0x1F7FFFFF

	SCRATCHPAD_BASE = 0x1F800000
	SCRATCHPAD_SIZE = 1024
	SCRATCHPAD_END  = SCRATCHPAD_BASE + SCRATCHPAD_SIZE - 1

	IO_PORTS_BASE = 0x1F801000
	IO_PORTS_END  = 0x1F801FFF

	EXP2_BASE  = 0x1F802000
	EXP2_END   = 0x1F8020FF
	BIOS_POST  = 0x1F802041

	BIOS_BASE = 0x1FC00000
	BIOS_SIZE = 512 * 1024
	BIOS_END  = BIOS_BASE + BIOS_SIZE - 1
	BIOS_MASK = BIOS_SIZE - 1

	CACHE_CONTROL_REG = 0xFFFE0130
)

// Virtual segment masks (MIPS KUSEG/KSEG0/KSEG1/KSEG2).
const (
	KUSEG_BASE = 0x00000000
	KSEG0_BASE = 0x80000000
	KSEG0_END  = 0x9FFFFFFF
	KSEG1_BASE = 0xA0000000
	KSEG1_END  = 0xBFFFFFFF
	KSEG2_BASE = 0xC0000000

	KSEG0_MASK = 0x1FFFFFFF // strip top 3 bits
	KSEG1_MASK = 0x1FFFFFFF // strip top bit's segment (same low 29 bits)
)

// I/O port sub-ranges within 0x1F801000-0x1F801FFF, mirrored at the
// KSEG0/KSEG1 equivalents after translation.
const (
	IO_MEM_CONTROL_BASE = 0x1F801000
	IO_MEM_CONTROL_END  = 0x1F80101F

	IO_PERIPHERAL_BASE = 0x1F801040 // ControllerIO + SIO
	IO_PERIPHERAL_END  = 0x1F80105F

	IO_TIMER_BASE = 0x1F801100
	IO_TIMER_END  = 0x1F80112F

	IO_CDROM_BASE = 0x1F801800
	IO_CDROM_END  = 0x1F801803

	IO_GPU_BASE = 0x1F801810
	IO_GPU_END  = 0x1F801817

	IO_DMA_BASE = 0x1F801080
	IO_DMA_END  = 0x1F8010FF

	IO_SPU_BASE = 0x1F801C00
	IO_SPU_END  = 0x1F801FFF

	IO_IRQ_STATUS_REG = 0x1F801070
	IO_IRQ_MASK_REG   = 0x1F801074
)

// isInRange reports whether addr lies in [base, end] inclusive.
func isInRange(addr, base, end uint32) bool {
	return addr >= base && addr <= end
}

// virtualToPhysical maps a CPU-visible virtual address to its physical
// address per the KUSEG/KSEG0/KSEG1/KSEG2 layout. KSEG2 addresses pass
// through unchanged (only the cache-control register lives there).
func virtualToPhysical(addr uint32) uint32 {
	switch {
	case addr >= KSEG0_BASE && addr <= KSEG0_END:
		return addr & KSEG0_MASK
	case addr >= KSEG1_BASE && addr <= KSEG1_END:
		return addr & KSEG1_MASK
	default:
		return addr
	}
}

// isCacheableAddr reports whether a virtual address is cacheable: only
// KUSEG and KSEG0 are, per §4.1.
func isCacheableAddr(addr uint32) bool {
	return addr < KSEG0_BASE || (addr >= KSEG0_BASE && addr <= KSEG0_END)
}
