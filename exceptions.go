// exceptions.go - the R3051's exception record and reason codes.
//
// Every raise call sets a pending MIPSException on the CPU and returns;
// the dispatcher checks the pending record at a single point per
// instruction (handle_exception). This is the systems-rewrite substitute
// for the source language's exception/return conventions (§9 Design Notes).

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

// Exception reason codes, placed in Cause.ExcCode (bits 2-6) shifted
// left by 2 when written back. Values match the standard MIPS I
// assignment the spec's end-to-end scenarios rely on (OVF=12, ADEL=4).
const (
	excReasonNone = -1 // no exception pending

	ExcInt     = 0  // external interrupt
	ExcMod     = 1  // TLB modification (unused; no TLB in this core)
	ExcTLBL    = 2  // TLB miss, load (unused)
	ExcTLBS    = 3  // TLB miss, store (unused)
	ExcADEL    = 4  // address error, load
	ExcADES    = 5  // address error, store
	ExcIBE     = 6  // bus error, instruction fetch
	ExcDBE     = 7  // bus error, data access
	ExcSyscall = 8  // SYSCALL
	ExcBp      = 9  // BREAK
	ExcRI      = 10 // reserved instruction
	ExcCpU     = 11 // coprocessor unusable
	ExcOvf     = 12 // arithmetic overflow

	// ExcReset is not a real ExcCode value; handle_exception special-cases
	// it and returns early after running the reset sequence (§4.3).
	ExcReset = 100
)

// MIPSException is the pending-exception record described in §4.3.
type MIPSException struct {
	pending       bool
	reason        int
	pcOrigin      uint32
	badAddr       uint32
	copNum        uint32
	inBranchDelay bool
}

// raiseException records a pending exception; it never panics or
// returns a Go error — the dispatcher checks this record at a single
// point per retired instruction (handle_exception).
func (c *R3051) raiseException(reason int, pcOrigin uint32, badAddr uint32, copNum uint32) {
	// First raise wins within an instruction; handle_exception clears
	// the record once consumed.
	if c.exception.pending {
		return
	}
	c.exception = MIPSException{
		pending:       true,
		reason:        reason,
		pcOrigin:      pcOrigin,
		badAddr:       badAddr,
		copNum:        copNum,
		inBranchDelay: c.prevWasBranch,
	}
}
