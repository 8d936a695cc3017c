// r3051_exceptions.go - exception dispatch and the COP0 instruction
// subset (MFC0/MTC0/RFE). One dispatch point per §4.3 and §9: nothing
// in the interpreter uses a Go panic or error return to unwind into here.

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
	cop0Funct  = 0x10
	cop2Funct  = 0x12
	fnRFE      = 0x10
	copSubMF   = 0x00
	copSubCF   = 0x02
	copSubMT   = 0x04
	copSubCT   = 0x06
	copSubCO   = 0x10
)

// dispatchException consumes the pending record, drives COP0's Cause/
// Status/EPC bookkeeping and redirects PC to the appropriate vector. It
// runs in place of fetch/execute for the Step that observes the pending
// flag (§4.3: exceptions are handled at a single point per instruction).
func (c *R3051) dispatchException() {
	exc := c.exception
	c.exception = MIPSException{reason: excReasonNone}

	c.jumpPending = false
	c.prevWasBranch = false

	if exc.reason == ExcReset {
		c.Reset()
		return
	}

	c.cop0.enterException(exc.reason, exc.pcOrigin, exc.badAddr, exc.copNum, exc.inBranchDelay)
	c.pc = generalExceptionVector
	c.isBranch = false
}

// execCop0 implements the handful of COP0 instructions software actually
// issues: MFC0, MTC0 and RFE. Everything else under opcode COP0 is
// reserved and traps.
func (c *R3051) execCop0(instr uint32) {
	sub := rs(instr)
	switch sub {
	case copSubMF:
		c.setReg(rt(instr), c.cop0.Read(rd(instr)))
	case copSubMT:
		c.cop0.Write(rd(instr), c.reg(rt(instr)))
	case copSubCO:
		if funct(instr) == fnRFE {
			c.cop0.rfe()
		}
	default:
		c.raiseException(ExcRI, c.pc, 0, 0)
	}
}

// execCop2 implements the GTE instruction encodings: MFC2/CFC2 read
// data/control registers, MTC2/CTC2 write them, and any other
// sub-opcode is a GTE function-unit opcode dispatched to the GTE itself.
func (c *R3051) execCop2(instr uint32) {
	if !c.cop0.IsCoprocessorEnabled(2) {
		c.raiseException(ExcCpU, c.pc, 0, 2)
		return
	}
	sub := rs(instr)
	switch sub {
	case copSubMF:
		c.setReg(rt(instr), c.gte.ReadData(rd(instr)))
	case copSubCF:
		c.setReg(rt(instr), c.gte.ReadControl(rd(instr)))
	case copSubMT:
		c.gte.WriteData(rd(instr), c.reg(rt(instr)))
	case copSubCT:
		c.gte.WriteControl(rd(instr), c.reg(rt(instr)))
	default:
		cycles := c.gte.Execute(instr & 0x1FFFFFF)
		c.gteCycles += cycles
		c.cycles += uint64(cycles)
	}
}

func (c *R3051) execLwc2(instr uint32, pc uint32) {
	base := c.reg(rs(instr))
	addr := base + simm16(instr)
	if addr&3 != 0 {
		c.raiseException(ExcADEL, pc, addr, 2)
		return
	}
	v, ok := c.readWordData(addr, pc)
	if !ok {
		return
	}
	c.gte.WriteData(rt(instr), v)
}

func (c *R3051) execSwc2(instr uint32, pc uint32) {
	base := c.reg(rs(instr))
	addr := base + simm16(instr)
	if addr&3 != 0 {
		c.raiseException(ExcADES, pc, addr, 2)
		return
	}
	c.writeWordData(addr, c.gte.ReadData(rt(instr)), pc)
}
