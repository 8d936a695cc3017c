// r3051_decode.go - instruction field decode and the top-level opcode
// dispatch table for the MIPS I subset the PSX BIOS and games use.

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

func opcode(instr uint32) uint32 { return instr >> 26 }
func rs(instr uint32) uint32     { return (instr >> 21) & 0x1F }
func rt(instr uint32) uint32     { return (instr >> 16) & 0x1F }
func rd(instr uint32) uint32     { return (instr >> 11) & 0x1F }
func shamt(instr uint32) uint32  { return (instr >> 6) & 0x1F }
func funct(instr uint32) uint32  { return instr & 0x3F }
func imm16(instr uint32) uint32  { return instr & 0xFFFF }
func simm16(instr uint32) uint32 {
	v := instr & 0xFFFF
	if v&0x8000 != 0 {
		v |= 0xFFFF0000
	}
	return v
}
func target26(instr uint32) uint32 { return instr & 0x03FFFFFF }

const (
	opSPECIAL = 0x00
	opBCOND   = 0x01
	opJ       = 0x02
	opJAL     = 0x03
	opBEQ     = 0x04
	opBNE     = 0x05
	opBLEZ    = 0x06
	opBGTZ    = 0x07
	opADDI    = 0x08
	opADDIU   = 0x09
	opSLTI    = 0x0A
	opSLTIU   = 0x0B
	opANDI    = 0x0C
	opORI     = 0x0D
	opXORI    = 0x0E
	opLUI     = 0x0F
	opCOP0    = 0x10
	opCOP2    = 0x12
	opLB      = 0x20
	opLH      = 0x21
	opLWL     = 0x22
	opLW      = 0x23
	opLBU     = 0x24
	opLHU     = 0x25
	opLWR     = 0x26
	opSB      = 0x28
	opSH      = 0x29
	opSWL     = 0x2A
	opSW      = 0x2B
	opSWR     = 0x2E
	opLWC2    = 0x32
	opSWC2    = 0x3A
)

const (
	fnSLL     = 0x00
	fnSRL     = 0x02
	fnSRA     = 0x03
	fnSLLV    = 0x04
	fnSRLV    = 0x06
	fnSRAV    = 0x07
	fnJR      = 0x08
	fnJALR    = 0x09
	fnSYSCALL = 0x0C
	fnBREAK   = 0x0D
	fnMFHI    = 0x10
	fnMTHI    = 0x11
	fnMFLO    = 0x12
	fnMTLO    = 0x13
	fnMULT    = 0x18
	fnMULTU   = 0x19
	fnDIV     = 0x1A
	fnDIVU    = 0x1B
	fnADD     = 0x20
	fnADDU    = 0x21
	fnSUB     = 0x22
	fnSUBU    = 0x23
	fnAND     = 0x24
	fnOR      = 0x25
	fnXOR     = 0x26
	fnNOR     = 0x27
	fnSLT     = 0x2A
	fnSLTU    = 0x2B
)

// execute decodes and runs one instruction. pc is the address the
// instruction was fetched from, needed for link registers and exception
// EPC/BadVAddr reporting.
func (c *R3051) execute(instr uint32, pc uint32) {
	if instr == 0 {
		return // NOP, overwhelmingly the most common word in any PSX binary
	}

	switch opcode(instr) {
	case opSPECIAL:
		c.execSpecial(instr, pc)
	case opBCOND:
		c.execBcond(instr, pc)
	case opJ:
		c.branchTo((pc&0xF0000000)|(target26(instr)<<2), false)
	case opJAL:
		c.setReg(31, pc+8)
		c.branchTo((pc&0xF0000000)|(target26(instr)<<2), false)
	case opBEQ:
		c.branchIf(c.reg(rs(instr)) == c.reg(rt(instr)), pc, simm16(instr))
	case opBNE:
		c.branchIf(c.reg(rs(instr)) != c.reg(rt(instr)), pc, simm16(instr))
	case opBLEZ:
		c.branchIf(int32(c.reg(rs(instr))) <= 0, pc, simm16(instr))
	case opBGTZ:
		c.branchIf(int32(c.reg(rs(instr))) > 0, pc, simm16(instr))
	case opADDI:
		c.execAddImmediate(instr, true)
	case opADDIU:
		c.execAddImmediate(instr, false)
	case opSLTI:
		v := int32(c.reg(rs(instr))) < int32(simm16(instr))
		c.setReg(rt(instr), boolToWord(v))
	case opSLTIU:
		v := c.reg(rs(instr)) < simm16(instr)
		c.setReg(rt(instr), boolToWord(v))
	case opANDI:
		c.setReg(rt(instr), c.reg(rs(instr))&imm16(instr))
	case opORI:
		c.setReg(rt(instr), c.reg(rs(instr))|imm16(instr))
	case opXORI:
		c.setReg(rt(instr), c.reg(rs(instr))^imm16(instr))
	case opLUI:
		c.setReg(rt(instr), imm16(instr)<<16)
	case opCOP0:
		c.execCop0(instr)
	case opCOP2:
		c.execCop2(instr)
	case opLB, opLH, opLWL, opLW, opLBU, opLHU, opLWR:
		c.execLoad(instr, pc)
	case opSB, opSH, opSWL, opSW, opSWR:
		c.execStore(instr, pc)
	case opLWC2:
		c.execLwc2(instr, pc)
	case opSWC2:
		c.execSwc2(instr, pc)
	default:
		c.raiseException(ExcRI, pc, 0, 0)
	}
}

func (c *R3051) execSpecial(instr uint32, pc uint32) {
	switch funct(instr) {
	case fnSLL:
		c.setReg(rd(instr), c.reg(rt(instr))<<shamt(instr))
	case fnSRL:
		c.setReg(rd(instr), c.reg(rt(instr))>>shamt(instr))
	case fnSRA:
		c.setReg(rd(instr), uint32(int32(c.reg(rt(instr)))>>shamt(instr)))
	case fnSLLV:
		c.setReg(rd(instr), c.reg(rt(instr))<<(c.reg(rs(instr))&0x1F))
	case fnSRLV:
		c.setReg(rd(instr), c.reg(rt(instr))>>(c.reg(rs(instr))&0x1F))
	case fnSRAV:
		c.setReg(rd(instr), uint32(int32(c.reg(rt(instr)))>>(c.reg(rs(instr))&0x1F)))
	case fnJR:
		c.branchTo(c.reg(rs(instr)), true)
	case fnJALR:
		link := pc + 8
		target := c.reg(rs(instr))
		c.branchTo(target, true)
		c.setReg(rd(instr), link)
	case fnSYSCALL:
		c.raiseException(ExcSyscall, pc, 0, 0)
	case fnBREAK:
		c.raiseException(ExcBp, pc, 0, 0)
	case fnMFHI:
		c.setReg(rd(instr), c.hi)
	case fnMTHI:
		c.hi = c.reg(rs(instr))
	case fnMFLO:
		c.setReg(rd(instr), c.lo)
	case fnMTLO:
		c.lo = c.reg(rs(instr))
	case fnMULT:
		r := int64(int32(c.reg(rs(instr)))) * int64(int32(c.reg(rt(instr))))
		c.lo, c.hi = uint32(r), uint32(r>>32)
	case fnMULTU:
		r := uint64(c.reg(rs(instr))) * uint64(c.reg(rt(instr)))
		c.lo, c.hi = uint32(r), uint32(r>>32)
	case fnDIV:
		n, d := int32(c.reg(rs(instr))), int32(c.reg(rt(instr)))
		if d == 0 {
			c.lo = 0xFFFFFFFF
			c.hi = uint32(n)
		} else {
			c.lo, c.hi = uint32(n/d), uint32(n%d)
		}
	case fnDIVU:
		n, d := c.reg(rs(instr)), c.reg(rt(instr))
		if d == 0 {
			c.lo, c.hi = 0xFFFFFFFF, n
		} else {
			c.lo, c.hi = n/d, n%d
		}
	case fnADD:
		c.execAddReg(instr, true)
	case fnADDU:
		c.execAddReg(instr, false)
	case fnSUB:
		c.execSubReg(instr, true)
	case fnSUBU:
		c.execSubReg(instr, false)
	case fnAND:
		c.setReg(rd(instr), c.reg(rs(instr))&c.reg(rt(instr)))
	case fnOR:
		c.setReg(rd(instr), c.reg(rs(instr))|c.reg(rt(instr)))
	case fnXOR:
		c.setReg(rd(instr), c.reg(rs(instr))^c.reg(rt(instr)))
	case fnNOR:
		c.setReg(rd(instr), ^(c.reg(rs(instr)) | c.reg(rt(instr))))
	case fnSLT:
		c.setReg(rd(instr), boolToWord(int32(c.reg(rs(instr))) < int32(c.reg(rt(instr)))))
	case fnSLTU:
		c.setReg(rd(instr), boolToWord(c.reg(rs(instr)) < c.reg(rt(instr))))
	default:
		c.raiseException(ExcRI, pc, 0, 0)
	}
}

// execBcond handles the four REGIMM branches (BLTZ/BGEZ/BLTZAL/BGEZAL,
// rt selects which) that share opcode 1.
func (c *R3051) execBcond(instr uint32, pc uint32) {
	v := int32(c.reg(rs(instr)))
	link := rt(instr)&0x10 != 0
	if link {
		c.setReg(31, pc+8)
	}
	switch rt(instr) & 0x0F {
	case 0x00: // BLTZ / BLTZAL
		c.branchIf(v < 0, pc, simm16(instr))
	case 0x01: // BGEZ / BGEZAL
		c.branchIf(v >= 0, pc, simm16(instr))
	default:
		c.raiseException(ExcRI, pc, 0, 0)
	}
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// branchTo schedules a delayed jump to an absolute address. checkAlign
// is not consulted here: a misaligned register-supplied target raises
// AdEL when fetch reads from it.
func (c *R3051) branchTo(target uint32, checkAlign bool) {
	c.isBranch = true
	c.jumpAddress = target
	c.jumpPending = true
}

// branchIf schedules a delayed branch relative to pc if cond holds.
// The offset is in instructions; MIPS shifts it left 2 and adds to the
// address of the delay-slot instruction (pc+4).
func (c *R3051) branchIf(cond bool, pc uint32, offset uint32) {
	if !cond {
		return
	}
	c.isBranch = true
	c.jumpAddress = pc + 4 + (offset << 2)
	c.jumpPending = true
}
