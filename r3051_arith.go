// r3051_arith.go - signed-overflow-checked arithmetic (§8, the ADD/ADDI
// overflow scenario: ExcOvf must fire without writing the destination
// register).

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

func (c *R3051) execAddImmediate(instr uint32, trapOnOverflow bool) {
	a := c.reg(rs(instr))
	b := simm16(instr)
	sum := a + b
	if trapOnOverflow && addOverflows(a, b, sum) {
		c.raiseException(ExcOvf, c.pc, 0, 0)
		return
	}
	c.setReg(rt(instr), sum)
}

func (c *R3051) execAddReg(instr uint32, trapOnOverflow bool) {
	a := c.reg(rs(instr))
	b := c.reg(rt(instr))
	sum := a + b
	if trapOnOverflow && addOverflows(a, b, sum) {
		c.raiseException(ExcOvf, c.pc, 0, 0)
		return
	}
	c.setReg(rd(instr), sum)
}

func (c *R3051) execSubReg(instr uint32, trapOnOverflow bool) {
	a := c.reg(rs(instr))
	b := c.reg(rt(instr))
	diff := a - b
	if trapOnOverflow && subOverflows(a, b, diff) {
		c.raiseException(ExcOvf, c.pc, 0, 0)
		return
	}
	c.setReg(rd(instr), diff)
}

// addOverflows reports two's-complement signed overflow: operands share
// a sign and the result's sign differs from theirs.
func addOverflows(a, b, sum uint32) bool {
	return (a^sum)&(b^sum)&0x80000000 != 0
}

// subOverflows reports signed overflow for a-b: operands have different
// signs and the result's sign matches the subtrahend's.
func subOverflows(a, b, diff uint32) bool {
	return (a^b)&(a^diff)&0x80000000 != 0
}
