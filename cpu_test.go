package main

import "testing"

// encodeR assembles an R-type instruction (SPECIAL opcode 0).
func encodeR(funct, rsReg, rtReg, rdReg, shamtVal uint32) uint32 {
	return (rsReg&0x1F)<<21 | (rtReg&0x1F)<<16 | (rdReg&0x1F)<<11 | (shamtVal&0x1F)<<6 | (funct & 0x3F)
}

// encodeI assembles an I-type instruction.
func encodeI(op, rsReg, rtReg uint32, imm uint16) uint32 {
	return op<<26 | (rsReg&0x1F)<<21 | (rtReg&0x1F)<<16 | uint32(imm)
}

// newTestConsole builds a Console with PC at address 0 (KUSEG, which
// maps 1:1 onto physical RAM), letting tests write instructions and PC
// in the same address space without a BIOS image or KSEG0 translation
// to account for.
func newTestConsole() *Console {
	c := NewConsole(NewHeadlessGpuSink(), NewHeadlessSpuSink())
	c.CPU.pc = 0
	return c
}

// TestBiosColdBoot verifies NewR3051 leaves PC at the reset vector with
// BEV set in Status, and that the first BIOS word is actually fetchable
// through KSEG1 (§4.3, §6 cold-boot scenario).
func TestBiosColdBoot(t *testing.T) {
	bios := make([]byte, BIOS_SIZE)
	// NOP (SLL r0, r0, 0) at the very first word.
	bios[0], bios[1], bios[2], bios[3] = 0x00, 0x00, 0x00, 0x00

	bus := NewSystemInterlink(NewHeadlessGpuSink(), NewHeadlessSpuSink())
	if err := bus.LoadBIOS(bios); err != nil {
		t.Fatalf("LoadBIOS: %v", err)
	}
	cpu := NewR3051(bus)

	if cpu.pc != resetExceptionVector {
		t.Fatalf("PC = 0x%08X, want reset vector 0x%08X", cpu.pc, resetExceptionVector)
	}
	if cpu.cop0.Status()&(1<<22) == 0 {
		t.Fatalf("Status BEV bit not set after reset")
	}

	cpu.Step()
	if cpu.exception.pending {
		t.Fatalf("unexpected exception fetching/executing BIOS NOP: %+v", cpu.exception)
	}
}

// TestADDOverflowTraps verifies signed ADD overflow raises ExcOvf and
// that the destination register is left untouched (§8's overflow
// scenario: the exception fires before any write-back).
func TestADDOverflowTraps(t *testing.T) {
	c := newTestConsole()
	c.CPU.setReg(1, 0x7FFFFFFF)
	c.CPU.setReg(2, 1)
	c.CPU.setReg(3, 0xDEADBEEF)

	instr := encodeR(fnADD, 1, 2, 3, 0)
	c.Bus.WriteWord(0, instr)

	c.CPU.Step()
	if !c.CPU.exception.pending {
		t.Fatalf("expected ExcOvf pending after signed overflow, got none")
	}
	if c.CPU.exception.reason != ExcOvf {
		t.Fatalf("exception reason = %d, want ExcOvf (%d)", c.CPU.exception.reason, ExcOvf)
	}
	if c.CPU.reg(3) != 0xDEADBEEF {
		t.Fatalf("r3 = 0x%08X, want untouched 0xDEADBEEF (overflow must not write back)", c.CPU.reg(3))
	}

	c.CPU.Step()
	if c.CPU.pc != generalExceptionVector {
		t.Fatalf("PC after dispatch = 0x%08X, want general exception vector 0x%08X", c.CPU.pc, generalExceptionVector)
	}
	if c.CPU.cop0.EPC() != 0 {
		t.Fatalf("EPC = 0x%08X, want faulting instruction address 0", c.CPU.cop0.EPC())
	}
}

// TestUnalignedLoadWordADEL verifies an LW from a non-word-aligned
// address raises ExcADEL rather than performing a misaligned read
// (§8's unaligned-load scenario).
func TestUnalignedLoadWordADEL(t *testing.T) {
	c := newTestConsole()
	c.CPU.setReg(1, 0x1001) // base, misaligned to 4
	instr := encodeI(opLW, 1, 2, 0)
	c.Bus.WriteWord(0, instr)

	c.CPU.Step()
	if !c.CPU.exception.pending {
		t.Fatalf("expected ExcADEL pending for unaligned LW, got none")
	}
	if c.CPU.exception.reason != ExcADEL {
		t.Fatalf("exception reason = %d, want ExcADEL (%d)", c.CPU.exception.reason, ExcADEL)
	}
	if c.CPU.exception.badAddr != 0x1001 {
		t.Fatalf("BadVAddr = 0x%08X, want faulting address 0x1001", c.CPU.exception.badAddr)
	}
}

// TestCacheIsolationBlocksWrite verifies that with Status's isolate-cache
// bit set, a data store is redirected into the instruction cache array
// rather than RAM (§6/§8's cache isolation scenario, a documented
// real-hardware quirk used by the BIOS self-test to probe the data
// cache without touching main memory).
func TestCacheIsolationBlocksWrite(t *testing.T) {
	c := newTestConsole()

	const target = 0x2000
	c.Bus.WriteWord(target, 0) // known baseline

	c.CPU.cop0.SetStatus(c.CPU.cop0.Status() | 1<<statusIsolateCacheBit)
	c.CPU.writeWordData(target, 0xCAFEBABE, 0)

	got, err := c.Bus.ReadWord(target)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if got != 0 {
		t.Fatalf("RAM at 0x%08X = 0x%08X, want unchanged 0 (cache-isolated store must not reach RAM)", target, got)
	}
	if got := c.CPU.icache.readWord(target); got != 0xCAFEBABE {
		t.Fatalf("icache at 0x%08X = 0x%08X, want the isolated store's value 0xCAFEBABE", target, got)
	}
}

// TestTimer2CPUOverEight verifies Timer 2's CPU/8 clock source divides
// the cycle count by 8 before incrementing the counter (§7's timer
// clock-source table).
func TestTimer2CPUOverEight(t *testing.T) {
	bus := NewSystemInterlink(NewHeadlessGpuSink(), NewHeadlessSpuSink())
	tm := NewTimerModule(bus)

	// Mode register for timer 2: clock-source field bit 1 (mode bit 9)
	// selects CPU/8.
	tm.timers[2].mode = 1 << 9

	tm.Resync(80)

	if got := tm.timers[2].counter; got != 10 {
		t.Fatalf("timer 2 counter after 80 cycles at CPU/8 = %d, want 10", got)
	}
}
