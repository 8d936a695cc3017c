package main

import "testing"

// TestDMAOTCTransferWordReversesChain verifies the OTC channel's
// transferWord writes back a reverse-linked pointer (addr-4) into RAM,
// the building block of the GPU's reverse-ordered linked list DMA
// (§4.7).
func TestDMAOTCTransferWordReversesChain(t *testing.T) {
	bus := newTestBus()
	d := NewDMAArbiter(bus)

	d.transferWord(dmaOTC, 16, false)

	got, err := bus.ReadWord(16)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if got != 12 {
		t.Fatalf("word at addr 16 = %d, want 12 (addr-4)", got)
	}
}

// TestDMABlockTransferManualTrigger verifies a manual-sync (mode 0)
// channel only starts once both the enable and trigger bits are set,
// and that it schedules the completion IRQ (§4.7).
func TestDMABlockTransferManualTrigger(t *testing.T) {
	bus := newTestBus()
	d := NewDMAArbiter(bus)

	bus.WriteWord(0x100, 0xAAAAAAAA)
	d.channels[dmaOTC].baseAddr = 0x100
	d.channels[dmaOTC].blockControl = 1 // one word

	addr := IO_DMA_BASE + uint32(dmaOTC)*0x10 + 0x8
	d.WriteRegister(addr, dcpcrEnableBit) // enable without trigger: manual sync must not run
	if d.channels[dmaOTC].channelControl&dcpcrEnableBit == 0 {
		t.Fatalf("channelControl enable bit lost on write")
	}
	got, _ := bus.ReadWord(0x100)
	if got != 0xAAAAAAAA {
		t.Fatalf("transfer ran before the trigger bit was set")
	}

	d.WriteRegister(addr, dcpcrEnableBit|dcpcrTriggerBit)
	got, _ = bus.ReadWord(0x100)
	if got != 0xFC { // addr(0x100)-4, OTC's reverse-chain write
		t.Fatalf("word at 0x100 = 0x%08X, want 0xFC after the triggered transfer", got)
	}
	if d.channels[dmaOTC].channelControl&dcpcrEnableBit != 0 {
		t.Fatalf("enable bit still set after transfer completion")
	}
	if !bus.pending[irqSourceDMA].pending {
		t.Fatalf("DMA completion IRQ not scheduled after the transfer")
	}
}
