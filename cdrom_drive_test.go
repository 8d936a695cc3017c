package main

import "testing"

// TestByteFIFOWraparound verifies the ring buffer wraps correctly once
// pushes and pops cross the end of the backing array.
func TestByteFIFOWraparound(t *testing.T) {
	f := newByteFIFO(3)
	f.Push(1)
	f.Push(2)
	f.Pop() // head now at index 1
	f.Push(3)
	f.Push(4) // wraps: buf[0]

	if f.count != 3 {
		t.Fatalf("count = %d, want 3", f.count)
	}
	if got := f.Pop(); got != 2 {
		t.Fatalf("Pop() = %d, want 2", got)
	}
	if got := f.Pop(); got != 3 {
		t.Fatalf("Pop() = %d, want 3", got)
	}
	if got := f.Pop(); got != 4 {
		t.Fatalf("Pop() = %d, want 4", got)
	}
	if !f.Empty() {
		t.Fatalf("FIFO not empty after draining every pushed byte")
	}
}

// TestByteFIFOPushFailsWhenFull verifies Push reports false once the
// FIFO is at capacity rather than overwriting unread bytes.
func TestByteFIFOPushFailsWhenFull(t *testing.T) {
	f := newByteFIFO(2)
	if !f.Push(1) || !f.Push(2) {
		t.Fatalf("Push failed before reaching capacity")
	}
	if f.Push(3) {
		t.Fatalf("Push succeeded past capacity")
	}
}

// TestCDROMGetstatRaisesFirstResponse verifies Getstat pushes the status
// byte into the response FIFO and arms INT3 (§4.8's single-phase
// command path).
func TestCDROMGetstatRaisesFirstResponse(t *testing.T) {
	bus := newTestBus()
	c := NewCDROMDrive(bus)

	c.WritePort(1, cmdGetstat)

	if c.responseFIFO.Empty() {
		t.Fatalf("response FIFO empty after Getstat")
	}
	if got := c.responseFIFO.Pop(); got != c.statusBits {
		t.Fatalf("response byte = 0x%02X, want statusBits 0x%02X", got, c.statusBits)
	}
	if c.interruptFlag != 3 {
		t.Fatalf("interruptFlag = %d, want 3 (INT3)", c.interruptFlag)
	}
}

// TestCDROMSetlocRoundTrip verifies Setloc's BCD parameters decode to
// the absolute byte position Seek later reads from (§8's Setloc/SeekL
// round trip).
func TestCDROMSetlocRoundTrip(t *testing.T) {
	bus := newTestBus()
	c := NewCDROMDrive(bus)

	// m=0, s=2 (BCD 0x02), f=0 -> 2 seconds in.
	c.WritePort(2, 0x00)
	c.WritePort(2, 0x02)
	c.WritePort(2, 0x00)
	c.WritePort(1, cmdSetloc)

	want := mfsToPosition(0x00, 0x02, 0x00)
	if c.setlocPosition != want {
		t.Fatalf("setlocPosition = %d, want %d", c.setlocPosition, want)
	}

	c.WritePort(1, cmdSeekL)
	if c.seekTarget != want {
		t.Fatalf("seekTarget after SeekL = %d, want %d", c.seekTarget, want)
	}
}

// TestCDROMReadNDeliversSector verifies ReadN's second phase pulls
// sectorDataSize bytes from the attached image into the data FIFO once
// the delayed response fires, and that reading continues into the next
// sector only while still in the reading state (§4.8/§8).
func TestCDROMReadNDeliversSector(t *testing.T) {
	dir := t.TempDir()
	cuePath := writeTestImage(t, dir, 1_000_000)
	img, err := OpenCdImage(cuePath)
	if err != nil {
		t.Fatalf("OpenCdImage: %v", err)
	}
	defer img.Close()

	bus := newTestBus()
	c := NewCDROMDrive(bus)
	c.AttachImage(img)

	c.WritePort(1, cmdReadN)
	if !c.pending.scheduled || c.pending.kind != respReadSector {
		t.Fatalf("ReadN did not arm a pending respReadSector")
	}

	c.deliverPendingResponse()
	if c.dataFIFO.count != sectorDataSize {
		t.Fatalf("dataFIFO has %d bytes, want sectorDataSize (%d)", c.dataFIFO.count, sectorDataSize)
	}
	if c.interruptFlag != 1 {
		t.Fatalf("interruptFlag = %d, want 1 (INT1, data ready)", c.interruptFlag)
	}
	if !c.pending.scheduled || c.pending.kind != respReadSector {
		t.Fatalf("continuous reading did not re-arm the next sector's response")
	}
}

// TestCDROMPauseStopsReading verifies Pause clears the reading flag so
// deliverSector does not re-arm another sector (§4.8).
func TestCDROMPauseStopsReading(t *testing.T) {
	bus := newTestBus()
	c := NewCDROMDrive(bus)
	c.reading = true

	c.WritePort(1, cmdPause)

	if c.reading {
		t.Fatalf("reading still true after Pause")
	}
}

// TestCDROMInterruptFlagAckGatesDelayedResponse verifies a pending
// second-phase response is only scheduled once the host clears
// interruptFlag via a write to port 3 at index 1 (§4.8's handshake).
func TestCDROMInterruptFlagAckGatesDelayedResponse(t *testing.T) {
	bus := newTestBus()
	c := NewCDROMDrive(bus)

	c.WritePort(1, cmdGetID) // arms pending respGetID, raises INT3 first
	if c.interruptFlag == 0 {
		t.Fatalf("interruptFlag not set after GetID's first response")
	}
	bus.incrementInterruptCounters(cdCommandDelay)
	if bus.pending[irqSourceCDROM].pending {
		t.Fatalf("CD-ROM delayed IRQ still armed after the first response fired")
	}

	c.WritePort(0, 1) // select index 1
	c.WritePort(3, 0x1F)
	if c.interruptFlag != 0 {
		t.Fatalf("interruptFlag = %d, want 0 after host ack", c.interruptFlag)
	}
	if !bus.pending[irqSourceCDROM].pending {
		t.Fatalf("host ack did not arm the delayed second-phase response")
	}
}
