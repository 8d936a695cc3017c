package main

import "testing"

// TestControllerIORXFIFORoundTrip verifies a byte pushed onto the RX
// FIFO is readable back through JOY_RX_DATA (port offset 0x00).
func TestControllerIORXFIFORoundTrip(t *testing.T) {
	c := NewControllerIO()
	c.PushRX(0x5A)

	got := c.ReadRegister(IO_PERIPHERAL_BASE + 0x00)
	if got != 0x5A {
		t.Fatalf("ReadRegister(JOY_RX_DATA) = 0x%02X, want 0x5A", got)
	}
}

// TestControllerIOStatAlwaysReportsTXReady verifies JOY_STAT's low
// three bits read back forced to 1 regardless of the stored status
// (§4.9).
func TestControllerIOStatAlwaysReportsTXReady(t *testing.T) {
	c := NewControllerIO()
	got := c.ReadRegister(IO_PERIPHERAL_BASE + 0x04)
	if got&joyStatTXReadyMask != joyStatTXReadyMask {
		t.Fatalf("JOY_STAT low bits = 0x%X, want TX-ready bits forced to 1", got&joyStatTXReadyMask)
	}
}

// TestControllerIOModeCtrlBaudRoundTrip verifies the mode, control and
// baud registers read back whatever was last written.
func TestControllerIOModeCtrlBaudRoundTrip(t *testing.T) {
	c := NewControllerIO()
	c.WriteRegister(IO_PERIPHERAL_BASE+0x08, 0x000D)
	c.WriteRegister(IO_PERIPHERAL_BASE+0x0A, 0x1003)
	c.WriteRegister(IO_PERIPHERAL_BASE+0x0E, 0x0088)

	if got := c.ReadRegister(IO_PERIPHERAL_BASE + 0x08); got != 0x000D {
		t.Fatalf("JOY_MODE = 0x%04X, want 0x000D", got)
	}
	if got := c.ReadRegister(IO_PERIPHERAL_BASE + 0x0A); got != 0x1003 {
		t.Fatalf("JOY_CTRL = 0x%04X, want 0x1003", got)
	}
	if got := c.ReadRegister(IO_PERIPHERAL_BASE + 0x0E); got != 0x0088 {
		t.Fatalf("JOY_BAUD = 0x%04X, want 0x0088", got)
	}
}

// TestControllerIOBaudTimerReload verifies Charge counts down the
// baud-rate remainder and reloads it from baud*mode/2 once it crosses
// zero (§4.9's baud-rate formula).
func TestControllerIOBaudTimerReload(t *testing.T) {
	c := NewControllerIO()
	c.baud = 10
	c.mode = 1 // low two bits = 1

	c.Charge(1) // first charge: remainder starts at 0, so this reloads immediately
	reload := uint32(10) * uint32(1) / 2
	if c.baudRemainder != reload-1 {
		t.Fatalf("baudRemainder after Charge(1) = %d, want %d", c.baudRemainder, reload-1)
	}

	c.Charge(reload - 1) // exhaust the remainder exactly
	if c.baudRemainder != reload {
		t.Fatalf("baudRemainder after exhausting the reload = %d, want a fresh reload of %d", c.baudRemainder, reload)
	}
}
