// controller_io.go - JOY_* register file: baud-rate timer, status/mode/
// control registers and the 4-byte RX FIFO (§4.9).

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

const joyRXFIFOSize = 4

// JOY_STAT bits (§4.9: low three bits forced to 1 on read, TX ready).
const (
	joyStatTXReadyMask = 0x7
)

type ControllerIO struct {
	baud uint16
	mode uint16
	stat uint32
	ctrl uint16
	tx   byte

	rx *byteFIFO

	baudRemainder uint32
}

func NewControllerIO() *ControllerIO {
	return &ControllerIO{rx: newByteFIFO(joyRXFIFOSize)}
}

func (c *ControllerIO) Reset() {
	c.baud = 0
	c.mode = 0
	c.stat = 0
	c.ctrl = 0
	c.tx = 0
	c.rx.Clear()
	c.baudRemainder = 0
}

// Charge accumulates cycles into the baud-rate countdown, reloading per
// §4.9's formula when it crosses zero.
func (c *ControllerIO) Charge(cycles uint32) {
	c.updateBaudrateTimer(cycles)
}

func (c *ControllerIO) updateBaudrateTimer(cycles uint32) {
	if c.baudRemainder > cycles {
		c.baudRemainder -= cycles
		return
	}
	remaining := cycles - c.baudRemainder
	reload := uint32(c.baud) * uint32(c.mode&0x3) / 2
	if reload == 0 {
		reload = 1
	}
	c.baudRemainder = reload - (remaining % reload)
}

func (c *ControllerIO) PushRX(b byte) {
	c.rx.Push(b)
}

func registerOffsetCIO(addr uint32) uint32 {
	return addr - IO_PERIPHERAL_BASE
}

func (c *ControllerIO) ReadRegister(addr uint32) uint32 {
	c.updateBaudrateTimer(0)
	switch registerOffsetCIO(addr) {
	case 0x00:
		v := uint32(c.rx.Pop())
		return v
	case 0x04:
		return c.stat | joyStatTXReadyMask
	case 0x08:
		return uint32(c.mode)
	case 0x0A:
		return uint32(c.ctrl)
	case 0x0E:
		return uint32(c.baud)
	default:
		return 0
	}
}

func (c *ControllerIO) WriteRegister(addr uint32, v uint32) {
	c.updateBaudrateTimer(0)
	switch registerOffsetCIO(addr) {
	case 0x00:
		c.tx = byte(v)
	case 0x08:
		c.mode = uint16(v)
	case 0x0A:
		c.ctrl = uint16(v)
	case 0x0E:
		c.baud = uint16(v)
	}
}
