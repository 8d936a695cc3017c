// cdrom_drive.go - the CD-ROM drive's port-indexed register file,
// command state machine and delayed two-phase response scheduling
// (§4.8).
//
// Grounded on the teacher's audio_chip.go command/FIFO register
// pattern (a small ring buffer plus a dispatch-on-write-to-command-port
// switch), generalised to the CD-ROM's parameter/response/data triple
// FIFO and its two-phase (stat, then data) command responses.

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

import "log"

type byteFIFO struct {
	buf   []byte
	head  int
	count int
}

func newByteFIFO(capacity int) *byteFIFO {
	return &byteFIFO{buf: make([]byte, capacity)}
}

func (f *byteFIFO) Push(b byte) bool {
	if f.count == len(f.buf) {
		return false
	}
	f.buf[(f.head+f.count)%len(f.buf)] = b
	f.count++
	return true
}

func (f *byteFIFO) Pop() byte {
	if f.count == 0 {
		return 0
	}
	b := f.buf[f.head]
	f.head = (f.head + 1) % len(f.buf)
	f.count--
	return b
}

func (f *byteFIFO) Empty() bool { return f.count == 0 }
func (f *byteFIFO) Clear()      { f.head, f.count = 0, 0 }

// pendingResponse describes the second-phase response a two-phase
// command (ReadN, GetID) schedules through the interlink's delayed IRQ.
type pendingResponse struct {
	scheduled bool
	kind      int
}

const (
	respNone = iota
	respReadSector
	respGetID
)

type CDROMDrive struct {
	index byte

	paramFIFO    *byteFIFO
	responseFIFO *byteFIFO
	dataFIFO     *byteFIFO

	interruptEnable byte
	interruptFlag   byte

	statusBits byte
	mode       byte

	setlocPosition uint32
	seekTarget     uint32
	reading        bool

	pending pendingResponse

	image *CdImage
	bus   *SystemInterlink
}

func NewCDROMDrive(bus *SystemInterlink) *CDROMDrive {
	return &CDROMDrive{
		paramFIFO:    newByteFIFO(cdParamFIFOSize),
		responseFIFO: newByteFIFO(cdResponseFIFOSize),
		dataFIFO:     newByteFIFO(cdDataFIFOSize),
		bus:          bus,
	}
}

func (c *CDROMDrive) Reset() {
	c.index = 0
	c.paramFIFO.Clear()
	c.responseFIFO.Clear()
	c.dataFIFO.Clear()
	c.interruptEnable = 0
	c.interruptFlag = 0
	c.statusBits = 0
	c.mode = 0
	c.setlocPosition = 0
	c.seekTarget = 0
	c.reading = false
	c.pending = pendingResponse{}
}

// AttachImage wires the optional CD image (§6); a nil image means the
// drive reports an empty tray.
func (c *CDROMDrive) AttachImage(img *CdImage) { c.image = img }

func (c *CDROMDrive) statusRegister() byte {
	s := byte(c.index & statIndexMask)
	if c.paramFIFO.Empty() {
		s |= statPRMEMPT
	}
	if c.paramFIFO.count < cdParamFIFOSize {
		s |= statPRMWRDY
	}
	if !c.responseFIFO.Empty() {
		s |= statRSLRRDY
	}
	if !c.dataFIFO.Empty() {
		s |= statDRQSTS
	}
	return s
}

func (c *CDROMDrive) ReadPort(portOffset uint32) byte {
	switch portOffset {
	case 0:
		return c.statusRegister()
	case 1:
		return c.responseFIFO.Pop()
	case 2:
		return c.dataFIFO.Pop()
	case 3:
		if c.index&1 == 0 {
			return c.interruptEnable
		}
		return c.interruptFlag | 0xE0
	}
	return 0
}

func (c *CDROMDrive) WritePort(portOffset uint32, v byte) {
	switch portOffset {
	case 0:
		c.index = v & 0x3
	case 1:
		switch c.index {
		case 0:
			c.dispatchCommand(v)
		}
	case 2:
		switch c.index {
		case 0:
			c.paramFIFO.Push(v)
		}
	case 3:
		switch c.index {
		case 0:
			c.interruptEnable = v & 0x1F
		case 1:
			c.interruptFlag &^= v & 0x1F
			if v&0x40 != 0 {
				c.paramFIFO.Clear()
			}
			// A second-phase response is gated on the host acknowledging
			// the first (§4.8): only arm the delayed IRQ once the flag
			// has actually been cleared.
			if c.interruptFlag == 0 && c.pending.scheduled {
				c.bus.ScheduleIRQ(irqSourceCDROM, cdCommandDelay)
			}
		}
	}
}

func (c *CDROMDrive) popParams(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = c.paramFIFO.Pop()
	}
	return out
}

func (c *CDROMDrive) pushResponse(bytes ...byte) {
	for _, b := range bytes {
		c.responseFIFO.Push(b)
	}
}

// dispatchCommand runs a command's immediate (first-response) phase and
// arms a delayed second phase where the command is two-phase (§4.8).
func (c *CDROMDrive) dispatchCommand(cmd byte) {
	c.responseFIFO.Clear()
	switch cmd {
	case cmdGetstat:
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	case cmdSetloc:
		p := c.popParams(3)
		c.setlocPosition = mfsToPosition(p[0], p[1], p[2])
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	case cmdSeekL:
		c.seekTarget = c.setlocPosition
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	case cmdReadN:
		c.reading = true
		c.seekTarget = c.setlocPosition
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
		c.pending = pendingResponse{scheduled: true, kind: respReadSector}
	case cmdPause:
		c.reading = false
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	case cmdInit:
		c.mode = 0
		c.reading = false
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	case cmdDemute:
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	case cmdSetmode:
		p := c.popParams(1)
		c.mode = p[0]
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	case cmdTest:
		p := c.popParams(1)
		if len(p) > 0 && p[0] == 0x20 {
			c.pushResponse(0x98, 0x06, 0x10, 0xC3) // fixed date+version (§4.8)
		} else {
			c.pushResponse(c.statusBits)
		}
		c.raiseFirstResponse()
	case cmdGetID:
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
		c.pending = pendingResponse{scheduled: true, kind: respGetID}
	case cmdReadTOC:
		c.pushResponse(c.statusBits)
		c.raiseFirstResponse()
	default:
		// unrecognised subcommand: logged and leaves response FIFO
		// empty, per §7.
		log.Printf("cdrom: unrecognised command 0x%02X", cmd)
	}
}

func (c *CDROMDrive) raiseFirstResponse() {
	c.interruptFlag = 3 // INT3: first response acknowledged
	c.bus.ScheduleIRQ(irqSourceCDROM, cdCommandDelay)
}

// deliverPendingResponse runs a two-phase command's second response
// once the interlink's delayed IRQ for it fires.
func (c *CDROMDrive) deliverPendingResponse() {
	if !c.pending.scheduled {
		return
	}
	kind := c.pending.kind
	c.pending = pendingResponse{}

	switch kind {
	case respReadSector:
		c.deliverSector()
		c.interruptFlag = 1 // INT1: data ready
	case respGetID:
		c.responseFIFO.Clear()
		c.pushResponse(cdGetIDLicensedResponse[:]...)
		c.interruptFlag = 2 // INT2: second response
	}
}

func (c *CDROMDrive) deliverSector() {
	size := sectorDataSize
	if c.mode&modeWholeSector != 0 {
		size = sectorWholeSize
	}
	c.dataFIFO.Clear()
	if c.image != nil {
		for i := 0; i < size; i++ {
			b, _ := c.image.ReadByte(c.seekTarget + uint32(i))
			c.dataFIFO.Push(b)
		}
	}
	c.seekTarget += 2352
	c.setlocPosition = c.seekTarget
	if c.reading {
		// Next sector's delivery is gated on this one's IRQ being
		// acknowledged, same as the first/second response handoff.
		c.pending = pendingResponse{scheduled: true, kind: respReadSector}
	}
}
