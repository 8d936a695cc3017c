// gte_ops.go - shared GTE helpers: register/matrix accessors, the
// matrix-vector transform kernel, MAC/IR saturation, the SZ/SXY FIFOs
// and the perspective-divide reciprocal; the opcode bodies that use
// them are in gte_opcodes.go.
//
// Grounded on §5.2's opcode family description (RTPS/RTPT share a
// transform-then-project kernel; NCDS/NCDT/NCCS/NCCT/NCS/NCT share a
// light-then-colour kernel) and on the UNR divide table in
// gte_unr_table.go for the perspective divide RTPS/RTPT both use.

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

type vec3 struct{ x, y, z int32 }

func (g *GTE) vector(which int) vec3 {
	switch which {
	case 0:
		return vec3{signed16(g.data[gteVXY0]), signed16(g.data[gteVXY0] >> 16), signed16(g.data[gteVZ0])}
	case 1:
		return vec3{signed16(g.data[gteVXY1]), signed16(g.data[gteVXY1] >> 16), signed16(g.data[gteVZ1])}
	default:
		return vec3{signed16(g.data[gteVXY2]), signed16(g.data[gteVXY2] >> 16), signed16(g.data[gteVZ2])}
	}
}

// rotMatrix returns the 3x3 rotation matrix rows from CR0..CR4.
func (g *GTE) rotMatrix() [3][3]int32 {
	var m [3][3]int32
	m[0][0] = signed16(g.control[gteRT11RT12])
	m[0][1] = signed16(g.control[gteRT11RT12] >> 16)
	m[0][2] = signed16(g.control[gteRT13RT21])
	m[1][0] = signed16(g.control[gteRT13RT21] >> 16)
	m[1][1] = signed16(g.control[gteRT22RT23])
	m[1][2] = signed16(g.control[gteRT22RT23] >> 16)
	m[2][0] = signed16(g.control[gteRT31RT32])
	m[2][1] = signed16(g.control[gteRT31RT32] >> 16)
	m[2][2] = signed16(g.control[gteRT33])
	return m
}

func (g *GTE) lightMatrix() [3][3]int32 {
	var m [3][3]int32
	m[0][0] = signed16(g.control[gteL11L12])
	m[0][1] = signed16(g.control[gteL11L12] >> 16)
	m[0][2] = signed16(g.control[gteL13L21])
	m[1][0] = signed16(g.control[gteL13L21] >> 16)
	m[1][1] = signed16(g.control[gteL22L23])
	m[1][2] = signed16(g.control[gteL22L23] >> 16)
	m[2][0] = signed16(g.control[gteL31L32])
	m[2][1] = signed16(g.control[gteL31L32] >> 16)
	m[2][2] = signed16(g.control[gteL33])
	return m
}

func (g *GTE) colorMatrix() [3][3]int32 {
	var m [3][3]int32
	m[0][0] = signed16(g.control[gteLR1LR2])
	m[0][1] = signed16(g.control[gteLR1LR2] >> 16)
	m[0][2] = signed16(g.control[gteLR3LG1])
	m[1][0] = signed16(g.control[gteLR3LG1] >> 16)
	m[1][1] = signed16(g.control[gteLG2LG3])
	m[1][2] = signed16(g.control[gteLG2LG3] >> 16)
	m[2][0] = signed16(g.control[gteLB1LB2])
	m[2][1] = signed16(g.control[gteLB1LB2] >> 16)
	m[2][2] = signed16(g.control[gteLB3])
	return m
}

// transform multiplies m by v, adds translation tr (integer TRX/TRY/TRZ,
// scaled by 1<<12 before the matrix products are added), and shifts by
// 12 unless sf=0,
// writing MAC1-3/IR1-3 with saturation.
func (g *GTE) transform(m [3][3]int32, v vec3, tr [3]int32, sf uint32, lm uint32) vec3 {
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	var mac [3]int64
	for i := 0; i < 3; i++ {
		acc := int64(tr[i]) << 12
		acc += int64(m[i][0]) * int64(v.x)
		acc += int64(m[i][1]) * int64(v.y)
		acc += int64(m[i][2]) * int64(v.z)
		mac[i] = acc >> shift
	}
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))

	ir1 := g.saturateIR(mac[0], 1, lm)
	ir2 := g.saturateIR(mac[1], 2, lm)
	ir3 := g.saturateIR(mac[2], 3, lm)
	g.data[gteIR1] = uint32(ir1)
	g.data[gteIR2] = uint32(ir2)
	g.data[gteIR3] = uint32(ir3)

	return vec3{ir1, ir2, ir3}
}

// saturateIR clamps a MAC value into IR1/2/3's signed 16-bit range
// (0..0x7FFF if lm requests unsigned, else -0x8000..0x7FFF) and sets the
// matching overflow flag bit.
func (g *GTE) saturateIR(mac int64, which int, lm uint32) int32 {
	lo := int64(-0x8000)
	if lm != 0 {
		lo = 0
	}
	hi := int64(0x7FFF)
	if mac < lo {
		g.control[gteFLAG] |= irFlagBit(which)
		return int32(lo)
	}
	if mac > hi {
		g.control[gteFLAG] |= irFlagBit(which)
		return int32(hi)
	}
	return int32(mac)
}

func irFlagBit(which int) uint32 {
	switch which {
	case 1:
		return flagIR1Sat
	case 2:
		return flagIR2Sat
	default:
		return flagIR3Sat
	}
}

// pushSZ shifts the Z FIFO and stores a new (unsigned, saturated) value.
func (g *GTE) pushSZ(z int64) {
	g.data[gteSZ0] = g.data[gteSZ1]
	g.data[gteSZ1] = g.data[gteSZ2]
	g.data[gteSZ2] = g.data[gteSZ3]
	if z < 0 {
		z = 0
		g.control[gteFLAG] |= flagSZ3OtzSat
	}
	if z > 0xFFFF {
		z = 0xFFFF
		g.control[gteFLAG] |= flagSZ3OtzSat
	}
	g.data[gteSZ3] = uint32(z)
}

// pushSXY shifts the screen-XY FIFO (SXY0<-SXY1<-SXY2<-new).
func (g *GTE) pushSXY(x, y int32) {
	g.data[gteSXY0] = g.data[gteSXY1]
	g.data[gteSXY1] = g.data[gteSXY2]
	sx := saturateScreen(x, flagSX2Saturated, &g.control[gteFLAG])
	sy := saturateScreen(y, flagSY2Saturated, &g.control[gteFLAG])
	g.data[gteSXY2] = uint32(uint16(sx)) | uint32(uint16(sy))<<16
}

func saturateScreen(v int32, bit uint32, flag *uint32) int32 {
	if v < -0x400 {
		*flag |= bit
		return -0x400
	}
	if v > 0x3FF {
		*flag |= bit
		return 0x3FF
	}
	return v
}

// reciprocal returns 1/dividend scaled by 1<<17 using the UNR table,
// matching the documented algorithm (§5.2 RTPS divide step). divisorBits
// is SZ3's 16-bit unsigned value; a zero or too-small divisor saturates
// to the maximum result and sets the divide-overflow flag.
func (g *GTE) reciprocal(divisor uint32) uint32 {
	if divisor == 0 {
		g.control[gteFLAG] |= flagDivOverflow
		return 0x1FFFF
	}
	shift := 0
	d := divisor
	for d < 0x8000 && shift < 16 {
		d <<= 1
		shift++
	}
	idx := (d - 0x7FC0) >> 7
	if idx > 0x100 {
		idx = 0x100
	}
	factor := unrTable[idx] + 0x101
	result := (int64(0x40000) - int64(factor)*int64(d&0x7FFF)) >> 8
	n := ((int64(factor) * result) + 0x8000) >> 16
	n = n << shift
	if n > 0x1FFFF {
		g.control[gteFLAG] |= flagDivOverflow
		n = 0x1FFFF
	}
	return uint32(n)
}

func (g *GTE) writeMAC0(v int64) int32 {
	if v < -0x80000000 {
		g.control[gteFLAG] |= flagMAC0Overflow
	}
	if v > 0x7FFFFFFF {
		g.control[gteFLAG] |= flagMAC0Overflow
	}
	r := int32(v)
	g.data[gteMAC0] = uint32(r)
	return r
}

func (g *GTE) applyFlagSummary() {
	if g.control[gteFLAG]&flagErrorMask != 0 {
		g.control[gteFLAG] |= 1 << 31
	}
}
