// gte_opcodes.go - the per-opcode bodies dispatched from Execute.

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

const gteCyclesDefault = 8

func (g *GTE) translation() [3]int32 {
	return [3]int32{int32(g.control[gteTRX]), int32(g.control[gteTRY]), int32(g.control[gteTRZ])}
}

func (g *GTE) backgroundColor() [3]int32 {
	return [3]int32{int32(g.control[gteRBK]), int32(g.control[gteGBK]), int32(g.control[gteBBK])}
}

func (g *GTE) farColor() [3]int32 {
	return [3]int32{int32(g.control[gteRFC]), int32(g.control[gteGFC]), int32(g.control[gteBFC])}
}

// project takes an already-transformed vector (camera space, IR1-3) and
// produces SZ/SXY/depth-cue MAC0 via the perspective divide, the shared
// tail of RTPS/RTPT (§5.2).
func (g *GTE) project(camZ int32) {
	g.pushSZ(int64(camZ))
	divisor := g.data[gteSZ3]
	recip := g.reciprocal(divisor)

	ofx := int32(g.control[gteOFX])
	ofy := int32(g.control[gteOFY])
	h := g.control[gteH]

	sx := (int64(recip)*int64(h)+int64(ofx))>>16
	sy := (int64(recip)*int64(h)+int64(ofy))>>16
	g.pushSXY(int32(sx), int32(sy))

	dqa := int32(int16(g.control[gteDQA]))
	dqb := int32(g.control[gteDQB])
	mac0 := int64(dqb) + int64(recip)*int64(dqa)
	ir0 := g.writeMAC0(mac0) >> 12
	if ir0 < 0 {
		g.control[gteFLAG] |= flagIR0Saturated
		ir0 = 0
	}
	if ir0 > 0x1000 {
		g.control[gteFLAG] |= flagIR0Saturated
		ir0 = 0x1000
	}
	g.data[gteIR0] = uint32(ir0)
}

func (g *GTE) rtps(sf, lm uint32, doProject bool) int {
	v := g.vector(0)
	res := g.transform(g.rotMatrix(), v, g.translation(), sf, lm)
	if doProject {
		g.project(res.z)
	}
	g.applyFlagSummary()
	return 15
}

func (g *GTE) rtpt(sf, lm uint32) int {
	var last vec3
	for i := 0; i < 3; i++ {
		v := g.vector(i)
		res := g.transform(g.rotMatrix(), v, g.translation(), sf, lm)
		g.pushSZ(int64(res.z))
		last = res
	}
	divisor := g.data[gteSZ3]
	recip := g.reciprocal(divisor)
	ofx := int32(g.control[gteOFX])
	ofy := int32(g.control[gteOFY])
	h := g.control[gteH]
	sx := (int64(recip)*int64(h) + int64(ofx)) >> 16
	sy := (int64(recip)*int64(h) + int64(ofy)) >> 16
	g.pushSXY(int32(sx), int32(sy))
	dqa := int32(int16(g.control[gteDQA]))
	dqb := int32(g.control[gteDQB])
	mac0 := int64(dqb) + int64(recip)*int64(dqa)
	ir0 := g.writeMAC0(mac0) >> 12
	if ir0 < 0 {
		ir0 = 0
	}
	if ir0 > 0x1000 {
		ir0 = 0x1000
	}
	g.data[gteIR0] = uint32(ir0)
	_ = last
	g.applyFlagSummary()
	return 23
}

// nclip computes the Z component of the cross product of the three
// screen-space points currently in SXY0/1/2 into MAC0, used by software
// to reject back-facing triangles.
func (g *GTE) nclip() int {
	x0, y0 := sxyComponents(g.data[gteSXY0])
	x1, y1 := sxyComponents(g.data[gteSXY1])
	x2, y2 := sxyComponents(g.data[gteSXY2])
	v := int64(x0)*int64(y1-y2) + int64(x1)*int64(y2-y0) + int64(x2)*int64(y0-y1)
	g.writeMAC0(v)
	g.applyFlagSummary()
	return 8
}

func sxyComponents(packed uint32) (int32, int32) {
	return int32(int16(uint16(packed))), int32(int16(uint16(packed >> 16)))
}

// avsz3/avsz4 average the Z FIFO (weighted by ZSF3/ZSF4) into OTZ, used
// by the renderer to order primitives.
func (g *GTE) avsz3() int {
	sum := int64(g.data[gteSZ1]) + int64(g.data[gteSZ2]) + int64(g.data[gteSZ3])
	mac0 := int64(int32(g.control[gteZSF3])) * sum
	g.writeMAC0(mac0)
	g.pushOTZ(mac0 >> 12)
	g.applyFlagSummary()
	return 5
}

func (g *GTE) avsz4() int {
	sum := int64(g.data[gteSZ0]) + int64(g.data[gteSZ1]) + int64(g.data[gteSZ2]) + int64(g.data[gteSZ3])
	mac0 := int64(int32(g.control[gteZSF4])) * sum
	g.writeMAC0(mac0)
	g.pushOTZ(mac0 >> 12)
	g.applyFlagSummary()
	return 6
}

func (g *GTE) pushOTZ(v int64) {
	if v < 0 {
		v = 0
		g.control[gteFLAG] |= flagSZ3OtzSat
	}
	if v > 0xFFFF {
		v = 0xFFFF
		g.control[gteFLAG] |= flagSZ3OtzSat
	}
	g.data[gteOTZ] = uint32(v)
}

// sqr squares IR1-3 into MAC1-3/IR1-3, used by the lighting distance
// falloff calculations in game code.
func (g *GTE) sqr(sf, lm uint32) int {
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	ir1 := int64(signed16(g.data[gteIR1]))
	ir2 := int64(signed16(g.data[gteIR2]))
	ir3 := int64(signed16(g.data[gteIR3]))
	mac := [3]int64{(ir1 * ir1) >> shift, (ir2 * ir2) >> shift, (ir3 * ir3) >> shift}
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.applyFlagSummary()
	return 5
}

// op computes the outer product of IR and the rotation matrix's
// diagonal, used by lighting code to derive a surface normal's
// reflection vector.
func (g *GTE) op(sf, lm uint32) int {
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	m := g.rotMatrix()
	ir1 := int64(signed16(g.data[gteIR1]))
	ir2 := int64(signed16(g.data[gteIR2]))
	ir3 := int64(signed16(g.data[gteIR3]))
	d1, d2, d3 := int64(m[0][0]), int64(m[1][1]), int64(m[2][2])

	mac := [3]int64{
		(ir3*d2 - ir2*d3) >> shift,
		(ir1*d3 - ir3*d1) >> shift,
		(ir2*d1 - ir1*d2) >> shift,
	}
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.applyFlagSummary()
	return 6
}

// mvmva is the generic matrix*vector+translation primitive RTPS/RTPT
// specialise; software uses it directly to transform normals through
// the light or colour matrices.
func (g *GTE) mvmva(sf, lm, mx, vecSel, cv uint32) int {
	var m [3][3]int32
	switch mx {
	case 0:
		m = g.rotMatrix()
	case 1:
		m = g.lightMatrix()
	case 2:
		m = g.colorMatrix()
	default:
		m = [3][3]int32{} // "garbage" matrix per documented quirk; zero stands in
	}

	var v vec3
	switch vecSel {
	case 0, 1, 2:
		v = g.vector(int(vecSel))
	default:
		v = vec3{int32(int16(g.data[gteIR1])), int32(int16(g.data[gteIR2])), int32(int16(g.data[gteIR3]))}
	}

	var tr [3]int32
	switch cv {
	case 0:
		tr = g.translation()
	case 1:
		tr = g.backgroundColor()
	case 2:
		tr = g.farColor()
	default:
		tr = [3]int32{0, 0, 0}
	}

	g.transform(m, v, tr, sf, lm)
	g.applyFlagSummary()
	return 8
}

// lightAndColor is the shared kernel behind NCS/NCT/NCDS/NCDT/NCCS/NCCT:
// light a normal through the light matrix, then pass the result through
// the colour matrix combined with the background colour and (for the
// "D" family) the input RGBC, producing a final colour in MAC1-3/IR1-3.
func (g *GTE) lightAndColor(which int, sf, lm uint32, withDepthCue bool) {
	v := g.vector(which)
	lit := g.transform(g.lightMatrix(), v, [3]int32{0, 0, 0}, sf, lm)
	coloured := g.transform(g.colorMatrix(), lit, g.backgroundColor(), sf, lm)

	rgbc := g.data[gteRGBC]
	r := int32(byte(rgbc))
	gc := int32(byte(rgbc >> 8))
	b := int32(byte(rgbc >> 16))
	code := byte(rgbc >> 24)

	shift := uint(0)
	if sf != 0 {
		shift = 12
	}

	mac := [3]int64{int64(coloured.x), int64(coloured.y), int64(coloured.z)}

	if withDepthCue {
		mac = [3]int64{
			(int64(r) << 4) * int64(coloured.x) >> shift,
			(int64(gc) << 4) * int64(coloured.y) >> shift,
			(int64(b) << 4) * int64(coloured.z) >> shift,
		}
		far := g.farColor()
		ir0 := int64(signed16(g.data[gteIR0]))
		for i, fc := range far {
			delta := (int64(fc)<<12 - mac[i]) >> shift
			mac[i] += (delta * ir0) >> 12
		}
	}

	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.pushRGB(mac, code)
}

// pushRGB shifts the colour FIFO (RGB0<-RGB1<-RGB2<-new), clamping
// MAC1-3>>4 into 8-bit components and carrying the code byte through.
func (g *GTE) pushRGB(mac [3]int64, code byte) {
	g.data[gteRGB0] = g.data[gteRGB1]
	g.data[gteRGB1] = g.data[gteRGB2]
	r := g.saturateColorComponent(mac[0]>>4, flagR1Sat)
	gr := g.saturateColorComponent(mac[1]>>4, flagG1Sat)
	b := g.saturateColorComponent(mac[2]>>4, flagB1Sat)
	g.data[gteRGB2] = uint32(r) | uint32(gr)<<8 | uint32(b)<<16 | uint32(code)<<24
}

func (g *GTE) saturateColorComponent(v int64, bit uint32) byte {
	if v < 0 {
		g.control[gteFLAG] |= bit
		return 0
	}
	if v > 0xFF {
		g.control[gteFLAG] |= bit
		return 0xFF
	}
	return byte(v)
}

func (g *GTE) ncs(sf, lm uint32) int {
	g.lightAndColor(2, sf, lm, false)
	g.applyFlagSummary()
	return 14
}

func (g *GTE) nct(sf, lm uint32) int {
	for i := 0; i < 3; i++ {
		g.lightAndColor(i, sf, lm, false)
	}
	g.applyFlagSummary()
	return 30
}

func (g *GTE) ncds(sf, lm uint32) int {
	g.lightAndColor(2, sf, lm, true)
	g.applyFlagSummary()
	return 19
}

func (g *GTE) ncdt(sf, lm uint32) int {
	for i := 0; i < 3; i++ {
		g.lightAndColor(i, sf, lm, true)
	}
	g.applyFlagSummary()
	return 44
}

// nccsOne is the NCCS/NCCT (nccs/nccs2) kernel: the normal goes through
// the light matrix, then the colour matrix plus background colour, and
// the result is multiplied by the input RGBC; no far-colour depth cue is
// applied.
func (g *GTE) nccsOne(which int, sf, lm uint32) {
	v := g.vector(which)
	lit := g.transform(g.lightMatrix(), v, [3]int32{0, 0, 0}, sf, lm)
	coloured := g.transform(g.colorMatrix(), lit, g.backgroundColor(), sf, lm)

	rgbc := g.data[gteRGBC]
	r := int32(byte(rgbc))
	gc := int32(byte(rgbc >> 8))
	b := int32(byte(rgbc >> 16))
	code := byte(rgbc >> 24)

	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	mac := [3]int64{
		(int64(r) << 4) * int64(coloured.x) >> shift,
		(int64(gc) << 4) * int64(coloured.y) >> shift,
		(int64(b) << 4) * int64(coloured.z) >> shift,
	}
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.pushRGB(mac, code)
}

func (g *GTE) nccs(sf, lm uint32) int {
	g.nccsOne(2, sf, lm)
	g.applyFlagSummary()
	return 17
}

func (g *GTE) nccs2(sf, lm uint32) int {
	for i := 0; i < 3; i++ {
		g.nccsOne(i, sf, lm)
	}
	g.applyFlagSummary()
	return 39
}

// cc modulates the current IR colour by RGBC without any lighting pass,
// the cheapest member of the colour family.
func (g *GTE) cc(sf, lm uint32) int {
	coloured := g.transform(g.colorMatrix(), vec3{int32(int16(g.data[gteIR1])), int32(int16(g.data[gteIR2])), int32(int16(g.data[gteIR3]))}, g.backgroundColor(), sf, lm)
	rgbc := g.data[gteRGBC]
	r := int32(byte(rgbc))
	gc := int32(byte(rgbc >> 8))
	b := int32(byte(rgbc >> 16))
	code := byte(rgbc >> 24)
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	mac := [3]int64{
		(int64(r) << 4) * int64(coloured.x) >> shift,
		(int64(gc) << 4) * int64(coloured.y) >> shift,
		(int64(b) << 4) * int64(coloured.z) >> shift,
	}
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.pushRGB(mac, code)
	g.applyFlagSummary()
	return 11
}

// cdp applies the far-colour depth cue to the current IR colour without
// a preceding lighting pass.
func (g *GTE) cdp(sf, lm uint32) int {
	coloured := g.transform(g.colorMatrix(), vec3{int32(int16(g.data[gteIR1])), int32(int16(g.data[gteIR2])), int32(int16(g.data[gteIR3]))}, g.backgroundColor(), sf, lm)
	rgbc := g.data[gteRGBC]
	r := int32(byte(rgbc))
	gc := int32(byte(rgbc >> 8))
	b := int32(byte(rgbc >> 16))
	code := byte(rgbc >> 24)
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	mac := [3]int64{
		(int64(r) << 4) * int64(coloured.x) >> shift,
		(int64(gc) << 4) * int64(coloured.y) >> shift,
		(int64(b) << 4) * int64(coloured.z) >> shift,
	}
	far := g.farColor()
	ir0 := int64(signed16(g.data[gteIR0]))
	for i, fc := range far {
		delta := (int64(fc)<<12 - mac[i]) >> shift
		mac[i] += (delta * ir0) >> 12
	}
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.pushRGB(mac, code)
	g.applyFlagSummary()
	return 13
}

// dpcs/dpct/dcpl interpolate the current colour towards the far colour
// by IR0, used for fog and depth cueing without a full lighting pass.
func (g *GTE) dpcs(sf, lm uint32) int {
	rgbc := g.data[gteRGBC]
	g.depthCueFrom(int32(byte(rgbc))<<16, int32(byte(rgbc>>8))<<16, int32(byte(rgbc>>16))<<16, byte(rgbc>>24), sf, lm)
	g.applyFlagSummary()
	return 8
}

func (g *GTE) dpct(sf, lm uint32) int {
	for i := 0; i < 3; i++ {
		rgbc := g.data[gteRGBC]
		g.depthCueFrom(int32(byte(rgbc))<<16, int32(byte(rgbc>>8))<<16, int32(byte(rgbc>>16))<<16, byte(rgbc>>24), sf, lm)
	}
	g.applyFlagSummary()
	return 17
}

// dcpl blends the current IR colour (not RGBC) towards the far colour.
func (g *GTE) dcpl(sf, lm uint32) int {
	ir1 := int32(signed16(g.data[gteIR1])) << 4
	ir2 := int32(signed16(g.data[gteIR2])) << 4
	ir3 := int32(signed16(g.data[gteIR3])) << 4
	g.depthCueFrom(ir1, ir2, ir3, byte(g.data[gteRGBC]>>24), sf, lm)
	g.applyFlagSummary()
	return 8
}

func (g *GTE) depthCueFrom(r, gc, b int32, code byte, sf, lm uint32) {
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	far := g.farColor()
	ir0 := int64(signed16(g.data[gteIR0]))
	mac := [3]int64{int64(r), int64(gc), int64(b)}
	for i, fc := range far {
		delta := (int64(fc)<<12 - mac[i]) >> shift
		mac[i] += (delta * ir0) >> 12
	}
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.pushRGB(mac, code)
}

// intpl interpolates the current IR vector towards the far colour,
// otherwise identical in shape to dcpl.
func (g *GTE) intpl(sf, lm uint32) int {
	ir1 := int32(signed16(g.data[gteIR1])) << 12
	ir2 := int32(signed16(g.data[gteIR2])) << 12
	ir3 := int32(signed16(g.data[gteIR3])) << 12
	g.depthCueFrom(ir1>>4, ir2>>4, ir3>>4, byte(g.data[gteRGBC]>>24), sf, lm)
	g.applyFlagSummary()
	return 8
}

// gpf/gpl are the general interpolation opcodes used for Gouraud-shaded
// polygon setup: gpf sets MAC1-3 to IR1-3 scaled by IR0, gpl adds the
// previous MAC1-3 to that product.
func (g *GTE) gpf(sf, lm uint32) int {
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	ir0 := int64(signed16(g.data[gteIR0]))
	ir1 := int64(signed16(g.data[gteIR1]))
	ir2 := int64(signed16(g.data[gteIR2]))
	ir3 := int64(signed16(g.data[gteIR3]))
	mac := [3]int64{(ir0 * ir1) >> shift, (ir0 * ir2) >> shift, (ir0 * ir3) >> shift}
	g.finishGP(mac, lm)
	return 5
}

func (g *GTE) gpl(sf, lm uint32) int {
	shift := uint(0)
	if sf != 0 {
		shift = 12
	}
	ir0 := int64(signed16(g.data[gteIR0]))
	ir1 := int64(signed16(g.data[gteIR1]))
	ir2 := int64(signed16(g.data[gteIR2]))
	ir3 := int64(signed16(g.data[gteIR3]))
	mac := [3]int64{
		int64(int32(g.data[gteMAC1])) + ((ir0 * ir1) >> shift),
		int64(int32(g.data[gteMAC2])) + ((ir0 * ir2) >> shift),
		int64(int32(g.data[gteMAC3])) + ((ir0 * ir3) >> shift),
	}
	g.finishGP(mac, lm)
	return 5
}

func (g *GTE) finishGP(mac [3]int64, lm uint32) {
	g.data[gteMAC1] = uint32(int32(mac[0]))
	g.data[gteMAC2] = uint32(int32(mac[1]))
	g.data[gteMAC3] = uint32(int32(mac[2]))
	g.data[gteIR1] = uint32(g.saturateIR(mac[0], 1, lm))
	g.data[gteIR2] = uint32(g.saturateIR(mac[1], 2, lm))
	g.data[gteIR3] = uint32(g.saturateIR(mac[2], 3, lm))
	g.pushRGB(mac, byte(g.data[gteRGBC]>>24))
	g.applyFlagSummary()
}
