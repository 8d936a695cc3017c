package main

import "testing"

// setIdentityMatrix writes a 3x3 identity rotation matrix (each 1.0
// entry is 4096 in the GTE's 1<<12 fixed-point format) into CR0..CR4.
func setIdentityMatrix(g *GTE) {
	g.WriteControl(gteRT11RT12, 0x1000)
	g.WriteControl(gteRT13RT21, 0)
	g.WriteControl(gteRT22RT23, 0x1000)
	g.WriteControl(gteRT31RT32, 0)
	g.WriteControl(gteRT33, 0x1000)
}

// TestRTPSIdentity verifies that transforming a vector through an
// identity rotation matrix with zero translation leaves IR1-3 exactly
// equal to the input vector's components (§5.2's transform kernel).
func TestRTPSIdentity(t *testing.T) {
	g := NewGTE()
	setIdentityMatrix(g)
	g.WriteControl(gteTRX, 0)
	g.WriteControl(gteTRY, 0)
	g.WriteControl(gteTRZ, 0)

	vx, vy, vz := int32(100), int32(-200), int32(300)
	g.WriteData(gteVXY0, uint32(uint16(vx))|uint32(uint16(vy))<<16)
	g.WriteData(gteVZ0, uint32(uint16(vz)))

	// fn=0x01 (RTPS), sf=1, lm=0.
	raw := uint32(1<<19) | 0x01
	g.Execute(raw)

	if got := int32(int16(g.ReadData(gteIR1))); got != vx {
		t.Fatalf("IR1 = %d, want %d", got, vx)
	}
	if got := int32(int16(g.ReadData(gteIR2))); got != vy {
		t.Fatalf("IR2 = %d, want %d", got, vy)
	}
	if got := int32(int16(g.ReadData(gteIR3))); got != vz {
		t.Fatalf("IR3 = %d, want %d", got, vz)
	}
}

// TestRTPSTranslation verifies the translation vector (TRX/TRY/TRZ) is
// added before the shift, per the same kernel.
func TestRTPSTranslation(t *testing.T) {
	g := NewGTE()
	setIdentityMatrix(g)
	g.WriteControl(gteTRX, uint32(int32(50)))
	g.WriteControl(gteTRY, 0)
	g.WriteControl(gteTRZ, 0)

	g.WriteData(gteVXY0, uint32(uint16(10)))
	g.WriteData(gteVZ0, 0)

	raw := uint32(1<<19) | 0x01
	g.Execute(raw)

	if got := int32(int16(g.ReadData(gteIR1))); got != 60 {
		t.Fatalf("IR1 = %d, want 60 (10 + translation 50)", got)
	}
}

// TestWriteDataSXYFifo verifies the SXYP write pushes the SXY FIFO
// (§5.1): writing SXYP shifts SXY1->SXY0, SXY2->SXY1 and stores the new
// value in SXY2.
func TestWriteDataSXYFifo(t *testing.T) {
	g := NewGTE()
	g.WriteData(gteSXY0, 1)
	g.WriteData(gteSXY1, 2)
	g.WriteData(gteSXY2, 3)

	g.WriteData(gteSXYP, 4)

	if g.data[gteSXY0] != 2 {
		t.Fatalf("SXY0 = %d, want 2", g.data[gteSXY0])
	}
	if g.data[gteSXY1] != 3 {
		t.Fatalf("SXY1 = %d, want 3", g.data[gteSXY1])
	}
	if g.data[gteSXY2] != 4 {
		t.Fatalf("SXY2 = %d, want 4", g.data[gteSXY2])
	}
}

// TestLZCR verifies the leading-zero/leading-one counter: writing LZCS
// derives LZCR as the count of leading bits matching the sign bit.
func TestLZCR(t *testing.T) {
	g := NewGTE()

	g.WriteData(gteLZCS, 0x0000FFFF)
	if g.data[gteLZCR] != 16 {
		t.Fatalf("LZCR = %d, want 16 for 0x0000FFFF", g.data[gteLZCR])
	}

	g.WriteData(gteLZCS, 0xFFFF0000)
	if g.data[gteLZCR] != 16 {
		t.Fatalf("LZCR = %d, want 16 for 0xFFFF0000", g.data[gteLZCR])
	}

	g.WriteData(gteLZCS, 0)
	if g.data[gteLZCR] != 32 {
		t.Fatalf("LZCR = %d, want 32 for an all-zero value", g.data[gteLZCR])
	}
}

// packSXY packs a signed (x, y) screen pair the way SXY0-2 store it.
func packSXY(x, y int32) uint32 {
	return uint32(uint16(x)) | uint32(uint16(y))<<16
}

// TestNCLIP verifies the cross-product sign test over SXY0-2 lands in
// MAC0, used by software to cull back-facing triangles (§5.2).
func TestNCLIP(t *testing.T) {
	g := NewGTE()
	g.data[gteSXY0] = packSXY(0, 0)
	g.data[gteSXY1] = packSXY(1, 0)
	g.data[gteSXY2] = packSXY(0, 1)

	g.Execute(0x06) // NCLIP, sf=0

	want := int32(1) // 0*(0-1) + 1*(1-0) + 0*(0-0)
	if got := int32(g.data[gteMAC0]); got != want {
		t.Fatalf("MAC0 = %d, want %d", got, want)
	}
}

// TestAVSZ3 verifies the SZ1-3 FIFO average (weighted by ZSF3) lands in
// OTZ, clamped to an unsigned 16-bit ordering value (§5.2).
func TestAVSZ3(t *testing.T) {
	g := NewGTE()
	g.data[gteSZ1] = 100
	g.data[gteSZ2] = 200
	g.data[gteSZ3] = 300
	g.WriteControl(gteZSF3, uint32(int32(4096))) // 1.0 in 1<<12 fixed point

	g.Execute(0x2D) // AVSZ3, sf irrelevant to this opcode

	wantMAC0 := int64(4096) * 600
	if got := int32(g.data[gteMAC0]); int64(got) != wantMAC0 {
		t.Fatalf("MAC0 = %d, want %d", got, wantMAC0)
	}
	wantOTZ := uint32(wantMAC0 >> 12)
	if g.data[gteOTZ] != wantOTZ {
		t.Fatalf("OTZ = %d, want %d", g.data[gteOTZ], wantOTZ)
	}
}

// TestAVSZ3NegativeClampsToZero verifies a negative weighted average
// clamps OTZ to zero and raises the saturation flag rather than
// wrapping (§5.2's OTZ saturation rule).
func TestAVSZ3NegativeClampsToZero(t *testing.T) {
	g := NewGTE()
	g.data[gteSZ1], g.data[gteSZ2], g.data[gteSZ3] = 1, 1, 1
	g.WriteControl(gteZSF3, uint32(int32(-4096)))

	g.Execute(0x2D)

	if g.data[gteOTZ] != 0 {
		t.Fatalf("OTZ = %d, want 0 after a negative weighted average", g.data[gteOTZ])
	}
	if g.control[gteFLAG]&flagSZ3OtzSat == 0 {
		t.Fatalf("FLAG did not report the OTZ saturation bit")
	}
}

// TestSQR verifies SQR squares IR1-3 (with the sf shift) back into
// MAC1-3/IR1-3 (§5.2).
func TestSQR(t *testing.T) {
	g := NewGTE()
	g.data[gteIR1] = uint32(uint16(10))
	g.data[gteIR2] = uint32(uint16(-5))
	g.data[gteIR3] = uint32(uint16(3))

	g.Execute(1<<19 | 0x28) // SQR, sf=1

	if got := int32(g.data[gteMAC1]); got != (10*10)>>12 {
		t.Fatalf("MAC1 = %d, want %d", got, (10*10)>>12)
	}
	if got := int32(g.data[gteMAC2]); got != (5*5)>>12 {
		t.Fatalf("MAC2 = %d, want %d", got, (5*5)>>12)
	}
}
