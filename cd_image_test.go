package main

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestImage writes a minimal two-track CUE/BIN pair into dir and
// returns the CUE path. Track 1 has no pregap beyond the standard
// 150-frame lead-in; track 2 adds an explicit 2-second (150-frame)
// pregap, exercising the accumulation §6 describes.
func writeTestImage(t *testing.T, dir string, binSize int) string {
	t.Helper()

	binPath := filepath.Join(dir, "test.bin")
	if err := os.WriteFile(binPath, make([]byte, binSize), 0644); err != nil {
		t.Fatalf("write bin: %v", err)
	}

	cue := "FILE \"test.bin\" BINARY\n" +
		"  TRACK 01 MODE2/2352\n" +
		"    INDEX 01 00:00:00\n" +
		"  TRACK 02 AUDIO\n" +
		"    PREGAP 00:02:00\n" +
		"    INDEX 01 00:00:00\n"
	cuePath := filepath.Join(dir, "test.cue")
	if err := os.WriteFile(cuePath, []byte(cue), 0644); err != nil {
		t.Fatalf("write cue: %v", err)
	}
	return cuePath
}

// TestOpenCdImageTrackOffsets verifies the 150-frame standard lead-in
// and an explicit per-track PREGAP both accumulate into startByte, and
// that track boundaries chain endByte to the next track's startByte
// (§6's CUE parsing rules).
func TestOpenCdImageTrackOffsets(t *testing.T) {
	dir := t.TempDir()
	cuePath := writeTestImage(t, dir, 1_000_000)

	img, err := OpenCdImage(cuePath)
	if err != nil {
		t.Fatalf("OpenCdImage: %v", err)
	}
	defer img.Close()

	if len(img.tracks) != 2 {
		t.Fatalf("parsed %d tracks, want 2", len(img.tracks))
	}

	wantTrack1Start := int64(cdPregapFrames) * cdFrameSize
	if got := img.tracks[0].startByte; got != wantTrack1Start {
		t.Fatalf("track 1 startByte = %d, want %d (150-frame lead-in)", got, wantTrack1Start)
	}

	wantTrack2Start := int64(cdPregapFrames+150) * cdFrameSize // +2s pregap
	if got := img.tracks[1].startByte; got != wantTrack2Start {
		t.Fatalf("track 2 startByte = %d, want %d (lead-in + 2s pregap)", got, wantTrack2Start)
	}

	if got := img.tracks[0].endByte; got != wantTrack2Start {
		t.Fatalf("track 1 endByte = %d, want track 2's startByte %d", got, wantTrack2Start)
	}
	if got := img.tracks[1].endByte; got != 1_000_000 {
		t.Fatalf("track 2 endByte = %d, want the BIN size 1000000", got)
	}

	if img.Empty() {
		t.Fatalf("Empty() = true for a successfully parsed image")
	}
}

// TestCdImageReadByte verifies ReadByte returns the mapped BIN contents
// and rejects out-of-range positions.
func TestCdImageReadByte(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 4096)
	data[100] = 0x42
	if err := os.WriteFile(filepath.Join(dir, "test.bin"), data, 0644); err != nil {
		t.Fatalf("write bin: %v", err)
	}
	cue := "FILE \"test.bin\" BINARY\n  TRACK 01 MODE2/2352\n    INDEX 01 00:00:00\n"
	cuePath := filepath.Join(dir, "test.cue")
	if err := os.WriteFile(cuePath, []byte(cue), 0644); err != nil {
		t.Fatalf("write cue: %v", err)
	}

	img, err := OpenCdImage(cuePath)
	if err != nil {
		t.Fatalf("OpenCdImage: %v", err)
	}
	defer img.Close()

	got, err := img.ReadByte(100)
	if err != nil {
		t.Fatalf("ReadByte(100): %v", err)
	}
	if got != 0x42 {
		t.Fatalf("ReadByte(100) = 0x%02X, want 0x42", got)
	}

	if _, err := img.ReadByte(uint32(len(data))); err == nil {
		t.Fatalf("ReadByte past the end of the BIN did not return an error")
	}
}

// TestMsfToFrames verifies the mm:ss:ff to frame-count conversion at
// the CD-DA 75-frames-per-second rate.
func TestMsfToFrames(t *testing.T) {
	cases := []struct {
		msf  string
		want int64
	}{
		{"00:00:00", 0},
		{"00:02:00", 150},
		{"01:00:00", 4500},
		{"00:00:01", 1},
	}
	for _, tc := range cases {
		if got := msfToFrames(tc.msf); got != tc.want {
			t.Errorf("msfToFrames(%q) = %d, want %d", tc.msf, got, tc.want)
		}
	}
}
