//go:build !headless

// spu_sink_oto.go - oto/v3-backed SpuSink. SPU synthesis is out of
// scope (§1 Non-goals), so the pull-player only ever produces silence;
// it exists so the audio output path is real and exercised rather than
// stubbed out entirely.

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2026 ionpsx contributors
https://github.com/ionpsx/core
License: GPLv3 or later
*/

package main

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const spuSampleRate = 44100

// spuMainVolumeOffset is SPU_MAIN_VOL_L, the first register of the
// documented 0x1F801D80 mixer block.
const spuMainVolumeOffset = 0x180

type OtoSpuSink struct {
	spuRegisterFile
	mu sync.Mutex

	ctx     *oto.Context
	player  *oto.Player
	started bool

	mainVolume atomic.Int32
}

func NewOtoSpuSink() (*OtoSpuSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   spuSampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSpuSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	return s, nil
}

// Read implements io.Reader for oto's pull model. With synthesis out
// of scope this always produces silence; the main-volume value is
// recorded in mainVolume but Read does not consult it.
func (s *OtoSpuSink) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func (s *OtoSpuSink) ReadRegister(offset uint32) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(offset)
}

func (s *OtoSpuSink) WriteRegister(offset uint32, v uint16) {
	s.mu.Lock()
	s.write(offset, v)
	s.mu.Unlock()
	if offset == spuMainVolumeOffset {
		s.mainVolume.Store(int32(v))
	}
}

func (s *OtoSpuSink) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.player.Play()
		s.started = true
	}
	return nil
}

func (s *OtoSpuSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.player.Close()
		s.started = false
	}
	return nil
}
