package platform

import (
	"bytes"
	"fmt"
	"io"
	"os"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// WavSound plays a decoded wav clip. Each Play starts an independent voice
// so overlapping bounces do not cut each other off.
type WavSound struct {
	ctx    *ebaudio.Context
	pcm    []byte
	volume float64
}

// LoadWav decodes path once and keeps the PCM in memory.
func LoadWav(path string, volume float64) (*WavSound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer func() { _ = f.Close() }()

	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(sampleRate)
	}

	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &WavSound{ctx: ctx, pcm: buf.Bytes(), volume: volume}, nil
}

func (s *WavSound) Play() error {
	p := s.ctx.NewPlayerFromBytes(s.pcm)
	p.SetVolume(s.volume)
	p.Play()
	return nil
}
