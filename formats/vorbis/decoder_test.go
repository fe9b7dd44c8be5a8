package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/fxchain/audio"
)

// fakeOggReader simulates oggvorbis.Reader for source tests.
type fakeOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (f *fakeOggReader) SampleRate() int { return f.sampleRate }
func (f *fakeOggReader) Channels() int   { return f.channels }

func (f *fakeOggReader) Read(p []float32) (int, error) {
	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}
	n := copy(p, f.samples[f.offset:])
	f.offset += n
	if f.offset >= len(f.samples) {
		return n, io.EOF
	}
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	fake := &fakeOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2},
	}
	src := &source{dec: fake, sampleRate: 48000, channels: 2, frameBuf: make([]float32, 16)}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	out := make([]float32, 4)
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	if out[0] != 0.1 || out[3] != -0.2 {
		t.Errorf("out = %v, want [0.1 -0.1 0.2 -0.2]", out)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	fake := &fakeOggReader{sampleRate: 48000, channels: 1}
	src := &source{dec: fake, sampleRate: 48000, channels: 1}

	out := make([]float32, 4)
	if _, err := src.ReadSamples(out); err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_OddRequestRoundsToFrames(t *testing.T) {
	t.Parallel()

	fake := &fakeOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{1, 2, 3, 4, 5, 6},
	}
	src := &source{dec: fake, sampleRate: 48000, channels: 2}

	out := make([]float32, 5) // not frame aligned
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n%2 != 0 {
		t.Errorf("ReadSamples() n = %d, want a multiple of 2", n)
	}
}

func TestSource_RejectsBufferSmallerThanFrame(t *testing.T) {
	t.Parallel()

	fake := &fakeOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{1, 2, 3, 4},
	}
	src := &source{dec: fake, sampleRate: 48000, channels: 2}

	out := make([]float32, 1) // smaller than one stereo frame
	n, err := src.ReadSamples(out)
	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Fatalf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if fake.offset != 0 {
		t.Errorf("decoder consumed %d samples, want 0", fake.offset)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}
