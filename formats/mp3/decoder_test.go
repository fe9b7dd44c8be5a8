// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// fakeMP3Reader simulates gomp3.Decoder output for source tests.
type fakeMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
	failRead   bool
}

func (f *fakeMP3Reader) SampleRate() int { return f.sampleRate }

func (f *fakeMP3Reader) Read(buf []byte) (int, error) {
	if f.failRead {
		return 0, io.ErrUnexpectedEOF
	}
	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}

	avail := (len(f.samples) - f.offset) * 2
	n := min(len(buf), avail)
	n = (n / 2) * 2

	for i := 0; i < n/2; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(f.samples[f.offset+i]))
	}
	f.offset += n / 2

	if f.offset >= len(f.samples) {
		return n, io.EOF
	}
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	fake := &fakeMP3Reader{
		sampleRate: 44100,
		samples:    []int16{0, 16384, -16384, 32767},
	}
	src := &source{dec: fake, sampleRate: fake.sampleRate, byteBuf: make([]byte, 64)}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
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

	want := []float64{0, 0.5, -0.5, 32767.0 / 32768.0}
	for i := range want {
		if math.Abs(float64(out[i])-want[i]) > 1e-4 {
			t.Errorf("out[%d] = %v, want ≈%v", i, out[i], want[i])
		}
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	fake := &fakeMP3Reader{sampleRate: 44100, failRead: true}
	src := &source{dec: fake, sampleRate: fake.sampleRate}

	out := make([]float32, 4)
	if _, err := src.ReadSamples(out); err == nil {
		t.Error("ReadSamples() error = nil, want error")
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	fake := &fakeMP3Reader{sampleRate: 44100}
	src := &source{dec: fake, sampleRate: fake.sampleRate}

	out := make([]float32, 4)
	if _, err := src.ReadSamples(out); err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	if _, err := decoder.Decode(bytes.NewReader([]byte("This is not MP3 data"))); err == nil {
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
