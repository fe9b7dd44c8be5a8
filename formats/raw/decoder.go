// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/fxchain/audio"
)

// Sample encodings understood by the raw decoder.
const (
	SignedInteger = "signed-integer"
	Float         = "float"
)

// Decoder reads headerless PCM. Unlike the container formats, everything
// about the stream must be declared up front.
type Decoder struct {
	// Rate is the sample rate in Hz. Required.
	Rate int
	// Channels count. Required.
	Channels int
	// Encoding is SignedInteger (default) or Float.
	Encoding string
	// Bits per sample: 16 or 32 for SignedInteger, 32 for Float.
	// Defaults to 16.
	Bits int
}

type source struct {
	r          io.Reader
	sampleRate int
	channels   int
	width      int // bytes per sample
	convert    func(b []byte) float32
	byteBuf    []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	needed := len(dst) * s.width
	if cap(s.byteBuf) < needed {
		s.byteBuf = make([]byte, needed)
	}
	s.byteBuf = s.byteBuf[:needed]

	n, err := io.ReadFull(s.r, s.byteBuf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / s.width
	for i := 0; i < samples; i++ {
		dst[i] = s.convert(s.byteBuf[i*s.width : (i+1)*s.width])
	}

	if samples == 0 {
		return 0, io.EOF
	}
	return samples, nil
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.Rate <= 0 || d.Channels <= 0 {
		return nil, ErrMissingSignalSpec
	}

	encoding := d.Encoding
	if encoding == "" {
		encoding = SignedInteger
	}
	bits := d.Bits
	if bits == 0 {
		bits = 16
	}

	var width int
	var convert func(b []byte) float32

	switch {
	case encoding == SignedInteger && bits == 16:
		width = 2
		convert = func(b []byte) float32 {
			return float32(int16(binary.LittleEndian.Uint16(b))) / 32768.0
		}
	case encoding == SignedInteger && bits == 32:
		width = 4
		convert = func(b []byte) float32 {
			return float32(int32(binary.LittleEndian.Uint32(b))) / 2147483648.0
		}
	case encoding == Float && bits == 32:
		width = 4
		convert = func(b []byte) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(b))
		}
	default:
		return nil, fmt.Errorf("%w: %s/%d-bit", ErrUnsupportedEncoding, encoding, bits)
	}

	return &source{
		r:          r,
		sampleRate: d.Rate,
		channels:   d.Channels,
		width:      width,
		convert:    convert,
	}, nil
}
