// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Gain scales every sample by a linear factor.
type Gain struct {
	src    Source
	factor float32
}

func NewGain(src Source, factor float64) *Gain {
	return &Gain{src: src, factor: float32(factor)}
}

func (g *Gain) SampleRate() int { return g.src.SampleRate() }
func (g *Gain) Channels() int   { return g.src.Channels() }

func (g *Gain) Close() error {
	if err := g.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (g *Gain) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)
	for i := 0; i < n; i++ {
		dst[i] *= g.factor
	}
	return n, err
}

// Reverse plays src backwards. The whole stream is buffered on the first
// read, so memory use is proportional to the input length.
type Reverse struct {
	src    Source
	frames []float32 // interleaved, already in reversed frame order
	pos    int
	loaded bool
}

func NewReverse(src Source) *Reverse {
	return &Reverse{src: src}
}

func (r *Reverse) SampleRate() int { return r.src.SampleRate() }
func (r *Reverse) Channels() int   { return r.src.Channels() }

func (r *Reverse) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// load drains the source and reverses the frame order in place. Channel
// order within a frame is preserved.
func (r *Reverse) load() error {
	buf := make([]float32, 4096)
	for {
		n, err := r.src.ReadSamples(buf)
		if n > 0 {
			r.frames = append(r.frames, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	channels := r.src.Channels()
	total := len(r.frames) / channels
	for f := 0; f < total/2; f++ {
		a := f * channels
		b := (total - 1 - f) * channels
		for c := 0; c < channels; c++ {
			r.frames[a+c], r.frames[b+c] = r.frames[b+c], r.frames[a+c]
		}
	}

	r.loaded = true
	return nil
}

func (r *Reverse) ReadSamples(dst []float32) (int, error) {
	if !r.loaded {
		if err := r.load(); err != nil {
			return 0, err
		}
	}
	if r.pos >= len(r.frames) {
		return 0, io.EOF
	}

	n := copy(dst, r.frames[r.pos:])
	r.pos += n
	if r.pos >= len(r.frames) {
		return n, io.EOF
	}
	return n, nil
}

// Trim skips a leading window and optionally bounds the stream length, both
// measured in seconds against the source rate.
type Trim struct {
	src       Source
	skipLeft  int // frames still to discard
	limitLeft int // frames still to serve, -1 when unbounded
}

func NewTrim(src Source, startSec, lengthSec float64, bounded bool) (*Trim, error) {
	if startSec < 0 || (bounded && lengthSec < 0) {
		return nil, ErrBadTrimWindow
	}

	limit := -1
	if bounded {
		limit = int(lengthSec * float64(src.SampleRate()))
	}

	return &Trim{
		src:       src,
		skipLeft:  int(startSec * float64(src.SampleRate())),
		limitLeft: limit,
	}, nil
}

func (t *Trim) SampleRate() int { return t.src.SampleRate() }
func (t *Trim) Channels() int   { return t.src.Channels() }

func (t *Trim) Close() error {
	if err := t.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (t *Trim) ReadSamples(dst []float32) (int, error) {
	channels := t.src.Channels()
	if len(dst) < channels || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	// dst doubles as scratch space while discarding the leading window.
	for t.skipLeft > 0 {
		want := min(t.skipLeft*channels, len(dst))
		n, err := t.src.ReadSamples(dst[:want])
		t.skipLeft -= n / channels
		if err != nil {
			return 0, err
		}
	}

	if t.limitLeft == 0 {
		return 0, io.EOF
	}

	want := len(dst)
	if t.limitLeft > 0 && t.limitLeft*channels < want {
		want = t.limitLeft * channels
	}

	n, err := t.src.ReadSamples(dst[:want])
	if t.limitLeft > 0 {
		t.limitLeft -= n / channels
		if t.limitLeft == 0 && err == nil {
			err = io.EOF
		}
	}
	return n, err
}
