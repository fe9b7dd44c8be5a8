// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/fxchain/utils"
)

// Resampler converts src to a target sample rate using Catmull-Rom cubic
// interpolation over a sliding four-frame window. Interleaved samples are
// preserved per channel. A simple one-pole low-pass smooths the input when
// downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2 for interpolation.
	window [4][]float32
	have   [4]bool
	primed bool
	pos    float64
	eof    bool

	frameBuf []float32

	lowpass  bool
	lpPrimed bool
	lpAlpha  float32
	lpMemory []float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidTargetRate
	}

	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frameBuf: make([]float32, channels),
		lowpass:  step > 1.0,
		lpAlpha:  0.5,
		lpMemory: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from the source into dst, applying the
// anti-aliasing filter when enabled.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(dst, r.frameBuf[:n])
		if r.lowpass {
			// Seed the filter from the first frame so it starts converged
			// instead of fading in from silence.
			if !r.lpPrimed {
				copy(r.lpMemory, dst[:r.channels])
				r.lpPrimed = true
			}
			for c := 0; c < r.channels; c++ {
				dst[c] = r.lpAlpha*dst[c] + (1-r.lpAlpha)*r.lpMemory[c]
				r.lpMemory[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return false, io.EOF
		}
		return true, nil
	}
	if err != nil {
		return n > 0, fmt.Errorf("%w", err)
	}
	return n > 0, nil
}

// prime fills the initial four-frame window, duplicating the last frame of
// short sources so interpolation always has edge data.
func (r *Resampler) prime() error {
	for i := range r.window {
		ok, err := r.readFrame(r.window[i])
		if ok {
			r.have[i] = true
			continue
		}
		if err == io.EOF {
			if i == 0 {
				return io.EOF
			}
			for j := i; j < len(r.window); j++ {
				copy(r.window[j], r.window[i-1])
				r.have[j] = true
			}
			break
		}
		if err != nil {
			return err
		}
	}

	r.primed = true
	return nil
}

// advance shifts the window one frame forward.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	ok, err := r.readFrame(r.window[3])
	r.have[3] = ok
	if !ok && err == io.EOF {
		return io.EOF
	}
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	written := 0
	framesWanted := len(dst) / r.channels

	for written < framesWanted {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]
			y0 := y1
			if r.have[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.have[3] {
				y3 = r.window[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
