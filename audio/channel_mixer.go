// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer converts the channel count of src. Supported conversions:
// pass-through, N-to-1 downmix by averaging, and 1-to-N duplication.
type ChannelMixer struct {
	src Source
	out int
	tmp []float32
}

func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	if channels <= 0 {
		return nil, ErrBadChannelCount
	}
	in := src.Channels()
	if in != channels && channels != 1 && in != 1 {
		return nil, fmt.Errorf("%w: %d to %d channels", ErrUnsupportedMix, in, channels)
	}

	return &ChannelMixer{
		src: src,
		out: channels,
		tmp: make([]float32, 4096),
	}, nil
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.out }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	in := m.src.Channels()
	if in == m.out {
		return m.src.ReadSamples(dst)
	}
	if in == 1 {
		return m.duplicate(dst)
	}
	return m.downmix(dst, in)
}

// downmix averages every input frame into a single output sample.
func (m *ChannelMixer) downmix(dst []float32, in int) (int, error) {
	maxFrames := len(dst)
	needed := maxFrames * in

	if cap(m.tmp) < needed {
		m.tmp = make([]float32, needed)
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / in

	inv := float32(1.0) / float32(in)
	switch in {
	case 2: // Stereo fast path
		for f := 0; f < frames; f++ {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		for f := 0; f < frames; f++ {
			sum := float32(0)
			base := f * in
			for c := 0; c < in; c++ {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}

// duplicate copies the mono input sample into every output channel.
func (m *ChannelMixer) duplicate(dst []float32) (int, error) {
	if len(dst)%m.out != 0 {
		return 0, ErrInvalidDstSize
	}
	frames := len(dst) / m.out

	if cap(m.tmp) < frames {
		m.tmp = make([]float32, frames)
	}
	m.tmp = m.tmp[:frames]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	for f := 0; f < n; f++ {
		base := f * m.out
		for c := 0; c < m.out; c++ {
			dst[base+c] = m.tmp[f]
		}
	}

	return n * m.out, err
}
