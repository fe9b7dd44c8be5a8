// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestChannelMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	// Left 0.2, right 0.6 should average to 0.4.
	src := newMockSource(8000, 2, 100, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.6
	})

	mixer, err := NewChannelMixer(src, 1)
	if err != nil {
		t.Fatalf("NewChannelMixer() error = %v", err)
	}
	if mixer.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mixer.Channels())
	}

	samples, err := drain(mixer)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(samples) != 100 {
		t.Fatalf("got %d samples, want 100", len(samples))
	}
	for i, s := range samples {
		if math.Abs(float64(s)-0.4) > 1e-6 {
			t.Fatalf("samples[%d] = %v, want 0.4", i, s)
		}
	}
}

func TestChannelMixer_QuadToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 50, func(frame, channel int) float32 {
		return float32(channel) // 0,1,2,3 averages to 1.5
	})

	mixer, err := NewChannelMixer(src, 1)
	if err != nil {
		t.Fatalf("NewChannelMixer() error = %v", err)
	}

	samples, err := drain(mixer)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	for i, s := range samples {
		if math.Abs(float64(s)-1.5) > 1e-6 {
			t.Fatalf("samples[%d] = %v, want 1.5", i, s)
		}
	}
}

func TestChannelMixer_MonoToStereo(t *testing.T) {
	t.Parallel()

	src := newRampSource(8000, 1, 10)

	mixer, err := NewChannelMixer(src, 2)
	if err != nil {
		t.Fatalf("NewChannelMixer() error = %v", err)
	}

	samples, err := drain(mixer)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(samples) != 20 {
		t.Fatalf("got %d samples, want 20", len(samples))
	}
	for f := 0; f < 10; f++ {
		if samples[f*2] != samples[f*2+1] {
			t.Fatalf("frame %d: channels differ (%v, %v)", f, samples[f*2], samples[f*2+1])
		}
	}
}

func TestChannelMixer_Passthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 30, 0.25)

	mixer, err := NewChannelMixer(src, 2)
	if err != nil {
		t.Fatalf("NewChannelMixer() error = %v", err)
	}

	samples, err := drain(mixer)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(samples) != 60 {
		t.Fatalf("got %d samples, want 60", len(samples))
	}
}

func TestChannelMixer_UnsupportedConversion(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 4, 10)
	if _, err := NewChannelMixer(src, 2); !errors.Is(err, ErrUnsupportedMix) {
		t.Errorf("NewChannelMixer(4->2) error = %v, want ErrUnsupportedMix", err)
	}
}

func TestChannelMixer_BadCount(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 10)
	if _, err := NewChannelMixer(src, 0); !errors.Is(err, ErrBadChannelCount) {
		t.Errorf("NewChannelMixer(0) error = %v, want ErrBadChannelCount", err)
	}
}
