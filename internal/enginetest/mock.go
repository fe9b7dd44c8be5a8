// SPDX-License-Identifier: EPL-2.0

// Package enginetest provides a scripted effects.Engine for tests.
package enginetest

import (
	"math"

	"github.com/ik5/fxchain/effects"
)

// FlowCall records one BuildFlow invocation.
type FlowCall struct {
	InputPath     string
	ChannelsFirst bool
	FileType      string
	Effects       []effects.Effect
	MaxOptions    int
}

// MockEngine is a scripted engine. It reports Names as its vocabulary and,
// on BuildFlow, records the call, fills the output buffer with Samples laid
// out per the request, and returns Rate. When Err is set BuildFlow fails
// without touching the buffer.
type MockEngine struct {
	Names    []string
	Samples  []float32 // interleaved, Channels wide
	Channels int
	Rate     int
	Err      error

	Calls []FlowCall
}

// NewMockEngine builds a mock with a small sox-like vocabulary and mono
// int32-scale sine output at rate Hz.
func NewMockEngine(rate, totalSamples int) *MockEngine {
	samples := make([]float32, totalSamples)
	for i := range samples {
		t := float64(i) / float64(rate)
		samples[i] = float32(math.Sin(2*math.Pi*440*t) * float64(1<<31))
	}

	return &MockEngine{
		Names: []string{
			"no_effects", "rate", "channels", "gain", "vol", "reverse", "trim",
			"spectrogram", "splice", "noiseprof", "fir",
		},
		Samples:  samples,
		Channels: 1,
		Rate:     rate,
	}
}

func (m *MockEngine) EffectNames() []string {
	out := make([]string, len(m.Names))
	copy(out, m.Names)
	return out
}

func (m *MockEngine) BuildFlow(req *effects.FlowRequest) (int, error) {
	call := FlowCall{
		InputPath:     req.InputPath,
		ChannelsFirst: req.ChannelsFirst,
		FileType:      req.FileType,
		Effects:       make([]effects.Effect, len(req.Effects)),
		MaxOptions:    req.MaxOptions,
	}
	copy(call.Effects, req.Effects)
	m.Calls = append(m.Calls, call)

	if m.Err != nil {
		return 0, m.Err
	}

	channels := m.Channels
	if channels <= 0 {
		channels = 1
	}
	frames := len(m.Samples) / channels
	total := frames * channels

	out := req.Out
	if cap(out.Data) < total {
		out.Data = make([]float32, total)
	} else {
		out.Data = out.Data[:total]
	}

	if req.ChannelsFirst {
		for f := 0; f < frames; f++ {
			for c := 0; c < channels; c++ {
				out.Data[c*frames+f] = m.Samples[f*channels+c]
			}
		}
	} else {
		copy(out.Data, m.Samples[:total])
	}

	out.Channels = channels
	out.Frames = frames
	out.ChannelsFirst = req.ChannelsFirst

	return m.Rate, nil
}

// LastCall returns the most recent recorded call, nil when none happened.
func (m *MockEngine) LastCall() *FlowCall {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}
