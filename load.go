// SPDX-License-Identifier: EPL-2.0

package fxchain

import (
	"fmt"

	"github.com/ik5/fxchain/effects"
	"github.com/ik5/fxchain/engine"
	"github.com/ik5/fxchain/utils"
)

// Load decodes an audio file through the shared engine and returns its
// samples normalized to [-1, 1], together with the sample rate.
//
// The buffer is laid out channel-major (all of channel 0, then channel 1,
// and so on). Use effects.New directly to pick a different layout,
// normalization mode or effect chain.
//
// Example:
//
//	buf, rate, err := fxchain.Load("input.wav")
//	if err != nil {
//	    panic(err)
//	}
//	// buf.Data holds buf.Channels x buf.Frames samples at rate Hz
func Load(path string) (*effects.Buffer, int, error) {
	eng, err := engine.Default()
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	chain, err := effects.New(eng, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	chain.SetInputFile(path)

	out, rate, err := chain.Execute(nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return out, rate, nil
}

// LoadMono16 is a high-level convenience function that decodes an audio
// file, resamples it to a target sample rate, mixes it down to mono and
// returns the result as 16-bit PCM.
//
// It builds the chain: decode -> rate -> channels 1 -> int16 conversion.
// Samples outside [-1, 1] are clamped during conversion.
//
// Example:
//
//	pcm16, rate, err := fxchain.LoadMono16("input.mp3", 8000)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func LoadMono16(path string, targetRate int) ([]int16, int, error) {
	eng, err := engine.Default()
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	chain, err := effects.New(eng, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	chain.SetInputFile(path)

	if err := chain.Append("rate", effects.Int(targetRate)); err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	if err := chain.Append("channels", effects.Int(1)); err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	out, rate, err := chain.Execute(nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	pcm16 := make([]int16, len(out.Data))
	for i, s := range out.Data {
		pcm16[i] = utils.Float32ToInt16(s)
	}
	return pcm16, rate, nil
}
