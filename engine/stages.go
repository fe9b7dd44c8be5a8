// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ik5/fxchain/audio"
	"github.com/ik5/fxchain/effects"
)

// stageFunc wraps src with the stage for one effect.
type stageFunc func(src audio.Source, opts []string) (audio.Source, error)

// stages maps effect names to their pipeline constructors.
var stages = map[string]stageFunc{
	"no_effects": stageNoEffects,
	"rate":       stageRate,
	"channels":   stageChannels,
	"gain":       stageGain,
	"vol":        stageVol,
	"reverse":    stageReverse,
	"trim":       stageTrim,
}

// vocabularyOnly are names the engine recognizes but has no stage for; the
// chain layer refuses them before execution.
var vocabularyOnly = []string{"spectrogram", "splice", "noiseprof", "fir"}

func applyStage(src audio.Source, eff effects.Effect) (audio.Source, error) {
	build, ok := stages[eff.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, eff.Name)
	}
	return build(src, optionValues(eff.Options))
}

// optionValues strips the single-empty-string "no options" sentinel.
func optionValues(opts []string) []string {
	if len(opts) == 1 && opts[0] == "" {
		return nil
	}
	return opts
}

func wantOptions(name string, opts []string, minArgs, maxArgs int) error {
	if len(opts) >= minArgs && len(opts) <= maxArgs {
		return nil
	}
	if minArgs == maxArgs {
		return fmt.Errorf("%w: %s takes %d option(s), got %d",
			ErrBadEffectOption, name, minArgs, len(opts))
	}
	return fmt.Errorf("%w: %s takes %d to %d options, got %d",
		ErrBadEffectOption, name, minArgs, maxArgs, len(opts))
}

func floatOption(name, opt string) (float64, error) {
	v, err := strconv.ParseFloat(opt, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrBadEffectOption, name, opt)
	}
	return v, nil
}

func stageNoEffects(src audio.Source, opts []string) (audio.Source, error) {
	if err := wantOptions("no_effects", opts, 0, 0); err != nil {
		return nil, err
	}
	return src, nil
}

func stageRate(src audio.Source, opts []string) (audio.Source, error) {
	if err := wantOptions("rate", opts, 1, 1); err != nil {
		return nil, err
	}
	rate, err := floatOption("rate", opts[0])
	if err != nil {
		return nil, err
	}

	resampler, err := audio.NewResampler(src, int(rate))
	if err != nil {
		return nil, fmt.Errorf("%w: rate: %w", ErrBadEffectOption, err)
	}
	return resampler, nil
}

func stageChannels(src audio.Source, opts []string) (audio.Source, error) {
	if err := wantOptions("channels", opts, 1, 1); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(opts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: channels: %q is not an integer", ErrBadEffectOption, opts[0])
	}

	mixer, err := audio.NewChannelMixer(src, n)
	if err != nil {
		return nil, fmt.Errorf("%w: channels: %w", ErrBadEffectOption, err)
	}
	return mixer, nil
}

func stageGain(src audio.Source, opts []string) (audio.Source, error) {
	if err := wantOptions("gain", opts, 1, 1); err != nil {
		return nil, err
	}
	db, err := floatOption("gain", opts[0])
	if err != nil {
		return nil, err
	}
	return audio.NewGain(src, math.Pow(10, db/20)), nil
}

func stageVol(src audio.Source, opts []string) (audio.Source, error) {
	if err := wantOptions("vol", opts, 1, 1); err != nil {
		return nil, err
	}
	factor, err := floatOption("vol", opts[0])
	if err != nil {
		return nil, err
	}
	return audio.NewGain(src, factor), nil
}

func stageReverse(src audio.Source, opts []string) (audio.Source, error) {
	if err := wantOptions("reverse", opts, 0, 0); err != nil {
		return nil, err
	}
	return audio.NewReverse(src), nil
}

func stageTrim(src audio.Source, opts []string) (audio.Source, error) {
	if err := wantOptions("trim", opts, 1, 2); err != nil {
		return nil, err
	}
	start, err := floatOption("trim", opts[0])
	if err != nil {
		return nil, err
	}

	var length float64
	bounded := len(opts) == 2
	if bounded {
		length, err = floatOption("trim", opts[1])
		if err != nil {
			return nil, err
		}
	}

	trim, err := audio.NewTrim(src, start, length, bounded)
	if err != nil {
		return nil, fmt.Errorf("%w: trim: %w", ErrBadEffectOption, err)
	}
	return trim, nil
}
