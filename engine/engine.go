// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/fxchain/audio"
	"github.com/ik5/fxchain/effects"
	"github.com/ik5/fxchain/formats/aiff"
	"github.com/ik5/fxchain/formats/mp3"
	"github.com/ik5/fxchain/formats/raw"
	"github.com/ik5/fxchain/formats/vorbis"
	"github.com/ik5/fxchain/formats/wav"
)

// rawFormat inputs are decoded from the request's signal/encoding hints
// instead of a registered decoder.
const rawFormat = "raw"

// sampleScale lifts normalized decoder output to signed 32-bit integer
// scale, the unit the chain's default normalization divides back out.
const sampleScale = float32(1 << 31)

// Engine is the built-in effects.Engine. It decodes an input file through
// the format registry, pipes it through one streaming stage per effect and
// fills the output buffer at integer scale.
//
// The zero registry is never used directly; New registers the wav, mp3,
// ogg vorbis and aiff decoders.
type Engine struct {
	lc       *Lifecycle
	registry *audio.Registry
}

func New() *Engine {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("oga", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})

	return &Engine{
		lc:       NewLifecycle(),
		registry: registry,
	}
}

// Initialize makes the engine usable. See Lifecycle.Initialize.
func (e *Engine) Initialize() (int, error) { return e.lc.Initialize() }

// Shutdown permanently retires the engine. See Lifecycle.Shutdown.
func (e *Engine) Shutdown() (int, error) { return e.lc.Shutdown() }

// State reports the engine's lifecycle phase.
func (e *Engine) State() State { return e.lc.State() }

// Register adds or replaces a decoder for a format key.
func (e *Engine) Register(format string, d audio.Decoder) {
	e.registry.Register(format, d)
}

// EffectNames lists the engine's full effect vocabulary, including names
// the chain layer leaves unimplemented.
func (e *Engine) EffectNames() []string {
	names := make([]string, 0, len(stages)+len(vocabularyOnly))
	for name := range stages {
		names = append(names, name)
	}
	names = append(names, vocabularyOnly...)
	return names
}

// BuildFlow decodes the request's input, applies its effects in order and
// fills the output buffer in place. The buffer is laid out channel-major
// when ChannelsFirst is set, frame-interleaved otherwise. Returns the
// sample rate of the produced audio.
func (e *Engine) BuildFlow(req *effects.FlowRequest) (int, error) {
	if e.lc.State() != Initialized {
		return 0, ErrNotInitialized
	}
	if req == nil || req.Out == nil {
		return 0, ErrNilRequest
	}

	f, err := os.Open(req.InputPath)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := e.openSource(f, req)
	if err != nil {
		return 0, err
	}
	// src is rewrapped per stage below; the closure closes whichever
	// stage is outermost when the flow unwinds.
	defer func() { src.Close() }()

	for _, eff := range req.Effects {
		if req.MaxOptions > 0 && len(eff.Options) > req.MaxOptions {
			return 0, fmt.Errorf("%w: effect %q", ErrTooManyOptions, eff.Name)
		}
		next, err := applyStage(src, eff)
		if err != nil {
			return 0, err
		}
		src = next
	}

	samples, err := drainSource(src)
	if err != nil {
		return 0, err
	}

	fillBuffer(req.Out, samples, src.Channels(), req.ChannelsFirst)

	return src.SampleRate(), nil
}

// openSource picks a decoder for the input: by file extension first, then
// by the request's file type hint, falling back to raw PCM built from the
// signal/encoding hints.
func (e *Engine) openSource(f *os.File, req *effects.FlowRequest) (audio.Source, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(req.InputPath), "."))
	if _, ok := e.registry.Get(format); !ok {
		format = strings.ToLower(req.FileType)
	}

	if format == rawFormat {
		return e.openRaw(f, req)
	}

	dec, ok := e.registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}

func (e *Engine) openRaw(f *os.File, req *effects.FlowRequest) (audio.Source, error) {
	sig := req.Signal
	if sig == nil || sig.Rate <= 0 || sig.Channels <= 0 {
		return nil, ErrMissingSignalInfo
	}

	dec := raw.Decoder{
		Rate:     int(sig.Rate),
		Channels: sig.Channels,
		Bits:     sig.Precision,
	}
	if enc := req.Encoding; enc != nil {
		dec.Encoding = enc.Encoding
		if enc.BitsPerSample > 0 {
			dec.Bits = enc.BitsPerSample
		}
	}

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return src, nil
}

// drainSource collects every sample the pipeline produces.
func drainSource(src audio.Source) ([]float32, error) {
	var all []float32
	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			all = append(all, buf[:n]...)
		}
		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

// fillBuffer writes interleaved samples into out at integer scale, laid
// out per channelsFirst. The buffer's storage is reused when large enough.
func fillBuffer(out *effects.Buffer, samples []float32, channels int, channelsFirst bool) {
	frames := len(samples) / channels
	total := frames * channels

	if cap(out.Data) < total {
		out.Data = make([]float32, total)
	} else {
		out.Data = out.Data[:total]
	}

	if channelsFirst {
		for f := 0; f < frames; f++ {
			for c := 0; c < channels; c++ {
				out.Data[c*frames+f] = samples[f*channels+c] * sampleScale
			}
		}
	} else {
		for i := 0; i < total; i++ {
			out.Data[i] = samples[i] * sampleScale
		}
	}

	out.Channels = channels
	out.Frames = frames
	out.ChannelsFirst = channelsFirst
}
