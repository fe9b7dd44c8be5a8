// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level streaming primitives behind the
// built-in effects engine.
//
// Everything is built around the Source interface: decoders produce a
// Source, and each processing stage wraps a Source to form a pipeline that
// streams interleaved float32 samples in [-1.0, 1.0].
//
// # Stages
//
//   - Resampler changes the sample rate using cubic interpolation.
//   - ChannelMixer converts channel counts (downmix by averaging,
//     duplicate mono upward).
//   - Gain scales samples by a linear factor.
//   - Reverse plays the stream backwards (buffers the whole input).
//   - Trim skips a leading window and optionally bounds the length.
//
// Stages compose by wrapping:
//
//	resampled, _ := audio.NewResampler(src, 16000)
//	mono, _ := audio.NewChannelMixer(resampled, 1)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Format Registry
//
// The Registry maps format keys to decoders and is how the engine finds a
// decoder for an input file:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is finished; any other error
// indicates a problem with the source or the stage configuration:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
