// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and 16-bit PCM writing.
//
// Decoding is built on github.com/go-audio/wav and handles 8, 16, 24 and
// 32-bit PCM data. Decoded samples are exposed as an audio.Source producing
// float32 values in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder prefers an io.ReadSeeker; other readers are buffered in
// memory first.
//
// # Writing WAV Files
//
// WritePCM16 produces a canonical 44-byte-header PCM WAV file from
// interleaved int16 samples:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WritePCM16(file, 8000, 1, samples)
//
// It is the counterpart used by tests and examples to synthesize inputs for
// the effects engine.
package wav
