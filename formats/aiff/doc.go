// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files with 8,
// 16, 24 or 32-bit PCM data, exposed as an audio.Source of float32 samples
// in [-1.0, 1.0]:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder prefers an io.ReadSeeker; other readers are buffered in
// memory first. Encoding is not supported.
package aiff
