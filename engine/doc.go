// SPDX-License-Identifier: EPL-2.0

// Package engine provides a pure Go effects engine that satisfies the
// effects.Engine interface.
//
// The engine decodes an input file into a stream of float32 samples,
// wraps the stream with one pipeline stage per requested effect, then
// drains the pipeline into the caller's output buffer. Decoding is
// format driven: a registry maps file extensions (or an explicit file
// type hint) to decoders for WAV, AIFF, MP3, Ogg Vorbis and headerless
// raw PCM.
//
// An engine is a small state machine. It starts Uninitialized, must be
// moved to Initialized with Initialize before BuildFlow will run, and
// once Shutdown has been called it can never be initialized again.
//
// Output samples are produced at int32 scale, so dividing by 1<<31
// (the chain layer's default normalization) maps them into [-1, 1].
package engine
