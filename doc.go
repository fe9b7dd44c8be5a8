// SPDX-License-Identifier: EPL-2.0

// Package fxchain applies chains of audio effects to files.
//
// A chain is built against an effects engine, validated as it grows and
// executed exactly once per call: the engine decodes the input file,
// applies the queued effects in order and fills an output buffer, which
// the chain then normalizes in place.
//
// # Quick Start
//
// The simplest entry points load a file through the built-in engine:
//
//	// All samples, normalized to [-1, 1]
//	buf, rate, _ := fxchain.Load("input.wav")
//
//	// Resampled mono 16-bit PCM, ready for telephony or speech models
//	pcm16, rate, _ := fxchain.LoadMono16("input.mp3", 8000)
//
// # Building Chains
//
// For full control, build a chain with the effects package:
//
//	eng, _ := engine.Default()
//	chain, _ := effects.New(eng, nil)
//	chain.SetInputFile("input.wav")
//	chain.Append("rate", effects.Int(16000))
//	chain.Append("channels", effects.Int(1))
//	chain.Append("vol", effects.Float(0.5))
//	out, rate, _ := chain.Execute(nil)
//
// Appends are validated against the engine's effect vocabulary, so a typo
// fails at Append time rather than mid-execution. The queue survives
// Execute and can be re-run against other input files; Clear empties it
// while keeping the input file and configuration.
//
// # Supported Formats
//
// The built-in engine decodes the following inputs:
//   - WAV via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - Headerless PCM via formats/raw, driven by signal/encoding hints
//
// Additional decoders can be attached with Engine.Register.
//
// # Effects
//
// The built-in engine implements:
//   - rate <hz>: resample with cubic interpolation
//   - channels <n>: remix the channel count
//   - gain <db>: scale by decibels
//   - vol <factor>: scale by a linear factor
//   - reverse: play backwards
//   - trim <start> [<length>]: cut a window, in seconds
//
// # Engine Lifecycle
//
// An engine moves strictly forward through three states: it starts
// uninitialized, Initialize makes it usable, and Shutdown retires it
// permanently. engine.Default manages a shared initialized instance.
package fxchain
