// SPDX-License-Identifier: EPL-2.0

// Package effects provides an ordered audio effects chain.
//
// A Chain holds a sequence of named effects with string options, an input
// file, and output shaping configuration. Executing the chain delegates
// decoding and effect application to an Engine, then normalizes the
// resulting samples in place.
//
// # Building a Chain
//
// A chain is bound to an engine at construction time. The engine's effect
// vocabulary is snapshotted once and used to validate every appended effect:
//
//	chain, err := effects.New(eng, nil)
//	if err != nil {
//	    // Handle error
//	}
//	chain.Append("rate", effects.Int(16000))
//	chain.Append("channels", effects.Int(1))
//
// Effects run in insertion order. Duplicates are allowed and the chain never
// reorders entries.
//
// # Executing
//
// Execution requires an input file. The chain itself is not mutated by
// execution, so the same chain can be pointed at different files and
// executed repeatedly:
//
//	chain.SetInputFile("speech.wav")
//	buf, rate, err := chain.Execute(nil)
//
// An empty chain is executed with a single "no_effects" sentinel so the
// engine always has at least one effect to drive its processing loop. The
// sentinel is per-call only and never persists in the chain.
//
// # Effect Arguments
//
// Effect options are flattened to strings before they reach the engine.
// Arguments are built from the Arg constructors and may nest arbitrarily:
//
//	chain.Append("trim", effects.Float(1.5), effects.Float(2))
//	chain.Append("rate", effects.List(effects.Int(16000)))
//
// Both of the "rate" forms above store the identical option list ["16000"].
//
// # Normalization
//
// After the engine fills the output buffer, the chain applies its configured
// normalization exactly once. The default divides every sample by 1<<31,
// mapping signed 32-bit integer scale output into [-1, 1]. See the
// Normalization constructors for the divisor, custom scale and disabled
// modes.
//
// # Errors
//
// Validation failures are reported through the package sentinel errors
// (ErrEffectUnknown, ErrEffectUnimplemented, ErrTooManyOptions and friends)
// and are compatible with errors.Is. Engine failures are passed through
// verbatim. A failed Append never leaves a partial entry in the chain.
//
// # Concurrency
//
// A Chain is not safe for concurrent use. Callers that process files in
// parallel should build one chain per goroutine, each with its own
// vocabulary snapshot.
package effects
