// SPDX-License-Identifier: EPL-2.0

package effects

import "strconv"

// Arg is a single effect argument: either a scalar already rendered to its
// string form, or a sequence of further arguments. Sequences may nest and
// are flattened depth-first when the effect is appended.
type Arg struct {
	scalar string
	seq    []Arg
	isSeq  bool
}

// String builds a scalar argument from a string.
func String(v string) Arg { return Arg{scalar: v} }

// Int builds a scalar argument from an integer.
func Int(v int) Arg { return Arg{scalar: strconv.Itoa(v)} }

// Float builds a scalar argument from a float. The shortest representation
// that round-trips is used.
func Float(v float64) Arg { return Arg{scalar: strconv.FormatFloat(v, 'g', -1, 64)} }

// Bool builds a scalar argument, rendered as "true" or "false".
func Bool(v bool) Arg { return Arg{scalar: strconv.FormatBool(v)} }

// List groups arguments into a sequence.
func List(args ...Arg) Arg { return Arg{seq: args, isSeq: true} }

// flattenArgs walks args depth-first and collects every scalar leaf, in
// order, as a flat string slice.
func flattenArgs(args []Arg) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a.isSeq {
			out = append(out, flattenArgs(a.seq)...)
		} else {
			out = append(out, a.scalar)
		}
	}
	return out
}
