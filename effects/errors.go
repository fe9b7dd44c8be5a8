// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	// ErrEffectUnimplemented reports an effect that is part of the engine
	// vocabulary but intentionally not exposed by this integration.
	ErrEffectUnimplemented = errors.New("effect is not implemented")

	// ErrEffectUnknown reports an effect name absent from the chain's
	// vocabulary snapshot.
	ErrEffectUnknown = errors.New("effect name not valid")

	ErrTooManyOptions  = errors.New("too many effect options")
	ErrNoInputFile     = errors.New("no input file set")
	ErrBadOutputBuffer = errors.New("output buffer shape is inconsistent")
	ErrNilEngine       = errors.New("engine must not be nil")
)
