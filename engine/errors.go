// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrShutDown          = errors.New("engine has been shut down and cannot be initialized again")
	ErrNotInitialized    = errors.New("engine is not initialized")
	ErrNilRequest        = errors.New("flow request and output buffer must not be nil")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
	ErrUnknownEffect     = errors.New("effect not supported by engine")
	ErrBadEffectOption   = errors.New("bad effect option")
	ErrTooManyOptions    = errors.New("effect options exceed the configured limit")
	ErrMissingSignalInfo = errors.New("raw input requires signal info hints")
)
