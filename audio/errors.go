// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrBadChannelCount   = errors.New("channel count must be positive")
	ErrUnsupportedMix    = errors.New("unsupported channel conversion")
	ErrBadTrimWindow     = errors.New("trim window must not be negative")
	ErrInvalidTargetRate = errors.New("target sample rate must be positive")
)
