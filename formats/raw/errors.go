package raw

import "errors"

var (
	ErrMissingSignalSpec   = errors.New("raw input requires sample rate and channel count")
	ErrUnsupportedEncoding = errors.New("unsupported raw encoding")
)
