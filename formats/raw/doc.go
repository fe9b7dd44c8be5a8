// SPDX-License-Identifier: EPL-2.0

// Package raw provides headerless PCM decoding.
//
// Raw streams carry no metadata, so the Decoder must be configured
// explicitly before use:
//
//	decoder := raw.Decoder{
//	    Rate:     8000,
//	    Channels: 1,
//	    Encoding: raw.SignedInteger,
//	    Bits:     16,
//	}
//	source, err := decoder.Decode(file)
//
// Supported encodings are little-endian signed integers (16 or 32 bit) and
// 32-bit IEEE floats. The effects engine builds this decoder from a chain's
// signal and encoding hints when the input cannot be identified by
// extension.
package raw
