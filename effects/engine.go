// SPDX-License-Identifier: EPL-2.0

package effects

// Effect is one entry in a chain: a validated, lower-case effect name and
// its flattened option strings. An option list of a single empty string
// means "no options" and keeps engines that expect at least one option
// happy.
type Effect struct {
	Name    string
	Options []string
}

// SignalInfo hints the shape of the input signal when the engine cannot
// determine it from the file itself (headerless raw PCM, for example).
type SignalInfo struct {
	// Rate is the sample rate in Hz.
	Rate float64
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// Precision in bits per sample.
	Precision int
	// Length in samples, 0 when unknown.
	Length int64
}

// Sample encodings understood by engines for raw input.
const (
	EncodingSignedInteger = "signed-integer"
	EncodingFloat         = "float"
)

// EncodingInfo hints the sample encoding of the input when the engine
// cannot determine it automatically.
type EncodingInfo struct {
	// Encoding is one of the Encoding* constants.
	Encoding string
	// BitsPerSample of the stored samples.
	BitsPerSample int
}

// FlowRequest carries everything an engine needs for one execution of a
// chain: the input, the output buffer to fill in place, output layout, type
// hints and the ordered effect sequence.
type FlowRequest struct {
	InputPath     string
	Out           *Buffer
	ChannelsFirst bool
	Signal        *SignalInfo
	Encoding      *EncodingInfo
	FileType      string
	Effects       []Effect
	MaxOptions    int
}

// Engine decodes an input file, applies effects in order and fills the
// output buffer. Implementations report the effect names they recognize and
// return the sample rate of the produced audio.
type Engine interface {
	// EffectNames lists every effect name the engine recognizes.
	EffectNames() []string

	// BuildFlow runs one decode-and-process pass. The request's Out buffer
	// is filled in place. Returns the output sample rate.
	BuildFlow(req *FlowRequest) (int, error)
}
