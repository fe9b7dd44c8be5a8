// SPDX-License-Identifier: EPL-2.0

package effects

// Buffer holds decoded samples. When ChannelsFirst is set the data is laid
// out channel-major ([channels x frames]); otherwise frames are interleaved
// ([frames x channels]). The zero value is an empty buffer ready to be
// filled by an engine.
type Buffer struct {
	Data          []float32
	Channels      int
	Frames        int
	ChannelsFirst bool
}

// At returns the sample for channel c at frame f, honoring the layout.
func (b *Buffer) At(c, f int) float32 {
	if b.ChannelsFirst {
		return b.Data[c*b.Frames+f]
	}
	return b.Data[f*b.Channels+c]
}

// validate checks the buffer-compatibility contract for caller supplied
// buffers: dimensions must be non-negative and consistent with the data
// length. The zero value passes.
func (b *Buffer) validate() error {
	if b.Channels < 0 || b.Frames < 0 {
		return ErrBadOutputBuffer
	}
	if len(b.Data) != b.Channels*b.Frames {
		return ErrBadOutputBuffer
	}
	return nil
}
