// SPDX-License-Identifier: EPL-2.0

package audio

// NullStream plays nothing and has ended from the start. It is a harmless
// placeholder when no real audio is available.
type NullStream struct {
	rate int
}

// NewNullStream returns a mono NullStream at the output rate of out.
func NewNullStream(out OutputDevice) *NullStream {
	return &NullStream{rate: out.OutputRate()}
}

func (n *NullStream) Channels() int            { return 1 }
func (n *NullStream) Rate() int                { return n.rate }
func (n *NullStream) ReadBuffer(_ []int16) int { return 0 }
func (n *NullStream) EndOfData() bool          { return true }
func (n *NullStream) EndOfStream() bool        { return true }
func (n *NullStream) Close() error             { return nil }
