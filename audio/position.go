// SPDX-License-Identifier: EPL-2.0

package audio

// ConvertTimeToStreamPos converts where into a stream position: a timestamp
// at framerate rate*channels, counting interleaved samples.
//
// For multichannel streams the result is moved down to a channel boundary.
// Sub-frame precision is dropped, so the position is rounded down and never
// splits a frame.
func ConvertTimeToStreamPos(where Timestamp, rate, channels int) Timestamp {
	result := where.ConvertToFramerate(rate * channels)

	if channels > 1 {
		if remainder := result.TotalNumberOfFrames() % channels; remainder > 0 {
			result = result.AddFrames(-remainder)
		}
	}

	return NewTimestampFrames(result.Secs(), result.NumberOfFrames(), result.Framerate())
}
