// SPDX-License-Identifier: EPL-2.0

package audio

import "strings"

// PCMFlags describes the layout of raw PCM data. Flags can be combined with
// bitwise or.
type PCMFlags uint8

const (
	// FlagUnsigned marks unsigned samples (default: signed).
	FlagUnsigned PCMFlags = 1 << 0

	// Flag16Bits marks 16-bit samples (default: 8-bit).
	Flag16Bits PCMFlags = 1 << 1

	// FlagLittleEndian marks little endian samples (default: big endian).
	FlagLittleEndian PCMFlags = 1 << 2

	// FlagStereo marks interleaved stereo data (default: mono).
	FlagStereo PCMFlags = 1 << 3
)

// Channels returns the channel count described by f.
func (f PCMFlags) Channels() int {
	if f&FlagStereo != 0 {
		return 2
	}
	return 1
}

// SampleSize returns the size of one sample in bytes.
func (f PCMFlags) SampleSize() int {
	if f&Flag16Bits != 0 {
		return 2
	}
	return 1
}

func (f PCMFlags) String() string {
	parts := make([]string, 0, 4)

	if f&FlagUnsigned != 0 {
		parts = append(parts, "unsigned")
	} else {
		parts = append(parts, "signed")
	}

	if f&Flag16Bits != 0 {
		parts = append(parts, "16bit")
		if f&FlagLittleEndian != 0 {
			parts = append(parts, "le")
		} else {
			parts = append(parts, "be")
		}
	} else {
		parts = append(parts, "8bit")
	}

	if f&FlagStereo != 0 {
		parts = append(parts, "stereo")
	} else {
		parts = append(parts, "mono")
	}

	return strings.Join(parts, "|")
}
