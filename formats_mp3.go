// SPDX-License-Identifier: EPL-2.0

//go:build !nomp3

package audstream

import (
	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/mp3"
)

var mp3Formats = []audio.FileFormat{
	{Name: "MPEG Layer 3", Extension: ".mp3", Decoder: mp3.Decoder{}},
}
