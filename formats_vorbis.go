// SPDX-License-Identifier: EPL-2.0

//go:build !novorbis

package audstream

import (
	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/vorbis"
)

var vorbisFormats = []audio.FileFormat{
	{Name: "Ogg Vorbis", Extension: ".ogg", Decoder: vorbis.Decoder{}},
}
