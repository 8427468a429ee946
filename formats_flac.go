// SPDX-License-Identifier: EPL-2.0

//go:build !noflac

package audstream

import (
	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/flac"
)

var flacFormats = []audio.FileFormat{
	{Name: "FLAC", Extension: ".flac", Decoder: flac.Decoder{}},
	{Name: "FLAC", Extension: ".fla", Decoder: flac.Decoder{}},
}
