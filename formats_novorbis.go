// SPDX-License-Identifier: EPL-2.0

//go:build novorbis

package audstream

import "github.com/ik5/audstream/audio"

var vorbisFormats []audio.FileFormat
