// SPDX-License-Identifier: EPL-2.0

//go:build nomp3

package audstream

import "github.com/ik5/audstream/audio"

var mp3Formats []audio.FileFormat
