// SPDX-License-Identifier: EPL-2.0

//go:build noflac

package audstream

import "github.com/ik5/audstream/audio"

var flacFormats []audio.FileFormat
