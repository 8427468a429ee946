// SPDX-License-Identifier: EPL-2.0

package audstream

import (
	"io/fs"
	"sync"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/aiff"
	"github.com/ik5/audstream/formats/wav"
)

// NewDefaultRegistry returns a registry with every compiled-in format, in
// the order OpenStreamFile tries them: FLAC, Ogg Vorbis, MP3, WAV, AIFF.
// The compressed formats can be left out with the noflac, novorbis and
// nomp3 build tags.
func NewDefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	for _, group := range [][]audio.FileFormat{flacFormats, vorbisFormats, mp3Formats} {
		for _, f := range group {
			r.Register(f.Name, f.Extension, f.Decoder)
		}
	}

	r.Register("WAV", ".wav", wav.Decoder{})
	r.Register("AIFF", ".aiff", aiff.Decoder{})
	r.Register("AIFF", ".aif", aiff.Decoder{})

	return r
}

var defaultRegistry = sync.OnceValue(NewDefaultRegistry)

// OpenStreamFile opens basename with the first default format that has a
// matching, decodable file in fsys.
func OpenStreamFile(fsys fs.FS, basename string) (audio.SeekableStream, error) {
	return defaultRegistry().OpenStreamFile(fsys, basename)
}
