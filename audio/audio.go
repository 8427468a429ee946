// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
)

type Stream interface {
	// ReadBuffer fills dst with interleaved signed 16-bit samples.
	// Returns number of samples written (not frames). It never blocks; a
	// short count means no more data is available right now.
	ReadBuffer(dst []int16) int

	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int

	// Rate of the PCM stream in Hz.
	Rate() int

	// EndOfData reports that no data is available right now. More may
	// arrive later unless EndOfStream is also true.
	EndOfData() bool

	// EndOfStream reports that the stream will never produce another
	// sample.
	EndOfStream() bool

	// Close releases any resources, including owned child streams.
	Close() error
}

// RewindableStream can be reset to its start.
type RewindableStream interface {
	Stream

	// Rewind resets the stream to its start and reports success.
	Rewind() bool
}

// SeekableStream supports absolute seeks and knows its length.
type SeekableStream interface {
	RewindableStream

	// Seek moves to where and reports success.
	Seek(where Timestamp) bool

	// Length of the stream.
	Length() Timestamp
}

// PacketizedStream is fed with encoded packets after construction.
type PacketizedStream interface {
	Stream

	// QueuePacket decodes data and appends it to the stream.
	QueuePacket(data []byte)

	// Finish marks that no more packets will be queued.
	Finish()
}

// OutputDevice exposes the ambient output configuration.
type OutputDevice interface {
	OutputRate() int
}

// Decoder constructs a SeekableStream from an input reader.
type Decoder interface {
	Decode(r io.Reader) (SeekableStream, error)
}

// FileFormat binds a file extension to a decoder.
type FileFormat struct {
	Name      string
	Extension string
	Decoder   Decoder
}

// Registry for decoders by file extension (e.g., ".wav", ".mp3", ".ogg").
// Registration order is the priority order used by OpenStreamFile.
type Registry struct {
	formats []FileFormat

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		mtx: &sync.Mutex{},
	}
}

// Register adds a decoder for ext. Registering an extension again replaces
// the decoder but keeps its priority.
func (r *Registry) Register(name, ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	ext = normalizeExt(ext)
	for i := range r.formats {
		if r.formats[i].Extension == ext {
			r.formats[i] = FileFormat{Name: name, Extension: ext, Decoder: d}
			return
		}
	}

	r.formats = append(r.formats, FileFormat{Name: name, Extension: ext, Decoder: d})
}

// Get returns the decoder registered for ext, with or without leading dot.
func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	ext = normalizeExt(ext)
	for _, f := range r.formats {
		if f.Extension == ext {
			return f.Decoder, true
		}
	}

	return nil, false
}

// Formats returns the registered formats in priority order.
func (r *Registry) Formats() []FileFormat {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]FileFormat, len(r.formats))
	copy(out, r.formats)

	return out
}

// OpenStreamFile tries basename plus every registered extension in
// priority order and returns the first stream that opens. A missing or
// undecodable candidate only means the next extension is tried.
func (r *Registry) OpenStreamFile(fsys fs.FS, basename string) (SeekableStream, error) {
	for _, f := range r.Formats() {
		name := basename + f.Extension

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			continue
		}

		s, err := f.Decoder.Decode(bytes.NewReader(data))
		if err != nil {
			logger().Debug("audio: decode candidate failed",
				"file", name, "decoder", f.Name, "err", err)
			continue
		}

		logger().Debug("audio: opened stream", "file", name, "decoder", f.Name,
			"rate", s.Rate(), "channels", s.Channels())

		return s, nil
	}

	logger().Debug("audio: could not open compressed audio file", "basename", basename)

	return nil, fmt.Errorf("%w: %s", ErrStreamNotFound, basename)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
