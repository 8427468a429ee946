// SPDX-License-Identifier: EPL-2.0

//go:build !noflac && !novorbis && !nomp3

package audstream

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/wav"
)

func TestNewDefaultRegistry_Order(t *testing.T) {
	t.Parallel()

	want := []struct {
		name string
		ext  string
	}{
		{"FLAC", ".flac"},
		{"FLAC", ".fla"},
		{"Ogg Vorbis", ".ogg"},
		{"MPEG Layer 3", ".mp3"},
		{"WAV", ".wav"},
		{"AIFF", ".aiff"},
		{"AIFF", ".aif"},
	}

	got := NewDefaultRegistry().Formats()
	if len(got) != len(want) {
		t.Fatalf("registered %d formats, want %d", len(got), len(want))
	}

	for i, w := range want {
		if got[i].Name != w.name || got[i].Extension != w.ext {
			t.Errorf("format %d = %s %s, want %s %s", i, got[i].Name, got[i].Extension, w.name, w.ext)
		}
		if got[i].Decoder == nil {
			t.Errorf("format %d has no decoder", i)
		}
	}
}

func wavFile(t *testing.T, rate, channels int, samples []int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, rate, channels, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return buf.Bytes()
}

func TestOpenStreamFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sfx/door.wav":   {Data: wavFile(t, 22050, 1, []int16{1, 2, 3, 4})},
		"sfx/bell.flac":  {Data: []byte("not a flac file at all")},
		"sfx/bell.wav":   {Data: wavFile(t, 11025, 2, []int16{5, 6, 7, 8})},
		"sfx/broken.wav": {Data: []byte("RIFF")},
	}

	t.Run("plain wav", func(t *testing.T) {
		t.Parallel()

		s, err := OpenStreamFile(fsys, "sfx/door")
		if err != nil {
			t.Fatalf("OpenStreamFile() error = %v", err)
		}
		defer s.Close()

		if s.Rate() != 22050 || s.Channels() != 1 {
			t.Errorf("got %d Hz %d ch, want 22050 Hz 1 ch", s.Rate(), s.Channels())
		}

		if got := ReadAll(s, 16); len(got) != 4 || got[3] != 4 {
			t.Errorf("ReadAll() = %v, want [1 2 3 4]", got)
		}
	})

	t.Run("skips an undecodable candidate", func(t *testing.T) {
		t.Parallel()

		s, err := OpenStreamFile(fsys, "sfx/bell")
		if err != nil {
			t.Fatalf("OpenStreamFile() error = %v", err)
		}
		defer s.Close()

		if s.Rate() != 11025 || s.Channels() != 2 {
			t.Errorf("got %d Hz %d ch, want the wav candidate", s.Rate(), s.Channels())
		}
	})

	for _, name := range []string{"sfx/missing", "sfx/broken"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := OpenStreamFile(fsys, name)
			if !errors.Is(err, audio.ErrStreamNotFound) {
				t.Errorf("OpenStreamFile(%q) error = %v, want %v", name, err, audio.ErrStreamNotFound)
			}
		})
	}
}

func TestOpenStreamFile_ExtensionPriority(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"theme.aiff": {Data: []byte("FORM")},
		"theme.wav":  {Data: wavFile(t, 8000, 1, []int16{9})},
	}

	s, err := OpenStreamFile(fsys, "theme")
	if err != nil {
		t.Fatalf("OpenStreamFile() error = %v", err)
	}
	defer s.Close()

	if s.Rate() != 8000 {
		t.Errorf("Rate() = %d, want 8000", s.Rate())
	}
}
