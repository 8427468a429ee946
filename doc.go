// SPDX-License-Identifier: EPL-2.0

// Package audstream opens audio files by basename and turns them into
// pull-based streams of 16-bit PCM.
//
// # Supported Formats
//
// NewDefaultRegistry registers these formats, in the order OpenStreamFile
// tries them:
//   - FLAC (.flac, .fla) via formats/flac
//   - Ogg Vorbis (.ogg) via formats/vorbis
//   - MP3 (.mp3) via formats/mp3
//   - WAV (.wav) via formats/wav
//   - AIFF (.aiff, .aif) via formats/aiff
//
// Building with the noflac, novorbis or nomp3 tag leaves the matching
// compressed format out.
//
// # Quick Start
//
//	s, err := audstream.OpenStreamFile(os.DirFS("sounds"), "door")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	// Resample to 8kHz mono, 16-bit PCM
//	samples, rate, err := audstream.ResampleToMono16(s, 8000, 4096)
//
// # Building Pipelines
//
// The audio subpackage holds the stream wrappers. Each one takes its parent
// and an ownership policy:
//
//	looped := audio.NewLoopingStream(s, 3, audio.DisposeYes)
//	mono := audio.NewMonoMixer(audio.NewResampler(looped, 16000, audio.DisposeYes), audio.DisposeYes)
//	defer mono.Close()
//
//	buf := make([]int16, 4096)
//	for !mono.EndOfStream() {
//	    n := mono.ReadBuffer(buf)
//	    ...
//	}
//
// # Writing WAV Files
//
// wav.WriteWAV16 writes a slice of samples and wav.Encode drains a stream
// into a file:
//
//	out, _ := os.Create("output.wav")
//	defer out.Close()
//	_, err := wav.Encode(out, mono, 4096)
package audstream
