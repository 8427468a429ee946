// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/wav"
	"github.com/ik5/audstream/internal/audiotest"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 16000, 1, []int16{100, 200, 300, 400, 500})

	stream, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}
	defer stream.Close()

	fmt.Printf("Sample rate: %d Hz\n", stream.Rate())
	fmt.Printf("Channels: %d\n", stream.Channels())

	buf := make([]int16, 10)
	n := stream.ReadBuffer(buf)

	fmt.Printf("Read %d samples: %v\n", n, buf[:n])
	fmt.Println("End of stream:", stream.EndOfStream())
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples: [100 200 300 400 500]
	// End of stream: true
}

// Example_encoding demonstrates writing a WAV file from samples.
func Example_encoding() {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, 8000, 2, samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	// Output:
	// Wrote 2044 bytes
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("This is not a WAV file")))

	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	}
	// Output: Detected: Not a valid WAV file
}

// Example_seeking jumps into the middle of a decoded file.
func Example_seeking() {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(i)
	}

	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 8000, 1, samples)

	stream, _ := wav.Decoder{}.Decode(wavData)

	fmt.Println("Length:", stream.Length().Msecs(), "ms")

	stream.Seek(audio.NewTimestamp(250, 8000))

	buf := make([]int16, 3)
	stream.ReadBuffer(buf)
	fmt.Println(buf)
	// Output:
	// Length: 1000 ms
	// [2000 2001 2002]
}

// Example_encodeStream writes a whole stream to a file.
func Example_encodeStream() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	n, err := wav.Encode(f, audiotest.NewSilentStream(44100, 2, 44100), 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	info, _ := f.Stat()

	fmt.Printf("Samples: %d\n", n)
	fmt.Printf("File size: %d bytes\n", info.Size())
	// Output:
	// Samples: 88200
	// File size: 176444 bytes
}
