// SPDX-License-Identifier: EPL-2.0

package aac_test

import (
	"errors"
	"fmt"

	"github.com/ik5/audstream/formats/aac"
)

// Example_newStream opens a stream from an MP4 AudioSpecificConfig.
func Example_newStream() {
	// AAC-LC, 44.1kHz, stereo
	asc := []byte{0x12, 0x10}

	s, err := aac.NewStream(asc)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	defer s.Close()

	fmt.Printf("%d Hz, %d channels\n", s.Rate(), s.Channels())
	// Output: 44100 Hz, 2 channels
}

// Example_errorHandling shows the error for unusable extra data.
func Example_errorHandling() {
	_, err := aac.NewStream([]byte{0x12})
	if errors.Is(err, aac.ErrInvalidConfig) {
		fmt.Println("Invalid AudioSpecificConfig")
	}
	// Output: Invalid AudioSpecificConfig
}
