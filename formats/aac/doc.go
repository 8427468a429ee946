// SPDX-License-Identifier: EPL-2.0

// Package aac decodes raw AAC access units into a packetized audio stream
// using github.com/llehouerou/go-aac.
//
// The stream is created from the AudioSpecificConfig found in the track's
// extra data, then fed one access unit per packet:
//
//	s, err := aac.NewStream(asc)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	for _, unit := range units {
//	    s.QueuePacket(unit)
//	}
//	s.Finish()
//
// Output is signed 16-bit PCM, mono or stereo, at the configured rate.
// Packets that fail to decode are logged and skipped.
package aac
