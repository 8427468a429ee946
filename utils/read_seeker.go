// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"bytes"
	"fmt"
	"io"
)

// ReadSeeker returns r when it already seeks, otherwise all of r is read
// into memory. Most decoders need random access to their input.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
