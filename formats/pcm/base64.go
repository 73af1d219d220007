// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/base64"
	"fmt"
)

// DecodeBase64 returns the raw bytes of a standard, padded base64 payload.
// Characters outside the alphabet fail with ErrInvalidBase64, wrapping the
// decoder's own error (a base64.CorruptInputError).
func DecodeBase64(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	return raw, nil
}
