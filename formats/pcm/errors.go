// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrInvalidBase64 = errors.New("invalid base64 audio payload")
	ErrOddLength     = errors.New("pcm payload has odd byte length")
	ErrInvalidFormat = errors.New("invalid pcm format")
)
