// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/storyaudio/utils"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadAll accepts
// before giving up on a source.
const maxEmptyReads = 100

// ReadAll drains src and returns every sample it produced. Reaching io.EOF
// is not an error.
func ReadAll(src Source) ([]float32, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	if ch := src.Channels(); ch > 1 {
		size -= size % ch
		if size == 0 {
			size = ch
		}
	}

	buf := make([]float32, size)
	var out []float32
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return out, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
}

// ResampleToMono16 runs src through a Resampler and a MonoMixer and
// collects the result as 16-bit PCM at targetRate.
//
//	pcm16, rate, err := audio.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, ErrInvalidRate
	}

	if bufferSize <= 0 {
		bufferSize = 4096
	}

	mono := NewMonoMixer(NewResampler(src, targetRate))

	// rough guess of two seconds; append grows it as needed
	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, s := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(s))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}

		if n == 0 {
			break
		}
	}

	return pcm16, targetRate, nil
}
