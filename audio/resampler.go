// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/storyaudio/utils"
)

// Resampler converts src to another sample rate using cubic interpolation.
// It works on interleaved samples and keeps the channel count. When
// downsampling, a one-pole low-pass filter runs ahead of the interpolator.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2 around the read position;
	// filled marks the ones that came from src rather than padding.
	window [4][]float32
	filled [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	frame []float32
	eof   bool // src is exhausted
	done  bool // last frame has been emitted

	lowPass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowPass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame pulls a single frame from src into r.frame.
func (r *Resampler) readFrame() (bool, error) {
	n, err := r.src.ReadSamples(r.frame)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("%w", err)
	}

	if err == io.EOF {
		r.eof = true
	}

	return n > 0, nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowPass {
		return
	}

	for c := range frame {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

// prime fills the interpolation window. The first frame doubles as t-1 and
// missing frames of short sources repeat the last one.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.window); i++ {
		ok := false

		if !r.eof {
			var err error
			if ok, err = r.readFrame(); err != nil {
				return err
			}
		}

		if !ok {
			if i == 1 {
				return io.EOF
			}

			copy(r.window[i], r.window[i-1])
			continue
		}

		if i == 1 && r.lowPass {
			// start the filter at the first sample to avoid a ramp-in
			copy(r.state, r.frame)
		}

		r.filter(r.frame)
		copy(r.window[i], r.frame)
		r.filled[i] = true
	}

	copy(r.window[0], r.window[1])

	return nil
}

// advance slides the window forward by one source frame. Past the end of
// src the last frame is repeated until it reaches t0.
func (r *Resampler) advance() error {
	if !r.filled[2] {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]
	r.filled[3] = false

	if !r.eof {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}

		if ok {
			r.filter(r.frame)
			copy(r.window[3], r.frame)
			r.filled[3] = true
		}
	}

	if !r.filled[3] {
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces samples at the destination rate. len(dst) must be a
// multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				r.done = true
			}

			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0

			if err := r.advance(); err != nil {
				if err == io.EOF {
					r.done = true
				}

				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]

		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
