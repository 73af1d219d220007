// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

var (
	ErrClosed      = errors.New("player closed")
	ErrInvalidRate = errors.New("invalid sample rate")
)

// pollInterval is how often Play checks whether the device drained.
const pollInterval = 20 * time.Millisecond

// Player owns the process-wide oto context for mono float32 output.
type Player struct {
	otoCtx     *oto.Context
	sampleRate int

	mtx    sync.Mutex
	volume float64
	closed bool
}

// NewPlayer opens the audio device at sampleRate and waits until it is
// ready.
func NewPlayer(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-ready

	return &Player{otoCtx: otoCtx, sampleRate: sampleRate, volume: 1}, nil
}

func (p *Player) SampleRate() int { return p.sampleRate }

// SetVolume sets the gain for the next Play, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.volume = min(max(v, 0), 1)
}

// Play blocks until samples finished playing or ctx is done.
func (p *Player) Play(ctx context.Context, samples []float32) error {
	p.mtx.Lock()
	if p.closed {
		p.mtx.Unlock()
		return ErrClosed
	}
	volume := p.volume
	p.mtx.Unlock()

	player := p.otoCtx.NewPlayer(NewSampleReader(samples))
	defer player.Close()

	player.SetVolume(volume)
	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return fmt.Errorf("%w", ctx.Err())
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}

// Close suspends the device. oto cannot reopen a context, so the Player
// is unusable afterwards.
func (p *Player) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.otoCtx.Suspend(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
