package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/pomo/internal/domain"
	"github.com/hammamikhairi/pomo/internal/logger"
)

// Compile-time interface check.
var _ domain.AlertSink = (*Beeper)(nil)

// Beeper plays the alert tone through the system audio device via oto.
//
// The audio context is opened lazily on the first Play, because oto
// allows only one context per process and opening it can stall on some
// devices. If the device cannot be opened, each Play logs a warning and
// returns without sound.
type Beeper struct {
	log  *logger.Logger
	tone []byte

	once    sync.Once
	ctx     *oto.Context
	initErr error

	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
	gen    uint64      // bumped by Stop to cancel plays still starting up
}

// NewBeeper creates a beeper with the standard alert tone.
func NewBeeper(log *logger.Logger) *Beeper {
	return &Beeper{
		log:  log,
		tone: Tone(AlertFrequency, AlertLength, SampleRate, AlertVolume),
	}
}

// Play starts the alert in the background and returns immediately.
// Failures are logged, never returned.
func (b *Beeper) Play() {
	b.mu.Lock()
	gen := b.gen
	b.mu.Unlock()

	go func() {
		if err := b.play(gen); err != nil {
			b.log.Warn("alert playback failed: %v", err)
		}
	}()
}

// Stop interrupts the alert if it is playing. Safe to call concurrently
// and when nothing is playing.
func (b *Beeper) Stop() {
	b.mu.Lock()
	b.gen++
	active := b.active
	b.mu.Unlock()

	if active != nil {
		active.Pause()
		b.log.Debug("beeper: interrupted")
	}
}

func (b *Beeper) play(gen uint64) error {
	ctx, err := b.context()
	if err != nil {
		return err
	}

	b.mu.Lock()
	if b.gen != gen {
		b.mu.Unlock()
		b.log.Debug("beeper: stopped before playback began")
		return nil
	}
	player := ctx.NewPlayer(bytes.NewReader(b.tone))
	b.active = player
	b.mu.Unlock()

	player.Play()
	b.log.Debug("beeper: playing %d bytes of PCM", len(b.tone))

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	b.mu.Lock()
	if b.active == player {
		b.active = nil
	}
	b.mu.Unlock()

	return player.Close()
}

// context opens the oto context exactly once.
func (b *Beeper) context() (*oto.Context, error) {
	b.once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			b.initErr = fmt.Errorf("opening audio device: %w", err)
			return
		}
		<-ready
		b.ctx = ctx
		b.log.Debug("beeper: audio context ready (rate=%d, channels=%d)", SampleRate, ChannelCount)
	})
	return b.ctx, b.initErr
}
