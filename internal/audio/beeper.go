package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Beeper plays synthesised cues for gameplay sounds. It implements
// shooter.SoundHook; Play never blocks the simulation tick.
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewBeeper creates a beeper at the given master volume in [0, 1].
func NewBeeper(volume float64, logger *log.Logger) *Beeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Beeper{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the audio device and starts the mixer.
func (b *Beeper) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close silences every queued cue.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Play queues the cue for s. It does nothing before Init.
func (b *Beeper) Play(s shooter.Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	cue := Cue(s, b.volume)
	if cue == nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(cue)
	speaker.Unlock()
	b.logger.Debug("sound", "cue", s)
}

// Cue builds the streamer for a gameplay sound, or nil for unknown sounds.
func Cue(s shooter.Sound, volume float64) beep.Streamer {
	r := SampleRate
	var cue beep.Streamer

	switch s {
	case shooter.SoundShot:
		cue = note(880, 60*time.Millisecond, WaveSquare, r)
	case shooter.SoundExplosion:
		d := 300 * time.Millisecond
		// Mix may outlive its inputs, so bound it to the cue length.
		cue = beep.Take(r.N(d), beep.Mix(
			newVolume(NewEnvelope(NewTone(0, d, WaveNoise, r), d, time.Millisecond, 250*time.Millisecond, r), 0.6),
			newVolume(note(70, d, WaveSine, r), 0.4),
		))
	case shooter.SoundHit:
		cue = note(110, 180*time.Millisecond, WaveSaw, r)
	case shooter.SoundPickup:
		cue = beep.Seq(
			note(660, 80*time.Millisecond, WaveSine, r),
			note(990, 120*time.Millisecond, WaveSine, r),
		)
	case shooter.SoundLevelUp:
		cue = beep.Seq(
			note(523.25, 100*time.Millisecond, WaveSquare, r),
			note(659.25, 100*time.Millisecond, WaveSquare, r),
			note(783.99, 160*time.Millisecond, WaveSquare, r),
		)
	case shooter.SoundGameOver:
		cue = beep.Seq(
			note(392, 200*time.Millisecond, WaveSaw, r),
			note(329.63, 200*time.Millisecond, WaveSaw, r),
			note(261.63, 400*time.Millisecond, WaveSaw, r),
		)
	default:
		return nil
	}
	return newVolume(cue, volume)
}

var _ shooter.SoundHook = (*Beeper)(nil)
