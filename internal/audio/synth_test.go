package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLength(t *testing.T) {
	d := 50 * time.Millisecond
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewTone(440, d, w, SampleRate))
		assert.Len(t, samples, SampleRate.N(d), "wave %d", w)
		for _, s := range samples {
			require.True(t, s[0] >= -1 && s[0] <= 1, "wave %d sample %v out of range", w, s[0])
			require.Equal(t, s[0], s[1], "channels should match")
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, NewEnvelope(NewTone(0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate))
	require.Len(t, samples, SampleRate.N(d))

	// A 0 Hz square wave is a constant 1, so the output is the gain curve.
	assert.Zero(t, samples[0][0])
	assert.InDelta(t, 1.0, samples[len(samples)/2][0], 1e-9)
	assert.Less(t, samples[len(samples)-1][0], 0.01)
}

func TestVolume(t *testing.T) {
	d := 10 * time.Millisecond
	half := drain(t, newVolume(NewTone(0, d, WaveSquare, SampleRate), 0.5))
	assert.InDelta(t, 0.5, half[0][0], 1e-9)

	silent := drain(t, newVolume(NewTone(0, d, WaveSquare, SampleRate), 0))
	assert.Zero(t, silent[0][0])
}

func TestCues(t *testing.T) {
	sounds := []shooter.Sound{
		shooter.SoundShot,
		shooter.SoundExplosion,
		shooter.SoundHit,
		shooter.SoundPickup,
		shooter.SoundLevelUp,
		shooter.SoundGameOver,
	}

	for _, s := range sounds {
		t.Run(s.String(), func(t *testing.T) {
			cue := Cue(s, 0.8)
			require.NotNil(t, cue)
			samples := drain(t, cue)
			assert.NotEmpty(t, samples)
			assert.Less(t, len(samples), SampleRate.N(2*time.Second))
		})
	}

	assert.Nil(t, Cue(shooter.Sound(99), 1))
}

func TestBeeperPlayBeforeInit(t *testing.T) {
	b := NewBeeper(0.5, nil)
	assert.NotPanics(t, func() {
		b.Play(shooter.SoundShot)
		b.Close()
	})
}
