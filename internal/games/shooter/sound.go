package shooter

// Sound identifies a gameplay event that may have an audio cue.
type Sound int

const (
	SoundShot Sound = iota
	SoundExplosion
	SoundHit
	SoundPickup
	SoundLevelUp
	SoundGameOver
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundExplosion:
		return "explosion"
	case SoundHit:
		return "hit"
	case SoundPickup:
		return "pickup"
	case SoundLevelUp:
		return "level-up"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// SoundHook receives gameplay sound cues. Play must not block the tick.
type SoundHook interface {
	Play(s Sound)
}

// nopSound is the default hook.
type nopSound struct{}

func (nopSound) Play(Sound) {}
