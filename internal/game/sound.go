package game

// Sound identifies a game sound effect
type Sound int

const (
	SoundPaddleBounce Sound = iota
	SoundWallBounce
	SoundScore
)

func (s Sound) String() string {
	switch s {
	case SoundPaddleBounce:
		return "paddle"
	case SoundWallBounce:
		return "wall"
	case SoundScore:
		return "score"
	}
	return "unknown"
}

// SoundPlayer plays sound effects. Play must not block the game loop.
type SoundPlayer interface {
	Play(s Sound)
}

type silence struct{}

func (silence) Play(Sound) {}
