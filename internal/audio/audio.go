package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/diegok/retropong/internal/config"
	"github.com/diegok/retropong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player plays the game's sound effects through the system speaker.
// Sounds come from the configured WAV files when present, synthesized tones otherwise.
type Player struct {
	enabled bool
	samples map[game.Sound]*beep.Buffer
	playing map[game.Sound]*beep.Ctrl
	log     *slog.Logger
}

// NewPlayer initializes the speaker and loads the configured samples.
// The game works without sound, so failures only disable playback.
func NewPlayer(s config.Settings, log *slog.Logger) *Player {
	p := &Player{
		samples: make(map[game.Sound]*beep.Buffer),
		playing: make(map[game.Sound]*beep.Ctrl),
		log:     log,
	}
	if !s.PlaySoundEffects {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		log.Warn("audio disabled", slog.String("error", err.Error()))
		return p
	}
	p.enabled = true

	files := map[game.Sound]string{
		game.SoundPaddleBounce: s.PaddleBounceSound,
		game.SoundWallBounce:   s.TopBottomBorderBounceSound,
		game.SoundScore:        s.ScoreSound,
	}
	for sound, path := range files {
		if path == "" {
			continue
		}
		buf, err := loadSample(path)
		if err != nil {
			log.Warn("using synthesized sound", slog.String("sound", sound.String()), slog.String("error", err.Error()))
			continue
		}
		p.samples[sound] = buf
	}

	return p
}

// Close shuts down the audio system
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// Play starts a sound effect without blocking. A sound that is still
// playing is cut off and starts over.
func (p *Player) Play(s game.Sound) {
	if !p.enabled {
		return
	}
	speaker.Lock()
	ctrl := p.restart(s)
	speaker.Unlock()
	speaker.Play(ctrl)
}

// restart silences the previous instance of the sound and returns a fresh one.
// Callers hold the speaker lock while the previous instance may be streaming.
func (p *Player) restart(s game.Sound) *beep.Ctrl {
	if prev, ok := p.playing[s]; ok {
		prev.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: p.streamer(s)}
	p.playing[s] = ctrl
	return ctrl
}

// streamer returns a fresh stream for the sound
func (p *Player) streamer(s game.Sound) beep.Streamer {
	if buf, ok := p.samples[s]; ok {
		return buf.Streamer(0, buf.Len())
	}
	return synthesized(s)
}

// synthesized returns the built-in tone for a sound
func synthesized(s game.Sound) beep.Streamer {
	switch s {
	case game.SoundPaddleBounce:
		// High-pitched short beep
		return squareWave(880, 50*time.Millisecond)
	case game.SoundWallBounce:
		return squareWave(440, 30*time.Millisecond)
	default:
		// Descending tone for score
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	}
}

// loadSample decodes a WAV file into memory at the speaker's sample rate
func loadSample(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if fileFormat.SampleRate != sampleRate {
		buf.Append(beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return buf, nil
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
