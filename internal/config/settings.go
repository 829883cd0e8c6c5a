package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Paddle controller kinds
const (
	ControllerMouse = "mouse"
	ControllerAI    = "ai"
)

// MaxFPS bounds the tick rate so the tick interval stays positive
const MaxFPS = 1000

// Settings is the game tuning. It is passed by value and never mutated once the game runs.
type Settings struct {
	AIDetectionRange float64 `toml:"ai_detection_range"`
	AIPaddleSpeed    float64 `toml:"ai_paddle_speed"`

	BackgroundColor string  `toml:"background_color"`
	BallColor       string  `toml:"ball_color"`
	BallRadius      float64 `toml:"ball_radius"`
	BallSpeed       float64 `toml:"ball_speed"`

	CenterLineColor         string  `toml:"center_line_color"`
	CenterLineGapLength     float64 `toml:"center_line_gap_length"`
	CenterLineSegmentLength float64 `toml:"center_line_segment_length"`

	GameFPS    int     `toml:"game_fps"`
	GameHeight float64 `toml:"game_height"`
	GameWidth  float64 `toml:"game_width"`

	PaddleColor           string  `toml:"paddle_color"`
	PaddleHeight          float64 `toml:"paddle_height"`
	PaddleLeftRightMargin float64 `toml:"paddle_left_right_margin"`
	PaddleWidth           float64 `toml:"paddle_width"`

	Player1Type string `toml:"player1_type"`
	Player2Type string `toml:"player2_type"`

	PlaySoundEffects           bool   `toml:"play_sound_effects"`
	PaddleBounceSound          string `toml:"paddle_bounce_sound"`
	ScoreSound                 string `toml:"score_sound"`
	TopBottomBorderBounceSound string `toml:"top_bottom_border_bounce_sound"`

	ScoreBoardFontSize float64 `toml:"score_board_font_size"`
	ScoreToWinMatch    int     `toml:"score_to_win_match"`

	StartButtonColor     string  `toml:"start_button_color"`
	StartButtonFontSize  float64 `toml:"start_button_font_size"`
	StartButtonHeight    float64 `toml:"start_button_height"`
	StartButtonTextColor string  `toml:"start_button_text_color"`
	StartButtonWidth     float64 `toml:"start_button_width"`

	TopBottomBorderColor  string  `toml:"top_bottom_border_color"`
	TopBottomBorderHeight float64 `toml:"top_bottom_border_height"`
}

// Default returns the stock game settings
func Default() Settings {
	return Settings{
		AIDetectionRange: 0.3,
		AIPaddleSpeed:    270,

		BackgroundColor: "green",
		BallColor:       "white",
		BallRadius:      12,
		BallSpeed:       400,

		CenterLineColor:         "black",
		CenterLineGapLength:     34,
		CenterLineSegmentLength: 68,

		GameFPS:    60,
		GameHeight: 900,
		GameWidth:  1200,

		PaddleColor:           "white",
		PaddleHeight:          120,
		PaddleLeftRightMargin: 34,
		PaddleWidth:           40,

		Player1Type: ControllerMouse,
		Player2Type: ControllerAI,

		PlaySoundEffects:           true,
		PaddleBounceSound:          "./Sounds/Paddle.wav",
		ScoreSound:                 "./Sounds/Score.wav",
		TopBottomBorderBounceSound: "./Sounds/Wall.wav",

		ScoreBoardFontSize: 10,
		ScoreToWinMatch:    8,

		StartButtonColor:     "white",
		StartButtonFontSize:  14,
		StartButtonHeight:    80,
		StartButtonTextColor: "black",
		StartButtonWidth:     200,

		TopBottomBorderColor:  "blue",
		TopBottomBorderHeight: 25,
	}
}

// Load reads a TOML settings file on top of the defaults
func Load(path string) (Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}
	return s, nil
}

// Validate checks that the settings describe a playable court
func (s Settings) Validate() error {
	if s.GameWidth <= 0 || s.GameHeight <= 0 {
		return fmt.Errorf("game size must be positive, got %gx%g", s.GameWidth, s.GameHeight)
	}
	if s.GameFPS < 1 || s.GameFPS > MaxFPS {
		return fmt.Errorf("game fps must be between 1 and %d, got %d", MaxFPS, s.GameFPS)
	}
	if s.ScoreToWinMatch < 1 {
		return fmt.Errorf("points must be at least 1, got %d", s.ScoreToWinMatch)
	}
	if s.TopBottomBorderHeight < 0 {
		return fmt.Errorf("border height must not be negative, got %g", s.TopBottomBorderHeight)
	}
	if s.PaddleWidth <= 0 || s.PaddleHeight <= 0 {
		return fmt.Errorf("paddle size must be positive, got %gx%g", s.PaddleWidth, s.PaddleHeight)
	}
	if s.PaddleHeight > s.GameHeight-2*s.TopBottomBorderHeight {
		return errors.New("paddle does not fit between the borders")
	}
	if 2*(s.PaddleLeftRightMargin+s.PaddleWidth) >= s.GameWidth {
		return errors.New("paddles do not fit side by side")
	}
	if s.BallRadius <= 0 || s.BallSpeed <= 0 {
		return fmt.Errorf("ball radius and speed must be positive, got %g and %g", s.BallRadius, s.BallSpeed)
	}
	if 2*s.BallRadius >= s.GameHeight-2*s.TopBottomBorderHeight {
		return errors.New("ball does not fit between the borders")
	}
	if s.CenterLineSegmentLength <= 0 || s.CenterLineGapLength < 0 {
		return fmt.Errorf("center line segment must be positive and gap not negative, got %g and %g",
			s.CenterLineSegmentLength, s.CenterLineGapLength)
	}
	if s.AIDetectionRange <= 0 || s.AIDetectionRange > 1 {
		return fmt.Errorf("ai detection range must be in (0, 1], got %g", s.AIDetectionRange)
	}
	if s.AIPaddleSpeed < 0 {
		return fmt.Errorf("ai paddle speed must not be negative, got %g", s.AIPaddleSpeed)
	}
	if s.StartButtonWidth <= 0 || s.StartButtonHeight <= 0 {
		return fmt.Errorf("start button size must be positive, got %gx%g", s.StartButtonWidth, s.StartButtonHeight)
	}

	for _, pt := range []string{s.Player1Type, s.Player2Type} {
		if pt != ControllerMouse && pt != ControllerAI {
			return fmt.Errorf("player type must be %q or %q, got %q", ControllerMouse, ControllerAI, pt)
		}
	}

	colors := []struct{ key, name string }{
		{"background_color", s.BackgroundColor},
		{"ball_color", s.BallColor},
		{"center_line_color", s.CenterLineColor},
		{"paddle_color", s.PaddleColor},
		{"start_button_color", s.StartButtonColor},
		{"start_button_text_color", s.StartButtonTextColor},
		{"top_bottom_border_color", s.TopBottomBorderColor},
	}
	for _, c := range colors {
		if tcell.GetColor(c.name) == tcell.ColorDefault {
			return fmt.Errorf("%s: unknown color %q", c.key, c.name)
		}
	}

	return nil
}
