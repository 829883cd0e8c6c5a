package config

import (
	"errors"
	"flag"
	"fmt"
)

// Display front-ends
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

// Config holds the application configuration
type Config struct {
	Display  string
	Settings Settings
	Seed     int64
	LogFile  string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("retropong", flag.ContinueOnError)

	settingsFile := fs.String("config", "", "TOML settings file")
	display := fs.String("display", DisplayTerminal, "display front-end (terminal|window)")
	player1 := fs.String("player1", "", "left paddle controller (mouse|ai)")
	player2 := fs.String("player2", "", "right paddle controller (mouse|ai)")
	points := fs.Int("points", 0, "points to win (>=1)")
	mute := fs.Bool("mute", false, "disable sound effects")
	seed := fs.Int64("seed", 0, "random seed (0 picks one)")
	logFile := fs.String("log", "", "write logs to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *display != DisplayTerminal && *display != DisplayWindow {
		return nil, fmt.Errorf("display must be %q or %q, got %q", DisplayTerminal, DisplayWindow, *display)
	}

	settings := Default()
	if *settingsFile != "" {
		loaded, err := Load(*settingsFile)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	// Flags override the settings file
	if *player1 != "" {
		settings.Player1Type = *player1
	}
	if *player2 != "" {
		settings.Player2Type = *player2
	}
	if isSet(fs, "points") {
		if *points < 1 {
			return nil, fmt.Errorf("points must be at least 1, got %d", *points)
		}
		settings.ScoreToWinMatch = *points
	}
	if *mute {
		settings.PlaySoundEffects = false
	}

	if fs.NArg() > 0 {
		return nil, errors.New("unexpected arguments: " + fmt.Sprint(fs.Args()))
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Display:  *display,
		Settings: settings,
		Seed:     *seed,
		LogFile:  *logFile,
	}

	return cfg, nil
}

// isSet reports whether the flag was given on the command line
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
