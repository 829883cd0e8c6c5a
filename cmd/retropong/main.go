package main

import (
	"fmt"
	"os"

	"github.com/diegok/retropong/internal/app"
	"github.com/diegok/retropong/internal/config"
	"github.com/diegok/retropong/internal/window"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	application.RunWindow = window.Run
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  retropong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --display <mode>    terminal or window (default: terminal)")
	fmt.Fprintln(os.Stderr, "  --player1 <type>    left paddle: mouse or ai (default: mouse)")
	fmt.Fprintln(os.Stderr, "  --player2 <type>    right paddle: mouse or ai (default: ai)")
	fmt.Fprintf(os.Stderr, "  --points <n>        Points to win (default: %d)\n", config.Default().ScoreToWinMatch)
	fmt.Fprintln(os.Stderr, "  --config <file>     TOML settings file")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound effects")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for serves")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Click the start button (or press Enter) to play; q or Esc quits.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  retropong")
	fmt.Fprintln(os.Stderr, "  retropong --display window --points 5")
	fmt.Fprintln(os.Stderr, "  retropong --player1 ai --player2 ai --mute")
}
