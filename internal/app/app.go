package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/retropong/internal/audio"
	"github.com/diegok/retropong/internal/config"
	"github.com/diegok/retropong/internal/game"
	"github.com/diegok/retropong/internal/ui"
)

// WindowRunner plays the game in a desktop window until it is closed
type WindowRunner func(driver *game.Game, log *slog.Logger) error

// App is the main application controller that manages the game lifecycle.
type App struct {
	// RunWindow backs the window display; nil leaves only the terminal.
	RunWindow WindowRunner

	cfg     *config.Config
	log     *slog.Logger
	logFile *os.File
	sounds  *audio.Player
	driver  *game.Game

	// Terminal front-end
	screen *ui.Screen
	canvas *ui.TerminalCanvas
	mouse  ui.MouseTracker

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It sets up logging, audio and the court, then runs the selected display until quit.
func (a *App) Run() error {
	if err := a.setupLogger(); err != nil {
		return err
	}
	defer a.cleanup()

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Info("starting",
		slog.String("display", a.cfg.Display),
		slog.String("player1", a.cfg.Settings.Player1Type),
		slog.String("player2", a.cfg.Settings.Player2Type),
		slog.Int("to_win", a.cfg.Settings.ScoreToWinMatch),
		slog.Int64("seed", seed),
	)

	// Game works without sound; the player logs and goes silent on failure.
	a.sounds = audio.NewPlayer(a.cfg.Settings, a.log)

	court := game.NewCourt(a.cfg.Settings, rand.New(rand.NewSource(seed)), a.sounds, a.log)
	a.driver = game.NewGame(court)

	if a.cfg.Display == config.DisplayWindow {
		if a.RunWindow == nil {
			return errors.New("window display is not available in this build")
		}
		if err := a.RunWindow(a.driver, a.log); err != nil {
			return fmt.Errorf("window: %w", err)
		}
		return nil
	}
	return a.runTerminal()
}

// setupLogger sends logs to the configured file; the terminal owns stdout and stderr.
func (a *App) setupLogger() error {
	if a.cfg.LogFile == "" {
		a.log = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f
	a.log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// runTerminal plays the game in the terminal.
func (a *App) runTerminal() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	s := a.cfg.Settings
	a.canvas = ui.NewTerminalCanvas(screen, s.GameWidth, s.GameHeight)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	return a.mainLoop()
}

// mainLoop is the terminal event loop: input events and the fixed-rate tick.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	renderer := ui.NewRenderer(a.canvas, a.cfg.Settings)
	ticker := time.NewTicker(game.TickInterval(a.cfg.Settings.GameFPS))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case now := <-ticker.C:
			a.driver.Tick(now, renderer)
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	court := a.driver.Court

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if ui.IsStartKey(ev.Key()) {
			court.Start()
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.canvas.CourtPoint(col, row)
		court.PointerMove(y)
		if a.mouse.Update(ev) {
			court.Click(x, y)
		}

	case *tcell.EventResize:
		a.screen.Clear()
	}

	return false
}

// stop signals every goroutine to finish.
func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.sounds != nil {
		a.sounds.Close()
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	if a.driver != nil {
		a.log.Info("stopped", slog.String("match", a.driver.Court.MatchID()))
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
