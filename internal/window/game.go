package window

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/diegok/retropong/internal/game"
	"github.com/diegok/retropong/internal/ui"
)

// Game adapts the game driver to ebiten's Update/Draw loop
type Game struct {
	driver   *game.Game
	canvas   *Canvas
	renderer *ui.Renderer
	log      *slog.Logger

	cursorX, cursorY int
}

// Run opens a window sized to the court and plays until it is closed
func Run(driver *game.Game, log *slog.Logger) error {
	canvas, err := NewCanvas()
	if err != nil {
		return err
	}

	s := driver.Court.Settings
	ebiten.SetWindowSize(int(s.GameWidth), int(s.GameHeight))
	ebiten.SetWindowTitle("retropong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.GameFPS)

	g := &Game{
		driver:   driver,
		canvas:   canvas,
		renderer: ui.NewRenderer(canvas, s),
		log:      log,
		cursorX:  -1,
		cursorY:  -1,
	}

	log.Info("window opened", slog.Int("width", int(s.GameWidth)), slog.Int("height", int(s.GameHeight)))
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	court := g.driver.Court

	// Cursor position is already in court coordinates since Layout returns the court size
	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		court.PointerMove(float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		court.Click(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		court.Start()
	}

	g.driver.Step(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target = screen
	g.renderer.Render(g.driver.Court)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.driver.Court.Settings
	return int(s.GameWidth), int(s.GameHeight)
}
