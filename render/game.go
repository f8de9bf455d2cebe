package render

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-predprey/model"
	"github.com/sheikhrachel/go-predprey/utils"
)

// Game drives one simulation pass per tick and displays the grid scaled to the window.
// It implements the ebiten.Game interface.
type Game struct {
	cfg   utils.Config
	grid  *model.Grid
	rng   model.Source
	stats *utils.Stats

	frame   *image.NRGBA // Colors written by the rule engine
	pixels  []byte       // Premultiplied copy of frame for upload
	texture *ebiten.Image

	frames    int
	lastFrame time.Time
}

// NewGame wires a populated grid to the renderer
func NewGame(cfg utils.Config, grid *model.Grid, rng model.Source, stats *utils.Stats) *Game {
	w, h := grid.GetWidth(), grid.GetHeight()
	return &Game{
		cfg:       cfg,
		grid:      grid,
		rng:       rng,
		stats:     stats,
		frame:     image.NewNRGBA(image.Rect(0, 0, w, h)),
		pixels:    make([]byte, 4*w*h),
		lastFrame: time.Now(),
	}
}

// Update advances the simulation by one pass.
// Returns ebiten.Termination once the window is closed or Escape is pressed.
func (g *Game) Update() error {
	if closeRequested() {
		log.Printf("[Simulation] stopping after %d frames: %d moves, %d predations, %d births, %d starvations",
			g.frames, g.stats.Totals.Moves, g.stats.Totals.Predations, g.stats.Totals.Births, g.stats.Totals.Starvations)
		return ebiten.Termination
	}

	frameStart := time.Now()
	result := g.grid.Step(g.rng, g.frame)
	g.frames++

	census := g.grid.Census()
	g.stats.Update(g.frames, census, result, frameStart.Sub(g.lastFrame))
	g.lastFrame = frameStart

	if g.cfg.LogEvery > 0 && g.frames%g.cfg.LogEvery == 0 {
		log.Printf("[Simulation] frame %d: %d predators, %d prey, mean health %.1f, %.1f fps",
			g.frames, census.Predators, census.Prey, census.MeanHealth, g.stats.FramesPerSecond)
		ebiten.SetWindowTitle(fmt.Sprintf("%s | predators %d | prey %d", g.cfg.Title, census.Predators, census.Prey))
	}
	return nil
}

// Draw uploads the latest colors and stretches them over the screen
func (g *Game) Draw(screen *ebiten.Image) {
	b := g.frame.Bounds()
	if g.texture == nil {
		g.texture = ebiten.NewImage(b.Dx(), b.Dy())
	}
	model.Premultiply(g.pixels, g.frame)
	g.texture.WritePixels(g.pixels)

	screen.Fill(color.Black)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	screen.DrawImage(g.texture, op)
}

// Layout returns the window size so one logical pixel maps to one screen pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// Blank is a window with no simulation; it only honors close requests
type Blank struct {
	cfg utils.Config
}

func NewBlank(cfg utils.Config) *Blank {
	return &Blank{cfg: cfg}
}

func (b *Blank) Update() error {
	if closeRequested() {
		return ebiten.Termination
	}
	return nil
}

func (b *Blank) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
}

func (b *Blank) Layout(outsideWidth, outsideHeight int) (int, int) {
	return b.cfg.WindowWidth, b.cfg.WindowHeight
}

// closeRequested reports a window close request or an Escape press
func closeRequested() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Run opens the window described by cfg and blocks until the game terminates
func Run(cfg utils.Config, game ebiten.Game) error {
	if !cfg.Windowed() {
		return errors.Errorf("[Run] config %q has no window size", cfg.Title)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	if err := ebiten.RunGame(game); err != nil {
		return errors.Wrapf(err, "[Run] game loop for %q failed", cfg.Title)
	}
	return nil
}
