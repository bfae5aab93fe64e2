package gui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/sacrifice/internal/app"
	"github.com/diegok/sacrifice/internal/audio"
	"github.com/diegok/sacrifice/internal/config"
	"github.com/diegok/sacrifice/internal/game"
	"github.com/diegok/sacrifice/internal/protocol"
)

var (
	backgroundColor = color.RGBA{0x20, 0x20, 0x30, 0xff}
	lineColor       = color.RGBA{0x50, 0x50, 0x60, 0xff}
	gapColor        = color.RGBA{0x38, 0x38, 0x48, 0xff}
	ballColor       = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	leftColor       = color.RGBA{0xe0, 0x40, 0x40, 0xff}
	rightColor      = color.RGBA{0x40, 0x70, 0xe0, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// Game implements ebiten.Game on top of a session
type Game struct {
	session  *app.Session
	bindings []binding
	face     text.Face
	help     string
	pauseKey string
	newKey   string
	last     time.Time
}

// NewGame creates the window frontend for session
func NewGame(session *app.Session, keys config.KeyMap) (*Game, error) {
	names, err := keys.Bindings()
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	bindings, err := resolveBindings(names)
	if err != nil {
		return nil, err
	}
	return &Game{
		session:  session,
		bindings: bindings,
		face:     text.NewGoXFace(basicfont.Face7x13),
		help:     helpLine(keys),
		pauseKey: strings.ToUpper(keys.Pause[0]),
		newKey:   strings.ToUpper(keys.NewMatch[0]),
	}, nil
}

func helpLine(keys config.KeyMap) string {
	join := func(names []string) string {
		return strings.ToUpper(strings.Join(names, "/"))
	}
	return fmt.Sprintf("Left: %s/%s  |  Right: %s/%s  |  Pause: %s  |  Reset: %s  |  Quit: %s",
		join(keys.LeftUp), join(keys.LeftDown), join(keys.RightUp), join(keys.RightDown),
		join(keys.Pause), join(keys.Reset), join(keys.Quit))
}

func (g *Game) Update() error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}

	in := collect(g.bindings, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	res := g.session.Advance(in, now.Sub(g.last))
	g.last = now

	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	state := g.session.Snapshot()
	screen.Fill(backgroundColor)

	// Center dashed line
	cx := float32(state.FieldWidth / 2)
	for y := float32(0); y < float32(state.FieldHeight); y += 30 {
		vector.FillRect(screen, cx-2, y, 4, 15, lineColor, false)
	}

	drawPaddle(screen, state.Left, leftColor)
	drawPaddle(screen, state.Right, rightColor)

	vector.FillCircle(screen, float32(state.Ball.X), float32(state.Ball.Y), float32(state.Ball.Radius), ballColor, true)

	g.drawCentered(screen, fmt.Sprintf("%d   -   %d", state.ScoreLeft, state.ScoreRight), 20)
	g.drawText(screen, g.help, 10, state.FieldHeight-20)

	switch state.Status {
	case protocol.StatusPaused:
		g.drawOverlay(screen, state, "PAUSED", "Press "+g.pauseKey+" to resume")
	case protocol.StatusFinished:
		g.drawOverlay(screen, state,
			fmt.Sprintf("%s PLAYER WINS!", strings.ToUpper(state.Winner.String())),
			"Press "+g.newKey+" for a new match")
	}
}

// drawPaddle draws every segment slot; knocked-out ones stay as a faint outline
func drawPaddle(screen *ebiten.Image, p protocol.PaddleState, clr color.Color) {
	if p.Segments < 1 {
		return
	}
	segH := float32(p.Height) / float32(p.Segments)
	x, w := float32(p.X), float32(p.Width)

	for i := 0; i < p.Segments && i < len(p.Present); i++ {
		y := float32(p.Y) + float32(i)*segH
		if p.Present[i] {
			vector.FillRect(screen, x, y+1, w, segH-2, clr, false)
		} else {
			vector.StrokeRect(screen, x+0.5, y+1.5, w-1, segH-3, 1, gapColor, false)
		}
	}
}

func (g *Game) drawText(screen *ebiten.Image, msg string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	text.Draw(screen, msg, g.face, op)
}

func (g *Game) drawCentered(screen *ebiten.Image, msg string, y float64) {
	w := text.Advance(msg, g.face)
	g.drawText(screen, msg, (game.FieldWidth-w)/2, y)
}

func (g *Game) drawOverlay(screen *ebiten.Image, state protocol.GameState, title, hint string) {
	const boxW, boxH = 320, 90
	x := float32(state.FieldWidth-boxW) / 2
	y := float32(state.FieldHeight-boxH) / 2
	vector.FillRect(screen, x, y, boxW, boxH, overlayColor, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 2, color.White, false)

	g.drawCentered(screen, title, float64(y)+25)
	g.drawCentered(screen, hint, float64(y)+55)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(game.FieldWidth), int(game.FieldHeight)
}

// Run opens the window and plays until it is closed or the quit key is hit
func Run(cfg *config.Config) error {
	logger, closer, err := app.NewLogger(cfg.Debug, cfg.LogFile)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	var sound = audio.Play
	if cfg.Mute {
		sound = nil
	} else if err := audio.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		sound = nil
	} else {
		defer audio.Close()
	}

	session := app.NewSession(cfg, logger, sound)
	g, err := NewGame(session, cfg.Keys)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(game.FieldWidth), int(game.FieldHeight))
	ebiten.SetWindowTitle("Sacrifice")
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
