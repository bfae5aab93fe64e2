package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/sacrifice/internal/config"
	"github.com/diegok/sacrifice/internal/protocol"
)

const (
	BallChar    = '\u2B24' // ⬤
	SegmentChar = '\u2588' // █
	GapChar     = '\u2591' // ░
)

var (
	courtStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	gapStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray).Dim(true)
	barStyle    = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	overlayFill = tcell.StyleDefault.Background(tcell.ColorDarkGray)
)

// Renderer draws match snapshots on the terminal
type Renderer struct {
	screen      *Screen
	help        string
	pauseKey    string
	newMatchKey string
}

// NewRenderer creates a renderer; keys feed the help line and overlays
func NewRenderer(screen *Screen, keys config.KeyMap) *Renderer {
	return &Renderer{
		screen:      screen,
		help:        HelpText(keys),
		pauseKey:    firstKey(keys.Pause),
		newMatchKey: firstKey(keys.NewMatch),
	}
}

func firstKey(names []string) string {
	if len(names) == 0 {
		return "?"
	}
	return strings.ToUpper(names[0])
}

// HelpText summarizes the key bindings for the status bar
func HelpText(keys config.KeyMap) string {
	join := func(names []string) string {
		return strings.ToUpper(strings.Join(names, "/"))
	}
	return fmt.Sprintf("%s %s | %s %s | %s pause | %s reset | %s quit",
		join(keys.LeftUp), join(keys.LeftDown),
		join(keys.RightUp), join(keys.RightDown),
		join(keys.Pause), join(keys.Reset), join(keys.Quit))
}

// courtScale maps field units to cells. Row 0 is the scoreboard and the last
// row the status bar.
type courtScale struct {
	x, y float64
}

func (c courtScale) col(fx float64) int { return int(fx * c.x) }
func (c courtScale) row(fy float64) int { return int(fy*c.y) + 1 }

// RenderMatch displays the court, paddles, ball and any overlay for state
func (r *Renderer) RenderMatch(state protocol.GameState) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	if screenW < 1 || screenH < 3 || state.FieldWidth <= 0 || state.FieldHeight <= 0 {
		r.screen.Show()
		return
	}

	scale := courtScale{
		x: float64(screenW) / state.FieldWidth,
		y: float64(screenH-2) / state.FieldHeight,
	}

	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(state, screenW)
	r.renderPaddle(state.Left, scale, screenH)
	r.renderPaddle(state.Right, scale, screenH)

	ballX := scale.col(state.Ball.X)
	ballY := scale.row(state.Ball.Y)
	if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY < screenH-1 {
		r.screen.SetCell(ballX, ballY, courtStyle.Foreground(tcell.ColorWhite), BallChar)
	}

	r.renderStatusBar(state, screenW, screenH)

	switch state.Status {
	case protocol.StatusPaused:
		r.renderOverlay(screenW, screenH, []overlayLine{
			{"PAUSED", overlayFill.Foreground(tcell.ColorYellow).Bold(true)},
			{"", overlayFill},
			{r.pauseKey + " to resume", overlayFill.Foreground(tcell.ColorGreen)},
		})
	case protocol.StatusFinished:
		winner := fmt.Sprintf("%s PLAYER WINS!", strings.ToUpper(state.Winner.String()))
		r.renderOverlay(screenW, screenH, []overlayLine{
			{winner, overlayFill.Foreground(SideColor(state.Winner)).Bold(true)},
			{fmt.Sprintf("Final score %d - %d", state.ScoreLeft, state.ScoreRight), overlayFill.Foreground(tcell.ColorWhite)},
			{"", overlayFill},
			{r.newMatchKey + " for new match", overlayFill.Foreground(tcell.ColorGreen)},
		})
	}

	r.screen.Show()
}

// renderPaddle draws one column per paddle. A row shows a gap if any
// segment under it has been knocked out.
func (r *Renderer) renderPaddle(p protocol.PaddleState, scale courtScale, screenH int) {
	if p.Segments < 1 || len(p.Present) < p.Segments {
		return
	}
	x := scale.col(p.X + p.Width/2)
	segH := p.Height / float64(p.Segments)
	style := courtStyle.Foreground(SideColor(p.Side))

	top := scale.row(p.Y)
	bottom := scale.row(p.Y + p.Height)
	if bottom == top {
		bottom = top + 1
	}

	for row := top; row < bottom; row++ {
		if row < 1 || row >= screenH-1 {
			continue
		}
		// Field span covered by this row, clipped to the paddle
		fy0 := max(float64(row-1)/scale.y, p.Y)
		fy1 := min(float64(row)/scale.y, p.Y+p.Height)

		first := clampIndex(int((fy0-p.Y)/segH), p.Segments)
		last := clampIndex(int((fy1-p.Y)/segH-1e-9), p.Segments)

		intact := true
		for i := first; i <= last; i++ {
			if !p.Present[i] {
				intact = false
				break
			}
		}

		if intact {
			r.screen.SetCell(x, row, style, SegmentChar)
		} else {
			r.screen.SetCell(x, row, gapStyle, GapChar)
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// renderScoreboard draws "[ LEFT 3 - 2 RIGHT ]" at top center
func (r *Renderer) renderScoreboard(state protocol.GameState, screenW int) {
	leftLabel := "LEFT"
	rightLabel := "RIGHT"
	scores := fmt.Sprintf(" %d - %d ", state.ScoreLeft, state.ScoreRight)

	text := "[ " + leftLabel + scores + rightLabel + " ]"
	x := (screenW - len(text)) / 2

	boardStyle := barStyle.Bold(true)
	r.screen.DrawText(x, 0, "[ ", boardStyle)
	x += 2
	r.screen.DrawText(x, 0, leftLabel, boardStyle.Foreground(LeftColor))
	x += len(leftLabel)
	r.screen.DrawText(x, 0, scores, boardStyle)
	x += len(scores)
	r.screen.DrawText(x, 0, rightLabel, boardStyle.Foreground(RightColor))
	x += len(rightLabel)
	r.screen.DrawText(x, 0, " ]", boardStyle)
}

func (r *Renderer) renderStatusBar(state protocol.GameState, screenW, screenH int) {
	statusY := screenH - 1
	r.screen.FillRect(0, statusY, screenW, 1, barStyle, ' ')
	statusText := fmt.Sprintf(" First to %d, win by 2 | %s", state.WinScore, r.help)
	r.screen.DrawText(0, statusY, statusText, barStyle)
}

type overlayLine struct {
	text  string
	style tcell.Style
}

// renderOverlay draws a centered box with one line of text per entry
func (r *Renderer) renderOverlay(screenW, screenH int, lines []overlayLine) {
	boxW := 4
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l.text))+6)
	}
	boxH := len(lines) + 4
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, overlayFill, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, overlayFill.Foreground(tcell.ColorWhite))

	for i, l := range lines {
		r.screen.DrawCentered(boxY+2+i, l.text, l.style)
	}
}
