package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ai-snake/constants"
	"github.com/lixenwraith/ai-snake/engine"
	"github.com/lixenwraith/ai-snake/status"
)

// Frame is everything one redraw needs
type Frame struct {
	State  engine.GameState
	Best   int
	Paused bool
	Muted  bool
}

// TerminalRenderer draws the board and HUD onto a tcell screen
type TerminalRenderer struct {
	screen   tcell.Screen
	gridSize int
	registry *status.Registry
	debug    atomic.Bool
}

// NewTerminalRenderer creates a renderer for a gridSize x gridSize board
// reg feeds the debug line and may be nil
func NewTerminalRenderer(screen tcell.Screen, gridSize int, reg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		gridSize: gridSize,
		registry: reg,
	}
}

// ToggleDebug flips the metrics line, returns true if now shown
func (r *TerminalRenderer) ToggleDebug() bool {
	for {
		old := r.debug.Load()
		if r.debug.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// DebugEnabled reports whether the metrics line is shown
func (r *TerminalRenderer) DebugEnabled() bool {
	return r.debug.Load()
}

// Sync repaints the whole terminal after a resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

// CellOrigin returns the screen position of grid cell c
func (r *TerminalRenderer) CellOrigin(c engine.Coord) (x, y int) {
	return constants.GridLeftCol + 1 + c.X*constants.CellWidth, constants.GridTopRow + 1 + c.Y
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	r.drawText(constants.GridLeftCol, constants.TitleRow, constants.TitleText, defaultStyle.Bold(true))
	r.drawSelector(f.State.Difficulty, defaultStyle)
	r.drawGrid(f.State)
	r.drawHUD(f, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawSelector(active engine.Difficulty, defaultStyle tcell.Style) {
	x := constants.GridLeftCol
	for i, d := range engine.Difficulties() {
		label := fmt.Sprintf("[%d] %s", i+1, d.Title())
		style := defaultStyle.Foreground(RgbSelectorIdle)
		if d == active {
			style = defaultStyle.Foreground(RgbBackground).Background(RgbSelectorActive).Bold(true)
		}
		x = r.drawText(x, constants.SelectorRow, label, style) + 2
	}
}

func (r *TerminalRenderer) drawGrid(s engine.GameState) {
	borderStyle := tcell.StyleDefault.Background(RgbGridBackground)
	emptyStyle := tcell.StyleDefault.Background(RgbGridBackground)
	snakeStyle := tcell.StyleDefault.Background(RgbSnake)
	foodStyle := tcell.StyleDefault.Background(RgbFood)

	// Border frame, one column per side and one row above and below
	left := constants.GridLeftCol
	right := constants.GridLeftCol + 1 + r.gridSize*constants.CellWidth
	top := constants.GridTopRow
	bottom := constants.GridTopRow + 1 + r.gridSize
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, ' ', nil, borderStyle)
		r.screen.SetContent(x, bottom, ' ', nil, borderStyle)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, ' ', nil, borderStyle)
		r.screen.SetContent(right, y, ' ', nil, borderStyle)
	}

	for y := 0; y < r.gridSize; y++ {
		for x := 0; x < r.gridSize; x++ {
			r.fillCell(engine.Coord{X: x, Y: y}, "", emptyStyle)
		}
	}

	// Food first so the snake wins when both share a cell
	r.fillCell(s.Food.Pos, s.Food.Label, foodStyle)
	for i, seg := range s.Snake {
		label := ""
		if i == 0 {
			label = constants.SnakeHeadLabel
		}
		r.fillCell(seg, label, snakeStyle)
	}
}

// fillCell paints both columns of a cell, then places label in the first one
func (r *TerminalRenderer) fillCell(c engine.Coord, label string, style tcell.Style) {
	x, y := r.CellOrigin(c)
	for dx := 0; dx < constants.CellWidth; dx++ {
		r.screen.SetContent(x+dx, y, ' ', nil, style)
	}
	if label == "" {
		return
	}
	runes := []rune(label)
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
}

func (r *TerminalRenderer) drawHUD(f Frame, defaultStyle tcell.Style) {
	x := constants.GridLeftCol
	y := constants.GridTopRow + r.gridSize + 3

	r.drawText(x, y, fmt.Sprintf("Score: %d", f.State.Score), defaultStyle.Bold(true))
	r.drawText(x+16, y, fmt.Sprintf("Best: %d", f.Best), defaultStyle)
	y++
	r.drawText(x, y, "Difficulty: "+f.State.Difficulty.Title(), defaultStyle)
	if f.Muted {
		r.drawText(x+24, y, "muted", defaultStyle.Foreground(RgbStatusDim))
	}
	y += 2

	switch {
	case f.State.IsOver():
		r.drawText(x, y, constants.GameOverText, defaultStyle.Foreground(RgbFood).Bold(true))
		r.drawText(x, y+1, constants.PlayAgain, defaultStyle)
	case f.Paused:
		r.drawText(x, y, constants.PausedText, defaultStyle.Foreground(RgbPaused).Bold(true))
	}
	y += 3

	r.drawText(x, y, constants.HelpText, defaultStyle)
	r.drawText(x, y+1, constants.KeysText, defaultStyle.Foreground(RgbStatusDim))

	if r.debug.Load() && r.registry != nil {
		r.drawText(x, y+3, r.registry.Summary(), defaultStyle.Foreground(RgbStatusDim))
	}
}

// drawText writes s from column x, clipped to the screen width
// Returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	width, _ := r.screen.Size()
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
