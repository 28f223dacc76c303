package tui

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

const hudHeight = 3

// tileLayout is the size of one tile and the gap between tiles, in cells.
type tileLayout struct {
	tileW, tileH, gap int
}

// Layouts from roomiest to most compact; the first one that fits is used.
var tileLayouts = []tileLayout{
	{tileW: 7, tileH: 3, gap: 1},
	{tileW: 6, tileH: 1, gap: 1},
}

// BoardState is everything the renderer needs to draw one frame.
type BoardState struct {
	Title     string
	Board     [][]int
	Score     int
	Best      int
	Moves     int
	MaxTile   int
	Threshold int
	Won       bool
	WinCell   grid.Cell
	Lost      bool
	Paused    bool
	Animator  *Animator
}

// BoardView draws a BoardState into a core.Screen.
type BoardView struct {
	layout  tileLayout
	originX int
	originY int
	fits    bool
}

// boardSize returns the board's outer width and height for a layout.
func (l tileLayout) boardSize(n int) (w, h int) {
	return n*(l.tileW+l.gap) + l.gap, n*(l.tileH+l.gap) + l.gap
}

// place picks a layout for an n x n board on a screen and centers it.
func (v *BoardView) place(n, screenW, screenH int) {
	v.fits = false
	for _, l := range tileLayouts {
		w, h := l.boardSize(n)
		if w <= screenW && h+hudHeight+1 <= screenH {
			v.layout = l
			v.originX = (screenW - w) / 2
			v.originY = hudHeight + 1
			v.fits = true
			return
		}
	}
}

// tileRect returns the screen rectangle of a tile at a (possibly fractional)
// board position.
func (v *BoardView) tileRect(row, col float64) core.Rect {
	l := v.layout
	x := v.originX + l.gap + int(math.Round(col*float64(l.tileW+l.gap)))
	y := v.originY + l.gap + int(math.Round(row*float64(l.tileH+l.gap)))
	return core.NewRect(x, y, l.tileW, l.tileH)
}

// Render draws the game state to the screen.
func (v *BoardView) Render(dst *core.Screen, st BoardState) {
	dst.Clear()

	n := len(st.Board)
	v.place(n, dst.Width(), dst.Height())
	if !v.fits {
		renderTooSmall(dst)
		return
	}

	boardW, boardH := v.layout.boardSize(n)
	v.renderHUD(dst, st, boardW)
	v.renderBoard(dst, st, boardW, boardH)
	v.renderOverlays(dst, st, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and stats above the board.
func (v *BoardView) renderHUD(dst *core.Screen, st BoardState, boardW int) {
	left := v.originX
	right := func(y int, text string, c core.Color) {
		x := core.Max(left+boardW-utf8.RuneCountInString(text), left)
		dst.DrawTextColor(x, y, text, c)
	}

	title := st.Title
	if title == "" {
		title = "2048"
	}
	dst.DrawTextColor(left+(boardW-utf8.RuneCountInString(title))/2, 0, title, core.ColorYellow)

	dst.DrawText(left, 1, fmt.Sprintf("Score: %d", st.Score))
	if st.Animator != nil && st.Animator.Animating() && st.Animator.ScoreDelta() > 0 {
		delta := fmt.Sprintf("+%d", st.Animator.ScoreDelta())
		dst.DrawTextColor(left+len(fmt.Sprintf("Score: %d", st.Score))+1, 1, delta, core.ColorGreen)
	}
	right(1, fmt.Sprintf("Best: %d", core.Max(st.Best, st.Score)), core.ColorDefault)

	dst.DrawTextColor(left, 2, fmt.Sprintf("Moves: %d", st.Moves), core.ColorGray)
	right(2, fmt.Sprintf("Goal: %d  Max: %d", st.Threshold, st.MaxTile), core.ColorGray)
}

// renderBoard draws the board background, the static tiles and the
// animated ones on top.
func (v *BoardView) renderBoard(dst *core.Screen, st BoardState, boardW, boardH int) {
	dst.FillRect(core.NewRect(v.originX, v.originY, boardW, boardH), ' ', core.ColorBoard)

	anim := st.Animator
	for row, line := range st.Board {
		for col, val := range line {
			cell := grid.Cell{Row: row, Col: col}
			r := v.tileRect(float64(row), float64(col))
			if val == 0 || (anim != nil && anim.Hidden(cell)) {
				dst.FillRect(r, ' ', core.ColorEmpty)
				continue
			}
			v.drawTile(dst, r, val, anim != nil && anim.MergedAt(cell))
		}
	}

	if anim == nil {
		return
	}
	for _, a := range anim.Slides() {
		row, col := a.Position()
		v.drawTile(dst, v.tileRect(row, col), a.Value, false)
	}
	for _, a := range anim.Pops() {
		r := v.tileRect(float64(a.To.Row), float64(a.To.Col))
		if a.Progress < 0.5 && r.H >= 3 {
			dst.FillRect(r, ' ', core.ColorEmpty)
			r = r.Inset(1)
		}
		v.drawTile(dst, r, a.Value, false)
	}
}

// drawTile fills a tile rectangle and centers its value.
func (v *BoardView) drawTile(dst *core.Screen, r core.Rect, value int, merged bool) {
	color := core.TileColor(value)
	dst.FillRect(r, ' ', color)

	label := strconv.Itoa(value)
	if merged && len(label)+2 <= r.W {
		label = "·" + label + "·"
	}
	width := utf8.RuneCountInString(label)
	if width > r.W {
		label = compactValue(value)
		width = utf8.RuneCountInString(label)
	}
	x := r.X + (r.W-width)/2
	y := r.Y + r.H/2
	dst.DrawTextColor(x, y, label, color)
}

// compactValue abbreviates large values, e.g. 131072 -> "128k".
func compactValue(value int) string {
	if value < 1000 {
		return strconv.Itoa(value)
	}
	return strconv.Itoa(value/1024) + "k"
}

// renderOverlays draws game state overlays.
func (v *BoardView) renderOverlays(dst *core.Screen, st BoardState, boardW, boardH int) {
	centerX, centerY := core.NewRect(v.originX, v.originY, boardW, boardH).Center()

	switch {
	case st.Paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case st.Won:
		drawOverlay(dst, centerX, centerY,
			"YOU WIN!",
			fmt.Sprintf("%d reached at %s", st.Threshold, st.WinCell),
			fmt.Sprintf("Score: %d", st.Score),
			"R: new game  B: menu",
		)
	case st.Lost:
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", st.MaxTile),
			"R: new game  B: menu",
		)
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
