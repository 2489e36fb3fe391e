package tui

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/session"
)

// Board layout constants
const (
	hudRows      = 3  // Title, counters and feedback above the pegs
	buttonWidth  = 7  // Preset button box width
	buttonHeight = 3  // Preset button box height
	buttonGap    = 2  // Columns between preset buttons
	maxDiscScale = 3  // Widest half-width step per disc size
	minColumnPad = 1  // Blank cells between a full-width disc and the column edge
	minBoardRows = 4  // Base, label and lift rows besides the discs
	minWidth     = 30 // Below this nothing but a warning is drawn
)

// Button is a clickable disc-count preset in the selection menu.
type Button struct {
	Count int
	Rect  core.Rect
}

// Layout positions everything that can be clicked or drawn for one frame.
// Mouse hit-tests and the renderer share it, so what is drawn is what is hit.
type Layout struct {
	Width     int
	Height    int
	DiscCount int
	Columns   [hanoi.PegCount]core.Rect // Peg hit boxes, full height below the HUD
	Buttons   []Button
	BaseY     int // Row of the peg bases
	PoleTop   int // Highest pole row; a lifted disc floats just above it
	Scale     int // Half-width added per disc size
}

// NewLayout computes a layout for a w x h board showing discCount discs.
// presets are the menu buttons in display order.
func NewLayout(w, h, discCount int, presets []int) Layout {
	l := Layout{
		Width:     w,
		Height:    h,
		DiscCount: discCount,
		BaseY:     h - 2,
		PoleTop:   h - 2 - discCount - 1,
	}

	colW := w / hanoi.PegCount
	for i := 0; i < hanoi.PegCount; i++ {
		width := colW
		if i == hanoi.PegCount-1 {
			width = w - colW*(hanoi.PegCount-1)
		}
		l.Columns[i] = core.NewRect(i*colW, hudRows, width, core.Max(h-hudRows, 0))
	}

	l.Scale = 1
	if discCount > 0 {
		l.Scale = core.Clamp((colW/2-minColumnPad)/discCount, 1, maxDiscScale)
	}

	total := len(presets)*buttonWidth + core.Max(len(presets)-1, 0)*buttonGap
	x := (w - total) / 2
	y := h/2 - 1
	for _, n := range presets {
		l.Buttons = append(l.Buttons, Button{
			Count: n,
			Rect:  core.NewRect(x, y, buttonWidth, buttonHeight),
		})
		x += buttonWidth + buttonGap
	}
	return l
}

// TooSmall reports whether the board cannot fit discCount discs.
func (l Layout) TooSmall() bool {
	if l.Width < minWidth {
		return true
	}
	if l.DiscCount == 0 {
		return l.Height < hudRows+buttonHeight+2
	}
	if l.Height < hudRows+l.DiscCount+minBoardRows {
		return true
	}
	return l.Columns[0].W < 2*(l.DiscCount+minColumnPad)+1
}

// PegAt returns the peg whose column contains (x, y).
func (l Layout) PegAt(x, y int) (int, bool) {
	for i, r := range l.Columns {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// ButtonAt returns the disc count of the preset button at (x, y).
func (l Layout) ButtonAt(x, y int) (int, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Count, true
		}
	}
	return 0, false
}

// discHalfWidth returns how far a disc extends either side of its pole.
func (l Layout) discHalfWidth(size hanoi.Disc) int {
	return int(size) * l.Scale
}

// FrameOptions carries host settings that affect drawing but not the session.
type FrameOptions struct {
	FeedbackWindow time.Duration
	ShowTimer      bool
	Focus          int    // Keyboard-selected peg while playing
	FreeEntry      bool   // Menu accepts typed numbers
	MaxEntry       int    // Largest typed number accepted
	Entry          string // Digits typed so far
}

// DrawFrame renders one frame of v into dst.
func DrawFrame(dst *core.Screen, l Layout, v session.View, opts FrameOptions) {
	dst.Clear()

	if l.TooSmall() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	switch v.Phase {
	case session.PhaseSelectingDiscCount:
		drawMenu(dst, l, opts)
	case session.PhasePlaying:
		drawHUD(dst, v, opts)
		drawPegs(dst, l, v, opts.Focus)
	case session.PhaseResults:
		drawResults(dst, v)
	}
}

func drawMenu(dst *core.Screen, l Layout, opts FrameOptions) {
	top := l.Height/2 - 5
	dst.DrawTextCentered(top, "TOWER OF HANOI", core.ColorBrightWhite)
	dst.DrawTextCentered(top+2, "Move every disc to the rightmost peg.", core.ColorGray)
	dst.DrawTextCentered(top+3, "Choose the number of discs:", core.ColorWhite)

	for _, b := range l.Buttons {
		dst.DrawBox(b.Rect, core.ColorYellow)
		label := strconv.Itoa(b.Count)
		x := b.Rect.CenterX() - utf8.RuneCountInString(label)/2
		dst.DrawTextColored(x, b.Rect.Y+1, label, core.ColorBrightWhite)
	}

	hint := "Press a number key or click a button"
	if opts.FreeEntry {
		hint = fmt.Sprintf("Or type a number (1-%d) and press Enter: %s_", opts.MaxEntry, opts.Entry)
	}
	dst.DrawTextCentered(l.Height/2+3, hint, core.ColorGray)
}

func drawHUD(dst *core.Screen, v session.View, opts FrameOptions) {
	title := fmt.Sprintf("TOWER OF HANOI  %d discs", v.DiscCount)
	dst.DrawTextColored(1, 0, title, core.ColorCyan)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Minimum: %d", hanoi.MinMoves(v.DiscCount)), core.ColorGray)

	if opts.ShowTimer {
		drawRight(dst, 0, "Time: "+formatSeconds(v.Elapsed), core.ColorWhite)
	}
	drawRight(dst, 1, fmt.Sprintf("Moves: %d", v.Moves), core.ColorWhite)

	if msg := v.FeedbackMessage(opts.FeedbackWindow); msg != "" {
		dst.DrawTextCentered(2, msg, core.ColorRed)
	}
}

func drawPegs(dst *core.Screen, l Layout, v session.View, focus int) {
	for i, col := range l.Columns {
		cx := col.CenterX()

		for y := l.PoleTop; y < l.BaseY; y++ {
			dst.SetColored(cx, y, '│', core.ColorGray)
		}
		for x := col.X + minColumnPad; x < col.Right()-minColumnPad; x++ {
			dst.SetColored(x, l.BaseY, '═', core.ColorGray)
		}

		discs := v.Pegs[i]
		for j, d := range discs {
			y := l.BaseY - 1 - j
			if j == len(discs)-1 && v.Lifted(i) {
				y = l.PoleTop - 1
			}
			drawDisc(dst, l, cx, y, d)
		}

		drawPegLabel(dst, col, l.BaseY+1, i, i == v.TargetPeg, i == focus)
	}
}

func drawDisc(dst *core.Screen, l Layout, cx, y int, d hanoi.Disc) {
	half := l.discHalfWidth(d)
	color := core.DiscColor(int(d))
	for x := cx - half; x <= cx+half; x++ {
		dst.SetColored(x, y, '█', color)
	}
}

func drawPegLabel(dst *core.Screen, col core.Rect, y, peg int, target, focused bool) {
	label := fmt.Sprintf("Peg %d", peg+1)
	if target {
		label += " (goal)"
	}
	color := core.ColorGray
	if target {
		color = core.ColorGreen
	}
	if focused {
		label = "> " + label + " <"
		color = core.ColorBrightWhite
	}
	x := col.CenterX() - utf8.RuneCountInString(label)/2
	dst.DrawTextColored(x, y, label, color)
}

func drawResults(dst *core.Screen, v session.View) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "Solved!", core.ColorGreen)
	if v.Result != nil {
		dst.DrawTextCentered(mid-1, fmt.Sprintf("Time: %s s", formatSeconds(v.Result.Elapsed)), core.ColorBrightWhite)
		dst.DrawTextCentered(mid, fmt.Sprintf("Moves: %d (minimum %d)", v.Result.Moves, hanoi.MinMoves(v.Result.DiscCount)), core.ColorWhite)
	}
	dst.DrawTextCentered(mid+2, "Press Space to play again or Esc to quit", core.ColorGray)
}

// drawRight writes text flush with the right edge, one cell in.
func drawRight(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawTextColored(dst.Width()-1-utf8.RuneCountInString(text), y, text, c)
}

// formatSeconds renders d as seconds with two decimals.
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}
