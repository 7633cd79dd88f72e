package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
	"github.com/vovakirdan/crazysnake/internal/game"
)

// hudRows is the number of screen rows above the board.
const hudRows = 1

// foodGlyphs by kind, in game.FoodKinds order.
var foodGlyphs = [...]rune{'■', '★', '○', '+', '□', '✕'}

// headGlyphs show the direction the snake is facing.
var headGlyphs = map[core.Direction]rune{
	core.DirUp:    '▲',
	core.DirDown:  '▼',
	core.DirLeft:  '◀',
	core.DirRight: '▶',
}

// Board draws the playfield into a screen. It implements game.Renderer.
// Each grid cell is UnitSize columns wide and one row tall.
type Board struct {
	screen  *core.Screen
	grid    config.GridConfig
	palette config.Palette
	render  config.RenderConfig
	now     time.Time
}

// NewBoard creates a board renderer and its screen, sized for the grid plus
// the border and HUD rows.
func NewBoard(cfg config.Config) *Board {
	w, h := ScreenSize(cfg.Grid)
	return &Board{
		screen:  core.NewScreen(w, h),
		grid:    cfg.Grid,
		palette: cfg.Colors,
		render:  cfg.Render,
	}
}

// ScreenSize returns the character size needed to show a grid.
func ScreenSize(grid config.GridConfig) (w, h int) {
	return grid.Width*grid.UnitSize + 2, grid.Height + 2 + hudRows
}

// Screen returns the buffer the board draws into.
func (b *Board) Screen() *core.Screen {
	return b.screen
}

// At sets the wall-clock time used for time-based effects such as the
// invincibility strobe.
func (b *Board) At(now time.Time) {
	b.now = now
}

// Render implements game.Renderer.
func (b *Board) Render(s *game.State) {
	b.screen.Clear()
	b.screen.DrawBox(core.NewRect(0, hudRows, b.screen.Width(), b.grid.Height+2), b.palette.Border)

	for y := range b.grid.Height {
		for x := range b.grid.Width {
			p := core.Point{X: x, Y: y}
			if b.render.ShowGrid {
				b.drawGlyph(p, '·', b.palette.GridLine, b.palette.Background)
				continue
			}
			b.fillCell(p, core.Cell{Rune: ' ', Bg: b.palette.Background})
		}
	}

	if s.Food.Position != nil {
		kind := s.Food.Kind
		glyph := foodGlyphs[0]
		if int(kind) >= 0 && int(kind) < len(foodGlyphs) {
			glyph = foodGlyphs[kind]
		}
		b.drawGlyph(*s.Food.Position, glyph, kind.Color(b.palette), b.palette.Background)
	}

	color := b.snakeColor(s)
	for i := len(s.Snake.Segments) - 1; i >= 0; i-- {
		seg := s.Snake.Segments[i]
		if i == 0 {
			b.drawGlyph(seg, headGlyphs[s.Snake.Direction], b.palette.HeadBorder, color)
			continue
		}
		b.fillCell(seg, core.Cell{Rune: ' ', Bg: color})
	}
}

// snakeColor applies the invincibility strobe: the effect color alternates
// with the default color every strobe interval.
func (b *Board) snakeColor(s *game.State) core.Color {
	if !game.IsEffectActive(s, game.EffectInvincibility) || b.render.StrobeInterval <= 0 {
		return s.Snake.Color
	}
	if (b.now.UnixNano()/int64(b.render.StrobeInterval))%2 == 1 {
		return b.palette.Default
	}
	return s.Snake.Color
}

func (b *Board) origin(p core.Point) (int, int) {
	return 1 + p.X*b.grid.UnitSize, hudRows + 1 + p.Y
}

func (b *Board) fillCell(p core.Point, c core.Cell) {
	x, y := b.origin(p)
	for i := range b.grid.UnitSize {
		b.screen.SetCell(x+i, y, c)
	}
}

// drawGlyph centers a glyph in a grid cell and pads the rest.
func (b *Board) drawGlyph(p core.Point, glyph rune, fg, bg core.Color) {
	b.fillCell(p, core.Cell{Rune: ' ', Fg: fg, Bg: bg})
	x, y := b.origin(p)
	b.screen.SetCell(x+(b.grid.UnitSize-1)/2, y, core.Cell{Rune: glyph, Fg: fg, Bg: bg})
}

// cellStyle maps a cell's colors to a lipgloss style.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !fg.IsNone() {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if !bg.IsNone() {
		style = style.Background(lipgloss.Color(bg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg.IsNone() && start.Bg.IsNone() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
