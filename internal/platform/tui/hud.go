package tui

import (
	"fmt"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
	"github.com/vovakirdan/crazysnake/internal/game"
)

// MenuItem is a selectable entry in the menu or game over overlay.
type MenuItem int

const (
	ItemNewGame MenuItem = iota
	ItemResume
	ItemPlayAgain
	ItemMenu
)

func (i MenuItem) String() string {
	switch i {
	case ItemNewGame:
		return "New Game"
	case ItemResume:
		return "Resume"
	case ItemPlayAgain:
		return "Play Again"
	case ItemMenu:
		return "Menu"
	default:
		return "?"
	}
}

// Command returns the game command the item triggers.
func (i MenuItem) Command() game.Command {
	switch i {
	case ItemResume:
		return game.CmdResume
	case ItemMenu:
		return game.CmdReturnToMenu
	default:
		return game.CmdNewGame
	}
}

// Menu tracks the selected item. The cursor returns to the first item
// whenever the set of items changes.
type Menu struct {
	cursor int
	ctx    string
}

// Items returns the entries offered in the current phase.
func (m *Menu) Items(s *game.State) []MenuItem {
	var items []MenuItem
	switch s.Phase {
	case game.PhaseMenu:
		if s.Paused {
			items = []MenuItem{ItemResume, ItemNewGame}
		} else {
			items = []MenuItem{ItemNewGame}
		}
	case game.PhaseGameOver:
		items = []MenuItem{ItemPlayAgain, ItemMenu}
	}

	ctx := fmt.Sprintf("%s/%v", s.Phase, s.Paused)
	if ctx != m.ctx {
		m.ctx = ctx
		m.cursor = 0
	}
	return items
}

// Move shifts the cursor by delta, clamped to the item list.
func (m *Menu) Move(s *game.State, delta int) {
	items := m.Items(s)
	if len(items) == 0 {
		return
	}
	m.cursor = core.Clamp(m.cursor+delta, 0, len(items)-1)
}

// Selected returns the highlighted item.
func (m *Menu) Selected(s *game.State) (MenuItem, bool) {
	items := m.Items(s)
	if len(items) == 0 {
		return 0, false
	}
	return items[m.cursor], true
}

// Cursor returns the highlighted index.
func (m *Menu) Cursor() int {
	return m.cursor
}

// HUD draws the status line and overlays on top of the board.
// It implements game.Projector and only reads the state.
type HUD struct {
	screen  *core.Screen
	palette config.Palette
	menu    *Menu
}

// NewHUD creates a projector drawing into the board's screen.
func NewHUD(board *Board, cfg config.Config, menu *Menu) *HUD {
	return &HUD{screen: board.Screen(), palette: cfg.Colors, menu: menu}
}

// Project implements game.Projector.
func (h *HUD) Project(s *game.State) {
	h.drawStatus(s)

	switch s.Phase {
	case game.PhaseMenu:
		title := "C R A Z Y   S N A K E"
		if s.Paused {
			title = "PAUSED"
		}
		h.drawMenu([]string{title, ""}, s)
	case game.PhaseGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", s.Score)}
		if s.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		h.drawMenu(append(lines, ""), s)
	}

	if s.Phone.Active {
		h.drawOverlay([]string{"☎  Incoming call", s.Phone.Caller, "", "space to hang up"}, h.palette.Growing)
	}
}

func (h *HUD) drawStatus(s *game.State) {
	status := fmt.Sprintf(" Score: %d  High: %d", s.Score, s.HighScore)
	h.screen.DrawText(0, 0, status)

	if s.Effect == nil {
		return
	}
	label := EffectLabel(s.Effect)
	x := h.screen.Width() - len([]rune(label)) - 1
	h.screen.DrawColorText(x, 0, label, s.Effect.Kind().Color(h.palette))
}

// EffectLabel is the HUD text for an active effect.
func EffectLabel(e game.Effect) string {
	switch e := e.(type) {
	case game.Invincibility:
		return "INVINCIBLE"
	case game.WallPhase:
		return "WALL PHASE"
	case game.SpeedBoost:
		return fmt.Sprintf("FAST x%.1f", e.Multiplier)
	case game.SpeedDecrease:
		return fmt.Sprintf("SLOW x%.1f", e.Multiplier)
	case game.ReverseControls:
		return "REVERSED"
	}
	return ""
}

func (h *HUD) drawMenu(lines []string, s *game.State) {
	items := h.menu.Items(s)
	for i, item := range items {
		prefix := "  "
		if i == h.menu.Cursor() {
			prefix = "> "
		}
		lines = append(lines, prefix+item.String()+"  ")
	}
	h.drawOverlay(lines, h.palette.Border)
}

// drawOverlay draws a centered box with one centered line per row.
func (h *HUD) drawOverlay(lines []string, border core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	cx, cy := core.NewRect(0, 0, h.screen.Width(), h.screen.Height()).Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	h.screen.DrawRect(box, core.Cell{Rune: ' ', Bg: h.palette.Background})
	h.screen.DrawBox(box, border)
	for i, l := range lines {
		h.screen.DrawTextCentered(box.Y+1+i, l)
	}
}
