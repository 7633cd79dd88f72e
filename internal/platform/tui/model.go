package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
	"github.com/vovakirdan/crazysnake/internal/game"
	"github.com/vovakirdan/crazysnake/internal/metrics"
)

// Options configures a session model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   game.HighScoreStore // nil keeps the high score in memory
	Cues    game.CuePlayer      // nil plays no sound
	Logger  *log.Logger
	Metrics *metrics.Recorder
	Profile string // shown in the screenshot file name
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game    *game.Game
	board   *Board
	menu    *Menu
	keys    KeyMap
	help    help.Model
	runtime core.RuntimeConfig
	cfg     config.Config
	log     *log.Logger
	metrics *metrics.Recorder
	profile string
	now     func() time.Time

	swipe    *core.Point // pointer press position, in screen cells
	quitting bool
}

// NewModel creates a session model in the menu phase.
func NewModel(opts Options) Model {
	runtime := opts.Runtime
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := NewBoard(opts.Config)
	menu := &Menu{}
	gopts := []game.Option{
		game.WithRenderer(board),
		game.WithProjector(NewHUD(board, opts.Config, menu)),
		game.WithLogger(logger),
	}
	if opts.Store != nil {
		gopts = append(gopts, game.WithHighScoreStore(opts.Metrics.InstrumentStore(opts.Store)))
	}
	if opts.Cues != nil {
		gopts = append(gopts, game.WithCuePlayer(opts.Cues))
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game.New(opts.Config, runtime.Seed, gopts...),
		board:   board,
		menu:    menu,
		keys:    DefaultKeyMap(),
		help:    h,
		runtime: runtime,
		cfg:     opts.Config,
		log:     logger,
		metrics: opts.Metrics,
		profile: opts.Profile,
		now:     time.Now,
	}
}

// Game returns the hosted game.
func (m Model) Game() *game.Game {
	return m.game
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.game.State()

	action := m.keys.MapKey(msg)

	// Global quit keys
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.QuitIdle) && !s.Playing():
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	// Menus scroll with the arrow keys only.
	if !s.Playing() && (action == core.ActionUp || action == core.ActionDown) &&
		msg.Type != tea.KeyUp && msg.Type != tea.KeyDown {
		return m, nil
	}

	m.apply(action)
	return m, nil
}

// apply routes an action to the game. Space only ever hangs up a ringing
// call; Esc pauses, resumes or leaves the game over screen depending on the
// phase.
func (m Model) apply(action core.Action) {
	s := m.game.State()
	now := m.now()

	switch action {
	case core.ActionDismiss:
		m.dispatch(game.CmdDismissCall, now)

	case core.ActionBack:
		switch {
		case s.Playing():
			m.dispatch(game.CmdPause, now)
		case s.Paused:
			m.dispatch(game.CmdResume, now)
		case s.Phase == game.PhaseGameOver:
			m.dispatch(game.CmdReturnToMenu, now)
		}

	case core.ActionConfirm:
		if item, ok := m.menu.Selected(s); ok && !s.Playing() {
			m.dispatch(item.Command(), now)
		}

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dir, _ := action.Direction()
		if s.Playing() {
			m.game.SetDirection(dir)
			return
		}
		switch action {
		case core.ActionUp:
			m.menu.Move(s, -1)
		case core.ActionDown:
			m.menu.Move(s, 1)
		}
	}
}

func (m Model) dispatch(cmd game.Command, now time.Time) {
	if !m.game.Dispatch(cmd, now) {
		return
	}
	if cmd == game.CmdNewGame {
		m.metrics.GameStarted()
	}
}

// handleMouse turns a press-drag-release into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.swipe = &core.Point{X: msg.X, Y: msg.Y}
	case tea.MouseActionRelease:
		if m.swipe == nil {
			return m, nil
		}
		unit := max(m.cfg.Grid.UnitSize, 1)
		dx := (msg.X - m.swipe.X) / unit
		dy := msg.Y - m.swipe.Y
		m.swipe = nil
		if dir, ok := game.SwipeDirection(dx, dy, m.cfg.Input.MinSwipeDistance); ok {
			m.game.SetDirection(dir)
		}
	}
	return m, nil
}

// handleFrame advances the game to the frame's time.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	wasPlaying := m.game.State().Playing()

	m.board.At(now)
	result := m.game.Frame(now)

	m.metrics.Ticked(result.Ticks)
	if wasPlaying && result.Phase == game.PhaseGameOver {
		m.metrics.GameOver(m.game.State().Score)
		m.log.Debug("game over", "profile", m.profile, "state", m.game.DebugState())
	}

	return m, frameCmd(m.runtime.FrameRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot create screenshot directory", "err", err)
		return
	}

	profile := m.profile
	if profile == "" {
		profile = "local"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", profile, timestamp))

	if err := os.WriteFile(path, []byte(m.board.Screen().String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.board.Screen()),
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)),
	)
	if m.runtime.ScreenW <= 0 || m.runtime.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program with a new session model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
