package game

// Renderer draws the whole state once per frame.
type Renderer interface {
	Render(s *State)
}

// CuePlayer plays the movement sound. It is called at most once per frame,
// and only when at least one tick ran while playing.
type CuePlayer interface {
	PlayMoveCue(s *State)
}

// HighScoreStore persists the single high score. Implementations swallow
// their own errors: a missing or unreadable value loads as 0.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// Projector updates menus, HUD and overlays from the state. It must not
// mutate the state.
type Projector interface {
	Project(s *State)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s *State)

func (f RendererFunc) Render(s *State) { f(s) }

// ProjectorFunc adapts a function to Projector.
type ProjectorFunc func(s *State)

func (f ProjectorFunc) Project(s *State) { f(s) }

// CuePlayerFunc adapts a function to CuePlayer.
type CuePlayerFunc func(s *State)

func (f CuePlayerFunc) PlayMoveCue(s *State) { f(s) }

// MemoryStore is an in-process HighScoreStore.
type MemoryStore struct {
	Score int
	Saves int
}

func (m *MemoryStore) LoadHighScore() int { return m.Score }

func (m *MemoryStore) SaveHighScore(score int) {
	m.Score = score
	m.Saves++
}

type nopPorts struct{}

func (nopPorts) Render(*State)      {}
func (nopPorts) Project(*State)     {}
func (nopPorts) PlayMoveCue(*State) {}
func (nopPorts) LoadHighScore() int { return 0 }
func (nopPorts) SaveHighScore(int)  {}
