package storage

import (
	"github.com/charmbracelet/log"
)

// Profile binds a Store to one profile so a game session can load and save
// its high score without handling errors. Failures are logged and a failed
// load reads as 0.
type Profile struct {
	store  *Store
	name   string
	logger *log.Logger
}

// NewProfile returns the high score port for the named profile.
func NewProfile(store *Store, name string, logger *log.Logger) *Profile {
	if name == "" {
		name = LocalProfile
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Profile{store: store, name: name, logger: logger}
}

// Name returns the profile key.
func (p *Profile) Name() string {
	return p.name
}

// LoadHighScore implements game.HighScoreStore.
func (p *Profile) LoadHighScore() int {
	if p.store == nil {
		return 0
	}
	score, err := p.store.HighScore(p.name)
	if err != nil {
		p.logger.Warn("loading high score failed", "profile", p.name, "err", err)
		return 0
	}
	return score
}

// SaveHighScore implements game.HighScoreStore.
func (p *Profile) SaveHighScore(score int) {
	if p.store == nil {
		return
	}
	if err := p.store.SaveHighScore(p.name, score); err != nil {
		p.logger.Error("saving high score failed", "profile", p.name, "score", score, "err", err)
		return
	}
	p.logger.Info("high score saved", "profile", p.name, "score", score)
}
