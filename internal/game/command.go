package game

import "time"

// Command is a phase-control request from the input layer.
type Command int

const (
	CmdNewGame Command = iota
	CmdPause
	CmdResume
	CmdReturnToMenu
	CmdDismissCall
)

func (c Command) String() string {
	switch c {
	case CmdNewGame:
		return "new_game"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdReturnToMenu:
		return "return_to_menu"
	case CmdDismissCall:
		return "dismiss_call"
	default:
		return "unknown"
	}
}

// Dispatch applies a command and reports whether it changed anything.
// Commands that make no sense in the current phase are ignored.
func (g *Game) Dispatch(cmd Command, now time.Time) bool {
	s := g.state
	switch cmd {
	case CmdNewGame:
		g.startNewGame(now)
	case CmdPause:
		if !s.Playing() {
			return false
		}
		s.Phase = PhaseMenu
		s.Paused = true
	case CmdResume:
		if !s.Paused {
			return false
		}
		s.Phase = PhasePlaying
		s.Paused = false
	case CmdReturnToMenu:
		s.Phase = PhaseMenu
		s.Paused = false
	case CmdDismissCall:
		if !s.Phone.Active {
			return false
		}
		g.phone.Dismiss(s, now)
	default:
		g.log.Warn("ignoring unknown command", "command", int(cmd))
		return false
	}
	g.log.Debug("command", "cmd", cmd, "phase", s.Phase)
	return true
}

// startNewGame resets the session and starts playing with fresh food and a
// scheduled phone call.
func (g *Game) startNewGame(now time.Time) {
	s := g.state
	s.Reset(g.cfg)
	s.Phase = PhasePlaying
	s.Paused = false
	g.food.Spawn(s)
	g.phone.Schedule(s, now)
}
