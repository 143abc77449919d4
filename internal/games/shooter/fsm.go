package shooter

// Mode is the top-level state of the game controller.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns a lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Intent is a semantic input event consumed by the state machine.
type Intent int

const (
	IntentNone Intent = iota
	IntentStart
	IntentQuit
	IntentFire
	IntentPause
	IntentMenu
	IntentRestart
	IntentFatal // raised by the simulation, not by the player
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentStart:
		return "start"
	case IntentQuit:
		return "quit"
	case IntentFire:
		return "fire"
	case IntentPause:
		return "pause"
	case IntentMenu:
		return "menu"
	case IntentRestart:
		return "restart"
	case IntentFatal:
		return "fatal"
	default:
		return "none"
	}
}

// Command is the side effect the controller performs after a transition.
type Command int

const (
	CmdNone Command = iota
	CmdNewRun
	CmdFire
	CmdQuit
	CmdFinishRun
)

// Transition is the pure transition function of the controller.
// Pairs not listed leave the mode unchanged with no command.
func Transition(m Mode, in Intent) (Mode, Command) {
	switch m {
	case ModeMenu:
		switch in {
		case IntentStart:
			return ModePlaying, CmdNewRun
		case IntentQuit:
			return ModeMenu, CmdQuit
		}
	case ModePlaying:
		switch in {
		case IntentFire:
			return ModePlaying, CmdFire
		case IntentPause:
			return ModePaused, CmdNone
		case IntentMenu:
			return ModeMenu, CmdNone
		case IntentFatal:
			return ModeGameOver, CmdFinishRun
		}
	case ModePaused:
		switch in {
		case IntentPause:
			return ModePlaying, CmdNone
		case IntentMenu:
			return ModeMenu, CmdNone
		}
	case ModeGameOver:
		switch in {
		case IntentRestart:
			return ModePlaying, CmdNewRun
		case IntentMenu:
			return ModeMenu, CmdNone
		}
	}
	return m, CmdNone
}
