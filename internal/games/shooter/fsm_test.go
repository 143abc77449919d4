package shooter

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		from    Mode
		intent  Intent
		to      Mode
		command Command
	}{
		{ModeMenu, IntentStart, ModePlaying, CmdNewRun},
		{ModeMenu, IntentQuit, ModeMenu, CmdQuit},
		{ModeMenu, IntentFire, ModeMenu, CmdNone},
		{ModeMenu, IntentPause, ModeMenu, CmdNone},

		{ModePlaying, IntentFire, ModePlaying, CmdFire},
		{ModePlaying, IntentPause, ModePaused, CmdNone},
		{ModePlaying, IntentMenu, ModeMenu, CmdNone},
		{ModePlaying, IntentFatal, ModeGameOver, CmdFinishRun},
		{ModePlaying, IntentQuit, ModePlaying, CmdNone},
		{ModePlaying, IntentNone, ModePlaying, CmdNone},

		{ModePaused, IntentPause, ModePlaying, CmdNone},
		{ModePaused, IntentMenu, ModeMenu, CmdNone},
		{ModePaused, IntentFire, ModePaused, CmdNone},

		{ModeGameOver, IntentRestart, ModePlaying, CmdNewRun},
		{ModeGameOver, IntentMenu, ModeMenu, CmdNone},
		{ModeGameOver, IntentFire, ModeGameOver, CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.intent.String(), func(t *testing.T) {
			to, cmd := Transition(tt.from, tt.intent)
			if to != tt.to || cmd != tt.command {
				t.Errorf("Transition(%v, %v) = (%v, %d), want (%v, %d)",
					tt.from, tt.intent, to, cmd, tt.to, tt.command)
			}
		})
	}
}
