package shooter

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "shooter"

// HighScoreStore persists the single best score. Implementations swallow I/O errors.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

// memoryStore keeps the high score for the process lifetime only.
type memoryStore struct{ score int }

func (m *memoryStore) Load() int      { return m.score }
func (m *memoryStore) Save(score int) { m.score = score }

// Package-level defaults set from the CLI before the registry creates a game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	defaultStore     HighScoreStore
	defaultSound     SoundHook
	defaultLogger    *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetHighScoreStore sets the store used by games created through the registry.
func SetHighScoreStore(s HighScoreStore) {
	defaultStore = s
}

// SetSoundHook sets the sound hook used by games created through the registry.
func SetSoundHook(h SoundHook) {
	defaultSound = h
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration on Reset.
func WithConfig(cfg config.ShooterConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// WithHighScoreStore sets the high score store.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// WithSoundHook sets the sound hook.
func WithSoundHook(h SoundHook) Option {
	return func(g *Game) {
		if h != nil {
			g.sound = h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game is the shooter controller: it owns the mode state machine, the
// current run's World and the cosmetic starfield.
type Game struct {
	mode  Mode
	world *World

	highScore int
	lastRun   *core.RunSummary
	quit      bool

	cfg      config.ShooterConfig
	fixedCfg *config.ShooterConfig
	runtime  core.RuntimeConfig
	clock    *TickClock
	rng      *rand.Rand
	stars    *Starfield

	store  HighScoreStore
	sound  SoundHook
	logger *log.Logger
}

// New creates a shooter in the Menu mode.
func New(opts ...Option) *Game {
	g := &Game{
		store:  &memoryStore{},
		sound:  nopSound{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset loads configuration and the high score and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadShooter(configPath)
		if err != nil {
			g.logger.Warn("falling back to default config", "err", err)
			cfg = config.DefaultShooterConfig()
		}
		if difficultyPreset != "" {
			config.ApplyShooterPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.clock = NewTickClock(runtime.TickRate)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.stars = NewStarfield(g.cfg, runtime.Seed+1)
	g.highScore = g.store.Load()
	g.world = NewWorld(g.cfg, g.rng)
	g.mode = ModeMenu
	g.lastRun = nil
	g.quit = false
}

// Step advances the controller by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.clock.Advance()

	intent := g.intentFor(in)
	next, cmd := Transition(g.mode, intent)
	if next != g.mode {
		g.logger.Debug("mode change", "from", g.mode, "to", next, "intent", intent)
	}
	g.mode = next

	switch cmd {
	case CmdNewRun:
		g.newRun()
		return core.StepResult{State: g.State()}
	case CmdQuit:
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	if g.mode != ModePlaying {
		return core.StepResult{State: g.State()}
	}

	g.stars.Update()
	report := g.world.Tick(g.clock.Now(), steering(in), cmd == CmdFire)
	g.playSounds(report)

	if report.LevelUp {
		g.logger.Debug("level up", "level", g.world.Difficulty.Level, "score", g.world.Score)
	}
	if report.Fatal {
		g.mode, _ = Transition(g.mode, IntentFatal)
		g.finishRun()
	}

	return core.StepResult{State: g.State()}
}

// intentFor maps the frame's actions to the single intent the current mode reacts to.
func (g *Game) intentFor(in core.InputFrame) Intent {
	switch g.mode {
	case ModeMenu:
		switch {
		case in.Has(core.ActionQuit):
			return IntentQuit
		case in.Any(core.ActionFire, core.ActionConfirm):
			return IntentStart
		}
	case ModePlaying:
		switch {
		case in.Has(core.ActionBack):
			return IntentMenu
		case in.Has(core.ActionPause):
			return IntentPause
		case in.Has(core.ActionFire):
			return IntentFire
		}
	case ModePaused:
		switch {
		case in.Has(core.ActionBack):
			return IntentMenu
		case in.Has(core.ActionPause):
			return IntentPause
		}
	case ModeGameOver:
		switch {
		case in.Has(core.ActionBack):
			return IntentMenu
		case in.Any(core.ActionFire, core.ActionRestart, core.ActionConfirm):
			return IntentRestart
		}
	}
	return IntentNone
}

// steering reads the lateral direction; holding both keys cancels out.
func steering(in core.InputFrame) Direction {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		return DirLeft
	case right && !left:
		return DirRight
	default:
		return DirNone
	}
}

// newRun discards the previous run and starts a fresh one.
func (g *Game) newRun() {
	g.world = NewWorld(g.cfg, g.rng)
	g.lastRun = nil
	g.logger.Info("run started", "level", g.world.Difficulty.Level)
}

// finishRun records the run and persists a new high score.
func (g *Game) finishRun() {
	w := g.world
	summary := core.RunSummary{
		Score:      w.Score,
		Level:      w.Difficulty.Level,
		WeaponTier: w.Player.WeaponTier,
		Kills:      w.Kills,
		Ticks:      w.Ticks,
		NewRecord:  w.Score > g.highScore,
	}
	g.lastRun = &summary

	if summary.NewRecord {
		g.highScore = w.Score
		g.store.Save(w.Score)
		g.logger.Info("new high score", "score", w.Score)
	}
	g.logger.Info("run over", "score", w.Score, "level", summary.Level, "kills", w.Kills)
}

// playSounds forwards the tick's events to the sound hook.
func (g *Game) playSounds(r TickReport) {
	if r.Shots > 0 {
		g.sound.Play(SoundShot)
	}
	if r.Kills > 0 {
		g.sound.Play(SoundExplosion)
	}
	if r.Hits > 0 {
		g.sound.Play(SoundHit)
	}
	if r.Pickups > 0 {
		g.sound.Play(SoundPickup)
	}
	if r.LevelUp {
		g.sound.Play(SoundLevelUp)
	}
	if r.Fatal {
		g.sound.Play(SoundGameOver)
	}
}

// Mode returns the current controller mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// World returns the current run. It is replaced on every new run.
func (g *Game) World() *World {
	return g.world
}

// HighScore returns the best score known to the game.
func (g *Game) HighScore() int {
	return g.highScore
}

// LastRun implements registry.RunReporter.
func (g *Game) LastRun() (core.RunSummary, bool) {
	if g.lastRun == nil {
		return core.RunSummary{}, false
	}
	return *g.lastRun, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Score
	}
	return core.GameState{
		Score:     score,
		HighScore: g.highScore,
		Mode:      g.mode.String(),
		GameOver:  g.mode == ModeGameOver,
		Paused:    g.mode == ModePaused,
		Quit:      g.quit,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New(
			WithHighScoreStore(defaultStore),
			WithSoundHook(defaultSound),
			WithLogger(defaultLogger),
		)
	})
}

var _ registry.RunReporter = (*Game)(nil)
