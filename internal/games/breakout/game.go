package breakout

import (
	"io"
	"math"

	metrics "github.com/armon/go-metrics"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// GameState constants
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
	StatePaused   = "paused"   // Game paused
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Play forever, score until game over
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the configuration from disk.
func WithConfig(cfg config.BreakoutConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// WithLogger sets the logger passed down to the physics pipeline.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics sets the metrics instance passed down to the physics pipeline.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Game) {
		g.metrics = m
	}
}

// WithStartLevel starts (and restarts) the game at the given level index.
// Out of range indices wrap around the built-in list.
func WithStartLevel(index int) Option {
	return func(g *Game) {
		if index > 0 {
			g.startLevel = index
		}
	}
}

// brickState tracks a live brick entity.
type brickState struct {
	row, col int
	brick    Brick
}

// Game implements the Breakout game logic on top of the physics engine.
type Game struct {
	mode       GameMode
	startLevel int
	fixedCfg   *config.BreakoutConfig
	logger     *log.Logger
	metrics    *metrics.Metrics

	// Physics
	world    *physics.World
	pipeline *physics.Pipeline
	arena    arena
	walls    walls
	paddle   physics.Entity
	balls    []physics.Entity // Live balls in spawn order
	bricks   map[physics.Entity]*brickState
	pickups  map[physics.Entity]PickupType
	level    *Level

	// Rules
	destroy  *DestroyOnCollision
	scoring  *ScoreOnCollision
	powerups *PowerUpManager

	// Game state
	state        string
	score        int
	lives        int
	levelIndex   int
	tickCount    int
	serveDelay   int     // Countdown before allowing serve after miss
	breakable    int     // Bricks left to clear the level
	endlessCycle int     // Number of times levels have cycled (endless mode)
	speedBonus   float64 // Added to the base ball speed per endless cycle
	targetSpeed  float64 // Ball speed target last applied to the balls

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance (campaign mode).
func New(opts ...Option) *Game {
	return newGame(ModeCampaign, opts)
}

// NewEndless creates a new Breakout game instance in endless mode.
func NewEndless(opts ...Option) *Game {
	return newGame(ModeEndless, opts)
}

func newGame(mode GameMode, opts []Option) *Game {
	g := &Game{
		mode:    mode,
		logger:  log.New(io.Discard),
		destroy: NewDestroyOnCollision(),
		scoring: NewScoreOnCollision(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.destroy.OnDestroy = g.forget
	g.scoring.OnScore = func(_ physics.Entity, points int) {
		g.score += points
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.minScreenW = g.cfg.Arena.MinWidth
	g.minScreenH = g.cfg.Arena.MinHeight
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = g.startLevel % LevelCount()
	g.tickCount = 0
	g.serveDelay = 0
	g.endlessCycle = 0
	g.speedBonus = 0
	g.targetSpeed = 0
	g.powerups = NewPowerUpManager(runtime.Seed, g.cfg.PowerUps)

	g.loadLevel(g.levelIndex)
	g.state = StateServe
}

// loadConfig returns the injected config or the one found on disk with
// the CLI preset applied.
func (g *Game) loadConfig() config.BreakoutConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.logger.Warn("using default breakout config", "err", err)
	}
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	return cfg
}

// movingPolicy maps the configured policy name.
func movingPolicy(name string) physics.MovingPolicy {
	if name == physics.MovingFatal.String() {
		return physics.MovingFatal
	}
	return physics.MovingElastic
}

// loadLevel builds a fresh world for the level at index.
func (g *Game) loadLevel(index int) {
	g.level = GetLevel(index)
	g.arena = newArena(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg, g.level)

	g.world = physics.NewWorld()
	g.pipeline = physics.NewPipeline(g.world,
		physics.WithLogger(g.logger),
		physics.WithMetrics(g.metrics),
		physics.WithMovingPolicy(movingPolicy(g.cfg.Physics.MovingPolicy)),
	)

	// Scoring sees bricks before the damage rule removes them.
	g.destroy.Reset()
	g.scoring.Reset()
	g.pipeline.AddListener(g.scoring)
	g.pipeline.AddListener(physics.ListenerFunc(g.onBrickHits))
	g.pipeline.AddListener(physics.ListenerFunc(g.onPickups))
	g.pipeline.AddListener(g.destroy)

	bounce := g.cfg.Physics.Bounciness
	g.walls = g.arena.spawnWalls(g.world, bounce.Wall)
	g.destroy.Mark(g.walls.bottom, DestroyOther)
	g.paddle = g.arena.spawnPaddle(g.world, g.paddleWidth(), g.cfg)

	g.balls = nil
	g.pickups = make(map[physics.Entity]PickupType)
	g.bricks = make(map[physics.Entity]*brickState)
	g.breakable = 0
	for row := range g.arena.rows {
		for col := range g.arena.cols {
			brick := g.level.Bricks[row][col]
			if brick.Type == BrickEmpty {
				continue
			}
			e := g.arena.spawnBrick(g.world, row, col, bounce.Brick)
			g.bricks[e] = &brickState{row: row, col: col, brick: brick}
			g.scoring.Set(e, brick.Points)
			if brick.Breakable() {
				g.breakable++
			}
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	g.powerups.ExpireEffects(g.tickCount)
	g.updatePaddle(in)

	if g.state == StateServe {
		if in.Has(core.ActionLaunch) {
			g.launchBalls()
		}
		return core.StepResult{State: g.State()}
	}

	g.retargetBalls()
	g.pipeline.Step(g.runtime.TickSeconds())

	switch {
	case g.breakable <= 0:
		g.handleLevelClear()
	case len(g.balls) == 0:
		g.handleMiss()
	}

	return core.StepResult{State: g.State()}
}

// paddleWidth returns the paddle width for the current difficulty and effects.
func (g *Game) paddleWidth() float64 {
	base := g.difficulty.PaddleWidth(g.cfg.Paddle.Width, g.cfg.PowerUps.MinPaddleWidth, g.score, g.tickCount)
	return g.powerups.PaddleWidth(base)
}

// updatePaddle moves and resizes the paddle, keeping it between the walls.
func (g *Game) updatePaddle(in core.InputFrame) {
	t, ok := g.world.Transform(g.paddle)
	if !ok {
		return
	}

	step := g.cfg.Physics.PaddleSpeed * g.runtime.TickSeconds()
	if in.Has(core.ActionLeft) {
		t.Position = t.Position.Sub(physics.V(step, 0))
	}
	if in.Has(core.ActionRight) {
		t.Position = t.Position.Add(physics.V(step, 0))
	}

	width := g.paddleWidth()
	t.Scale = physics.V(width, t.Scale.Y())
	half := width / 2
	x := math.Min(math.Max(t.Position.X(), 1+half), g.arena.width-1-half)
	t.Position = physics.V(x, t.Position.Y())
	g.world.SetTransform(g.paddle, t)
}

// ballSpeed returns the current target ball speed.
func (g *Game) ballSpeed() float64 {
	base := g.cfg.Physics.BallSpeed + g.speedBonus
	speed := g.difficulty.Speed(base, g.score, g.tickCount) * g.powerups.SpeedFactor()
	if g.cfg.Physics.MaxBallSpeed > 0 {
		speed = math.Min(speed, g.cfg.Physics.MaxBallSpeed)
	}
	return speed
}

// retargetBalls rescales the balls when the target speed changes. Speed
// gained or lost to bounciness carries over, capped at max_ball_speed.
func (g *Game) retargetBalls() {
	speed := g.ballSpeed()
	ratio := 1.0
	if g.targetSpeed > 0 {
		ratio = speed / g.targetSpeed
	}
	g.targetSpeed = speed

	limit := g.cfg.Physics.MaxBallSpeed
	for _, ball := range g.balls {
		v, ok := g.world.Velocity(ball)
		if !ok || v.Len() == 0 {
			continue
		}
		v = v.Mul(ratio)
		if limit > 0 && v.Len() > limit {
			v = v.Normalize().Mul(limit)
		}
		g.world.SetVelocity(ball, v)
	}
}

// servePosition is where balls wait on the paddle before launch.
func (g *Game) servePosition() physics.Vec2 {
	t, _ := g.world.Transform(g.paddle)
	return t.Position.Add(physics.V(0, t.Scale.Y()/2+g.cfg.Physics.BallDiameter/2+0.1))
}

// launchBalls spawns the serve balls fanned out around straight up.
func (g *Game) launchBalls() {
	n := max(g.cfg.Gameplay.Balls, 1)
	speed := g.ballSpeed()
	g.targetSpeed = speed
	origin := g.servePosition()

	for i := range n {
		angle := math.Atan2(1, 4) // Slight bias to the right
		if n > 1 {
			spread := math.Pi / 2
			angle = spread/2 - spread*float64(i)/float64(n-1)
		}
		velocity := physics.Rotate(physics.V(0, speed), -angle)
		g.balls = append(g.balls, g.arena.spawnBall(g.world, origin, velocity, g.cfg))
	}
	g.state = StatePlaying
}

// onBrickHits damages each brick hit this tick once, removing destroyed
// bricks and rolling for a pickup.
func (g *Game) onBrickHits(w *physics.World, events physics.Events) {
	hit := make(map[physics.Entity]struct{})
	for _, ev := range events {
		for _, e := range ev.Collidees {
			st, ok := g.bricks[e]
			if !ok {
				continue
			}
			if _, done := hit[e]; done {
				continue
			}
			hit[e] = struct{}{}
			if !st.brick.Breakable() {
				continue
			}

			st.brick.HP--
			if st.brick.HP > 0 {
				continue
			}
			t, _ := w.Transform(e)
			w.Despawn(e)
			delete(g.bricks, e)
			g.scoring.Remove(e)
			g.breakable--
			g.dropPickup(t.Position)
		}
	}
}

// dropPickup may spawn a falling pickup at pos.
func (g *Game) dropPickup(pos physics.Vec2) {
	typ, ok := g.powerups.RollDrop()
	if !ok {
		return
	}
	e := g.arena.spawnPickup(g.world, pos, g.cfg.PowerUps.FallSpeed)
	g.pickups[e] = typ
	g.destroy.Mark(e, DestroyThis)
}

// onPickups activates pickups that touched the paddle. Removal is left to
// the destroy rule.
func (g *Game) onPickups(_ *physics.World, events physics.Events) {
	collected := make(map[physics.Entity]struct{})
	for _, ev := range events {
		for i, e := range ev.Collidees {
			typ, ok := g.pickups[e]
			if !ok || ev.Collidees[1-i] != g.paddle {
				continue
			}
			if _, done := collected[e]; done {
				continue
			}
			collected[e] = struct{}{}
			g.activatePickup(typ)
		}
	}
}

// activatePickup applies a collected pickup.
func (g *Game) activatePickup(pickupType PickupType) {
	if effect, ok := pickupType.Effect(); ok {
		g.powerups.AddEffect(effect, g.tickCount)
		return
	}
	switch pickupType {
	case PickupMultiball:
		g.spawnMultiballs(g.cfg.PowerUps.MultiballCount)
	case PickupExtraLife:
		g.lives++
	}
}

// spawnMultiballs clones the first live ball at alternating angles.
func (g *Game) spawnMultiballs(count int) {
	if len(g.balls) == 0 {
		return
	}
	source := g.balls[0]
	t, ok := g.world.Transform(source)
	if !ok {
		return
	}
	v, _ := g.world.Velocity(source)

	for i := range count {
		offset := float64(i/2+1) * math.Pi / 8
		if i%2 == 1 {
			offset = -offset
		}
		velocity := physics.Rotate(v, offset)
		g.balls = append(g.balls, g.arena.spawnBall(g.world, t.Position, velocity, g.cfg))
	}
}

// forget drops bookkeeping for an entity the destroy rule removed.
func (g *Game) forget(e physics.Entity) {
	delete(g.pickups, e)
	for i, ball := range g.balls {
		if ball == e {
			g.balls = append(g.balls[:i], g.balls[i+1:]...)
			return
		}
	}
}

// clearPickups removes every falling pickup from the world.
func (g *Game) clearPickups() {
	for e := range g.pickups {
		g.world.Despawn(e)
		g.destroy.Unmark(e)
	}
	clear(g.pickups)
}

// handleMiss handles when all balls are lost.
func (g *Game) handleMiss() {
	g.lives--
	if g.lives <= 0 {
		g.state = StateGameOver
		return
	}

	g.clearPickups()
	g.powerups.ClearEffects()
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// handleLevelClear handles when all breakable bricks are destroyed.
func (g *Game) handleLevelClear() {
	g.levelIndex++

	if g.levelIndex >= LevelCount() {
		if g.mode == ModeCampaign {
			g.state = StateWin
			return
		}
		g.levelIndex = 0
		g.endlessCycle++
		g.speedBonus += g.cfg.Gameplay.EndlessSpeedUp
	}

	g.loadLevel(g.levelIndex)
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the state machine name (serve, playing, ...).
func (g *Game) Phase() string {
	return g.state
}

// LevelIndex returns the index of the level being played.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelNumber returns the 1-based level being played, counting every
// endless cycle.
func (g *Game) LevelNumber() int {
	return g.endlessCycle*LevelCount() + g.levelIndex + 1
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// World returns the physics world of the current level.
func (g *Game) World() *physics.World {
	return g.world
}

// Balls returns the balls in play.
func (g *Game) Balls() []physics.Entity {
	return append([]physics.Entity(nil), g.balls...)
}

// Paddle returns the paddle entity.
func (g *Game) Paddle() physics.Entity {
	return g.paddle
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_endless", func() registry.Game {
		return NewEndless()
	})
}
