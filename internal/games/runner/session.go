package runner

import (
	"math"

	"github.com/vovakirdan/mode-runner/internal/config"
	"github.com/vovakirdan/mode-runner/internal/core"
)

// Session orchestrates one run through a level: it owns the play/dead
// state, distance, score, the trigger cursor and the fixed-step accumulator.
// A Session is not safe for concurrent use; the driver loop must serialize
// every call.
type Session struct {
	cfg   config.RunnerConfig
	level *Level
	next  *Level // Swapped in on the next Reset

	world World
	modes ModeMachine

	distance     float64
	score        int
	dead         bool
	triggerIndex int
	cameraY      float64
	accumulator  float64
	debug        bool

	events []core.Event
}

// NewSession creates a session on a validated level and resets it.
func NewSession(cfg config.RunnerConfig, level *Level) *Session {
	s := &Session{
		cfg:   cfg,
		level: level,
		world: World{
			Player:  NewPlayer(cfg),
			Physics: cfg.Physics,
		},
	}
	s.Reset()
	return s
}

// Reset restarts the run from distance zero on StandardRunner.
// A level queued with SetLevel takes effect here.
func (s *Session) Reset() {
	if s.next != nil {
		s.level = s.next
		s.next = nil
	}

	s.distance = 0
	s.score = 0
	s.dead = false
	s.triggerIndex = 0
	s.accumulator = 0
	s.world.GravityFlipped = false
	s.modes.Switch(&s.world, NewMode(KindStandardRunner))

	spawnX := s.cfg.Player.ScreenX
	s.world.Player.Reset(spawnX, s.level.FloorAt(spawnX))
	s.cameraY = s.cameraTarget()
}

// SetLevel queues a replacement level for the next Reset.
// The running attempt keeps its current level.
func (s *Session) SetLevel(l *Level) {
	s.next = l
}

// Frame advances the session by one rendered frame: it consumes the input
// snapshot once, then runs as many fixed sub-steps as the accumulated time
// allows. elapsed is clamped to the configured maximum frame time.
func (s *Session) Frame(elapsed float64, in core.InputSnapshot) core.StepResult {
	s.events = s.events[:0]

	if in.DebugToggled {
		s.debug = !s.debug
		s.emit(core.EventDebugToggled)
	}

	if s.dead && in.JumpPressed {
		s.Reset()
		s.emit(core.EventRestarted)
		return s.result(0)
	}

	if !s.dead {
		if in.JumpPressed {
			s.modes.JumpPressed(&s.world)
		}
		if in.JumpReleased {
			s.modes.JumpReleased(&s.world)
		}
	}

	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > s.cfg.Timing.MaxFrameTime {
		elapsed = s.cfg.Timing.MaxFrameTime
	}
	s.accumulator += elapsed

	dt := s.cfg.FixedDT()
	steps := 0
	for s.accumulator >= dt {
		s.accumulator -= dt
		s.Step(dt)
		steps++
	}

	return s.result(steps)
}

// Step runs exactly one fixed sub-step of duration dt.
func (s *Session) Step(dt float64) {
	if s.dead {
		return
	}

	p := s.world.Player
	p.TryExecuteJump(dt)
	p.Integrate(dt, s.level, s.world.GravityFlipped)
	p.X = s.distance + s.cfg.Player.ScreenX

	if s.collides() {
		s.dead = true
		s.emit(core.EventDied)
		return
	}

	s.cameraY += (s.cameraTarget() - s.cameraY) * s.cfg.Camera.Smooth

	s.distance += s.cfg.Physics.ScrollSpeed * dt
	s.score = int(math.Floor(s.distance / 10))

	s.fireTriggers()
	s.modes.Update(&s.world, dt)
}

// fireTriggers switches mode for every trigger the player's world x has
// reached, in order. The cursor never moves back.
func (s *Session) fireTriggers() {
	worldX := s.distance + s.cfg.Player.ScreenX
	for s.triggerIndex < len(s.level.Triggers) && worldX >= s.level.Triggers[s.triggerIndex].AtDistance {
		tr := s.level.Triggers[s.triggerIndex]
		s.modes.Switch(&s.world, NewMode(tr.Mode))
		s.triggerIndex++
		s.emit(core.EventModeChanged)
	}
}

func (s *Session) collides() bool {
	box := s.world.Player.Box()
	for _, o := range s.level.Obstacles {
		if box.Intersects(o) {
			return true
		}
	}
	return false
}

func (s *Session) cameraTarget() float64 {
	p := s.world.Player
	return p.Y + p.Height/2 - s.cfg.Camera.ViewHeight/2
}

func (s *Session) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{
		Kind:     kind,
		Mode:     s.modes.Active().Kind().String(),
		Score:    s.score,
		Distance: s.distance,
	})
}

func (s *Session) result(steps int) core.StepResult {
	var events []core.Event
	if len(s.events) > 0 {
		events = make([]core.Event, len(s.events))
		copy(events, s.events)
	}
	return core.StepResult{
		State:    s.State(),
		Events:   events,
		SubSteps: steps,
	}
}

// State returns the HUD-level summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score: s.score,
		Dead:  s.dead,
		Mode:  s.modes.Active().Kind().String(),
	}
}

// Player returns a copy of the player's kinematic state.
func (s *Session) Player() Player {
	return *s.world.Player
}

// Mode returns the active mode's kind.
func (s *Session) Mode() ModeKind {
	return s.modes.Active().Kind()
}

// Level returns the level of the current attempt.
func (s *Session) Level() *Level {
	return s.level
}

func (s *Session) Distance() float64    { return s.distance }
func (s *Session) Score() int           { return s.score }
func (s *Session) Dead() bool           { return s.dead }
func (s *Session) GravityFlipped() bool { return s.world.GravityFlipped }
func (s *Session) CameraY() float64     { return s.cameraY }
func (s *Session) Debug() bool          { return s.debug }

// TriggerIndex returns the index of the next unfired mode trigger.
func (s *Session) TriggerIndex() int { return s.triggerIndex }

// Config returns the tuning the session runs with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }
