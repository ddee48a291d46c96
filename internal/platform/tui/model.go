package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mode-runner/internal/config"
	"github.com/vovakirdan/mode-runner/internal/core"
	"github.com/vovakirdan/mode-runner/internal/games/runner"
	"github.com/vovakirdan/mode-runner/internal/games/runner/levels"
	"github.com/vovakirdan/mode-runner/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Level   *runner.Level
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store  // Optional; nil disables high scores
	Logger  *log.Logger     // Optional; nil discards logs
	Player  string          // Name stored with each run
	Watcher *levels.Watcher // Optional; hot-reloads the level on the next restart

	// ExitOnBack quits the program on the back key instead of only
	// flagging BackToMenu. Used when there is no menu to return to.
	ExitOnBack bool
}

// levelReloadMsg carries a watcher result into the update loop.
type levelReloadMsg levels.Update

// GameModel runs one level: it is the driver loop around a runner.Session.
// Every tick is one rendered frame: the input latch is sampled once, the
// clock measures elapsed time, and the session catches up in fixed steps.
type GameModel struct {
	session *runner.Session
	levelID string
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	player  string
	watcher *levels.Watcher

	latch     *core.InputLatch
	clock     *Clock
	keyMapper *KeyMapper

	best       int
	paused     bool
	quitting   bool
	backToMenu bool
	exitOnBack bool
}

// NewGameModel creates a game model for the given options.
func NewGameModel(opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Runner.Timing.TickRate
	}

	m := GameModel{
		session:    runner.NewSession(opts.Runner, opts.Level),
		levelID:    opts.Level.ID,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:      opts.Store,
		logger:     logger.With("level", opts.Level.ID),
		config:     opts.Runtime,
		player:     opts.Player,
		watcher:    opts.Watcher,
		latch:      core.NewInputLatch(),
		clock:      NewClock(time.Now()),
		keyMapper:  NewKeyMapper(),
		exitOnBack: opts.ExitOnBack,
	}
	m.best = m.loadBest()
	return m
}

// Init starts the frame loop and, if configured, the level watcher.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("session started", "player", m.player)
	if m.watcher != nil {
		return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.watcher))
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.ApplyMouse(msg, m.latch)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case levelReloadMsg:
		return m.handleReload(levels.Update(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.ApplyKey(msg, m.latch) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.session.Dead() {
			return m, nil
		}
		m.paused = !m.paused
		if !m.paused {
			m.clock.Restart(time.Now())
		}
		m.logger.Debug("pause toggled", "paused", m.paused)

	case core.ActionBack:
		if m.session.Dead() || m.paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleTick runs one rendered frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.clock.Elapsed(now)
	snap := m.latch.Update()

	if m.paused {
		// Input arriving while paused is dropped, not replayed on resume
		return m, tickCmd(m.config.TickRate)
	}

	result := m.session.Frame(elapsed, snap)
	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs a simulation event and records finished runs.
func (m *GameModel) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventModeChanged:
		m.logger.Info("mode changed", "mode", ev.Mode, "distance", int(ev.Distance))

	case core.EventDied:
		m.logger.Info("player died", "score", ev.Score, "mode", ev.Mode, "distance", int(ev.Distance))
		m.saveRun(ev)

	case core.EventRestarted:
		m.logger.Debug("session restarted", "level", m.session.Level().ID)
		m.levelID = m.session.Level().ID

	case core.EventDebugToggled:
		m.logger.Debug("debug overlay toggled", "enabled", m.session.Debug())
	}
}

// saveRun stores a finished run once per death.
func (m *GameModel) saveRun(ev core.Event) {
	if ev.Score > m.best {
		m.best = ev.Score
	}
	if m.store == nil || ev.Score <= 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		LevelID:  m.levelID,
		Player:   m.player,
		Score:    ev.Score,
		Distance: ev.Distance,
		Mode:     ev.Mode,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

func (m GameModel) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.levelID)
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// handleReload applies a watched level file change to the next attempt.
func (m GameModel) handleReload(u levels.Update) (tea.Model, tea.Cmd) {
	if u.Err != nil {
		m.logger.Warn("level reload failed", "path", m.watcher.Path(), "error", u.Err)
	} else {
		m.session.SetLevel(u.Level)
		m.logger.Info("level reloaded", "path", m.watcher.Path(), "name", u.Level.Name)
	}
	return m, waitForReload(m.watcher)
}

// waitForReload blocks on the next watcher update.
func waitForReload(w *levels.Watcher) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-w.Updates()
		if !ok {
			return nil
		}
		return levelReloadMsg(u)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.levelID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	if m.best > 0 {
		best := fmt.Sprintf(" Best: %d ", m.best)
		m.screen.DrawText((m.screen.Width()-len(best))/2, 0, best)
	}
	if m.paused {
		const hint = " P: resume  |  B: menu "
		w, h := len(hint)+2, 4
		x, y := (m.screen.Width()-w)/2, m.screen.Height()/2-1
		m.screen.FillRect(x, y, w, h, ' ', core.ColorDefault)
		m.screen.DrawBox(x, y, w, h)
		m.screen.DrawTextCentered(y+1, " PAUSED ")
		m.screen.DrawTextCentered(y+2, hint)
	}

	return RenderScreen(m.screen)
}

// Session exposes the running session to tests and wrappers.
func (m GameModel) Session() *runner.Session {
	return m.session
}

// Paused reports whether the frame loop is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one level.
// Returns true if the user left with the back key rather than quitting.
func Run(opts GameOptions) (backToMenu bool, err error) {
	opts.ExitOnBack = true
	model := NewGameModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
