package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

// GameModel is the Bubble Tea model for playing one maze.
//
// Each FrameMsg advances the game by the wall-clock time since the previous
// frame. The frame loop reschedules itself until the round ends; a restart
// starts a new loop and frames from older loops are dropped.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	palette    Palette
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger

	width     int
	height    int
	loop      uint64
	lastFrame time.Time
	frames    uint64
	running   bool

	allowBack  bool // Back returns to the maze picker
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model. A nil logger discards log output.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, palette Palette, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if palette == nil {
		palette = NewPalette(nil)
	}

	m := GameModel{
		game:       game,
		palette:    palette,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		logger:     logger,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(m.width, m.screenHeight())

	m.game.Reset(cfg)
	m.resizeGame()
	m.gameState = m.game.State()
	m.loop = nextLoop()
	m.running = true
	return m
}

// WithBack enables the back-to-picker key.
func (m GameModel) WithBack() GameModel {
	m.allowBack = true
	return m
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("round started", "maze", m.game.ID(), "remaining", m.gameState.Remaining)
	return frameCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Resizing never resets the round; the game lays itself out on render.
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.screenHeight())
		m.resizeGame()
		return m, nil

	case FrameMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleFrame(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.allowBack {
			m.backToMenu = true
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.screenHeight())
		m.resizeGame()

	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}

	case core.ActionNone:

	default:
		// Directions are applied at the start of the next frame.
		m.inputFrame.Set(action)
	}

	return m, nil
}

// restart begins a new round and a new frame loop.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	m.gameState = m.game.Step(restart, 0).State

	m.inputFrame.Clear()
	m.loop = nextLoop()
	m.lastFrame = time.Time{}
	m.frames = 0
	m.running = true

	return m, m.Init()
}

// handleFrame advances the game by the time since the previous frame.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}

	dt := frameDelta(m.lastFrame, now)
	m.lastFrame = now
	m.frames++

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended {
		outcome := "lost"
		if m.gameState.Won {
			outcome = "won"
		}
		m.logger.Info("round finished",
			"maze", m.game.ID(),
			"result", outcome,
			"elapsed", m.gameState.Elapsed,
			"frames", m.frames,
		)
	}
	if m.gameState.GameOver {
		m.running = false
		return m, nil
	}

	return m, frameCmd(m.config.TickRate, m.loop)
}

// resizable is implemented by games that pause while the screen cannot
// hold them.
type resizable interface {
	Resize(screenW, screenH int)
}

// resizeGame tells the game the size of the screen it is drawn on.
func (m GameModel) resizeGame() {
	if r, ok := m.game.(resizable); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	}
}

// screenHeight is the terminal height left for the game above the help bar.
func (m GameModel) screenHeight() int {
	return max(m.height-m.helpHeight(), 0)
}

func (m GameModel) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Running reports whether the frame loop is active.
func (m GameModel) Running() bool {
	return m.running
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the maze picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single maze until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, cfg, NewPalette(nil), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
