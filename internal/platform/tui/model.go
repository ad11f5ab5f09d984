package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yuchenlin/typebomb/internal/audio"
	"github.com/yuchenlin/typebomb/internal/core"
	"github.com/yuchenlin/typebomb/internal/game"
	"github.com/yuchenlin/typebomb/internal/storage"
)

// maxFrameMs caps the elapsed time fed to the engine in one tick, so a
// suspended terminal does not dump seconds of fall time into a single step.
const maxFrameMs = 250.0

// Model is the Bubble Tea model driving a typebomb session: mode menu,
// play field, pause overlay and the game-over name entry.
type Model struct {
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	player  *audio.Player
	config  core.RuntimeConfig

	keys  *KeyMapper
	input core.InputFrame
	menu  modeMenu

	nameInput textinput.Model
	nameDone  bool
	entries   []game.Entry
	saveErr   error

	lastTick       time.Time
	quitting       bool
	openScoreboard bool // True if user pressed Tab for the scoreboard
}

// NewModel creates the Bubble Tea model. The store and audio player may be
// nil; the game then runs without persistence or sound.
func NewModel(session *game.Session, store *storage.Store, player *audio.Player, cfg core.RuntimeConfig) Model {
	name := textinput.New()
	name.Placeholder = game.DefaultPlayerName
	name.CharLimit = 24
	name.Width = 24
	name.Focus()

	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		player:    player,
		config:    cfg,
		keys:      NewKeyMapper(),
		input:     core.NewInputFrame(),
		menu:      newModeMenu(store),
		nameInput: name,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.session.Phase() == game.PhaseEnded && !m.nameDone {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey dispatches keyboard input by session phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Phase() {
	case game.PhaseSelecting:
		return m.handleMenuKey(msg)
	case game.PhasePlaying:
		if m.session.Paused() {
			return m.handlePausedKey(msg)
		}
		return m.handlePlayKey(msg)
	case game.PhaseEnded:
		return m.handleEndedKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapMenuKey(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.menu.up()

	case MenuActionDown:
		m.menu.down()

	case MenuActionSelect:
		if err := m.session.Start(m.menu.selected()); err == nil {
			m.resetRunState()
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapPlayKey(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePausedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapPausedKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	switch action {
	case core.ActionPause:
		m.input.Set(core.ActionPause)
	case core.ActionBack:
		m.session.Restart()
		m.menu.refresh(m.store)
	}
	return m, nil
}

func (m Model) handleEndedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.nameDone {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.finalize()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	action, isQuit := m.keys.MapEndedKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	switch action {
	case core.ActionRestart:
		mode := m.session.Snapshot().Mode
		if err := m.session.Start(mode); err == nil {
			m.resetRunState()
		}
	case core.ActionBack:
		m.session.Restart()
		m.menu.refresh(m.store)
	}
	return m, nil
}

// finalize submits the finished run under the entered name and loads the
// updated board for display.
func (m *Model) finalize() {
	m.entries, m.saveErr = m.session.Finalize(m.nameInput.Value())
	m.nameDone = true
	m.menu.refresh(m.store)
}

// resetRunState clears per-run UI state when a new session starts.
func (m *Model) resetRunState() {
	m.nameDone = false
	m.entries = nil
	m.saveErr = nil
	m.nameInput.SetValue("")
	m.nameInput.Focus()
	m.lastTick = time.Time{}
}

// handleTick advances the engine by the measured elapsed time and plays any
// resulting cues.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsedMs := float64(time.Second/time.Duration(m.config.TickRate)) / float64(time.Millisecond)
	if !m.lastTick.IsZero() {
		measured := float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
		if measured > 0 && measured < maxFrameMs {
			elapsedMs = measured
		} else if measured >= maxFrameMs {
			elapsedMs = maxFrameMs
		}
	}
	m.lastTick = now

	cues := m.session.Step(m.input, elapsedMs)
	m.input.Clear()

	if m.player != nil {
		for _, cue := range cues {
			m.player.Play(cue)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.Phase() {
	case game.PhaseSelecting:
		return m.menu.view(m.config.ScreenW)
	case game.PhasePlaying:
		return m.renderPlay()
	case game.PhaseEnded:
		return m.renderEnded()
	}
	return ""
}

// renderPlay draws the HUD, the falling bombs, score popups and the floor
// line into the screen buffer.
func (m Model) renderPlay() string {
	snap := m.session.Snapshot()
	s := m.screen
	s.Clear()

	w, h := s.Width(), s.Height()
	floorRow := h - 2
	fieldRows := floorRow - 1
	if fieldRows < 1 {
		fieldRows = 1
	}

	hud := fmt.Sprintf(" %s   Score: %d   Lives: %d   Tier: %s (%d/%d)",
		snap.Mode.Title(), snap.Score, snap.Lives, snap.TierName, snap.TierIndex+1, snap.TierCount)
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	s.DrawHLine(0, floorRow, w, '─')

	for _, b := range snap.Bombs {
		x := fieldToCellX(b.X, snap.FieldWidth, w)
		y := 1 + fieldToCellY(b.Y, snap.FieldHeight, fieldRows)
		if y >= floorRow {
			y = floorRow - 1
		}
		s.SetColored(x, y, []rune(b.Char)[0], bombColor(b.Y, snap.FieldHeight))
	}

	for _, p := range snap.Popups {
		x := fieldToCellX(p.X, snap.FieldWidth, w)
		y := 1 + fieldToCellY(p.Y, snap.FieldHeight, fieldRows)
		if y >= floorRow {
			y = floorRow - 1
		}
		s.DrawTextColored(x, y, p.Text, core.ColorBrightYellow)
	}

	if snap.Paused {
		s.DrawTextCentered(h/2, "P A U S E D")
		s.DrawTextCentered(h/2+1, "esc: resume   b: menu   q: quit")
	} else {
		s.DrawTextColored(0, h-1, " type the shown key   esc: pause   ctrl+c: quit", core.ColorGray)
	}

	return RenderScreen(s)
}

// renderEnded shows name entry first, then the updated leaderboard.
func (m Model) renderEnded() string {
	snap := m.session.Snapshot()
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("G A M E   O V E R", w))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s — final score: %d", snap.Mode.Title(), snap.Score), w))
	b.WriteString("\n\n")

	if !m.nameDone {
		b.WriteString(centerText("Enter your name:", w))
		b.WriteString("\n")
		b.WriteString(centerText(m.nameInput.View(), w))
		b.WriteString("\n\n")
		b.WriteString(centerText("Enter: save score", w))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText(fmt.Sprintf("TOP %d — %s", game.MaxLeaderboardEntries, snap.Mode.Title()), w))
	b.WriteString("\n\n")
	if m.saveErr != nil {
		b.WriteString(centerText("(score could not be saved)", w))
		b.WriteString("\n\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(centerText("No scores recorded yet.", w))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%2d. %-24s %6d", i+1, e.Name, e.Score)
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("R: Play again  |  B: Menu  |  Q: Quit", w))
	b.WriteString("\n")
	return b.String()
}

// fieldToCellX scales a field-unit x coordinate to a screen column.
func fieldToCellX(x, fieldWidth float64, cols int) int {
	if fieldWidth <= 0 {
		return 0
	}
	c := int(x / fieldWidth * float64(cols))
	return core.Clamp(c, 0, cols-1)
}

// fieldToCellY scales a field-unit y coordinate to a row within the play
// area (0-based, excluding the HUD row).
func fieldToCellY(y, fieldHeight float64, rows int) int {
	if fieldHeight <= 0 {
		return 0
	}
	r := int(y / fieldHeight * float64(rows))
	return core.Clamp(r, 0, rows-1)
}

// bombColor shades a bomb by how close it is to the floor.
func bombColor(y, fieldHeight float64) core.Color {
	if fieldHeight <= 0 {
		return core.ColorWhite
	}
	switch progress := y / fieldHeight; {
	case progress >= 0.75:
		return core.ColorBrightRed
	case progress >= 0.45:
		return core.ColorOrange
	default:
		return core.ColorBrightWhite
	}
}

// Result reports why the program exited.
type Result struct {
	OpenScoreboard bool
	Quit           bool
}

// Run starts the Bubble Tea program for a session and blocks until the
// player quits or asks for the scoreboard.
func Run(session *game.Session, store *storage.Store, player *audio.Player, cfg core.RuntimeConfig) (Result, error) {
	model := NewModel(session, store, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Quit: true}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{Quit: true}, nil
	}

	return Result{
		OpenScoreboard: m.openScoreboard,
		Quit:           !m.openScoreboard,
	}, nil
}
