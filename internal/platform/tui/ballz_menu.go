package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ballz/internal/core"
)

// BallzSelection holds the user's selection from the mode menu.
type BallzSelection struct {
	GameID     string // "ballz" or "ballz_zen"
	Difficulty string // "", "easy", "normal", "hard", "fixed"
}

// BallzModeModel lets users choose the game variant and a difficulty preset.
type BallzModeModel struct {
	cursor       int
	diffCursor   int
	inDiffSelect bool
	pendingID    string // Variant chosen before entering difficulty select
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    BallzSelection
	choosing     bool
	quitting     bool
	back         bool
}

// Difficulty preset names for display.
var difficultyNames = []string{
	"easy",
	"normal",
	"hard",
	"fixed",
}

// NewBallzModeModel creates a new mode selection model.
func NewBallzModeModel(width, height int) BallzModeModel {
	return BallzModeModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BallzModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BallzModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BallzModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDiffSelect {
		return m.handleDiffSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m BallzModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Classic, Zen, Classic with difficulty
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Classic
			m.choosing = false
			m.selection = BallzSelection{GameID: "ballz"}
			return m, tea.Quit
		case 1: // Zen
			m.choosing = false
			m.selection = BallzSelection{GameID: "ballz_zen"}
			return m, tea.Quit
		case 2: // Pick difficulty first
			m.pendingID = "ballz"
			m.inDiffSelect = true
			m.diffCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m BallzModeModel) handleDiffSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyNames)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = BallzSelection{
			GameID:     m.pendingID,
			Difficulty: difficultyNames[m.diffCursor],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inDiffSelect = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m BallzModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDiffSelect {
		return m.viewDiffSelect()
	}
	return m.viewModeSelect()
}

func (m BallzModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B A L L Z", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Classic (game over at the base line)",
		"Zen (rows clear at the base line)",
		"Classic with difficulty...",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BallzModeModel) viewDiffSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, name := range difficultyNames {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BallzModeModel) Selected() *BallzSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m BallzModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BallzModeModel) WantsBack() bool {
	return m.back
}

// RunBallzModeSelector runs the mode selection and returns the selection.
// Returns nil if the user quit or backed out.
func RunBallzModeSelector(cfg core.RuntimeConfig) (*BallzSelection, core.RuntimeConfig, error) {
	model := NewBallzModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(BallzModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
