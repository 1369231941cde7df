package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpenko/tilematch/internal/config"
	"github.com/akarpenko/tilematch/internal/core"
)

// MatchSetup holds the user's pre-game choices.
type MatchSetup struct {
	Difficulty config.DifficultyPreset
	Cols       int // 0 = keep configured size
	Rows       int
}

// boardSizeOption is a selectable board size in the setup menu.
type boardSizeOption struct {
	label string
	cols  int
	rows  int
}

var boardSizes = []boardSizeOption{
	{"Configured default", 0, 0},
	{"Small (7 x 7)", 7, 7},
	{"Classic (8 x 8)", 8, 8},
	{"Large (10 x 10)", 10, 10},
}

// MatchSetupModel lets users choose difficulty and board size before a game.
type MatchSetupModel struct {
	cursor       int
	sizeCursor   int
	inSizeSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	setup        MatchSetup
	choosing     bool
	quitting     bool
	back         bool
}

// NewMatchSetupModel creates a new setup model.
func NewMatchSetupModel(width, height int) MatchSetupModel {
	return MatchSetupModel{
		cursor:    1, // Normal is the default
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MatchSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MatchSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m MatchSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inSizeSelect {
		return m.handleSizeSelectKey(action)
	}
	return m.handleDifficultyKey(action)
}

var difficultyOrder = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

func (m MatchSetupModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOrder)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.setup.Difficulty = difficultyOrder[m.cursor]
		m.inSizeSelect = true
		m.sizeCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MatchSetupModel) handleSizeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.sizeCursor > 0 {
			m.sizeCursor--
		}
	case MenuActionDown:
		if m.sizeCursor < len(boardSizes)-1 {
			m.sizeCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.setup.Cols = boardSizes[m.sizeCursor].cols
		m.setup.Rows = boardSizes[m.sizeCursor].rows
		return m, tea.Quit
	case MenuActionBack:
		m.inSizeSelect = false
	}

	return m, nil
}

// View renders the setup selection.
func (m MatchSetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inSizeSelect {
		return m.viewSizeSelect()
	}
	return m.viewDifficulty()
}

func (m MatchSetupModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("G A M E   S E T U P", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	labels := []string{
		"Easy    (5 tile kinds, no specials)",
		"Normal  (6 tile kinds, bombs)",
		"Hard    (7 tile kinds, bombs + color chains)",
	}

	for i, label := range labels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m MatchSetupModel) viewSizeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("BOARD SIZE", m.width))
	b.WriteString("\n\n")

	for i, opt := range boardSizes {
		cursor := "  "
		if i == m.sizeCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the setup, or nil if still choosing.
func (m MatchSetupModel) Selected() *MatchSetup {
	if m.choosing {
		return nil
	}
	return &m.setup
}

// IsQuitting returns true if user wants to quit.
func (m MatchSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MatchSetupModel) WantsBack() bool {
	return m.back
}

// RunMatchSetup runs the pre-game setup screen and returns the selection,
// or nil if the user backed out.
func RunMatchSetup(cfg core.RuntimeConfig) (*MatchSetup, core.RuntimeConfig, error) {
	model := NewMatchSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(MatchSetupModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
