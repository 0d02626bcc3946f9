package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// presetOption is one row of the difficulty picker.
type presetOption struct {
	preset config.DifficultyPreset
	label  string
}

var presetOptions = []presetOption{
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyEasy, "Easy (gentle speed-up)"},
	{config.DifficultyHard, "Hard (fast from the start)"},
}

// PresetModel lets users choose how quickly a speed-scaling mode ramps up.
type PresetModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewPresetModel creates a preset picker headed by the mode title.
func NewPresetModel(title string, width, height int) PresetModel {
	return PresetModel{
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m PresetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(presetOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = presetOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset selection.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range presetOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-30s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or false if still choosing.
func (m PresetModel) Selected() (config.DifficultyPreset, bool) {
	return m.selection, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PresetModel) WantsBack() bool {
	return m.back
}

// RunPresetSelector runs the difficulty picker. ok is false when the user
// backed out or quit.
func RunPresetSelector(title string, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewPresetModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isPreset := finalModel.(PresetModel)
	if !isPreset || m.IsQuitting() || m.WantsBack() {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}
