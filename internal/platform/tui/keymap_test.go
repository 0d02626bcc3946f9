package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap, false},
		{"w", runeKey('w'), core.ActionFlap, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlap, false},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %v, %v; want %v, %v", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameCountsPresses(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)

	if n := frame.Count(core.ActionFlap); n != 2 {
		t.Errorf("flap count = %d, want 2", n)
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if km.MapMouse(press) != core.ActionFlap {
		t.Error("left press should flap")
	}

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.MapMouse(release) != core.ActionNone {
		t.Error("release should be ignored")
	}

	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouse(right) != core.ActionNone {
		t.Error("right press should be ignored")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
