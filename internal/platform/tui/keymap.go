package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldTicks is used when the game does not say how long to hold.
const DefaultHoldTicks = 12

// GameKeyMap holds the key bindings used while a game is on screen.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	RunLeft    key.Binding
	RunRight   key.Binding
	Jump       key.Binding
	Run        key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns the standard platformer bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Run: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "run"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Run, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight, k.Jump, k.Run},
		{k.Start, k.Pause, k.Restart, k.Back, k.Quit, k.Screenshot},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help bar.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to the actions it triggers.
// Shift+arrow yields both a direction and run.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, k.RunLeft):
		return []core.Action{core.ActionLeft, core.ActionRun}
	case key.Matches(msg, k.RunRight):
		return []core.Action{core.ActionRight, core.ActionRun}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Jump):
		return []core.Action{core.ActionJump}
	case key.Matches(msg, k.Run):
		return []core.Action{core.ActionRun}
	case key.Matches(msg, k.Start):
		return []core.Action{core.ActionStart}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	case key.Matches(msg, k.Restart):
		return []core.Action{core.ActionRestart}
	case key.Matches(msg, k.Back):
		return []core.Action{core.ActionBack}
	}
	return nil
}

// IsScreenshot reports whether the key requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// HoldTracker turns key presses into held controls. Terminals report
// presses (and auto-repeat) but never releases, so a control counts as held
// for a fixed number of ticks after its last press.
type HoldTracker struct {
	hold      int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker holding each press for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{
		hold:      holdTicks,
		remaining: make(map[core.Action]int),
	}
}

// Press (re)arms a control. Pressing a direction releases the opposite one.
// Non-control actions are ignored.
func (h *HoldTracker) Press(a core.Action) {
	if !a.IsControl() {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.hold
}

// Frame returns the Input State for the next step.
func (h *HoldTracker) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
	return frame
}

// Tick counts down every held control and releases the expired ones.
func (h *HoldTracker) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Reset releases every control.
func (h *HoldTracker) Reset() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
