package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// helpText is the footer label for each logical key.
var helpText = map[core.Key]string{
	core.KeyLeft:      "left",
	core.KeyRight:     "right",
	core.KeyRotateCW:  "rotate",
	core.KeyRotateCCW: "rotate ccw",
	core.KeySoftDrop:  "soft drop",
	core.KeyHardDrop:  "drop",
	core.KeyPause:     "pause",
	core.KeyConfirm:   "select",
	core.KeyMenuUp:    "up",
	core.KeyMenuDown:  "down",
	core.KeyCancel:    "back",
}

// KeyMap translates Bubble Tea key messages to logical keys.
// One terminal key may drive several logical keys; the simulation's top
// state only reacts to the ones it knows.
type KeyMap struct {
	Logical    map[core.Key]key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from a logical key -> terminal keys table.
func NewKeyMap(bindings map[core.Key][]string) KeyMap {
	km := KeyMap{
		Logical: make(map[core.Key]key.Binding, len(bindings)),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
	for k, keys := range bindings {
		if len(keys) == 0 {
			continue
		}
		km.Logical[k] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpLabel(keys), helpText[k]),
		)
	}
	return km
}

func helpLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// Match returns every logical key bound to msg, in core.Keys order.
func (km KeyMap) Match(msg tea.KeyMsg) []core.Key {
	var out []core.Key
	for _, k := range core.Keys() {
		if b, ok := km.Logical[k]; ok && key.Matches(msg, b) {
			out = append(out, k)
		}
	}
	return out
}

func (km KeyMap) bindings(keys ...core.Key) []key.Binding {
	out := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		if b, ok := km.Logical[k]; ok {
			out = append(out, b)
		}
	}
	return out
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return append(km.bindings(core.KeyLeft, core.KeyRight, core.KeyRotateCW, core.KeyHardDrop, core.KeyPause), km.Quit)
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.bindings(core.KeyLeft, core.KeyRight, core.KeySoftDrop, core.KeyHardDrop),
		km.bindings(core.KeyRotateCW, core.KeyRotateCCW, core.KeyPause),
		append(km.bindings(core.KeyMenuUp, core.KeyMenuDown, core.KeyConfirm, core.KeyCancel), km.Quit, km.Screenshot),
	}
}

// menuHelp is the key map shown outside of play.
type menuHelp struct {
	km KeyMap
}

func (h menuHelp) ShortHelp() []key.Binding {
	return append(h.km.bindings(core.KeyMenuUp, core.KeyMenuDown, core.KeyConfirm, core.KeyCancel), h.km.Quit)
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// held tracks keys whose release the terminal never reports. A key counts
// as held until no repeat has arrived for the hold timeout.
type held struct {
	timeout time.Duration
	seen    map[core.Key]time.Time
}

func newHeld(timeout time.Duration) *held {
	return &held{timeout: timeout, seen: make(map[core.Key]time.Time)}
}

// holdable keys repeat while held; the rest are tapped.
func holdable(k core.Key) bool {
	return k == core.KeyLeft || k == core.KeyRight || k == core.KeySoftDrop
}

// press records a key message at now and returns the events it produces.
// Repeats of a held key produce nothing.
func (h *held) press(k core.Key, now time.Time) []core.InputEvent {
	if !holdable(k) {
		return []core.InputEvent{core.Press(k), core.Release(k)}
	}
	_, down := h.seen[k]
	h.seen[k] = now
	if down {
		return nil
	}
	return []core.InputEvent{core.Press(k)}
}

// expire releases every held key not repeated within the timeout.
func (h *held) expire(now time.Time) []core.InputEvent {
	var out []core.InputEvent
	for _, k := range core.Keys() {
		last, ok := h.seen[k]
		if !ok || now.Sub(last) < h.timeout {
			continue
		}
		delete(h.seen, k)
		out = append(out, core.Release(k))
	}
	return out
}
