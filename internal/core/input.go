package core

import "fmt"

// Key is a logical key, abstracted from physical key codes and devices.
// The host maps terminal keys onto this vocabulary; the simulation never
// sees anything else.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyRotateCW
	KeyRotateCCW
	KeySoftDrop
	KeyHardDrop
	KeyPause
	KeyConfirm
	KeyMenuUp
	KeyMenuDown
	KeyCancel
)

// keyNames holds the config-file spelling of every logical key.
var keyNames = map[Key]string{
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyRotateCW:  "rotate_cw",
	KeyRotateCCW: "rotate_ccw",
	KeySoftDrop:  "soft_drop",
	KeyHardDrop:  "hard_drop",
	KeyPause:     "pause",
	KeyConfirm:   "confirm",
	KeyMenuUp:    "menu_up",
	KeyMenuDown:  "menu_down",
	KeyCancel:    "cancel",
}

// Keys lists every logical key except KeyNone, in declaration order.
func Keys() []Key {
	return []Key{
		KeyLeft, KeyRight, KeyRotateCW, KeyRotateCCW, KeySoftDrop, KeyHardDrop,
		KeyPause, KeyConfirm, KeyMenuUp, KeyMenuDown, KeyCancel,
	}
}

// String returns the config-file name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKey resolves a config-file key name.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("core: unknown logical key %q", name)
}

// InputEvent is a discrete key transition delivered to the simulation.
type InputEvent struct {
	Key     Key
	Pressed bool
}

// Press returns a key-down event.
func Press(k Key) InputEvent {
	return InputEvent{Key: k, Pressed: true}
}

// Release returns a key-up event.
func Release(k Key) InputEvent {
	return InputEvent{Key: k, Pressed: false}
}

// IsPress reports whether ev is a key-down of k.
func (ev InputEvent) IsPress(k Key) bool {
	return ev.Pressed && ev.Key == k
}

// IsRelease reports whether ev is a key-up of k.
func (ev InputEvent) IsRelease(k Key) bool {
	return !ev.Pressed && ev.Key == k
}
