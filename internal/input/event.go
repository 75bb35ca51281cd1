package input

import (
	"fmt"
	"image"
)

// EventKind discriminates the Event union.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
	EventKeyUp
	EventMouseDown
	EventMouseUp
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event is a single platform input event. Key and Mods are set for key events,
// Button and Pos for mouse events.
type Event struct {
	Kind   EventKind
	Key    Key
	Mods   Mod
	Button MouseButton
	Pos    image.Point
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyDown returns a key-down event for k with the given modifiers.
func KeyDown(k Key, mods Mod) Event { return Event{Kind: EventKeyDown, Key: k, Mods: mods} }

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// MouseDown returns a mouse-down event at pixel position pos.
func MouseDown(b MouseButton, pos image.Point) Event {
	return Event{Kind: EventMouseDown, Button: b, Pos: pos}
}

// MouseUp returns a mouse-up event at pixel position pos.
func MouseUp(b MouseButton, pos image.Point) Event {
	return Event{Kind: EventMouseUp, Button: b, Pos: pos}
}

// Source is a pollable platform event queue. Poll appends every pending event
// to dst in arrival order and returns the extended slice.
type Source interface {
	Poll(dst []Event) []Event
}

// KeyReader answers whether a key is currently held.
type KeyReader interface {
	Pressed(k Key) bool
}

// KeyState is the live held-key table maintained from key events.
type KeyState struct {
	down [NumKeys]bool
}

// Pressed reports whether k is held.
func (s *KeyState) Pressed(k Key) bool {
	if !k.Valid() {
		return false
	}
	return s.down[k]
}

// Set records the held state for k. Unknown keys are ignored.
func (s *KeyState) Set(k Key, down bool) {
	if !k.Valid() {
		return
	}
	s.down[k] = down
}

// Reset releases every key.
func (s *KeyState) Reset() {
	s.down = [NumKeys]bool{}
}
