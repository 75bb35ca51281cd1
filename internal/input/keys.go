package input

// Key identifies a keyboard key independently of the windowing backend.
type Key int

// Keys known to the simulation. Backends map their own codes onto these.
const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyAlt
	KeyControl
	KeyShift

	keyCount
)

// NumKeys is the size of a table indexed by Key.
const NumKeys = int(keyCount)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyA:       "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l", KeyM: "m", KeyN: "n",
	KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyU: "u",
	KeyV: "v", KeyW: "w", KeyX: "x", KeyY: "y", KeyZ: "z",
	KeySpace:      "space",
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeyTab:        "tab",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyF1:         "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5", KeyF6: "f6",
	KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
	KeyAlt:     "alt",
	KeyControl: "control",
	KeyShift:   "shift",
}

// String returns the lower-case key name.
func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Valid reports whether k indexes the key table.
func (k Key) Valid() bool { return k > KeyUnknown && k < keyCount }

// Mod is a bit set of modifier keys held when a key event was produced.
type Mod uint8

const (
	ModAlt Mod = 1 << iota
	ModControl
	ModShift
)

// Has reports whether all bits of m2 are set in m.
func (m Mod) Has(m2 Mod) bool { return m&m2 == m2 }

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return "unknown"
}
