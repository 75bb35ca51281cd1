//go:build ebiten

package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[Key]ebiten.Key{
	KeyA: ebiten.KeyA, KeyB: ebiten.KeyB, KeyC: ebiten.KeyC, KeyD: ebiten.KeyD,
	KeyE: ebiten.KeyE, KeyF: ebiten.KeyF, KeyG: ebiten.KeyG, KeyH: ebiten.KeyH,
	KeyI: ebiten.KeyI, KeyJ: ebiten.KeyJ, KeyK: ebiten.KeyK, KeyL: ebiten.KeyL,
	KeyM: ebiten.KeyM, KeyN: ebiten.KeyN, KeyO: ebiten.KeyO, KeyP: ebiten.KeyP,
	KeyQ: ebiten.KeyQ, KeyR: ebiten.KeyR, KeyS: ebiten.KeyS, KeyT: ebiten.KeyT,
	KeyU: ebiten.KeyU, KeyV: ebiten.KeyV, KeyW: ebiten.KeyW, KeyX: ebiten.KeyX,
	KeyY: ebiten.KeyY, KeyZ: ebiten.KeyZ,

	KeySpace:      ebiten.KeySpace,
	KeyEnter:      ebiten.KeyEnter,
	KeyEscape:     ebiten.KeyEscape,
	KeyTab:        ebiten.KeyTab,
	KeyArrowUp:    ebiten.KeyArrowUp,
	KeyArrowDown:  ebiten.KeyArrowDown,
	KeyArrowLeft:  ebiten.KeyArrowLeft,
	KeyArrowRight: ebiten.KeyArrowRight,

	KeyF1: ebiten.KeyF1, KeyF2: ebiten.KeyF2, KeyF3: ebiten.KeyF3, KeyF4: ebiten.KeyF4,
	KeyF5: ebiten.KeyF5, KeyF6: ebiten.KeyF6, KeyF7: ebiten.KeyF7, KeyF8: ebiten.KeyF8,
	KeyF9: ebiten.KeyF9, KeyF10: ebiten.KeyF10, KeyF11: ebiten.KeyF11, KeyF12: ebiten.KeyF12,

	KeyAlt:     ebiten.KeyAlt,
	KeyControl: ebiten.KeyControl,
	KeyShift:   ebiten.KeyShift,
}

var ebitenButtons = []struct {
	button MouseButton
	native ebiten.MouseButton
}{
	{MouseButtonLeft, ebiten.MouseButtonLeft},
	{MouseButtonRight, ebiten.MouseButtonRight},
	{MouseButtonMiddle, ebiten.MouseButtonMiddle},
}

// EbitenSource reads input edges from ebiten's per-tick input state. It must
// be polled from within ebiten's Update.
type EbitenSource struct{}

// NewEbitenSource returns a source backed by ebiten. Window close requests are
// routed through the source as quit events instead of closing immediately.
func NewEbitenSource() *EbitenSource {
	ebiten.SetWindowClosingHandled(true)
	return &EbitenSource{}
}

// Poll appends this tick's edges: key downs, key ups, mouse downs, mouse ups
// and finally a quit event if the window is being closed.
func (s *EbitenSource) Poll(dst []Event) []Event {
	mods := currentMods()
	for k := KeyA; k < keyCount; k++ {
		if native, ok := ebitenKeys[k]; ok && inpututil.IsKeyJustPressed(native) {
			dst = append(dst, KeyDown(k, mods))
		}
	}
	for k := KeyA; k < keyCount; k++ {
		if native, ok := ebitenKeys[k]; ok && inpututil.IsKeyJustReleased(native) {
			dst = append(dst, KeyUp(k))
		}
	}
	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.native) {
			dst = append(dst, MouseDown(b.button, pos))
		}
	}
	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustReleased(b.native) {
			dst = append(dst, MouseUp(b.button, pos))
		}
	}
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Quit())
	}
	return dst
}

func currentMods() Mod {
	var m Mod
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	return m
}
