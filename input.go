package renderdoc

import "fmt"

// InputButton identifies a key RenderDoc can watch for, used with
// SetCaptureKeys and SetFocusToggleKeys. Printable keys use their
// upper-case ASCII value; everything else lives above KeyNonPrintable.
// The values match the native RENDERDOC_InputButton enum.
type InputButton uint32

// Digit keys, ASCII values '0' through '9'.
const (
	Key0 InputButton = InputButton('0') + iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Letter keys, ASCII values 'A' through 'Z'.
const (
	KeyA InputButton = InputButton('A') + iota
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
)

const (
	// KeyNonPrintable marks the start of the non-printable range. The
	// range below it is left clear for printable keys. It doubles as the
	// conversion fallback for keys RenderDoc has no slot for; binding it
	// as a trigger key is inert.
	KeyNonPrintable InputButton = 0x100 + iota

	KeyDivide
	KeyMultiply
	KeySubtract
	KeyPlus

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

	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDn

	KeyBackspace
	KeyTab
	KeyPrtScrn
	KeyPause

	// KeyMax is one past the last defined button
	KeyMax
)

// String returns the button name, i.e. "F12" or "A".
func (b InputButton) String() string {
	switch {
	case b >= Key0 && b <= Key9, b >= KeyA && b <= KeyZ:
		return string(rune(b))
	}
	switch b {
	case KeyNonPrintable:
		return "NonPrintable"
	case KeyDivide:
		return "Divide"
	case KeyMultiply:
		return "Multiply"
	case KeySubtract:
		return "Subtract"
	case KeyPlus:
		return "Plus"
	case KeyF1:
		return "F1"
	case KeyF2:
		return "F2"
	case KeyF3:
		return "F3"
	case KeyF4:
		return "F4"
	case KeyF5:
		return "F5"
	case KeyF6:
		return "F6"
	case KeyF7:
		return "F7"
	case KeyF8:
		return "F8"
	case KeyF9:
		return "F9"
	case KeyF10:
		return "F10"
	case KeyF11:
		return "F11"
	case KeyF12:
		return "F12"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyInsert:
		return "Insert"
	case KeyDelete:
		return "Delete"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDn:
		return "PageDn"
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyPrtScrn:
		return "PrtScrn"
	case KeyPause:
		return "Pause"
	case KeyMax:
		return "Max"
	}
	return fmt.Sprintf("InputButton(0x%x)", uint32(b))
}
