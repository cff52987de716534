package renderdoc

import (
	"github.com/vulkan-go/glfw/v3.3/glfw"
)

// InputButtonFromGLFWKey maps a GLFW key code onto the RenderDoc
// input-button code watching the same physical key. The mapping is a
// pure function and total: keys RenderDoc has no slot for (Escape,
// modifiers, F13 and up, ...) come back as KeyNonPrintable, which is
// harmless to bind as a trigger.
func InputButtonFromGLFWKey(k glfw.Key) InputButton {
	switch {
	case k >= glfw.Key0 && k <= glfw.Key9:
		return Key0 + InputButton(k-glfw.Key0)
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return KeyA + InputButton(k-glfw.KeyA)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return KeyF1 + InputButton(k-glfw.KeyF1)
	}

	switch k {
	case glfw.KeyKPDivide:
		return KeyDivide
	case glfw.KeyKPMultiply:
		return KeyMultiply
	case glfw.KeyKPSubtract:
		return KeySubtract
	case glfw.KeyKPAdd:
		return KeyPlus
	case glfw.KeyHome:
		return KeyHome
	case glfw.KeyEnd:
		return KeyEnd
	case glfw.KeyInsert:
		return KeyInsert
	case glfw.KeyDelete:
		return KeyDelete
	case glfw.KeyPageUp:
		return KeyPageUp
	case glfw.KeyPageDown:
		return KeyPageDn
	case glfw.KeyBackspace:
		return KeyBackspace
	case glfw.KeyTab:
		return KeyTab
	case glfw.KeyPrintScreen:
		return KeyPrtScrn
	case glfw.KeyPause:
		return KeyPause
	}

	return KeyNonPrintable
}

// InputButtonsFromGLFWKeys converts a set of GLFW key codes in one go,
// ready to hand to SetCaptureKeys or SetFocusToggleKeys.
func InputButtonsFromGLFWKeys(keys ...glfw.Key) []InputButton {
	buttons := make([]InputButton, len(keys))
	for i, k := range keys {
		buttons[i] = InputButtonFromGLFWKey(k)
	}
	return buttons
}
