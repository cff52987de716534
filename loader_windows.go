//go:build windows

package renderdoc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func nativeLibraryName() string {
	return "renderdoc.dll"
}

// loadNative attaches to renderdoc.dll and resolves RENDERDOC_GetAPI.
// When the RenderDoc UI injected itself the module is already resident
// and LoadLibrary only bumps its reference count, so closeNative stays
// balanced either way.
func loadNative() (string, uintptr, unsafe.Pointer, error) {
	name := nativeLibraryName()

	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return name, 0, nil, &LoadError{
			Library: name,
			Err:     fmt.Errorf("%w: %v", ErrLibraryNotFound, err),
		}
	}

	addr, err := windows.GetProcAddress(handle, entrySymbol)
	if err != nil {
		windows.FreeLibrary(handle)
		return name, 0, nil, &LoadError{Library: name, Err: ErrSymbolNotFound}
	}

	return name, uintptr(handle), unsafe.Pointer(addr), nil
}

func closeNative(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
