//go:build !linux && !windows

package renderdoc

import "unsafe"

// RenderDoc publishes no library for this OS; loads fail cleanly so
// applications can ship the integration everywhere and only exercise it
// where captures are possible.

func nativeLibraryName() string {
	return "renderdoc"
}

func loadNative() (string, uintptr, unsafe.Pointer, error) {
	name := nativeLibraryName()
	return name, 0, nil, &LoadError{Library: name, Err: ErrUnsupportedPlatform}
}

func closeNative(uintptr) error {
	return nil
}
