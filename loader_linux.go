//go:build linux

package renderdoc

/*
#cgo LDFLAGS: -ldl

#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// nativeLibraryName returns what RenderDoc ships as on this platform.
// Desktop Linux installs librenderdoc.so; on Android the capture layer
// is packaged under the Vulkan/GLES layer name.
func nativeLibraryName() string {
	if runtime.GOOS == "android" {
		return "libVkLayer_GLES_RenderDoc.so"
	}
	return "librenderdoc.so"
}

// loadNative dlopens the library and resolves RENDERDOC_GetAPI. dlopen
// on an already resident library returns the same handle with its
// reference count bumped, so closeNative stays balanced either way.
func loadNative() (string, uintptr, unsafe.Pointer, error) {
	name := nativeLibraryName()

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	handle := C.dlopen(cname, C.RTLD_NOW)
	if handle == nil {
		return name, 0, nil, &LoadError{
			Library: name,
			Err:     fmt.Errorf("%w: %s", ErrLibraryNotFound, C.GoString(C.dlerror())),
		}
	}

	csym := C.CString(entrySymbol)
	defer C.free(unsafe.Pointer(csym))

	sym := C.dlsym(handle, csym)
	if sym == nil {
		C.dlclose(handle)
		return name, 0, nil, &LoadError{Library: name, Err: ErrSymbolNotFound}
	}

	return name, uintptr(handle), sym, nil
}

func closeNative(handle uintptr) error {
	if C.dlclose(unsafe.Pointer(handle)) != 0 {
		return fmt.Errorf("dlclose: %s", C.GoString(C.dlerror()))
	}
	return nil
}
