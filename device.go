package renderdoc

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// DeviceBackend tags which graphics API a DevicePointer came from.
type DeviceBackend uint32

const (
	BackendUnknown DeviceBackend = iota
	BackendOpenGL
	BackendVulkan
	BackendD3D11
	BackendD3D12
)

// String returns the backend name
func (b DeviceBackend) String() string {
	switch b {
	case BackendOpenGL:
		return "OpenGL"
	case BackendVulkan:
		return "Vulkan"
	case BackendD3D11:
		return "D3D11"
	case BackendD3D12:
		return "D3D12"
	}
	return "Unknown"
}

// DevicePointer identifies the graphics API root object an operation
// applies to: an ID3D11Device or ID3D12Device, an OpenGL context, or a
// Vulkan instance's dispatch table. The binding never owns the handle;
// the caller keeps it alive for as long as RenderDoc may use it.
type DevicePointer struct {
	// Backend which graphics API the handle belongs to
	Backend DeviceBackend
	// Handle the value handed to the native layer
	Handle unsafe.Pointer
}

// WindowHandle is a native window system handle (HWND, Xlib Window,
// ANativeWindow*). Like DevicePointer it carries no ownership.
type WindowHandle unsafe.Pointer

// WindowHandleFromPointer wraps a raw native window handle.
func WindowHandleFromPointer(p unsafe.Pointer) WindowHandle {
	return WindowHandle(p)
}

// DevicePointerFromVulkan derives the device pointer for a Vulkan
// instance. RenderDoc keys Vulkan work by the instance's dispatch
// table, the first pointer-sized word behind the dispatchable handle,
// so the handle is dereferenced once. A null instance yields a nil
// device pointer.
func DevicePointerFromVulkan(instance vk.Instance) DevicePointer {
	d := DevicePointer{Backend: BackendVulkan}
	if instance != vk.NullInstance {
		d.Handle = *(*unsafe.Pointer)(unsafe.Pointer(instance))
	}
	return d
}

// DevicePointerFromGLContext wraps an OpenGL context handle, whichever
// flavour the platform uses (HGLRC, GLXContext or EGLContext).
func DevicePointerFromGLContext(ctx unsafe.Pointer) DevicePointer {
	return DevicePointer{Backend: BackendOpenGL, Handle: ctx}
}

// ShaderMagicDebugValue is the magic byte sequence RenderDoc looks for
// inside shader blobs to locate separated debug info. Embed it in the
// blob and follow it with the path to the unstripped shader.
var ShaderMagicDebugValue = [16]byte{
	0x20, 0x55, 0xb2, 0xea, 0x70, 0x66, 0x65, 0x48,
	0x84, 0x29, 0x6c, 0x08, 0x51, 0x54, 0x00, 0xff,
}

// ShaderMagicDebugValueTruncated is the first eight bytes of
// ShaderMagicDebugValue as a little-endian integer, for APIs whose
// debug-path markers only fit 64 bits.
const ShaderMagicDebugValueTruncated uint64 = 0x48656670eab25520
