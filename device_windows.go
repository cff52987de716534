//go:build windows

package renderdoc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// DevicePointerFromD3D11 wraps a raw ID3D11Device COM interface
// pointer. The reference count is not touched.
func DevicePointerFromD3D11(device unsafe.Pointer) DevicePointer {
	return DevicePointer{Backend: BackendD3D11, Handle: device}
}

// DevicePointerFromD3D12 wraps a raw ID3D12Device COM interface
// pointer. The reference count is not touched.
func DevicePointerFromD3D12(device unsafe.Pointer) DevicePointer {
	return DevicePointer{Backend: BackendD3D12, Handle: device}
}

// ShaderMagicDebugValueGUID is ShaderMagicDebugValue in the layout D3D
// shader blobs carry it in, for use with SetPrivateData.
var ShaderMagicDebugValueGUID = windows.GUID{
	Data1: 0xeab25520,
	Data2: 0x6670,
	Data3: 0x4865,
	Data4: [8]byte{0x84, 0x29, 0x6c, 0x08, 0x51, 0x54, 0x00, 0xff},
}
