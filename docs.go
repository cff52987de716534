/*
Package renderdoc exposes the RenderDoc in-application API to Go programs.
RenderDoc is a graphics debugger which hooks the graphics APIs of an
application and records frames into capture files for later inspection, and
beyond its UI it publishes a small in-application API so the application
itself can drive captures - trigger them, bind them to keys, tweak capture
options and control the in-window overlay.

This package is a binding to that in-application API, not a reimplementation
of any of it. All the capturing, serialization and replay work happens inside
the RenderDoc library; the package's job is to load that library, negotiate
an API version with it, and surface its function table as plain Go methods
with Go errors.

Overview of the in-application API

RenderDoc ships a single shared library (librenderdoc.so, renderdoc.dll or
the Android layer library) exporting one entry point, RENDERDOC_GetAPI. The
application requests a specific API version from it and receives a table of
function pointers whose layout is fixed per version, newer versions append
entries to the end. When the application runs under the RenderDoc UI the
library is already injected into the process and loading simply attaches to
the resident copy; launched standalone, the library is picked up from the
usual system search path if installed.

Versions follow the RenderDoc numbering: 1.0.x and 1.1.x are the families
this package knows. The version requested decides which methods exist, which
this package mirrors with distinct handle types rather than runtime checks:

	API	the 1.0 surface, from New or NewWithVersion
	API110	the 1.1 surface (adds multi-frame capture), from NewV110

An API110 can be narrowed to an API with Downgrade; there is no way back up.
Only one handle may be live per process at a time - RenderDoc hooks a process
once and two sessions would contend for the same native state - so a second
load fails with ErrAlreadyLoaded until the first handle is destroyed.

Argument types the native layer expects are mirrored as small value types:

	CaptureOption	a tweakable capture setting (vsync, callstacks, ...)
	OverlayBits	bitmask controlling the in-window overlay
	InputButton	a key RenderDoc can watch as a capture or focus trigger
	DevicePointer	tag plus handle naming a graphics API root object
	WindowHandle	a native window system handle

DevicePointer and InputButton are conversion targets: helpers like
DevicePointerFromVulkan and InputButtonFromGLFWKey translate the handle and
key types of the windowing and graphics packages an application already uses
into the values RenderDoc wants. The conversions are pure value mappings and
never take ownership of anything.

A typical integration looks like:

	1. Load the API near startup, before or after graphics init
	2. Set the capture file path template and any capture options
	3. Bind capture keys, converted from the window library's key codes
	4. Register the device/window pair with SetActiveWindow
	5. Run the frame loop; trigger captures by key or programmatically
	6. Destroy the handle on shutdown

About this package

Methods on the handles map one to one onto the native function table, so the
RenderDoc documentation for an entry point applies directly to the method of
the same name. Calls into the native layer are not synchronized here; an
application mutating capture state from several goroutines must serialize
those calls itself, the same requirement the native API places on threads.

Examples under examples/ show the two common shapes: examples/info dumps the
negotiated version, option values and capture list of a process; examples/trigger
is a GLFW/Vulkan window wired up for key-driven captures.
*/
package renderdoc
