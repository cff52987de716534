package renderdoc

/*
#include <stdint.h>

// Entry point typedefs matching renderdoc_app.h for API versions 1.0.x
// and 1.1.x. Enum parameters are declared as uint32_t, which is how the
// native side reads them. The calling convention is cdecl everywhere
// RenderDoc ships.

typedef void (*pRENDERDOC_GetAPIVersion)(int *major, int *minor, int *patch);

typedef int (*pRENDERDOC_SetCaptureOptionU32)(uint32_t opt, uint32_t val);
typedef int (*pRENDERDOC_SetCaptureOptionF32)(uint32_t opt, float val);
typedef uint32_t (*pRENDERDOC_GetCaptureOptionU32)(uint32_t opt);
typedef float (*pRENDERDOC_GetCaptureOptionF32)(uint32_t opt);

typedef void (*pRENDERDOC_SetFocusToggleKeys)(uint32_t *keys, int num);
typedef void (*pRENDERDOC_SetCaptureKeys)(uint32_t *keys, int num);

typedef uint32_t (*pRENDERDOC_GetOverlayBits)(void);
typedef void (*pRENDERDOC_MaskOverlayBits)(uint32_t And, uint32_t Or);

typedef void (*pRENDERDOC_Shutdown)(void);
typedef void (*pRENDERDOC_UnloadCrashHandler)(void);

typedef void (*pRENDERDOC_SetLogFilePathTemplate)(const char *pathtemplate);
typedef const char *(*pRENDERDOC_GetLogFilePathTemplate)(void);

typedef uint32_t (*pRENDERDOC_GetNumCaptures)(void);
typedef uint32_t (*pRENDERDOC_GetCapture)(uint32_t idx, char *logfile, uint32_t *pathlength, uint64_t *timestamp);

typedef void (*pRENDERDOC_TriggerCapture)(void);

typedef uint32_t (*pRENDERDOC_IsRemoteAccessConnected)(void);
typedef uint32_t (*pRENDERDOC_LaunchReplayUI)(uint32_t connectTargetControl, const char *cmdline);

typedef void (*pRENDERDOC_SetActiveWindow)(void *device, void *wndHandle);

typedef void (*pRENDERDOC_StartFrameCapture)(void *device, void *wndHandle);
typedef uint32_t (*pRENDERDOC_IsFrameCapturing)(void);
typedef uint32_t (*pRENDERDOC_EndFrameCapture)(void *device, void *wndHandle);

typedef void (*pRENDERDOC_TriggerMultiFrameCapture)(uint32_t numFrames);

// The 1.1.0 function table. 1.0.x requests return the same layout minus
// the trailing TriggerMultiFrameCapture, so the prefix stays valid for
// every version this binding requests. Field order is ABI.
typedef struct RENDERDOC_API_1_1_0
{
	pRENDERDOC_GetAPIVersion GetAPIVersion;

	pRENDERDOC_SetCaptureOptionU32 SetCaptureOptionU32;
	pRENDERDOC_SetCaptureOptionF32 SetCaptureOptionF32;

	pRENDERDOC_GetCaptureOptionU32 GetCaptureOptionU32;
	pRENDERDOC_GetCaptureOptionF32 GetCaptureOptionF32;

	pRENDERDOC_SetFocusToggleKeys SetFocusToggleKeys;
	pRENDERDOC_SetCaptureKeys SetCaptureKeys;

	pRENDERDOC_GetOverlayBits GetOverlayBits;
	pRENDERDOC_MaskOverlayBits MaskOverlayBits;

	pRENDERDOC_Shutdown Shutdown;
	pRENDERDOC_UnloadCrashHandler UnloadCrashHandler;

	pRENDERDOC_SetLogFilePathTemplate SetLogFilePathTemplate;
	pRENDERDOC_GetLogFilePathTemplate GetLogFilePathTemplate;

	pRENDERDOC_GetNumCaptures GetNumCaptures;
	pRENDERDOC_GetCapture GetCapture;

	pRENDERDOC_TriggerCapture TriggerCapture;

	pRENDERDOC_IsRemoteAccessConnected IsRemoteAccessConnected;
	pRENDERDOC_LaunchReplayUI LaunchReplayUI;

	pRENDERDOC_SetActiveWindow SetActiveWindow;

	pRENDERDOC_StartFrameCapture StartFrameCapture;
	pRENDERDOC_IsFrameCapturing IsFrameCapturing;
	pRENDERDOC_EndFrameCapture EndFrameCapture;

	pRENDERDOC_TriggerMultiFrameCapture TriggerMultiFrameCapture;
} RENDERDOC_API_1_1_0;

typedef int (*pRENDERDOC_GetAPI)(uint32_t version, void **outAPIPointers);

// cgo cannot call C function pointers directly, so each entry point
// gets a static trampoline.

static int rdocGetAPI(void *fp, uint32_t version, void **out) {
	return ((pRENDERDOC_GetAPI)fp)(version, out);
}

static void rdocGetAPIVersion(pRENDERDOC_GetAPIVersion fp, int *major, int *minor, int *patch) {
	fp(major, minor, patch);
}

static int rdocSetCaptureOptionU32(pRENDERDOC_SetCaptureOptionU32 fp, uint32_t opt, uint32_t val) {
	return fp(opt, val);
}

static int rdocSetCaptureOptionF32(pRENDERDOC_SetCaptureOptionF32 fp, uint32_t opt, float val) {
	return fp(opt, val);
}

static uint32_t rdocGetCaptureOptionU32(pRENDERDOC_GetCaptureOptionU32 fp, uint32_t opt) {
	return fp(opt);
}

static float rdocGetCaptureOptionF32(pRENDERDOC_GetCaptureOptionF32 fp, uint32_t opt) {
	return fp(opt);
}

static void rdocSetFocusToggleKeys(pRENDERDOC_SetFocusToggleKeys fp, uint32_t *keys, int num) {
	fp(keys, num);
}

static void rdocSetCaptureKeys(pRENDERDOC_SetCaptureKeys fp, uint32_t *keys, int num) {
	fp(keys, num);
}

static uint32_t rdocGetOverlayBits(pRENDERDOC_GetOverlayBits fp) {
	return fp();
}

static void rdocMaskOverlayBits(pRENDERDOC_MaskOverlayBits fp, uint32_t And, uint32_t Or) {
	fp(And, Or);
}

static void rdocShutdown(pRENDERDOC_Shutdown fp) {
	fp();
}

static void rdocUnloadCrashHandler(pRENDERDOC_UnloadCrashHandler fp) {
	fp();
}

static void rdocSetLogFilePathTemplate(pRENDERDOC_SetLogFilePathTemplate fp, const char *path) {
	fp(path);
}

static const char *rdocGetLogFilePathTemplate(pRENDERDOC_GetLogFilePathTemplate fp) {
	return fp();
}

static uint32_t rdocGetNumCaptures(pRENDERDOC_GetNumCaptures fp) {
	return fp();
}

static uint32_t rdocGetCapture(pRENDERDOC_GetCapture fp, uint32_t idx, char *logfile, uint32_t *pathlength, uint64_t *timestamp) {
	return fp(idx, logfile, pathlength, timestamp);
}

static void rdocTriggerCapture(pRENDERDOC_TriggerCapture fp) {
	fp();
}

static uint32_t rdocIsRemoteAccessConnected(pRENDERDOC_IsRemoteAccessConnected fp) {
	return fp();
}

static uint32_t rdocLaunchReplayUI(pRENDERDOC_LaunchReplayUI fp, uint32_t connect, const char *cmdline) {
	return fp(connect, cmdline);
}

static void rdocSetActiveWindow(pRENDERDOC_SetActiveWindow fp, void *device, void *wndHandle) {
	fp(device, wndHandle);
}

static void rdocStartFrameCapture(pRENDERDOC_StartFrameCapture fp, void *device, void *wndHandle) {
	fp(device, wndHandle);
}

static uint32_t rdocIsFrameCapturing(pRENDERDOC_IsFrameCapturing fp) {
	return fp();
}

static uint32_t rdocEndFrameCapture(pRENDERDOC_EndFrameCapture fp, void *device, void *wndHandle) {
	return fp(device, wndHandle);
}

static void rdocTriggerMultiFrameCapture(pRENDERDOC_TriggerMultiFrameCapture fp, uint32_t numFrames) {
	fp(numFrames);
}
*/
import "C"

import (
	"unsafe"
)

// entry calls RENDERDOC_GetAPI for the requested version and wraps the
// function table it returns. A zero return means the library's
// supported range does not include that version.
func (l *library) entry(v Version) (*entry, error) {
	var out unsafe.Pointer
	if C.rdocGetAPI(l.getAPI, C.uint32_t(v), &out) == 0 || out == nil {
		return nil, &LoadError{Library: l.name, Version: v, Err: ErrVersionNotSupported}
	}
	return newEntry((*C.RENDERDOC_API_1_1_0)(out), v), nil
}

func newEntry(p *C.RENDERDOC_API_1_1_0, v Version) *entry {
	e := &entry{
		getAPIVersion: func() (int, int, int) {
			var major, minor, patch C.int
			C.rdocGetAPIVersion(p.GetAPIVersion, &major, &minor, &patch)
			return int(major), int(minor), int(patch)
		},
		setCaptureOptionU32: func(opt CaptureOption, val uint32) bool {
			return C.rdocSetCaptureOptionU32(p.SetCaptureOptionU32, C.uint32_t(opt), C.uint32_t(val)) == 1
		},
		setCaptureOptionF32: func(opt CaptureOption, val float32) bool {
			return C.rdocSetCaptureOptionF32(p.SetCaptureOptionF32, C.uint32_t(opt), C.float(val)) == 1
		},
		getCaptureOptionU32: func(opt CaptureOption) uint32 {
			return uint32(C.rdocGetCaptureOptionU32(p.GetCaptureOptionU32, C.uint32_t(opt)))
		},
		getCaptureOptionF32: func(opt CaptureOption) float32 {
			return float32(C.rdocGetCaptureOptionF32(p.GetCaptureOptionF32, C.uint32_t(opt)))
		},
		setFocusToggleKeys: func(keys []InputButton) {
			ck, n := cKeys(keys)
			C.rdocSetFocusToggleKeys(p.SetFocusToggleKeys, ck, n)
		},
		setCaptureKeys: func(keys []InputButton) {
			ck, n := cKeys(keys)
			C.rdocSetCaptureKeys(p.SetCaptureKeys, ck, n)
		},
		getOverlayBits: func() OverlayBits {
			return OverlayBits(C.rdocGetOverlayBits(p.GetOverlayBits))
		},
		maskOverlayBits: func(and, or OverlayBits) {
			C.rdocMaskOverlayBits(p.MaskOverlayBits, C.uint32_t(and), C.uint32_t(or))
		},
		shutdown: func() {
			C.rdocShutdown(p.Shutdown)
		},
		unloadCrashHandler: func() {
			C.rdocUnloadCrashHandler(p.UnloadCrashHandler)
		},
		setLogFilePathTemplate: func(path string) {
			s := safeString(path)
			C.rdocSetLogFilePathTemplate(p.SetLogFilePathTemplate, (*C.char)(unsafe.Pointer(unsafe.StringData(s))))
		},
		getLogFilePathTemplate: func() string {
			return C.GoString(C.rdocGetLogFilePathTemplate(p.GetLogFilePathTemplate))
		},
		getNumCaptures: func() uint32 {
			return uint32(C.rdocGetNumCaptures(p.GetNumCaptures))
		},
		getCapture: func(index uint32) (string, uint64, bool) {
			var pathLen C.uint32_t
			if C.rdocGetCapture(p.GetCapture, C.uint32_t(index), nil, &pathLen, nil) == 0 {
				return "", 0, false
			}
			buf := make([]byte, int(pathLen)+1)
			var ts C.uint64_t
			if C.rdocGetCapture(p.GetCapture, C.uint32_t(index), (*C.char)(unsafe.Pointer(&buf[0])), &pathLen, &ts) == 0 {
				return "", 0, false
			}
			return C.GoString((*C.char)(unsafe.Pointer(&buf[0]))), uint64(ts), true
		},
		triggerCapture: func() {
			C.rdocTriggerCapture(p.TriggerCapture)
		},
		isTargetControlConnected: func() bool {
			return C.rdocIsRemoteAccessConnected(p.IsRemoteAccessConnected) == 1
		},
		launchReplayUI: func(connectTargetControl bool, cmdLine string) uint32 {
			var connect C.uint32_t
			if connectTargetControl {
				connect = 1
			}
			s := safeString(cmdLine)
			return uint32(C.rdocLaunchReplayUI(p.LaunchReplayUI, connect, (*C.char)(unsafe.Pointer(unsafe.StringData(s)))))
		},
		setActiveWindow: func(dev DevicePointer, win WindowHandle) {
			C.rdocSetActiveWindow(p.SetActiveWindow, dev.Handle, unsafe.Pointer(win))
		},
		startFrameCapture: func(dev DevicePointer, win WindowHandle) {
			C.rdocStartFrameCapture(p.StartFrameCapture, dev.Handle, unsafe.Pointer(win))
		},
		isFrameCapturing: func() bool {
			return C.rdocIsFrameCapturing(p.IsFrameCapturing) == 1
		},
		endFrameCapture: func(dev DevicePointer, win WindowHandle) bool {
			return C.rdocEndFrameCapture(p.EndFrameCapture, dev.Handle, unsafe.Pointer(win)) == 1
		},
	}

	// The table RENDERDOC_GetAPI hands back only extends past
	// EndFrameCapture when a 1.1 version was granted.
	if v >= V110 {
		e.triggerMultiFrameCapture = func(numFrames uint32) {
			C.rdocTriggerMultiFrameCapture(p.TriggerMultiFrameCapture, C.uint32_t(numFrames))
		}
	}

	return e
}

func cKeys(keys []InputButton) (*C.uint32_t, C.int) {
	if len(keys) == 0 {
		return nil, 0
	}
	ck := make([]C.uint32_t, len(keys))
	for i, k := range keys {
		ck[i] = C.uint32_t(k)
	}
	return &ck[0], C.int(len(ck))
}
