package renderdoc

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// API exposes version 1.0 of the RenderDoc in-application API. Obtain
// one from New or NewWithVersion. A process holds at most one live API
// at a time; Destroy it before loading another.
type API struct {
	e       *entry
	lib     *library
	version Version
}

// API110 exposes version 1.1 of the in-application API, which is the
// 1.0 surface plus multi-frame capture. Obtain one from NewV110.
type API110 struct {
	API
}

// New loads the RenderDoc library and requests version 1.0 of the
// in-application API.
func New() (*API, error) {
	return newAPI(V100)
}

// NewWithVersion loads the RenderDoc library requesting exactly the
// given version. Whatever patch level is granted the returned handle
// exposes the 1.0 surface; use NewV110 when the 1.1 operations are
// wanted. Version values outside the library's supported range fail
// with ErrVersionNotSupported.
func NewWithVersion(v Version) (*API, error) {
	return newAPI(v)
}

// NewV110 loads the RenderDoc library and requests version 1.1 of the
// in-application API.
func NewV110() (*API110, error) {
	a, err := newAPI(V110)
	if err != nil {
		return nil, err
	}
	return &API110{API: *a}, nil
}

func newAPI(v Version) (*API, error) {
	lib, err := openLibrary()
	if err != nil {
		return nil, err
	}

	e, err := lib.entry(v)
	if err != nil {
		lib.close()
		return nil, err
	}

	major, minor, patch := e.getAPIVersion()
	logrus.WithFields(logrus.Fields{
		"requested": v.String(),
		"granted":   fmt.Sprintf("%d.%d.%d", major, minor, patch),
	}).Debug("renderdoc API initialized")

	return &API{e: e, lib: lib, version: v}, nil
}

// Version returns the version the handle was requested with, the one
// its method set is gated by. The library itself may be newer; see
// GetAPIVersion.
func (a *API) Version() Version {
	return a.version
}

// GetAPIVersion returns the actual version of the loaded library. It is
// at least the requested version but may be higher.
func (a *API) GetAPIVersion() (major, minor, patch int) {
	return a.e.getAPIVersion()
}

// SetCaptureOptionU32 sets an integer capture option. Boolean options
// take 1 and 0.
func (a *API) SetCaptureOptionU32(opt CaptureOption, val uint32) error {
	if !a.e.setCaptureOptionU32(opt, val) {
		return fmt.Errorf("set %s to %d: %w", opt, val, ErrInvalidCaptureOption)
	}
	return nil
}

// SetCaptureOptionF32 sets a floating point capture option.
func (a *API) SetCaptureOptionF32(opt CaptureOption, val float32) error {
	if !a.e.setCaptureOptionF32(opt, val) {
		return fmt.Errorf("set %s to %f: %w", opt, val, ErrInvalidCaptureOption)
	}
	return nil
}

// GetCaptureOptionU32 reads back an integer capture option.
func (a *API) GetCaptureOptionU32(opt CaptureOption) (uint32, error) {
	val := a.e.getCaptureOptionU32(opt)
	if val == ^uint32(0) {
		return 0, fmt.Errorf("get %s: %w", opt, ErrInvalidCaptureOption)
	}
	return val, nil
}

// GetCaptureOptionF32 reads back a floating point capture option.
func (a *API) GetCaptureOptionF32(opt CaptureOption) (float32, error) {
	val := a.e.getCaptureOptionF32(opt)
	if val == -math.MaxFloat32 {
		return 0, fmt.Errorf("get %s: %w", opt, ErrInvalidCaptureOption)
	}
	return val, nil
}

// SetFocusToggleKeys changes which keys toggle RenderDoc's focus
// between windows of the application. No keys disables the toggle.
func (a *API) SetFocusToggleKeys(keys ...InputButton) {
	a.e.setFocusToggleKeys(keys)
}

// SetCaptureKeys changes which keys trigger a capture of the next
// frame. No keys disables capture keys entirely.
func (a *API) SetCaptureKeys(keys ...InputButton) {
	a.e.setCaptureKeys(keys)
}

// GetOverlayBits returns the current overlay mask.
func (a *API) GetOverlayBits() OverlayBits {
	return a.e.getOverlayBits()
}

// MaskOverlayBits changes the overlay mask to bits&and | or.
func (a *API) MaskOverlayBits(and, or OverlayBits) {
	a.e.maskOverlayBits(and, or)
}

// Shutdown asks the library to remove its hooks from the process, then
// releases the handle like Destroy. The native side only supports this
// right after loading, before any graphics API work has happened.
func (a *API) Shutdown() error {
	a.e.shutdown()
	return a.destroy()
}

// UnloadCrashHandler unloads RenderDoc's crash handler from the
// process, for applications that install their own.
func (a *API) UnloadCrashHandler() {
	a.e.unloadCrashHandler()
}

// SetLogFilePathTemplate sets where capture files land. The template is
// a directory plus filename prefix: "captures/example" produces files
// like captures/example_frame123.rdc.
func (a *API) SetLogFilePathTemplate(path string) {
	a.e.setLogFilePathTemplate(path)
}

// GetLogFilePathTemplate returns the current capture file template.
func (a *API) GetLogFilePathTemplate() string {
	return a.e.getLogFilePathTemplate()
}

// GetNumCaptures returns how many captures have been made since the
// library was loaded.
func (a *API) GetNumCaptures() uint32 {
	return a.e.getNumCaptures()
}

// GetCapture returns the file path and Unix timestamp of the capture at
// the given index, oldest first. ok is false when the index is out of
// range.
func (a *API) GetCapture(index uint32) (path string, timestamp uint64, ok bool) {
	return a.e.getCapture(index)
}

// TriggerCapture captures the next frame presented from the active
// window, as if the capture key had been pressed.
func (a *API) TriggerCapture() {
	a.e.triggerCapture()
}

// IsTargetControlConnected reports whether the RenderDoc UI is attached
// to this application.
func (a *API) IsTargetControlConnected() bool {
	return a.e.isTargetControlConnected()
}

// LaunchReplayUI starts the RenderDoc UI and returns its PID. With
// connectTargetControl set the UI attaches to this application right
// away. cmdLine is appended to the UI's command line and may be empty.
func (a *API) LaunchReplayUI(connectTargetControl bool, cmdLine string) (uint32, error) {
	pid := a.e.launchReplayUI(connectTargetControl, cmdLine)
	if pid == 0 {
		return 0, fmt.Errorf("replay UI did not start")
	}
	logrus.WithFields(logrus.Fields{
		"pid": pid,
	}).Debug("replay UI launched")
	return pid, nil
}

// SetActiveWindow tells RenderDoc which device and window pair the
// overlay and capture keys apply to when several are alive.
func (a *API) SetActiveWindow(dev DevicePointer, win WindowHandle) {
	a.e.setActiveWindow(dev, win)
}

// StartFrameCapture begins capturing immediately, until the matching
// EndFrameCapture. A zero DevicePointer and nil WindowHandle mean the
// single current pair.
func (a *API) StartFrameCapture(dev DevicePointer, win WindowHandle) {
	a.e.startFrameCapture(dev, win)
}

// IsFrameCapturing reports whether a capture is in progress.
func (a *API) IsFrameCapturing() bool {
	return a.e.isFrameCapturing()
}

// EndFrameCapture finishes the capture begun by StartFrameCapture and
// reports whether it succeeded.
func (a *API) EndFrameCapture(dev DevicePointer, win WindowHandle) bool {
	return a.e.endFrameCapture(dev, win)
}

// Destroy detaches from the library and frees the process-wide slot so
// a later load can succeed. RenderDoc's hooks stay in place; Shutdown
// removes them too. Destroy is idempotent, but the handle must not be
// used for anything else afterwards.
func (a *API) Destroy() error {
	return a.destroy()
}

func (a *API) destroy() error {
	if a.lib == nil {
		return nil
	}
	err := a.lib.close()
	a.lib = nil
	a.e = nil
	return err
}

// TriggerMultiFrameCapture captures the next numFrames frames as
// separate capture files, as TriggerCapture does for one.
func (a *API110) TriggerMultiFrameCapture(numFrames uint32) {
	a.e.triggerMultiFrameCapture(numFrames)
}

// Downgrade narrows the handle to the 1.0 surface, tagged V100. The
// narrowed handle shares the loaded session with the original; there is
// no way back up.
func (a *API110) Downgrade() *API {
	d := a.API
	d.version = V100
	return &d
}
