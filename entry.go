package renderdoc

// entry is the resolved in-application API function table. The loader
// fills it with closures over the native function pointers; unit tests
// fill it with plain Go functions. triggerMultiFrameCapture stays nil
// when the negotiated version predates 1.1.
type entry struct {
	getAPIVersion func() (major, minor, patch int)

	setCaptureOptionU32 func(opt CaptureOption, val uint32) bool
	setCaptureOptionF32 func(opt CaptureOption, val float32) bool
	getCaptureOptionU32 func(opt CaptureOption) uint32
	getCaptureOptionF32 func(opt CaptureOption) float32

	setFocusToggleKeys func(keys []InputButton)
	setCaptureKeys     func(keys []InputButton)

	getOverlayBits  func() OverlayBits
	maskOverlayBits func(and, or OverlayBits)

	shutdown           func()
	unloadCrashHandler func()

	setLogFilePathTemplate func(path string)
	getLogFilePathTemplate func() string

	getNumCaptures func() uint32
	getCapture     func(index uint32) (path string, timestamp uint64, ok bool)

	triggerCapture func()

	isTargetControlConnected func() bool
	launchReplayUI           func(connectTargetControl bool, cmdLine string) uint32

	setActiveWindow   func(dev DevicePointer, win WindowHandle)
	startFrameCapture func(dev DevicePointer, win WindowHandle)
	isFrameCapturing  func() bool
	endFrameCapture   func(dev DevicePointer, win WindowHandle) bool

	triggerMultiFrameCapture func(numFrames uint32)
}
