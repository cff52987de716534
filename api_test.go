package renderdoc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeState stands in for the native library behind an entry table,
// keeping the same contract the real one has: option getters return the
// invalid markers for unknown options, the overlay mask applies
// bits&and|or, captures are indexed oldest first.
type fakeState struct {
	major, minor, patch int

	optsU32 map[CaptureOption]uint32
	optsF32 map[CaptureOption]float32

	captureKeys []InputButton
	focusKeys   []InputButton

	overlay OverlayBits

	template string
	captures []fakeCapture

	triggers      int
	multiTriggers []uint32

	shutdowns     int
	crashUnloads  int
	uiConnected   bool
	replayPID     uint32
	replayConnect bool
	replayCmdLine string
	activeDev     DevicePointer
	activeWin     WindowHandle
	capturing     bool
	endResult     bool
	frameCaptures int
}

type fakeCapture struct {
	path      string
	timestamp uint64
}

func (s *fakeState) known(opt CaptureOption) bool {
	return opt <= DebugOutputMute
}

// entry builds the closure table over the fake, shaped exactly like the
// one the loader builds over the C function pointers.
func (s *fakeState) entry(v Version) *entry {
	e := &entry{
		getAPIVersion: func() (int, int, int) {
			return s.major, s.minor, s.patch
		},
		setCaptureOptionU32: func(opt CaptureOption, val uint32) bool {
			if !s.known(opt) {
				return false
			}
			s.optsU32[opt] = val
			return true
		},
		setCaptureOptionF32: func(opt CaptureOption, val float32) bool {
			if !s.known(opt) {
				return false
			}
			s.optsF32[opt] = val
			return true
		},
		getCaptureOptionU32: func(opt CaptureOption) uint32 {
			if !s.known(opt) {
				return ^uint32(0)
			}
			return s.optsU32[opt]
		},
		getCaptureOptionF32: func(opt CaptureOption) float32 {
			if !s.known(opt) {
				return -math.MaxFloat32
			}
			return s.optsF32[opt]
		},
		setFocusToggleKeys: func(keys []InputButton) {
			s.focusKeys = keys
		},
		setCaptureKeys: func(keys []InputButton) {
			s.captureKeys = keys
		},
		getOverlayBits: func() OverlayBits {
			return s.overlay
		},
		maskOverlayBits: func(and, or OverlayBits) {
			s.overlay = s.overlay&and | or
		},
		shutdown: func() {
			s.shutdowns++
		},
		unloadCrashHandler: func() {
			s.crashUnloads++
		},
		setLogFilePathTemplate: func(path string) {
			s.template = path
		},
		getLogFilePathTemplate: func() string {
			return s.template
		},
		getNumCaptures: func() uint32 {
			return uint32(len(s.captures))
		},
		getCapture: func(index uint32) (string, uint64, bool) {
			if int(index) >= len(s.captures) {
				return "", 0, false
			}
			c := s.captures[index]
			return c.path, c.timestamp, true
		},
		triggerCapture: func() {
			s.triggers++
		},
		isTargetControlConnected: func() bool {
			return s.uiConnected
		},
		launchReplayUI: func(connect bool, cmdLine string) uint32 {
			s.replayConnect = connect
			s.replayCmdLine = cmdLine
			return s.replayPID
		},
		setActiveWindow: func(dev DevicePointer, win WindowHandle) {
			s.activeDev = dev
			s.activeWin = win
		},
		startFrameCapture: func(dev DevicePointer, win WindowHandle) {
			s.capturing = true
		},
		isFrameCapturing: func() bool {
			return s.capturing
		},
		endFrameCapture: func(dev DevicePointer, win WindowHandle) bool {
			s.capturing = false
			s.frameCaptures++
			return s.endResult
		},
	}

	if v >= V110 {
		e.triggerMultiFrameCapture = func(numFrames uint32) {
			s.multiTriggers = append(s.multiTriggers, numFrames)
		}
	}

	return e
}

func newFakeState() *fakeState {
	return &fakeState{
		major: 1, minor: 1, patch: 2,
		optsU32: map[CaptureOption]uint32{
			AllowVSync:      1,
			AllowFullscreen: 1,
			DebugOutputMute: 1,
		},
		optsF32:   map[CaptureOption]float32{},
		overlay:   OverlayDefault,
		template:  "capture",
		endResult: true,
		replayPID: 4242,
	}
}

func newFakeAPI(v Version) (*API, *fakeState) {
	s := newFakeState()
	return &API{e: s.entry(v), lib: &library{name: "fake"}, version: v}, s
}

func newFakeAPI110() (*API110, *fakeState) {
	a, s := newFakeAPI(V110)
	return &API110{API: *a}, s
}

func TestAPIVersions(t *testing.T) {
	a, _ := newFakeAPI(V100)

	assert.Equal(t, V100, a.Version())

	major, minor, patch := a.GetAPIVersion()
	assert.Equal(t, 1, major)
	assert.Equal(t, 1, minor)
	assert.Equal(t, 2, patch)
}

func TestCaptureOptionU32RoundTrip(t *testing.T) {
	a, s := newFakeAPI(V100)

	// library defaults are visible before anything is set
	val, err := a.GetCaptureOptionU32(AllowVSync)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), val)

	require.NoError(t, a.SetCaptureOptionU32(CaptureCallstacks, 1))
	assert.Equal(t, uint32(1), s.optsU32[CaptureCallstacks])

	val, err = a.GetCaptureOptionU32(CaptureCallstacks)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), val)
}

func TestCaptureOptionF32RoundTrip(t *testing.T) {
	a, _ := newFakeAPI(V100)

	require.NoError(t, a.SetCaptureOptionF32(DelayForDebugger, 2.5))

	val, err := a.GetCaptureOptionF32(DelayForDebugger)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), val)
}

func TestCaptureOptionInvalid(t *testing.T) {
	a, _ := newFakeAPI(V100)
	bogus := CaptureOption(99)

	err := a.SetCaptureOptionU32(bogus, 1)
	assert.ErrorIs(t, err, ErrInvalidCaptureOption)

	err = a.SetCaptureOptionF32(bogus, 1)
	assert.ErrorIs(t, err, ErrInvalidCaptureOption)

	_, err = a.GetCaptureOptionU32(bogus)
	assert.ErrorIs(t, err, ErrInvalidCaptureOption)

	_, err = a.GetCaptureOptionF32(bogus)
	assert.ErrorIs(t, err, ErrInvalidCaptureOption)
}

func TestCaptureAndFocusKeys(t *testing.T) {
	a, s := newFakeAPI(V100)

	a.SetCaptureKeys(KeyF12, KeyPrtScrn)
	assert.Equal(t, []InputButton{KeyF12, KeyPrtScrn}, s.captureKeys)

	a.SetFocusToggleKeys(KeyF, KeyTab)
	assert.Equal(t, []InputButton{KeyF, KeyTab}, s.focusKeys)

	// no keys disables the binding entirely
	a.SetCaptureKeys()
	assert.Empty(t, s.captureKeys)
}

func TestOverlayMask(t *testing.T) {
	a, _ := newFakeAPI(V100)

	assert.Equal(t, OverlayDefault, a.GetOverlayBits())

	// clear everything but the master toggle
	a.MaskOverlayBits(OverlayEnabled, OverlayNone)
	assert.Equal(t, OverlayEnabled, a.GetOverlayBits())

	// set bits back on top of whatever is there
	a.MaskOverlayBits(OverlayAll, OverlayFrameRate)
	assert.Equal(t, OverlayEnabled|OverlayFrameRate, a.GetOverlayBits())
}

func TestLogFilePathTemplate(t *testing.T) {
	a, _ := newFakeAPI(V100)

	a.SetLogFilePathTemplate("captures/example")
	assert.Equal(t, "captures/example", a.GetLogFilePathTemplate())
}

func TestCaptures(t *testing.T) {
	a, s := newFakeAPI(V100)

	assert.Equal(t, uint32(0), a.GetNumCaptures())

	_, _, ok := a.GetCapture(0)
	assert.False(t, ok)

	s.captures = []fakeCapture{
		{path: "capture_frame123.rdc", timestamp: 1566720},
		{path: "capture_frame456.rdc", timestamp: 1566900},
	}

	assert.Equal(t, uint32(2), a.GetNumCaptures())

	path, timestamp, ok := a.GetCapture(0)
	require.True(t, ok)
	assert.Equal(t, "capture_frame123.rdc", path)
	assert.Equal(t, uint64(1566720), timestamp)

	_, _, ok = a.GetCapture(2)
	assert.False(t, ok)
}

func TestTriggerCapture(t *testing.T) {
	a, s := newFakeAPI(V100)

	a.TriggerCapture()
	a.TriggerCapture()
	assert.Equal(t, 2, s.triggers)
}

func TestFrameCaptureBracket(t *testing.T) {
	a, s := newFakeAPI(V100)
	dev := DevicePointer{Backend: BackendVulkan}

	assert.False(t, a.IsFrameCapturing())

	a.StartFrameCapture(dev, nil)
	assert.True(t, a.IsFrameCapturing())

	assert.True(t, a.EndFrameCapture(dev, nil))
	assert.False(t, a.IsFrameCapturing())
	assert.Equal(t, 1, s.frameCaptures)
}

func TestSetActiveWindow(t *testing.T) {
	a, s := newFakeAPI(V100)
	dev := DevicePointer{Backend: BackendOpenGL}

	a.SetActiveWindow(dev, nil)
	assert.Equal(t, dev, s.activeDev)
	assert.Equal(t, WindowHandle(nil), s.activeWin)
}

func TestIsTargetControlConnected(t *testing.T) {
	a, s := newFakeAPI(V100)

	assert.False(t, a.IsTargetControlConnected())
	s.uiConnected = true
	assert.True(t, a.IsTargetControlConnected())
}

func TestLaunchReplayUI(t *testing.T) {
	a, s := newFakeAPI(V100)

	pid, err := a.LaunchReplayUI(true, "--remote")
	require.NoError(t, err)
	assert.Equal(t, uint32(4242), pid)
	assert.True(t, s.replayConnect)
	assert.Equal(t, "--remote", s.replayCmdLine)

	s.replayPID = 0
	_, err = a.LaunchReplayUI(false, "")
	assert.Error(t, err)
}

func TestUnloadCrashHandler(t *testing.T) {
	a, s := newFakeAPI(V100)

	a.UnloadCrashHandler()
	assert.Equal(t, 1, s.crashUnloads)
}

func TestTriggerMultiFrameCapture(t *testing.T) {
	a, s := newFakeAPI110()

	a.TriggerMultiFrameCapture(3)
	assert.Equal(t, []uint32{3}, s.multiTriggers)

	// the 1.0 surface promoted through the embedding still works
	a.TriggerCapture()
	assert.Equal(t, 1, s.triggers)
}

func TestDowngrade(t *testing.T) {
	a, s := newFakeAPI110()

	d := a.Downgrade()
	assert.Equal(t, V100, d.Version())
	assert.Equal(t, V110, a.Version())

	// the narrowed handle drives the same session
	d.TriggerCapture()
	assert.Equal(t, 1, s.triggers)

	// the 1.1 surface is gone from the narrowed handle's method set
	_, ok := interface{}(d).(interface{ TriggerMultiFrameCapture(uint32) })
	assert.False(t, ok)
	_, ok = interface{}(a).(interface{ TriggerMultiFrameCapture(uint32) })
	assert.True(t, ok)
}

func TestDowngradeSharedSessionDestroy(t *testing.T) {
	a, _ := newFakeAPI110()
	lib := a.lib

	d := a.Downgrade()
	require.NoError(t, d.Destroy())
	assert.True(t, lib.closed)

	// destroying through the other alias is still safe
	require.NoError(t, a.Destroy())
}

func TestDestroyIdempotent(t *testing.T) {
	a, _ := newFakeAPI(V100)
	lib := a.lib

	require.NoError(t, a.Destroy())
	assert.True(t, lib.closed)
	assert.Nil(t, a.lib)

	require.NoError(t, a.Destroy())
}

func TestShutdown(t *testing.T) {
	a, s := newFakeAPI(V100)
	lib := a.lib

	require.NoError(t, a.Shutdown())
	assert.Equal(t, 1, s.shutdowns)
	assert.True(t, lib.closed)
}
