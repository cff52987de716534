package renderdoc

import "fmt"

// CaptureOption selects one of the tweakable capture settings. The
// values match the native RENDERDOC_CaptureOption enum.
type CaptureOption uint32

const (
	// AllowVSync lets the application enable vsync (default 1)
	AllowVSync CaptureOption = 0
	// AllowFullscreen lets the application enter exclusive fullscreen (default 1)
	AllowFullscreen CaptureOption = 1
	// APIValidation records API debugging events and messages (default 0)
	APIValidation CaptureOption = 2
	// CaptureCallstacks collects a callstack for every API event (default 0)
	CaptureCallstacks CaptureOption = 3
	// CaptureCallstacksOnlyDraws restricts callstack collection to draws (default 0)
	CaptureCallstacksOnlyDraws CaptureOption = 4
	// DelayForDebugger is the number of seconds to wait for a debugger to
	// attach after a child process is spawned (default 0)
	DelayForDebugger CaptureOption = 5
	// VerifyMapWrites bounds-checks Map() writes against the buffer (default 0)
	VerifyMapWrites CaptureOption = 6
	// HookIntoChildren hooks any child processes the application spawns (default 0)
	HookIntoChildren CaptureOption = 7
	// RefAllResources includes all live resources in a capture even if
	// unused by the frame (default 0)
	RefAllResources CaptureOption = 8
	// SaveAllInitials saves the initial state of all resources rather than
	// only the modified ones (default 0)
	SaveAllInitials CaptureOption = 9
	// CaptureAllCmdLists captures D3D11 deferred command lists from the
	// start of the application (default 0)
	CaptureAllCmdLists CaptureOption = 10
	// DebugOutputMute mutes API debug output while RenderDoc is hooked (default 1)
	DebugOutputMute CaptureOption = 11
)

var captureOptionNames = map[CaptureOption]string{
	AllowVSync:                 "AllowVSync",
	AllowFullscreen:            "AllowFullscreen",
	APIValidation:              "APIValidation",
	CaptureCallstacks:          "CaptureCallstacks",
	CaptureCallstacksOnlyDraws: "CaptureCallstacksOnlyDraws",
	DelayForDebugger:           "DelayForDebugger",
	VerifyMapWrites:            "VerifyMapWrites",
	HookIntoChildren:           "HookIntoChildren",
	RefAllResources:            "RefAllResources",
	SaveAllInitials:            "SaveAllInitials",
	CaptureAllCmdLists:         "CaptureAllCmdLists",
	DebugOutputMute:            "DebugOutputMute",
}

// CaptureOptions lists every defined option, in enum order. Useful for
// dumping the current configuration.
func CaptureOptions() []CaptureOption {
	opts := make([]CaptureOption, 0, len(captureOptionNames))
	for o := AllowVSync; o <= DebugOutputMute; o++ {
		opts = append(opts, o)
	}
	return opts
}

// String returns the option name, or "CaptureOption(n)" for values the
// binding does not know about.
func (o CaptureOption) String() string {
	if name, ok := captureOptionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("CaptureOption(%d)", uint32(o))
}
