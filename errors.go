package renderdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotFound means the RenderDoc shared library is neither
	// resident in the process nor locatable on the library search path.
	ErrLibraryNotFound = errors.New("library not found")

	// ErrSymbolNotFound means the library was located but does not export
	// the RENDERDOC_GetAPI entry point.
	ErrSymbolNotFound = errors.New("RENDERDOC_GetAPI symbol not found")

	// ErrVersionNotSupported means the library rejected the requested API
	// version.
	ErrVersionNotSupported = errors.New("requested API version not supported")

	// ErrAlreadyLoaded means another API handle is still active in this
	// process. Destroy it before loading again.
	ErrAlreadyLoaded = errors.New("API already loaded in this process")

	// ErrUnsupportedPlatform means RenderDoc publishes no library for the
	// current OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInvalidCaptureOption means the library rejected the capture
	// option or the value supplied for it.
	ErrInvalidCaptureOption = errors.New("invalid capture option")
)

// LoadError describes a failure to initialize the in-application API.
// It records the library involved and wraps a sentinel usable with
// errors.Is to tell the failure modes apart.
type LoadError struct {
	// Library the name or path of the shared library involved
	Library string
	// Version the API version that was requested, zero if none
	Version Version
	// Err the underlying cause
	Err error
}

func (e *LoadError) Error() string {
	if e.Version != 0 {
		return fmt.Sprintf("renderdoc: loading %s API %s: %v", e.Library, e.Version, e.Err)
	}
	return fmt.Sprintf("renderdoc: loading %s: %v", e.Library, e.Err)
}

// Unwrap exposes the cause so errors.Is can match the load sentinels.
func (e *LoadError) Unwrap() error { return e.Err }
