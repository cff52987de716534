package renderdoc

import (
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// entrySymbol is the one symbol the RenderDoc library exports for
// in-application use.
const entrySymbol = "RENDERDOC_GetAPI"

// RenderDoc hooks a process exactly once, so two live sessions would
// fight over the same native state. The guard below holds the
// process-wide slot; Destroy frees it for the next load.
var (
	loadMu     sync.Mutex
	loadActive bool
)

// library is one loaded RenderDoc session: the platform library handle
// plus the resolved RENDERDOC_GetAPI entry point.
type library struct {
	name   string
	handle uintptr
	getAPI unsafe.Pointer
	closed bool
}

// openLibrary claims the process-wide slot and attaches to the native
// library. When RenderDoc injected itself beforehand this attaches to
// the resident copy; otherwise the library is loaded fresh.
func openLibrary() (*library, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if loadActive {
		return nil, &LoadError{Library: nativeLibraryName(), Err: ErrAlreadyLoaded}
	}

	name, handle, getAPI, err := loadNative()
	if err != nil {
		return nil, err
	}

	loadActive = true
	logrus.WithFields(logrus.Fields{
		"library": name,
	}).Debug("renderdoc library attached")

	return &library{name: name, handle: handle, getAPI: getAPI}, nil
}

// close releases the native handle and frees the process-wide slot so
// another load may follow. Safe to call more than once.
func (l *library) close() error {
	loadMu.Lock()
	defer loadMu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	loadActive = false

	logrus.WithFields(logrus.Fields{
		"library": l.name,
	}).Debug("renderdoc library released")

	if l.handle == 0 {
		return nil
	}
	return closeNative(l.handle)
}
