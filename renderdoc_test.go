package renderdoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The Test*Live tests drive the installed RenderDoc library and skip
// themselves on machines that do not have one.

func loadOrSkip(t *testing.T) *API {
	t.Helper()

	a, err := New()
	if errors.Is(err, ErrLibraryNotFound) || errors.Is(err, ErrUnsupportedPlatform) {
		t.Skipf("renderdoc library unavailable: %v", err)
	}
	require.NoError(t, err)
	return a
}

func TestNewLive(t *testing.T) {
	a := loadOrSkip(t)
	defer a.Destroy()

	assert.Equal(t, V100, a.Version())

	major, _, _ := a.GetAPIVersion()
	assert.GreaterOrEqual(t, major, 1)

	// defaults documented by the native library
	vsync, err := a.GetCaptureOptionU32(AllowVSync)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), vsync)
}

func TestNewV110Live(t *testing.T) {
	a, err := NewV110()
	if errors.Is(err, ErrLibraryNotFound) || errors.Is(err, ErrUnsupportedPlatform) {
		t.Skipf("renderdoc library unavailable: %v", err)
	}
	if errors.Is(err, ErrVersionNotSupported) {
		t.Skipf("installed library predates API 1.1: %v", err)
	}
	require.NoError(t, err)
	defer a.Destroy()

	assert.Equal(t, V110, a.Version())
}

func TestSingleSessionPerProcessLive(t *testing.T) {
	a := loadOrSkip(t)

	// a second load while the first handle lives must be refused
	_, err := New()
	assert.ErrorIs(t, err, ErrAlreadyLoaded)

	require.NoError(t, a.Destroy())

	// destroying freed the slot
	b := loadOrSkip(t)
	require.NoError(t, b.Destroy())
}

func TestUnsupportedVersionRequestLive(t *testing.T) {
	// No shipped library advertises a 2.0 API
	a, err := NewWithVersion(Version(20000))
	if errors.Is(err, ErrLibraryNotFound) || errors.Is(err, ErrUnsupportedPlatform) {
		t.Skipf("renderdoc library unavailable: %v", err)
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionNotSupported)
	assert.Nil(t, a)

	// the refused request released the process slot
	b := loadOrSkip(t)
	require.NoError(t, b.Destroy())
}

func TestLoadError(t *testing.T) {
	err := &LoadError{Library: "librenderdoc.so", Version: V110, Err: ErrVersionNotSupported}
	assert.ErrorIs(t, err, ErrVersionNotSupported)
	assert.Contains(t, err.Error(), "librenderdoc.so")
	assert.Contains(t, err.Error(), "1.1.0")

	err = &LoadError{Library: "renderdoc.dll", Err: ErrLibraryNotFound}
	assert.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "renderdoc.dll")
	assert.NotContains(t, err.Error(), "0.0.0")
}
