package renderdoc

import (
	"fmt"
	"strings"
)

// OverlayBits controls the in-application overlay RenderDoc draws on
// top of hooked windows. The values match the native RENDERDOC_OverlayBits
// enum and combine as a bitmask.
type OverlayBits uint32

const (
	// OverlayEnabled is the master toggle; without it nothing is drawn
	OverlayEnabled OverlayBits = 1 << 0
	// OverlayFrameRate shows average, minimum and maximum frame times
	OverlayFrameRate OverlayBits = 1 << 1
	// OverlayFrameNumber shows the current frame number
	OverlayFrameNumber OverlayBits = 1 << 2
	// OverlayCaptureList shows the number of captures made so far
	OverlayCaptureList OverlayBits = 1 << 3

	// OverlayDefault is what the overlay shows when nothing was masked
	OverlayDefault = OverlayEnabled | OverlayFrameRate | OverlayFrameNumber | OverlayCaptureList

	// OverlayAll has every bit set
	OverlayAll OverlayBits = ^OverlayBits(0)
	// OverlayNone has no bits set
	OverlayNone OverlayBits = 0
)

// Has reports whether every bit in mask is set.
func (b OverlayBits) Has(mask OverlayBits) bool { return b&mask == mask }

// String lists the set bits by name, i.e. "Enabled|FrameRate".
func (b OverlayBits) String() string {
	if b == OverlayNone {
		return "None"
	}
	names := []string{}
	for _, f := range []struct {
		bit  OverlayBits
		name string
	}{
		{OverlayEnabled, "Enabled"},
		{OverlayFrameRate, "FrameRate"},
		{OverlayFrameNumber, "FrameNumber"},
		{OverlayCaptureList, "CaptureList"},
	} {
		if b.Has(f.bit) {
			names = append(names, f.name)
			b &^= f.bit
		}
	}
	if b != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(b)))
	}
	return strings.Join(names, "|")
}
