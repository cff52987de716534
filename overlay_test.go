package renderdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayBitValues(t *testing.T) {
	assert.Equal(t, uint32(0x1), uint32(OverlayEnabled))
	assert.Equal(t, uint32(0x2), uint32(OverlayFrameRate))
	assert.Equal(t, uint32(0x4), uint32(OverlayFrameNumber))
	assert.Equal(t, uint32(0x8), uint32(OverlayCaptureList))

	assert.Equal(t, OverlayEnabled|OverlayFrameRate|OverlayFrameNumber|OverlayCaptureList, OverlayDefault)
	assert.Equal(t, ^uint32(0), uint32(OverlayAll))
	assert.Equal(t, uint32(0), uint32(OverlayNone))
}

func TestOverlayBitsHas(t *testing.T) {
	b := OverlayEnabled | OverlayFrameRate

	assert.True(t, b.Has(OverlayEnabled))
	assert.True(t, b.Has(OverlayFrameRate))
	assert.True(t, b.Has(OverlayEnabled|OverlayFrameRate))
	assert.False(t, b.Has(OverlayCaptureList))
	assert.False(t, b.Has(OverlayDefault))

	assert.True(t, OverlayAll.Has(OverlayDefault))
}

func TestOverlayBitsString(t *testing.T) {
	assert.Equal(t, "None", OverlayNone.String())
	assert.Equal(t, "Enabled", OverlayEnabled.String())
	assert.Equal(t, "Enabled|FrameRate", (OverlayEnabled | OverlayFrameRate).String())
	assert.Equal(t, "Enabled|FrameRate|FrameNumber|CaptureList", OverlayDefault.String())

	// bits this binding does not know are kept visible
	assert.Equal(t, "Enabled|0x100", (OverlayEnabled | OverlayBits(0x100)).String())
}
