package renderdoc

import "fmt"

// Version selects which version of the in-application API is requested
// from the RenderDoc library. The numeric values are the ones the native
// entry point understands, packed as major*10000 + minor*100 + patch.
type Version uint32

const (
	// V100 is version 1.0.0 of the in-application API
	V100 Version = 10000
	// V101 is version 1.0.1 of the in-application API
	V101 Version = 10001
	// V102 is version 1.0.2 of the in-application API
	V102 Version = 10002
	// V110 is version 1.1.0 of the in-application API
	V110 Version = 10100
	// V111 is version 1.1.1 of the in-application API
	V111 Version = 10101
)

// Major returns the major component of the version
func (v Version) Major() int { return int(v) / 10000 }

// Minor returns the minor component of the version
func (v Version) Minor() int { return (int(v) % 10000) / 100 }

// Patch returns the patch component of the version
func (v Version) Patch() int { return int(v) % 100 }

// String returns the version in dotted form, i.e. "1.1.0"
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
