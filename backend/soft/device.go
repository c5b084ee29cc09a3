// Package soft provides the pure-software backend: pixmap render targets,
// an offscreen window, and a scripted input source. It needs no display
// and is the backend used for tests and headless rendering.
package soft

import (
	"fmt"

	"github.com/easeldraw/easel"
	"github.com/easeldraw/easel/backend"
)

// MaxTargetSide is the allocation ceiling per target dimension. Requests
// beyond it fail the way a GPU backend fails when a texture exceeds the
// hardware limit.
const MaxTargetSide = 16384

// Device allocates CPU pixmap targets.
type Device struct{}

// NewTarget allocates a pixmap target of the given pixel size.
func (Device) NewTarget(width, height int) (easel.Target, error) {
	if width > MaxTargetSide || height > MaxTargetSide {
		return nil, fmt.Errorf("soft: %dx%d exceeds maximum target side %d",
			width, height, MaxTargetSide)
	}
	return easel.NewPixmap(width, height), nil
}

func init() {
	backend.Register("soft", 10, func() (easel.Device, error) {
		return Device{}, nil
	}, nil)
}
