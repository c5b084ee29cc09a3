package easel

import (
	"errors"
	"testing"
)

// memDevice allocates plain pixmaps.
type memDevice struct{}

func (memDevice) NewTarget(width, height int) (Target, error) {
	return NewPixmap(width, height), nil
}

// failDevice always fails allocation.
type failDevice struct{}

func (failDevice) NewTarget(width, height int) (Target, error) {
	return nil, errors.New("out of memory")
}

func TestNewCanvasInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -5, 10},
		{"negative height", 10, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCanvas(memDevice{}, tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("error = %v, want ErrInvalidDimensions", err)
			}
			if c != nil {
				t.Error("canvas created despite invalid dimensions")
			}
		})
	}
}

func TestNewCanvasNilDevice(t *testing.T) {
	c, err := NewCanvas(nil, 10, 10)
	if !errors.Is(err, ErrNilDevice) {
		t.Errorf("error = %v, want ErrNilDevice", err)
	}
	if c != nil {
		t.Error("canvas created despite nil device")
	}
}

func TestNewCanvasAllocationFailure(t *testing.T) {
	c, err := NewCanvas(failDevice{}, 10, 10)
	if !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("error = %v, want ErrAllocationFailed", err)
	}
	if c != nil {
		t.Error("canvas created despite allocation failure")
	}
}

func TestNewCanvasDefaults(t *testing.T) {
	c, err := NewCanvas(memDevice{}, 100, 100)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	defer c.Close()

	if c.Width() != 100 || c.Height() != 100 {
		t.Errorf("size = %dx%d, want 100x100", c.Width(), c.Height())
	}
	if w, h := c.Size(); w != 100 || h != 100 {
		t.Errorf("Size() = %dx%d, want 100x100", w, h)
	}

	// A fresh canvas is fully cleared to the background color.
	if got := c.Target().At(5, 5); got != DefaultBackground {
		t.Errorf("background pixel = %v, want %v", got, DefaultBackground)
	}
	if got := c.Draw().Color(); got != DefaultForeground {
		t.Errorf("initial draw color = %v, want %v", got, DefaultForeground)
	}
}

func TestCanvasDrawEndToEnd(t *testing.T) {
	c, err := NewCanvas(memDevice{}, 100, 100)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	defer c.Close()

	c.Draw().FillRect(10, 10, 5, 5)

	if got := c.Target().At(12, 12); got != DefaultForeground {
		t.Errorf("interior pixel = %v, want foreground %v", got, DefaultForeground)
	}
	if got := c.Target().At(0, 0); got != DefaultBackground {
		t.Errorf("untouched pixel = %v, want background %v", got, DefaultBackground)
	}
	if got := c.Target().At(15, 15); got != DefaultBackground {
		t.Errorf("pixel past rect = %v, want background %v", got, DefaultBackground)
	}
}

func TestCanvasOptions(t *testing.T) {
	c, err := NewCanvas(memDevice{}, 10, 10,
		WithBackground(Blue),
		WithForeground(Yellow),
	)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	defer c.Close()

	if got := c.Target().At(3, 3); got != Blue {
		t.Errorf("background pixel = %v, want blue", got)
	}
	if got := c.Draw().Color(); got != Yellow {
		t.Errorf("draw color = %v, want yellow", got)
	}
}

func TestCanvasClear(t *testing.T) {
	c, err := NewCanvas(memDevice{}, 10, 10)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	defer c.Close()

	c.Draw().FillRect(0, 0, 10, 10)
	if err := c.Clear(Green); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := c.Target().At(4, 4); got != Green {
		t.Errorf("pixel after Clear = %v, want green", got)
	}

	c.Close()
	if err := c.Clear(Red); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Clear on closed canvas = %v, want ErrCanvasClosed", err)
	}
}

func TestCanvasClose(t *testing.T) {
	c, err := NewCanvas(memDevice{}, 10, 10)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if c.Draw() != nil {
		t.Error("Draw() non-nil after Close")
	}
	if c.Target() != nil {
		t.Error("Target() non-nil after Close")
	}
}
