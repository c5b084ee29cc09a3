package gpuview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/easeldraw/easel"
)

// Common errors returned by Presenter operations.
var (
	// ErrPresenterClosed is returned when operations are attempted on a
	// closed presenter.
	ErrPresenterClosed = errors.New("gpuview: presenter is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpuview: nil DeviceProvider")

	// ErrNilCanvas is returned when a nil canvas is passed.
	ErrNilCanvas = errors.New("gpuview: nil canvas")

	// ErrNoRawTarget is returned when the canvas target does not expose
	// raw RGBA pixels for upload.
	ErrNoRawTarget = errors.New("gpuview: canvas target exposes no raw pixel data")

	// ErrInvalidRenderer is returned when the draw context has no texture
	// creator.
	ErrInvalidRenderer = errors.New("gpuview: draw context has no texture creator")

	// ErrInvalidDrawContext is returned when the created texture cannot
	// be drawn by the draw context.
	ErrInvalidDrawContext = errors.New("gpuview: texture not drawable by draw context")
)

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads a canvas to a GPU texture and draws it each frame.
//
// Presenter is NOT safe for concurrent use; drive it from the
// application's draw callback only.
type Presenter struct {
	canvas   *easel.Canvas
	provider gpucontext.DeviceProvider
	texture  any  // lazy-created GPU texture
	dirty    bool // canvas pixels need re-upload
	closed   bool
}

// New creates a presenter for the canvas. The provider should come from
// the application (gogpu.App.GPUContextProvider()).
func New(provider gpucontext.DeviceProvider, canvas *easel.Canvas) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if canvas == nil {
		return nil, ErrNilCanvas
	}
	return &Presenter{
		canvas:   canvas,
		provider: provider,
		dirty:    true, // first Flush uploads
	}, nil
}

// MarkDirty flags the canvas pixels for re-upload on the next frame.
// Call it after drawing on the canvas mid-session.
func (p *Presenter) MarkDirty() {
	p.dirty = true
}

// IsDirty returns true if an upload is pending.
func (p *Presenter) IsDirty() bool {
	return p.dirty
}

// Flush prepares the texture for drawing. The first call produces a
// placeholder that RenderTo turns into a real GPU texture once it has a
// creator; later calls re-upload only when dirty.
func (p *Presenter) Flush() (any, error) {
	if p.closed {
		return nil, ErrPresenterClosed
	}

	if !p.dirty && p.texture != nil {
		return p.texture, nil
	}

	raw, ok := p.canvas.Target().(easel.RawTarget)
	if !ok {
		return nil, ErrNoRawTarget
	}
	data := raw.Data()

	if p.texture == nil {
		p.texture = &pendingTexture{
			width:  p.canvas.Width(),
			height: p.canvas.Height(),
			data:   data,
		}
		p.dirty = false
		return p.texture, nil
	}

	if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gpuview: texture update failed: %w", err)
		}
	}
	p.dirty = false
	return p.texture, nil
}

// RenderTo draws the canvas at the window origin.
func (p *Presenter) RenderTo(dc gpucontext.TextureDrawer) error {
	return p.RenderToPosition(dc, 0, 0)
}

// RenderToPosition draws the canvas at the given window position.
func (p *Presenter) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if p.closed {
		return ErrPresenterClosed
	}

	tex, err := p.Flush()
	if err != nil {
		return err
	}

	// A pending texture becomes a real GPU texture now that a creator is
	// reachable through the draw context.
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gpuview: NewTextureFromRGBA failed: %w", err)
		}
		p.texture = realTex
		tex = realTex
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// Texture returns the current GPU texture without flushing.
// Returns nil if no texture has been created yet.
func (p *Presenter) Texture() any {
	return p.texture
}

// Close releases the GPU texture. The canvas itself stays open: the
// presenter borrows it, it does not own it.
// Close is idempotent - multiple calls are safe.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if destroyer, ok := p.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	p.texture = nil
	p.provider = nil
	return nil
}

// pendingTexture is a placeholder holding the upload request until a
// texture creator is available (inside RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
