package soft

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/easeldraw/easel"
	"github.com/easeldraw/easel/viewport"
)

// Window is an offscreen presentation surface backed by a pixmap.
//
// Blit scales the canvas into the destination rectangle with
// nearest-neighbor sampling: the viewer magnifies pixels, it does not
// smooth them. Present only counts frames; there is no display to wait
// for.
type Window struct {
	fb        *easel.Pixmap
	presented int
}

// NewWindow creates an offscreen window of the given pixel size.
func NewWindow(width, height int) *Window {
	return &Window{fb: easel.NewPixmap(width, height)}
}

// Size returns the window size in pixels.
func (w *Window) Size() (int, int) {
	return w.fb.Width(), w.fb.Height()
}

// Clear fills the window with a color.
func (w *Window) Clear(c easel.Color) {
	w.fb.Clear(c)
}

// Blit draws the source target scaled into the destination rectangle
// using nearest-neighbor sampling. Parts of the rectangle outside the
// window clip silently.
func (w *Window) Blit(src easel.Target, dst viewport.Rect) {
	r := image.Rect(
		int(math.Round(dst.X)),
		int(math.Round(dst.Y)),
		int(math.Round(dst.X+dst.W)),
		int(math.Round(dst.Y+dst.H)),
	)
	img := targetImage(src)
	xdraw.NearestNeighbor.Scale(w.fb.RGBA(), r, img, img.Bounds(), xdraw.Over, nil)
}

// Present completes the frame. For the offscreen window this is just a
// frame count.
func (w *Window) Present() error {
	w.presented++
	return nil
}

// Presented returns the number of completed frames.
func (w *Window) Presented() int {
	return w.presented
}

// Framebuffer returns the window's backing pixmap.
func (w *Window) Framebuffer() *easel.Pixmap {
	return w.fb
}

// targetImage returns an image view of the target, sharing memory when
// the target exposes its buffer.
func targetImage(t easel.Target) *image.RGBA {
	if pm, ok := t.(*easel.Pixmap); ok {
		return pm.RGBA()
	}
	w, h := t.Width(), t.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := t.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

var _ viewport.Window = (*Window)(nil)
