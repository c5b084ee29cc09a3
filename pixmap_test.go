package easel

import "testing"

func TestPixmapSetAt(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", pm.Width(), pm.Height())
	}

	red := RGB(255, 0, 0)
	pm.Set(2, 1, red)
	if got := pm.At(2, 1); got != red {
		t.Errorf("At(2,1) = %v, want %v", got, red)
	}
	if got := pm.At(0, 0); got != Transparent {
		t.Errorf("At(0,0) = %v, want transparent", got)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)

	// Out-of-bounds writes are silently dropped.
	for _, p := range []struct{ x, y int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100},
	} {
		pm.Set(p.x, p.y, White)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := pm.At(x, y); got != Transparent {
				t.Errorf("At(%d,%d) = %v after out-of-bounds writes", x, y, got)
			}
		}
	}

	// Out-of-bounds reads return transparent.
	if got := pm.At(-1, -1); got != Transparent {
		t.Errorf("At(-1,-1) = %v, want transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.At(x, y); got != Blue {
				t.Errorf("At(%d,%d) = %v, want blue", x, y, got)
			}
		}
	}
}

func TestPixmapRGBASharesBuffer(t *testing.T) {
	pm := NewPixmap(2, 2)
	img := pm.RGBA()

	pm.Set(1, 1, Red)
	r, _, _, _ := img.At(1, 1).RGBA()
	if r == 0 {
		t.Error("RGBA() view did not observe Set")
	}

	// Image() is a detached copy.
	snap := pm.Image()
	pm.Set(0, 0, Green)
	if _, g, _, _ := snap.At(0, 0).RGBA(); g != 0 {
		t.Error("Image() copy observed later writes")
	}
}
