// Package easel provides an immediate-mode 2D vector drawing layer and a
// fixed-size off-screen canvas, intended as the rendering backend for a
// higher-level drawing runtime.
//
// # Overview
//
// Shapes are rasterized through an explicit DrawContext bound to a Target;
// there is no ambient "current color" or "current render target" state.
// Filled shapes use closed algebraic boundary tests (disk, annulus, quad as
// two triangles), which makes the produced pixel sets deterministic and
// easy to verify. Antialiasing is deliberately out of scope.
//
// # Quick Start
//
//	import (
//		"github.com/easeldraw/easel"
//		"github.com/easeldraw/easel/backend/soft"
//	)
//
//	c, err := easel.NewCanvas(soft.Device{}, 640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	dc := c.Draw()
//	dc.SetColor(easel.Red)
//	dc.FillCircle(320, 240, 100)
//	dc.ThickLine(20, 20, 600, 80, 6)
//
// # Viewing
//
// A finished Canvas is handed to the viewport package, which owns the
// interactive pan/zoom session:
//
//	import ebitenbackend "github.com/easeldraw/easel/backend/ebiten"
//
//	if err := ebitenbackend.RunViewer(c); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// The module is organized into:
//   - Root package: geometry (Point, Mat2), Color, Pixmap, Canvas, DrawContext
//   - viewport: camera math and the frame-driven viewer state machine
//   - backend: named device registry; soft (headless) and ebiten (windowed)
//   - integration/gpuview: presenting a Canvas inside a gogpu application
package easel
