// Command easeldemo draws a demo scene on an easel canvas and either
// saves it as a PNG, opens the interactive pan/zoom viewer, or presents
// it inside a gogpu window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gogpu"

	"github.com/easeldraw/easel"
	ebitenbackend "github.com/easeldraw/easel/backend/ebiten"
	"github.com/easeldraw/easel/backend/soft"
	"github.com/easeldraw/easel/integration/gpuview"
	"github.com/easeldraw/easel/pen"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 600, "canvas height")
		mode    = flag.String("mode", "view", "output mode: view, png, gogpu")
		output  = flag.String("output", "demo.png", "output file for -mode=png")
		verbose = flag.Bool("v", false, "enable logging")
	)
	flag.Parse()

	if *verbose {
		easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	var device easel.Device
	switch *mode {
	case "view":
		device = ebitenbackend.Device{}
	default:
		device = soft.Device{}
	}

	canvas, err := easel.NewCanvas(device, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	drawScene(canvas.Draw(), *width, *height)

	switch *mode {
	case "png":
		savePNG(canvas, *output)
	case "view":
		if err := ebitenbackend.RunViewer(canvas); err != nil {
			log.Fatalf("Viewer failed: %v", err)
		}
	case "gogpu":
		runGogpu(canvas)
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}

// drawScene exercises every rasterizer primitive once.
func drawScene(dc *easel.DrawContext, w, h int) {
	// Filled and outlined circles
	dc.SetColor(easel.RGB(220, 60, 60))
	dc.FillCircle(w/4, h/4, 80)

	dc.SetColor(easel.RGB(60, 60, 220))
	dc.StrokeCircle(3*w/4, h/4, 80, 12)

	// Axis-aligned rectangles
	dc.SetColor(easel.RGB(60, 180, 90))
	dc.FillRect(w/8, h/2, 120, 90)

	dc.SetColor(easel.Hex("#cc8800"))
	dc.StrokeRect(w/8+160, h/2, 120, 90, 6)

	// Rotated rectangles
	dc.SetColor(easel.RGB(160, 60, 200))
	dc.FillRotatedRect(w/2, 2*h/3, 140, 70, math.Pi/8)

	dc.SetColor(easel.RGB(40, 40, 40))
	dc.StrokeRotatedRect(w/2+40, h/3, 120, 80, -math.Pi/10, 5)

	// Thick line across the scene
	dc.SetColor(easel.RGB(200, 160, 40))
	dc.ThickLine(20, float64(h)-30, float64(w)-20, float64(h)-90, 8)

	// Pen spiral
	p := pen.New(dc, float64(3*w)/4, float64(3*h)/4)
	p.SetColor(easel.RGB(30, 120, 160))
	p.SetThickness(3)
	for i := 0; i < 40; i++ {
		p.Forward(4 + 2*float64(i))
		p.Turn(math.Pi / 7)
	}
}

func savePNG(canvas *easel.Canvas, path string) {
	pm, ok := canvas.Target().(*easel.Pixmap)
	if !ok {
		log.Fatal("PNG output needs the soft backend")
	}
	if err := pm.SavePNG(path); err != nil {
		log.Fatalf("Failed to save PNG: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)", path, canvas.Width(), canvas.Height())
}

// runGogpu presents the canvas inside a gogpu window (no pan/zoom; the
// interactive controls live in the ebiten viewer).
func runGogpu(canvas *easel.Canvas) {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("easel: gogpu presentation").
		WithSize(canvas.Width(), canvas.Height()))

	var presenter *gpuview.Presenter
	app.OnDraw(func(dc *gogpu.Context) {
		if presenter == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			presenter, err = gpuview.New(provider, canvas)
			if err != nil {
				log.Fatalf("Failed to create presenter: %v", err)
			}
		}
		if err := presenter.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Printf("Render error: %v", err)
		}
	})

	app.OnClose(func() {
		if presenter != nil {
			_ = presenter.Close()
		}
		_ = canvas.Close()
	})

	if err := app.Run(); err != nil {
		log.Fatalf("gogpu app failed: %v", err)
	}
}
