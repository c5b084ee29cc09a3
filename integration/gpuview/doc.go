// Package gpuview presents an easel Canvas inside a gogpu application.
//
// The canvas stays a CPU pixel target; gpuview owns the CPU-to-GPU hop:
// it lazily creates a texture from the canvas pixels through the
// application's texture creator, re-uploads when the canvas is marked
// dirty, and draws the texture through the frame's texture drawer.
//
// Usage inside a gogpu app:
//
//	app := gogpu.NewApp(gogpu.DefaultConfig().WithTitle("easel"))
//
//	var pv *gpuview.Presenter
//	app.OnDraw(func(dc *gogpu.Context) {
//		if pv == nil {
//			pv, _ = gpuview.New(app.GPUContextProvider(), canvas)
//		}
//		if err := pv.RenderTo(dc.AsTextureDrawer()); err != nil {
//			log.Printf("render: %v", err)
//		}
//	})
package gpuview
