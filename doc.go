// Package spheres renders an animated two-sphere scene on the CPU and
// presents it with [Ebitengine].
//
// One ray is cast per pixel against two analytic spheres. The visible hit
// is shaded into the blue channel by a directional light that orbits a
// little further every frame.
//
// # Quick start
//
// [Run] creates a window and game loop for you:
//
//	world := spheres.NewWorld()
//	if err := spheres.Run(world, spheres.RunConfig{ShowFPS: true}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, own the pixel buffer yourself and call [World.Tick] and
// [World.Draw] once per frame:
//
//	pix := make([]byte, 640*480*4)
//	world.Tick()
//	world.Draw(pix, 640, 480)
//	img.WritePixels(pix)
//
// # Animation state
//
// A [World] holds the light direction and a frame counter that wraps at
// 2^32. The light for frame i is (sin(i*0.01), cos(i*0.01), -1) and is
// deliberately left un-normalized.
//
// # Headless rendering
//
// [FrameScript] sequences waits and screenshots. [FrameScript.Play] runs a
// script without a window and writes PNGs; the same script can drive the
// windowed viewer through [RunConfig.Script].
//
// [Ebitengine]: https://ebitengine.org
package spheres
