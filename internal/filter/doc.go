// Package filter implements the CPU pixel filters behind the photo effects.
//
// Filters operate on *image.RGBA with straight (non-premultiplied) alpha,
// which is what capture readback produces. In-place filters modify their
// argument; the others return a new image.
//
//   - ColorMatrix: brightness, contrast, hue and saturation as 4x5 matrices
//   - Blur: separable Gaussian blur with cached kernels
//   - Vignette, ChromaticAberration, Grain, Bloom
//   - DepthOfField: blends a blurred copy by circle of confusion
//
// Row loops run on the shared worker pool from internal/parallel.
package filter
