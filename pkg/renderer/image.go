package renderer

import "github.com/nragsdale/voltrace/pkg/core"

// Image is a linear-radiance RGB framebuffer (spec.md §6 "Produced": a
// 32-bit-float RGB image). Adapted from the teacher's PixelStats
// accumulator pattern, flattened to one pass since spec.md §4.9 asks for
// a fixed sample count per pixel rather than adaptive sampling.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, length Width*Height
}

// NewImage allocates a black image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the color at (x, y).
func (img *Image) At(x, y int) core.Vec3 { return img.Pixels[y*img.Width+x] }

// Set writes the color at (x, y). Tiles never overlap, so concurrent
// writers touching disjoint pixels need no synchronization
// (spec.md §5 "the image accumulator is partitioned so writes never
// alias between workers").
func (img *Image) Set(x, y int, c core.Vec3) { img.Pixels[y*img.Width+x] = c }
