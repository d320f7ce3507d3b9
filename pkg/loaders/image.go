package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nragsdale/voltrace/pkg/core"
)

// LoadImage decodes a PNG or JPEG file into a row-major Vec3 buffer, for
// use as a background.EquirectangularImage (spec.md §6 background.type ==
// "image"). Adapted from the teacher's pkg/loaders/image.go.
func LoadImage(filename string) (width, height int, pixels []core.Vec3, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("opening background image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decoding background image: %w", err)
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pixels = make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0)
		}
	}
	return width, height, pixels, nil
}
