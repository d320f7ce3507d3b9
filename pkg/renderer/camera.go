// Package renderer implements the camera, image-tile driver and
// concurrent worker pool that consume the integrators (spec.md §4.8,
// §4.9, §5), adapted from the teacher's pkg/renderer package.
package renderer

import (
	"math"

	"github.com/nragsdale/voltrace/pkg/core"
)

// CameraConfig describes a pinhole camera's pose and lens (spec.md §4.8),
// generalizing the teacher's fixed 16:9 NewCamera to an arbitrary pose,
// vertical FOV, focal distance and aperture.
type CameraConfig struct {
	Center, LookAt, Up core.Vec3
	Width, Height      int
	VFov               float64 // degrees
	FocalDistance      float64
	Aperture           float64
	Medium             core.Medium
}

// Camera is a thin-lens pinhole camera. Grounded on spec.md §4.8 and the
// teacher's pkg/renderer/camera.go viewport construction, generalized
// with an orthonormal basis built from the pose instead of a fixed
// forward axis.
type Camera struct {
	cfg                  CameraConfig
	origin               core.Vec3
	horizontal, vertical core.Vec3
	lowerLeftCorner      core.Vec3
	lensRadius           float64
	basis                core.ONB
}

// NewCamera builds a Camera from the given config.
func NewCamera(cfg CameraConfig) *Camera {
	theta := cfg.VFov * math.Pi / 180
	halfHeight := cfg.FocalDistance * math.Tan(theta/2)
	aspect := float64(cfg.Width) / float64(cfg.Height)
	halfWidth := aspect * halfHeight

	forward := cfg.LookAt.Subtract(cfg.Center).Normalize()
	right := forward.Cross(cfg.Up).Normalize()
	up := right.Cross(forward)

	horizontal := right.Multiply(2 * halfWidth)
	vertical := up.Multiply(2 * halfHeight)
	lowerLeftCorner := cfg.Center.Add(forward.Multiply(cfg.FocalDistance)).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		cfg:             cfg,
		origin:          cfg.Center,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		lensRadius:      cfg.Aperture / 2,
		basis:           core.ONB{U: right, V: up, W: forward},
	}
}

// GenerateRay maps pixel-plane coordinates (px, py in pixel units; they
// are divided by width/height here) plus a lens sample to a primary ray,
// per spec.md §4.8.
func (c *Camera) GenerateRay(px, py float64, lensSample core.Vec2) core.Ray {
	uPrime := px / float64(c.cfg.Width)
	vPrime := py / float64(c.cfg.Height)

	disk := core.UniformDisk(lensSample)
	lensOffset := c.basis.U.Multiply(disk.X * c.lensRadius).Add(c.basis.V.Multiply(disk.Y * c.lensRadius))

	// Row index grows downward in pixel space but spec.md §4.8's v'
	// grows upward (d uses (½−v')), so pixel row 0 must land at the TOP
	// of the frustum: invert the fraction from lowerLeftCorner.
	target := c.lowerLeftCorner.Add(c.horizontal.Multiply(uPrime)).Add(c.vertical.Multiply(1 - vPrime))
	origin := c.origin.Add(lensOffset)
	direction := target.Subtract(origin).Normalize()

	return core.NewRay(origin, direction).WithMedium(c.cfg.Medium)
}
