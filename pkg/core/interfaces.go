package core

// Logger is the narrow logging surface the renderer and loaders depend on,
// so that package does not need to know about zap directly.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Sampler produces the uniform random numbers consumed by materials, phase
// functions, media and integrators. Implementations (independent,
// stratified) differ in how samples are structured across a pixel;
// callers must not depend on anything beyond the [0,1) contract.
type Sampler interface {
	Next1D() float64
	Next2D() Vec2

	// StartPixel resets per-pixel sample-index bookkeeping (the stratified
	// sampler uses this to restart its sequence for the pixel).
	StartPixel(x, y int)
	// StartNextSample advances to the next of the pixel's image samples.
	StartNextSample()
}

// HitInfo is the intersection record a Scene reports back for a ray.
// Material is nil for a boundary-only transition surface: a surface that
// only marks a medium change, not an optical interface.
type HitInfo struct {
	T        float64
	P        Vec3 // world-space hit point
	Gn       Vec3 // geometric normal
	Sn       Vec3 // shading normal
	UV       Vec2
	Material Material
	MI       *MediumInterface
}

// MediumInterface is the ordered pair of media a surface separates.
// Inside/Outside are nil for vacuum.
type MediumInterface struct {
	Inside, Outside Medium
}

// NewMediumInterface builds an interface that is not a transition: both
// sides reference the same (possibly nil) medium.
func NewMediumInterface(m Medium) MediumInterface {
	return MediumInterface{Inside: m, Outside: m}
}

// IsMediumTransition reports whether crossing the surface changes medium.
func (mi MediumInterface) IsMediumTransition() bool {
	return mi.Inside != mi.Outside
}

// GetMedium returns the medium a ray is entering given the hit's shading
// normal: Inside if the ray travels against the normal, else Outside.
func (mi MediumInterface) GetMedium(hit HitInfo, rayDirection Vec3) Medium {
	if hit.Sn.Dot(rayDirection) < 0 {
		return mi.Inside
	}
	return mi.Outside
}

// ScatterRecord is the result of sampling a scattering direction at a
// material interaction.
type ScatterRecord struct {
	Attenuation Vec3
	Scattered   Vec3 // direction, unit length
	IsSpecular  bool
}

// Material is the sum-of-variants BSDF contract (spec.md §4.2). All
// methods are pure and safe to call concurrently across workers.
type Material interface {
	// Scatter samples a scattered direction using the material's own
	// importance sampling strategy; used by the recursive/non-MIS path
	// and by the specular branch of the MIS integrator.
	Scatter(rayIn Ray, hit HitInfo, sampler Sampler) (ScatterRecord, bool)

	// Eval evaluates the BSDF for specific incoming/outgoing directions.
	// Only meaningful when the sampled scatter was non-specular.
	Eval(wo, wi Vec3, hit HitInfo) Vec3

	// PDF returns the density of sampling wi via Scatter, given wo.
	PDF(wo, wi Vec3, hit HitInfo) float64

	// Emitted returns emitted radiance along rayIn at hit; zero for
	// non-emissive materials.
	Emitted(rayIn Ray, hit HitInfo) Vec3

	// IsEmissive reports whether Emitted can return non-zero radiance.
	IsEmissive() bool
}

// PhaseFunction is the sum-of-variants angular scattering distribution at
// a medium interaction (spec.md §4.3).
type PhaseFunction interface {
	// P evaluates the phase function for the direction pair (wo, wi).
	P(wo, wi Vec3) float64
	// Sample draws a direction wi and returns its density (== P(wo,wi)
	// for Henyey-Greenstein, since importance sampling is exact there).
	Sample(wo Vec3, u Vec2) (wi Vec3, pdf float64)
}

// MediumInteraction records a sampled scattering event inside a medium.
type MediumInteraction struct {
	P      Vec3
	Wo     Vec3
	Medium Medium
}

// Valid reports whether this interaction was actually populated by
// Medium.Sample (as opposed to the ray passing through unscattered).
func (mi MediumInteraction) Valid() bool { return mi.Medium != nil }

// Medium is the sum-of-variants participating medium contract (spec.md
// §4.4). Tr and Sample normalize the ray's direction internally; callers
// must not rely on a pre-existing unit direction.
type Medium interface {
	// Tr returns the transmittance over [ray.Mint, ray.Maxt].
	Tr(ray Ray, sampler Sampler) float64
	// Sample draws a free-flight distance; on a medium-interaction event
	// (t* < ray.Maxt) it populates mi and returns sigma_s/sigma_t, else it
	// returns 1 with mi left invalid.
	Sample(ray Ray, sampler Sampler) (weight float64, mi MediumInteraction)
	// Phase returns the medium's phase function.
	Phase() PhaseFunction
}

// Background returns incoming radiance along rays that escape the scene.
type Background interface {
	Emitted(ray Ray) Vec3
}

// EmitterSet samples a direction toward the scene's emitters from a
// shading point, and reports the density of that sampling process.
type EmitterSet interface {
	// Sample returns a direction from x that may reach an emitter, and the
	// solid-angle density of having sampled it. pdf == 0 means the
	// direction could not have been produced by this sampler.
	Sample(x Vec3, u Vec2) (wi Vec3, pdf float64)
	// PDF evaluates the density of the direction wi from x under this
	// sampler, without drawing a new sample.
	PDF(x Vec3, wi Vec3) float64
}

// Scene is the black-box the integrators consume: ray/scene intersection,
// a background, an emitter set, and a camera. Built once and shared
// read-only across workers.
type Scene interface {
	Intersect(ray Ray) (HitInfo, bool)
	Background() Background
	Emitters() EmitterSet
	Camera() Camera
}

// Camera maps pixel-plane coordinates plus lens samples to primary rays.
type Camera interface {
	GenerateRay(px, py float64, lensSample Vec2) Ray
}
