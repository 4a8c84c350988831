package motornet

// volsurface.go implements spherical boundary objects around a center
// point.  The two kinds share all their geometry; a ReflectiveBarrier
// bounces a motor's trajectory back inside, a FluxMeter only observes how
// much tube structure pierces the surface.

import (
	"math"
)

// SurfaceKind distinguishes how a volume surface acts on a trajectory
type SurfaceKind int

const (
	// ReflectiveBarrier confines a motor by specular reflection
	ReflectiveBarrier SurfaceKind = iota

	// FluxMeter measures tube crossings without touching the motor
	FluxMeter
)

var surfaceKindToStr map[SurfaceKind]string = map[SurfaceKind]string{
	ReflectiveBarrier: "reflect", FluxMeter: "flux"}

var surfaceKindFromStr map[string]SurfaceKind = map[string]SurfaceKind{
	"reflect": ReflectiveBarrier, "flux": FluxMeter}

func (sk SurfaceKind) String() string {
	return surfaceKindToStr[sk]
}

// A VolumeSurface is a sphere used as a boundary or as an instrument.  It
// refers to geometry but owns none of it
type VolumeSurface struct {
	Center Point3
	Radius float64
	Kind   SurfaceKind
}

// CreateVolumeSurface is a constructor
func CreateVolumeSurface(center Point3, radius float64, kind SurfaceKind) *VolumeSurface {
	vs := new(VolumeSurface)
	vs.Center = center
	vs.Radius = radius
	vs.Kind = kind
	return vs
}

// SphereIntersections returns the 0, 1 or 2 points where the finite segment
// pierces the sphere surface.  The segment is parametrized as
// start + t*(end-start) and the quadratic's roots are kept only for t in
// [0,1]; a degenerate zero-length segment yields no intersections
func (vs *VolumeSurface) SphereIntersections(seg Segment3) []Point3 {
	d := seg.Dir()
	m := seg.Start.Sub(vs.Center)

	a := d.Dot(d)
	if a == 0.0 {
		return nil
	}
	b := 2.0 * m.Dot(d)
	c := m.Dot(m) - vs.Radius*vs.Radius

	disc := b*b - 4.0*a*c
	if disc < 0.0 {
		return nil
	}

	var pts []Point3
	sq := math.Sqrt(disc)
	for _, t := range []float64{(-b - sq) / (2.0 * a), (-b + sq) / (2.0 * a)} {
		if t < 0.0 || t > 1.0 {
			continue
		}
		pts = append(pts, seg.Start.Add(d.Scale(t)))
		if disc == 0.0 {
			// tangent contact, both roots coincide
			break
		}
	}
	return pts
}

// Reflect mirrors a trajectory step that crossed the sphere surface back
// inside: the overshoot beyond the crossing point is reflected about the
// tangent plane at that point.  Steps that never cross are returned
// unchanged.  The result always satisfies the containment invariant
// |result - center| <= radius; a step long enough to reflect out the far
// side is clamped to the surface
func (vs *VolumeSurface) Reflect(last, current Point3) Point3 {
	hits := vs.SphereIntersections(Segment3{Start: last, End: current})
	if len(hits) == 0 {
		return current
	}
	hit := hits[0]

	normal := hit.Sub(vs.Center).Unit()
	over := current.Sub(hit)
	reflected := over.Add(normal.Scale(-2.0 * over.Dot(normal)))
	inside := hit.Add(reflected)

	d := inside.Sub(vs.Center)
	if d.Norm() > vs.Radius {
		inside = vs.Center.Add(d.Unit().Scale(vs.Radius))
	}
	return inside
}

// Flux counts the tube segment crossings through the sphere surface, one
// per intersection point, so a segment passing clean through contributes
// two.  A read-only instrumentation probe: nothing about the network or any
// motor changes
func (vs *VolumeSurface) Flux(segments []Segment3) float64 {
	crossings := 0
	for _, seg := range segments {
		crossings += len(vs.SphereIntersections(seg))
	}
	return float64(crossings)
}
