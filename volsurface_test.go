package motornet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereIntersections(t *testing.T) {
	vs := CreateVolumeSurface(Point3{}, 5.0, FluxMeter)

	// segment passing straight through: two piercings
	pts := vs.SphereIntersections(Segment3{
		Start: Point3{X: -10.0, Y: 0.0, Z: 0.0}, End: Point3{X: 10.0, Y: 0.0, Z: 0.0}})
	assert.Len(t, pts, 2)

	// segment from the center outward: one piercing
	pts = vs.SphereIntersections(Segment3{
		Start: Point3{}, End: Point3{X: 10.0, Y: 0.0, Z: 0.0}})
	assert.Len(t, pts, 1)
	assert.InDelta(t, 5.0, pts[0].X, 1e-9)

	// segment entirely outside
	pts = vs.SphereIntersections(Segment3{
		Start: Point3{X: 6.0, Y: 0.0, Z: 0.0}, End: Point3{X: 10.0, Y: 0.0, Z: 0.0}})
	assert.Empty(t, pts)

	// segment entirely inside
	pts = vs.SphereIntersections(Segment3{
		Start: Point3{X: -1.0, Y: 0.0, Z: 0.0}, End: Point3{X: 1.0, Y: 0.0, Z: 0.0}})
	assert.Empty(t, pts)

	// tangent line touches once
	pts = vs.SphereIntersections(Segment3{
		Start: Point3{X: -10.0, Y: 5.0, Z: 0.0}, End: Point3{X: 10.0, Y: 5.0, Z: 0.0}})
	assert.Len(t, pts, 1)

	// degenerate zero-length segment
	pts = vs.SphereIntersections(Segment3{Start: Point3{X: 5.0}, End: Point3{X: 5.0}})
	assert.Empty(t, pts)
}

func TestReflectContainment(t *testing.T) {
	vs := CreateVolumeSurface(Point3{}, 10.0, ReflectiveBarrier)

	// a modest overshoot bounces back inside
	last := Point3{X: 9.0, Y: 0.0, Z: 0.0}
	out := Point3{X: 11.0, Y: 0.0, Z: 0.0}
	in := vs.Reflect(last, out)
	assert.InDelta(t, 9.0, in.X, 1e-9)
	assert.LessOrEqual(t, in.Sub(vs.Center).Norm(), vs.Radius+1e-9)

	// even a step far past the diameter ends up contained
	in = vs.Reflect(Point3{X: 5.0, Y: 0.0, Z: 0.0}, Point3{X: 40.0, Y: 0.0, Z: 0.0})
	assert.LessOrEqual(t, in.Sub(vs.Center).Norm(), vs.Radius+1e-9)

	// oblique exit is also contained
	in = vs.Reflect(Point3{X: 8.0, Y: 3.0, Z: 0.0}, Point3{X: 12.0, Y: 7.0, Z: 2.0})
	assert.LessOrEqual(t, in.Sub(vs.Center).Norm(), vs.Radius+1e-9)
}

func TestFlux(t *testing.T) {
	vs := CreateVolumeSurface(Point3{}, 5.0, FluxMeter)

	segments := []Segment3{
		// through: 2 piercings
		{Start: Point3{X: -10.0, Y: 0.0, Z: 0.0}, End: Point3{X: 10.0, Y: 0.0, Z: 0.0}},
		// outward: 1 piercing
		{Start: Point3{}, End: Point3{X: 0.0, Y: 10.0, Z: 0.0}},
		// clear miss
		{Start: Point3{X: 20.0, Y: 20.0, Z: 0.0}, End: Point3{X: 30.0, Y: 20.0, Z: 0.0}},
	}

	assert.Equal(t, 3.0, vs.Flux(segments))
	assert.Equal(t, 0.0, vs.Flux(nil))
}

func TestSurfaceKindString(t *testing.T) {
	assert.Equal(t, "reflect", ReflectiveBarrier.String())
	assert.Equal(t, "flux", FluxMeter.String())
	assert.Equal(t, ReflectiveBarrier, surfaceKindFromStr["reflect"])
}
