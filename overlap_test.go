package motornet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindNearestTube(t *testing.T) {
	segments := []Segment3{
		{Start: Point3{X: 0.0, Y: 0.0, Z: 0.0}, End: Point3{X: 10.0, Y: 0.0, Z: 0.0}},
		{Start: Point3{X: 0.0, Y: 100.0, Z: 0.0}, End: Point3{X: 10.0, Y: 100.0, Z: 0.0}},
	}

	// within radius of the first segment
	idx, found := FindNearestTube(Point3{X: 5.0, Y: 3.0, Z: 0.0}, segments, 5.0)
	assert.True(t, found)
	assert.Equal(t, 0, idx)

	// closer to the second
	idx, found = FindNearestTube(Point3{X: 5.0, Y: 98.0, Z: 0.0}, segments, 5.0)
	assert.True(t, found)
	assert.Equal(t, 1, idx)

	// nothing within radius
	_, found = FindNearestTube(Point3{X: 5.0, Y: 50.0, Z: 0.0}, segments, 5.0)
	assert.False(t, found)

	// empty geometry never captures
	_, found = FindNearestTube(Point3{}, nil, 5.0)
	assert.False(t, found)
}

func TestSegmentOverlaps3DCrossing(t *testing.T) {
	probe := Segment3{Start: Point3{X: 0.0, Y: 0.0, Z: 0.0}, End: Point3{X: 5.0, Y: 5.0, Z: 0.0}}
	segments := []Segment3{
		{Start: Point3{X: 5.0, Y: 0.0, Z: 0.0}, End: Point3{X: 0.0, Y: 5.0, Z: 0.0}},
	}

	ovs := SegmentOverlaps3D(probe, segments)
	assert.Len(t, ovs, 1)
	assert.Equal(t, 0, ovs[0].Segment)
	assert.InDelta(t, 2.5, ovs[0].Point.X, 1e-9)
	assert.InDelta(t, 2.5, ovs[0].Point.Y, 1e-9)
	assert.InDelta(t, 0.0, ovs[0].Point.Z, 1e-9)
}

func TestSegmentOverlaps3DDisjoint(t *testing.T) {
	probe := Segment3{Start: Point3{X: 0.0, Y: 0.0, Z: 0.0}, End: Point3{X: 1.0, Y: 0.0, Z: 0.0}}

	// parallel segment: the least-squares system is rank deficient and the
	// probe must report no overlap rather than a NaN point
	parallel := []Segment3{
		{Start: Point3{X: 0.0, Y: 1.0, Z: 0.0}, End: Point3{X: 1.0, Y: 1.0, Z: 0.0}},
	}
	assert.Empty(t, SegmentOverlaps3D(probe, parallel))

	// crossing lines whose intersection lies beyond both finite segments
	farCross := []Segment3{
		{Start: Point3{X: 10.0, Y: -1.0, Z: 0.0}, End: Point3{X: 10.0, Y: 1.0, Z: 0.0}},
	}
	assert.Empty(t, SegmentOverlaps3D(probe, farCross))

	for _, ov := range SegmentOverlaps3D(probe, parallel) {
		assert.False(t, math.IsNaN(ov.Point.X))
	}
}

func TestAllOverlaps(t *testing.T) {
	segments := []Segment3{
		{Start: Point3{X: 0.0, Y: 0.0, Z: 0.0}, End: Point3{X: 5.0, Y: 5.0, Z: 0.0}},
		{Start: Point3{X: 5.0, Y: 0.0, Z: 0.0}, End: Point3{X: 0.0, Y: 5.0, Z: 0.0}},
		{Start: Point3{X: 100.0, Y: 0.0, Z: 0.0}, End: Point3{X: 101.0, Y: 0.0, Z: 0.0}},
	}

	crossings := AllOverlaps(segments)

	// the one crossing is discovered from both sides
	assert.Len(t, crossings, 2)
	for _, c := range crossings {
		assert.InDelta(t, 2.5, c.Point.X, 1e-9)
		assert.InDelta(t, 2.5, c.Point.Y, 1e-9)
	}

	pts := OverlapPoints(crossings)
	assert.Len(t, pts, 2)
}
