package motornet

// field.go derives a direction field from tube geometry: one sample per
// segment, anchored at the segment's start and pointing along it.  The field
// is read-only derived data; it goes stale the moment its network is
// regenerated and must be derived again.

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A FieldSample pairs a sample location with the tube direction there
type FieldSample struct {
	Origin Point3
	Dir    Vec3
}

// A VectorField is an ordered collection of direction samples
type VectorField struct {
	Samples []FieldSample
}

// DeriveField builds the vector field of a segment collection: sample i
// originates at segment i's start and points end minus start
func DeriveField(segments []Segment3) *VectorField {
	vf := new(VectorField)
	vf.Samples = make([]FieldSample, len(segments))
	for i, seg := range segments {
		vf.Samples[i] = FieldSample{Origin: seg.Start, Dir: seg.Dir()}
	}
	return vf
}

// NearestSample returns the sample whose origin is nearest to pt, by linear
// scan, ties going to the first sample encountered.  When distance
// comparisons degenerate to NaN the most recently visited sample is kept,
// so the scan always returns some sample from a non-empty field.  The
// second return is false only for an empty field
func (vf *VectorField) NearestSample(pt Point3) (FieldSample, bool) {
	if len(vf.Samples) == 0 {
		return FieldSample{}, false
	}
	best := math.Inf(1)
	var nearest FieldSample
	for _, sample := range vf.Samples {
		d := sample.Origin.DistanceTo(pt)
		if d < best || math.IsNaN(best) {
			best = d
			nearest = sample
		}
	}
	return nearest, true
}

// bounds returns, per axis, the min and max over all sample origins
func (vf *VectorField) bounds() (lower, upper Point3) {
	xs := make([]float64, len(vf.Samples))
	ys := make([]float64, len(vf.Samples))
	zs := make([]float64, len(vf.Samples))
	for i, sample := range vf.Samples {
		xs[i] = sample.Origin.X
		ys[i] = sample.Origin.Y
		zs[i] = sample.Origin.Z
	}
	lower = Point3{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	upper = Point3{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}
	return lower, upper
}

// ResampleOnGrid approximates the field on a regular grid: the bounding box
// of the sample origins is cut into divisions steps per axis, and each grid
// point takes the direction of its nearest sample.  A grid point farther
// than twice the x-axis step from its nearest sample is outside any tube's
// influence and stores the null vector instead.  The resampled field is
// returned and, when sink is non-nil, emitted through it
func (vf *VectorField) ResampleOnGrid(divisions int, sink PlotSink) (*VectorField, error) {
	grid := new(VectorField)
	if len(vf.Samples) == 0 || divisions <= 0 {
		return grid, nil
	}

	lower, upper := vf.bounds()
	xStep := (upper.X - lower.X) / float64(divisions)
	yStep := (upper.Y - lower.Y) / float64(divisions)
	zStep := (upper.Z - lower.Z) / float64(divisions)

	for ix := 0; ix < divisions; ix++ {
		for iy := 0; iy < divisions; iy++ {
			for iz := 0; iz < divisions; iz++ {
				at := Point3{
					X: lower.X + float64(ix)*xStep,
					Y: lower.Y + float64(iy)*yStep,
					Z: lower.Z + float64(iz)*zStep,
				}
				sample, _ := vf.NearestSample(at)
				dir := sample.Dir
				if sample.Origin.DistanceTo(at) > 2.0*xStep {
					dir = Vec3{}
				}
				grid.Samples = append(grid.Samples, FieldSample{Origin: at, Dir: dir})
			}
		}
	}

	if sink != nil {
		err := sink.EmitVectorField(grid)
		if err != nil {
			return nil, err
		}
	}
	return grid, nil
}
