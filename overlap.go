package motornet

// overlap.go answers the two geometric queries the transport model depends
// on: which tube segment (if any) is near a point, and where segments cross
// one another.  Two 3D lines generically have no exact intersection, so the
// crossing test solves the overdetermined 3x2 line-parameter system by SVD
// least squares and then accepts the solution only when the resulting point
// lies inside the bounding boxes of both finite segments.

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// An Overlap records one intersection between a probe and a candidate
// segment
type Overlap struct {
	// where the segments cross
	Point Point3

	// index of the candidate segment, in the order given to the query
	Segment int
}

// A Crossing records one intersection between two segments of the same
// network
type Crossing struct {
	Point Point3
	SegA  int
	SegB  int
}

// FindNearestTube returns the index of the segment whose supporting line is
// nearest to pt, provided that nearest distance is within radius.  The scan
// is linear and the first segment achieving the minimum wins.  The second
// return is false when no segment lies within radius
func FindNearestTube(pt Point3, segments []Segment3, radius float64) (int, bool) {
	shortest := math.Inf(1)
	closest := -1
	for i, seg := range segments {
		d := DistanceToLine(pt, seg)
		if d < shortest && d <= radius {
			shortest = d
			closest = i
		}
	}
	if closest < 0 {
		return 0, false
	}
	return closest, true
}

// SegmentOverlaps3D returns every point where probe crosses one of the
// candidate segments.  For each candidate the line parameters (t,s) of
//
//	probe.Start + t*(probe.End-probe.Start) == cand.Start + s*(cand.End-cand.Start)
//
// are recovered by an SVD least-squares solve, which stays finite for skew
// and near-parallel pairs.  A solution is accepted only when neither
// parameter is NaN and the recovered point lies inside the closed bounding
// boxes of both segments, so only true finite-segment intersections are
// reported.  Degenerate solves fall out of the box test and count as no
// overlap
func SegmentOverlaps3D(probe Segment3, segments []Segment3) []Overlap {
	var overlaps []Overlap

	a := probe.Start
	bv := probe.Dir()
	probeBounds := probe.Bounds()

	sys := mat.NewDense(3, 2, nil)
	rhs := mat.NewVecDense(3, nil)
	var params mat.VecDense
	var svd mat.SVD

	for i, seg := range segments {
		c := seg.Start
		dv := seg.Dir()

		sys.Set(0, 0, bv.X)
		sys.Set(0, 1, -dv.X)
		sys.Set(1, 0, bv.Y)
		sys.Set(1, 1, -dv.Y)
		sys.Set(2, 0, bv.Z)
		sys.Set(2, 1, -dv.Z)

		rhs.SetVec(0, c.X-a.X)
		rhs.SetVec(1, c.Y-a.Y)
		rhs.SetVec(2, c.Z-a.Z)

		if !svd.Factorize(sys, mat.SVDThin) {
			continue
		}
		svd.SolveVecTo(&params, rhs, 2)

		t := params.AtVec(0)
		s := params.AtVec(1)
		if math.IsNaN(t) || math.IsNaN(s) {
			continue
		}

		pt := a.Add(bv.Scale(t))
		if probeBounds.Contains(pt) && seg.Bounds().Contains(pt) {
			overlaps = append(overlaps, Overlap{Point: pt, Segment: i})
		}
	}
	return overlaps
}

// AllOverlaps enumerates the self-intersections of a whole network by
// probing every segment against all the others.  The scan is O(n^2) in the
// segment count and is meant for structural analysis, not for the motion
// path.  Each geometric crossing appears twice, once from each side; the
// pairing of a segment with itself is skipped, and consecutive segments of
// one tube legitimately report their shared end point
func AllOverlaps(segments []Segment3) []Crossing {
	var crossings []Crossing
	for i, probe := range segments {
		for _, ov := range SegmentOverlaps3D(probe, segments) {
			if ov.Segment == i {
				continue
			}
			crossings = append(crossings, Crossing{Point: ov.Point, SegA: i, SegB: ov.Segment})
		}
	}
	return crossings
}

// OverlapPoints projects a crossing list down to its intersection points
func OverlapPoints(crossings []Crossing) []Point3 {
	pts := make([]Point3, len(crossings))
	for i, c := range crossings {
		pts[i] = c.Point
	}
	return pts
}
