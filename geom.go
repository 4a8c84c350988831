package motornet

// geom.go holds the value types for points, vectors, segments and
// axis-aligned boxes that the rest of the module is built on.  All
// coordinates are in nanometers.

import (
	"math"
)

// A Point3 is a location in 3D space
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// A Vec3 is a displacement or direction in 3D space
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the point displaced by v
func (p Point3) Add(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement from q to p
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// DistanceTo returns the Euclidean distance between p and q
func (p Point3) DistanceTo(q Point3) float64 {
	return p.Sub(q).Norm()
}

// Scale returns the vector multiplied by s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Add returns the sum of the two vectors
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Dot returns the inner product of the two vectors
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector cross product v x w
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of the vector
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns the vector scaled to unit length
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0.0 {
		return Vec3{}
	}
	return v.Scale(1.0 / n)
}

// IsZero reports whether every component of the vector is zero
func (v Vec3) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0 && v.Z == 0.0
}

// A Segment3 is one straight piece of a tube, or an arbitrary line probe,
// directed from Start to End
type Segment3 struct {
	Start Point3
	End   Point3
}

// Dir returns the displacement from the segment's start to its end
func (seg Segment3) Dir() Vec3 {
	return seg.End.Sub(seg.Start)
}

// Length returns the segment's length
func (seg Segment3) Length() float64 {
	return seg.Dir().Norm()
}

// Bounds returns the closed axis-aligned bounding box of the segment
func (seg Segment3) Bounds() Box {
	return Box{
		Lower: Point3{
			X: math.Min(seg.Start.X, seg.End.X),
			Y: math.Min(seg.Start.Y, seg.End.Y),
			Z: math.Min(seg.Start.Z, seg.End.Z),
		},
		Upper: Point3{
			X: math.Max(seg.Start.X, seg.End.X),
			Y: math.Max(seg.Start.Y, seg.End.Y),
			Z: math.Max(seg.Start.Z, seg.End.Z),
		},
	}
}

// DistanceToLine returns the distance from pt to the infinite line through
// the segment's end points, using the cross-product formula
// |(pt-p1) x (pt-p2)| / |p2-p1|.
//
// Note that this is the distance to the infinite line, not to the clamped
// segment: a point far beyond an end point still reports only its
// perpendicular offset.  Nearest-tube capture depends on this behavior.
func DistanceToLine(pt Point3, seg Segment3) float64 {
	d := seg.Dir()
	if d.IsZero() {
		return pt.DistanceTo(seg.Start)
	}
	r1 := pt.Sub(seg.Start)
	r2 := pt.Sub(seg.End)
	return r1.Cross(r2).Norm() / d.Norm()
}

// A Box is a closed axis-aligned volume defined by two opposite corners
type Box struct {
	Lower Point3
	Upper Point3
}

// Contains reports whether pt lies inside the closed box.  Any NaN
// coordinate fails the containment test
func (b Box) Contains(pt Point3) bool {
	return b.Lower.X <= pt.X && pt.X <= b.Upper.X &&
		b.Lower.Y <= pt.Y && pt.Y <= b.Upper.Y &&
		b.Lower.Z <= pt.Z && pt.Z <= b.Upper.Z
}

// Reflect mirrors a position that has stepped outside the box back inside,
// one axis at a time, by the distance of the overshoot.  Positions inside
// the box are returned unchanged
func (b Box) Reflect(pt Point3) Point3 {
	if pt.X < b.Lower.X {
		pt.X = b.Lower.X + (b.Lower.X - pt.X)
	}
	if pt.X > b.Upper.X {
		pt.X = b.Upper.X - (pt.X - b.Upper.X)
	}
	if pt.Y < b.Lower.Y {
		pt.Y = b.Lower.Y + (b.Lower.Y - pt.Y)
	}
	if pt.Y > b.Upper.Y {
		pt.Y = b.Upper.Y - (pt.Y - b.Upper.Y)
	}
	if pt.Z < b.Lower.Z {
		pt.Z = b.Lower.Z + (b.Lower.Z - pt.Z)
	}
	if pt.Z > b.Upper.Z {
		pt.Z = b.Upper.Z - (pt.Z - b.Upper.Z)
	}
	return pt
}
