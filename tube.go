package motornet

// tube.go generates a single microtubule as a persistence-length-constrained
// random walk of straight segments, and computes the structural entropy of
// the bend angles along the chain.
//
// The angle model follows the wormlike-chain angular-correlation relation:
// each bend angle is Gaussian with zero mean and standard deviation
// sqrt(2 * segLength / persistenceLength), so a larger persistence length
// gives a straighter tube.  See Bush & Goel, "Persistence Length as a Metric
// for Modeling and Simulation of Nanoscale Communication Networks", IEEE JSAC
// 31(12), 2013.

import (
	"math"

	"github.com/iti/rngstream"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// number of equal-width histogram bins used for structural entropy
const entropyBins = 100

// A Tube is an ordered chain of segments; the start of segment i+1 is the
// end of segment i
type Tube struct {
	// the chain, in walk order
	Segments []Segment3

	// structural entropy of the chain's bend angles (nats)
	Entropy float64
}

// genBendAngles draws one bend angle per segment from the wormlike-chain
// distribution
func genBendAngles(rngstrm *rngstream.RngStream, n int, segLength, persistenceLength float64) []float64 {
	sigma := math.Sqrt(2.0 * segLength / persistenceLength)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = gaussianRV(rngstrm, sigma)
	}
	return angles
}

// structuralEntropy returns the information entropy, in nats, of a
// fixed-bin-count histogram spanning the observed range of the angles.
// Because the bins stretch to the observed range, the score is invariant
// under uniform scaling of the angles: it measures the shape of the
// distribution, not its spread, so a stiffer chain's narrower angles do
// not score lower.  A chain whose angles all coincide carries no
// information and scores zero
func structuralEntropy(angles []float64) float64 {
	if len(angles) == 0 {
		return 0.0
	}
	minAngle := floats.Min(angles)
	maxAngle := floats.Max(angles)
	if maxAngle-minAngle == 0.0 {
		return 0.0
	}

	dividers := make([]float64, entropyBins+1)
	floats.Span(dividers, minAngle, maxAngle)
	// the histogram's final bin is half-open, so nudge its upper edge past
	// the maximum sample
	dividers[entropyBins] = math.Nextafter(maxAngle, math.Inf(1))

	sorted := make([]float64, len(angles))
	copy(sorted, angles)
	slices.Sort(sorted)

	counts := stat.Histogram(nil, dividers, sorted, nil)
	total := floats.Sum(counts)
	probs := make([]float64, len(counts))
	for i, c := range counts {
		probs[i] = c / total
	}
	return stat.Entropy(probs)
}

// GenerateTube builds one tube of cfg.SegmentsPerTube segments starting at
// start.  Two independent bend angles are drawn per segment, the polar angle
// theta and the azimuthal angle psi, and each segment's end point is the
// spherical-coordinate step of length SegmentLength from its start.
// The caller is expected to have validated cfg
func GenerateTube(cfg TubeNetworkConfig, start Point3, rngstrm *rngstream.RngStream) Tube {
	segLength := cfg.SegmentLength()
	theta := genBendAngles(rngstrm, cfg.SegmentsPerTube, segLength, cfg.PersistenceLength)
	psi := genBendAngles(rngstrm, cfg.SegmentsPerTube, segLength, cfg.PersistenceLength)

	segments := make([]Segment3, cfg.SegmentsPerTube)
	at := start
	for i := range segments {
		step := Vec3{
			X: segLength * math.Sin(theta[i]) * math.Cos(psi[i]),
			Y: segLength * math.Sin(theta[i]) * math.Sin(psi[i]),
			Z: segLength * math.Cos(theta[i]),
		}
		end := at.Add(step)
		segments[i] = Segment3{Start: at, End: end}
		at = end
	}

	return Tube{
		Segments: segments,
		Entropy:  structuralEntropy(theta) + structuralEntropy(psi),
	}
}
