package motornet

// network.go instantiates a whole microtubule network in a bounded volume.
// Networks are generated wholesale and regenerated wholesale; there is no
// incremental mutation, so any derived structure (vector field, contact
// graph) must be rebuilt after Regenerate.

import (
	"math"

	"github.com/iti/rngstream"
)

// A TubeNetwork is the flat, ordered collection of all segments across all
// tubes.  Segment i belongs to tube i / SegmentsPerTube; segments of one
// tube are consecutive, in walk order
type TubeNetwork struct {
	cfg      TubeNetworkConfig
	stats    TubeNetworkStats
	Segments []Segment3
}

// GenerateTubeNetwork validates cfg and builds a network from it, drawing
// every tube's starting point and bend angles from rngstrm
func GenerateTubeNetwork(cfg TubeNetworkConfig, rngstrm *rngstream.RngStream) (*TubeNetwork, error) {
	tn := new(TubeNetwork)
	err := tn.Regenerate(cfg, rngstrm)
	if err != nil {
		return nil, err
	}
	return tn, nil
}

// Regenerate replaces the network's entire contents with a fresh draw under
// cfg.  Used for parameter sweeps: the network object survives, nothing
// derived from the previous contents does.  On error the network is left
// unchanged
func (tn *TubeNetwork) Regenerate(cfg TubeNetworkConfig, rngstrm *rngstream.RngStream) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	numTubes := cfg.NumTubes()
	segments := make([]Segment3, 0, numTubes*cfg.SegmentsPerTube)

	// tube starting points are Gaussian about the origin with standard
	// deviation volume^(1/3)
	sigma := math.Cbrt(cfg.Volume)

	totalEntropy := 0.0
	for i := 0; i < numTubes; i++ {
		start := Point3{
			X: gaussianRV(rngstrm, sigma),
			Y: gaussianRV(rngstrm, sigma),
			Z: gaussianRV(rngstrm, sigma),
		}
		tube := GenerateTube(cfg, start, rngstrm)
		totalEntropy += tube.Entropy
		segments = append(segments, tube.Segments...)
	}

	tn.cfg = cfg
	tn.Segments = segments
	tn.stats = TubeNetworkStats{
		NumTubes:          numTubes,
		NumSegments:       len(segments),
		StructuralEntropy: totalEntropy,
	}
	return nil
}

// Config returns the configuration the current contents were generated from
func (tn *TubeNetwork) Config() TubeNetworkConfig {
	return tn.cfg
}

// Stats returns the measurements of the current contents
func (tn *TubeNetwork) Stats() TubeNetworkStats {
	return tn.stats
}

// TubeIndex maps a flat segment index to the index of its owning tube
func (tn *TubeNetwork) TubeIndex(segIdx int) int {
	return segIdx / tn.cfg.SegmentsPerTube
}

// TubeSegments returns the consecutive slice of segments belonging to one
// tube.  The slice aliases the network's storage
func (tn *TubeNetwork) TubeSegments(tubeIdx int) []Segment3 {
	spt := tn.cfg.SegmentsPerTube
	return tn.Segments[tubeIdx*spt : (tubeIdx+1)*spt]
}
