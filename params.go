package motornet

// params.go separates the immutable description of a tube network from the
// measured results of generating one.  The configuration is a value type;
// derived quantities are computed on demand rather than stored back into it.

import (
	"fmt"
	"math"
)

// A TubeNetworkConfig holds the systemic properties of a microtubule network.
// It is input only; generation results are reported in TubeNetworkStats
type TubeNetworkConfig struct {
	// the volume of space in which tubes originate (nm^3)
	Volume float64 `json:"volume" yaml:"volume"`

	// the mean tube length (nm)
	MeanTubeLength float64 `json:"meantubelength" yaml:"meantubelength"`

	// the mean angle between segments within a tube (deg)
	MeanIntraTubeAngle float64 `json:"meanintratubeangle" yaml:"meanintratubeangle"`

	// the mean angle between tubes (deg)
	MeanInterTubeAngle float64 `json:"meanintertubeangle" yaml:"meanintertubeangle"`

	// the density of tube segments within the volume (segments/nm^3)
	SegmentDensity float64 `json:"segmentdensity" yaml:"segmentdensity"`

	// the persistence length (nm)
	PersistenceLength float64 `json:"persistencelength" yaml:"persistencelength"`

	// the number of segments comprising each tube
	SegmentsPerTube int `json:"segmentspertube" yaml:"segmentspertube"`
}

// SegmentLength gives the length of each tube segment, fixed at one fifth
// of the mean tube length
func (cfg TubeNetworkConfig) SegmentLength() float64 {
	return cfg.MeanTubeLength / 5.0
}

// NumSegments gives the total number of segments across all tubes
func (cfg TubeNetworkConfig) NumSegments() int {
	return int(cfg.SegmentDensity * cfg.Volume)
}

// NumTubes gives the number of whole tubes that fit in the segment budget
func (cfg TubeNetworkConfig) NumTubes() int {
	if cfg.SegmentsPerTube <= 0 {
		return 0
	}
	return int(math.Floor(float64(cfg.NumSegments()) / float64(cfg.SegmentsPerTube)))
}

// Validate checks the configuration before any network is built.  A
// non-positive persistence length makes the bend-angle variance undefined,
// so it is rejected here rather than discovered as a NaN downstream.
// All reportable problems are gathered into one error
func (cfg TubeNetworkConfig) Validate() error {
	var errs []error
	if cfg.PersistenceLength <= 0.0 {
		errs = append(errs, fmt.Errorf("persistence length %f must be positive", cfg.PersistenceLength))
	}
	if cfg.SegmentsPerTube <= 0 {
		errs = append(errs, fmt.Errorf("segments per tube %d must be positive", cfg.SegmentsPerTube))
	}
	if cfg.Volume < 0.0 {
		errs = append(errs, fmt.Errorf("volume %f must be non-negative", cfg.Volume))
	}
	if cfg.MeanTubeLength < 0.0 {
		errs = append(errs, fmt.Errorf("mean tube length %f must be non-negative", cfg.MeanTubeLength))
	}
	if cfg.SegmentDensity < 0.0 {
		errs = append(errs, fmt.Errorf("segment density %f must be non-negative", cfg.SegmentDensity))
	}
	if cfg.MeanIntraTubeAngle < 0.0 {
		errs = append(errs, fmt.Errorf("mean intra-tube angle %f must be non-negative", cfg.MeanIntraTubeAngle))
	}
	if cfg.MeanInterTubeAngle < 0.0 {
		errs = append(errs, fmt.Errorf("mean inter-tube angle %f must be non-negative", cfg.MeanInterTubeAngle))
	}
	return ReportErrs(errs)
}

// DefaultTubeNetworkConfig gives the reference parameter set
func DefaultTubeNetworkConfig() TubeNetworkConfig {
	return TubeNetworkConfig{
		Volume:             25.0,
		MeanTubeLength:     100.0,
		MeanIntraTubeAngle: 30.0,
		MeanInterTubeAngle: 10.0,
		SegmentDensity:     10.0,
		PersistenceLength:  50.0,
		SegmentsPerTube:    10,
	}
}

// TubeNetworkStats accumulates measurements from the most recent network
// generation.  Regeneration overwrites it wholesale
type TubeNetworkStats struct {
	// number of tubes generated
	NumTubes int `json:"numtubes" yaml:"numtubes"`

	// number of segments generated, across all tubes
	NumSegments int `json:"numsegments" yaml:"numsegments"`

	// total structural entropy over all tubes (nats)
	StructuralEntropy float64 `json:"structuralentropy" yaml:"structuralentropy"`
}
