package motornet

import (
	"testing"

	"github.com/iti/rngstream"
	"github.com/stretchr/testify/assert"
)

func TestConfigDerivedCounts(t *testing.T) {
	cfg := DefaultTubeNetworkConfig()

	assert.Equal(t, 20.0, cfg.SegmentLength())
	assert.Equal(t, 250, cfg.NumSegments())
	assert.Equal(t, 25, cfg.NumTubes())

	// a fractional tube is dropped
	cfg.SegmentsPerTube = 60
	assert.Equal(t, 4, cfg.NumTubes())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultTubeNetworkConfig().Validate())

	bad := DefaultTubeNetworkConfig()
	bad.PersistenceLength = 0.0
	bad.Volume = -1.0
	err := bad.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "persistence length")
	assert.Contains(t, err.Error(), "volume")
}

func TestGenerateTubeNetwork(t *testing.T) {
	SetMasterSeed(3570)
	cfg := DefaultTubeNetworkConfig()
	stream := rngstream.New("network-gen")

	tn, err := GenerateTubeNetwork(cfg, stream)
	assert.NoError(t, err)

	stats := tn.Stats()
	assert.Equal(t, cfg.NumTubes(), stats.NumTubes)
	assert.Equal(t, cfg.NumTubes()*cfg.SegmentsPerTube, stats.NumSegments)
	assert.Len(t, tn.Segments, stats.NumSegments)
	assert.Greater(t, stats.StructuralEntropy, 0.0)

	// segment ownership follows the flat layout
	assert.Equal(t, 0, tn.TubeIndex(0))
	assert.Equal(t, 0, tn.TubeIndex(cfg.SegmentsPerTube-1))
	assert.Equal(t, 1, tn.TubeIndex(cfg.SegmentsPerTube))

	// tubes are internally connected chains
	for tube := 0; tube < stats.NumTubes; tube++ {
		segs := tn.TubeSegments(tube)
		assert.Len(t, segs, cfg.SegmentsPerTube)
		for i := 1; i < len(segs); i++ {
			assert.Equal(t, segs[i-1].End, segs[i].Start)
		}
	}
}

func TestGenerateTubeNetworkRejectsBadConfig(t *testing.T) {
	cfg := DefaultTubeNetworkConfig()
	cfg.PersistenceLength = -5.0

	_, err := GenerateTubeNetwork(cfg, rngstream.New("bad-config"))
	assert.Error(t, err)
}

func TestRegenerateReplacesWholesale(t *testing.T) {
	SetMasterSeed(3570)
	cfg := DefaultTubeNetworkConfig()
	stream := rngstream.New("regen")

	tn, err := GenerateTubeNetwork(cfg, stream)
	assert.NoError(t, err)
	before := tn.Stats().NumSegments

	smaller := cfg
	smaller.Volume = 10.0
	assert.NoError(t, tn.Regenerate(smaller, stream))

	after := tn.Stats()
	assert.Less(t, after.NumSegments, before)
	assert.Len(t, tn.Segments, after.NumSegments)
	assert.Equal(t, smaller, tn.Config())

	// a failed regeneration leaves the old network untouched
	invalid := cfg
	invalid.SegmentsPerTube = 0
	assert.Error(t, tn.Regenerate(invalid, stream))
	assert.Equal(t, smaller, tn.Config())
	assert.Len(t, tn.Segments, after.NumSegments)
}
