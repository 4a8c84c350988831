package motornet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// quickExpCfg builds a small experiment whose single motor is released
// inside its own destination volume, so the run's outcome does not depend
// on the random draws
func quickExpCfg() *ExpCfg {
	cfg := CreateExpCfg("quick")
	cfg.Network.Volume = 8.0
	cfg.Network.SegmentDensity = 1.0
	cfg.Network.SegmentsPerTube = 4
	cfg.AddMotor(MotorDesc{
		Name:    "m0",
		DestLLX: -1.0, DestLLY: -1.0, DestLLZ: -1.0,
		DestURX: 1.0, DestURY: 1.0, DestURZ: 1.0,
	})
	cfg.AddSurface(SurfaceDesc{Name: "wall", Kind: "reflect", Radius: 500.0})
	cfg.AddSurface(SurfaceDesc{Name: "meter", Kind: "flux", Radius: 1.0})
	return cfg
}

func TestBuildExperiment(t *testing.T) {
	SetMasterSeed(3570)
	tm := CreateTraceManager("quick", false)

	exp, err := BuildExperiment(quickExpCfg(), tm, &NullSink{})
	assert.NoError(t, err)

	assert.Len(t, exp.Motors, 1)
	assert.Equal(t, "m0", exp.Motors[0].Name())
	assert.Len(t, exp.meters, 1)
	assert.Equal(t, 8, exp.Network.Stats().NumSegments)
}

func TestBuildExperimentRejectsBadCfg(t *testing.T) {
	cfg := quickExpCfg()
	cfg.Network.PersistenceLength = -1.0

	_, err := BuildExperiment(cfg, CreateTraceManager("bad", false), &NullSink{})
	assert.Error(t, err)
}

func TestRunExperiment(t *testing.T) {
	SetMasterSeed(3570)
	tm := CreateTraceManager("quick", true)

	exp, err := RunExperiment(quickExpCfg(), tm, &NullSink{}, 1000.0)
	assert.NoError(t, err)

	rslt, present := exp.Results["m0"]
	assert.True(t, present)
	assert.True(t, rslt.Arrived)
	assert.Equal(t, 0.0, rslt.Delay)
	assert.Equal(t, 0, rslt.Bindings)

	// the release and the arrival were both traced
	assert.Len(t, tm.Traces[0], 2)

	flux := exp.MeasureFlux()
	_, present = flux["meter"]
	assert.True(t, present)
}

func TestPersistenceSweep(t *testing.T) {
	SetMasterSeed(3570)
	cfg := DefaultTubeNetworkConfig()
	cfg.Volume = 10.0

	lengths := []float64{10.0, 50.0, 250.0}
	series, err := PersistenceSweep(cfg, lengths, &NullSink{})
	assert.NoError(t, err)

	assert.Len(t, series, 3)
	for i, pt := range series {
		assert.Equal(t, lengths[i], pt.X)
		assert.GreaterOrEqual(t, pt.Y, 0.0)
	}
}

func TestPersistenceSweepRejectsBadLength(t *testing.T) {
	_, err := PersistenceSweep(DefaultTubeNetworkConfig(), []float64{-1.0}, &NullSink{})
	assert.Error(t, err)
}

func TestMessageBoundary(t *testing.T) {
	msg := Message{ID: 7, Payload: "cargo"}

	delay, ok := ComputePropagationDelay(TransportResult{Arrived: true, Delay: 12.5})
	assert.True(t, ok)
	assert.Equal(t, 12.5, delay)

	_, ok = ComputePropagationDelay(TransportResult{Arrived: false, Delay: 99.0})
	assert.False(t, ok)

	got, ok := ReceivedMessageAfterPropagation(msg, TransportResult{Arrived: true})
	assert.True(t, ok)
	assert.Equal(t, msg, got)

	_, ok = ReceivedMessageAfterPropagation(msg, TransportResult{Arrived: false})
	assert.False(t, ok)
}
