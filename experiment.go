package motornet

// experiment.go assembles runtime objects from an ExpCfg and drives them
// with a discrete-event scheduler.  Each motor release is an event; the
// transport itself runs to completion within the event, advancing the
// motor's private clock, and the outcome is recorded for post-run
// analysis.  The structural sweep and the message-boundary helpers also
// live here.

import (
	"fmt"

	"github.com/iti/evt/evtm"
	"github.com/iti/evt/vrtime"
	"github.com/iti/rngstream"
)

// An Experiment binds together one generated network, the motors released
// into it, and the instruments that observe the run
type Experiment struct {
	Cfg     *ExpCfg
	Network *TubeNetwork
	Motors  []*Motor

	// flux meters are observed at the end of the run; reflective barriers
	// are attached to every motor
	meters map[string]*VolumeSurface

	TraceMgr *TraceManager
	Sink     PlotSink

	// transport outcome per motor name, filled as release events fire
	Results map[string]TransportResult
}

// BuildExperiment validates the configuration, generates the tube network
// and creates the motors and surfaces the configuration describes.  The
// trace manager and sink may not be nil; pass an inactive manager and a
// NullSink to observe nothing
func BuildExperiment(cfg *ExpCfg, tm *TraceManager, sink PlotSink) (*Experiment, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	exp := new(Experiment)
	exp.Cfg = cfg
	exp.TraceMgr = tm
	exp.Sink = sink
	exp.meters = make(map[string]*VolumeSurface)
	exp.Results = make(map[string]TransportResult)

	// the network draws from a stream seeded by the experiment name, so a
	// rebuilt experiment reproduces its geometry
	netStream := rngstream.New(cfg.Name)
	exp.Network, err = GenerateTubeNetwork(cfg.Network, netStream)
	if err != nil {
		return nil, err
	}

	// surfaces are shared: every reflective barrier confines every motor
	barriers := make([]*VolumeSurface, 0)
	for _, sd := range cfg.Surfaces {
		vs := CreateVolumeSurface(Point3{X: sd.X, Y: sd.Y, Z: sd.Z}, sd.Radius,
			surfaceKindFromStr[sd.Kind])
		if vs.Kind == FluxMeter {
			exp.meters[sd.Name] = vs
		} else {
			barriers = append(barriers, vs)
		}
	}

	exp.Motors = make([]*Motor, 0, len(cfg.Motors))
	for idx, md := range cfg.Motors {
		m := CreateMotor(md.Name, Point3{X: md.StartX, Y: md.StartY, Z: md.StartZ})
		m.SetDestinationVolume(
			Point3{X: md.DestLLX, Y: md.DestLLY, Z: md.DestLLZ},
			Point3{X: md.DestURX, Y: md.DestURY, Z: md.DestURZ})
		for _, vs := range barriers {
			m.AddVolumeSurface(vs)
		}
		m.SetTrace(tm, idx)
		exp.Motors = append(exp.Motors, m)
		tm.AddName(idx, md.Name, "motor")
	}

	return exp, nil
}

// releaseMotor is the event handler for a motor release.  The context is
// the experiment, the msg the index of the motor to release.  Transition
// tracing happens inside the motor, which was wired to the experiment's
// trace manager at build time
func releaseMotor(evtMgr *evtm.EventManager, context any, msg any) any {
	exp := context.(*Experiment)
	motorIdx := msg.(int)
	m := exp.Motors[motorIdx]

	rslt := m.MoveToDestination(exp.Network, exp.Cfg.Motion, exp.Cfg.MaxCycles)
	exp.Results[m.Name()] = rslt

	err := exp.Sink.EmitConnectedPath(m.History())
	if err != nil {
		panic(fmt.Errorf("emit of motor %s trajectory failed: %v", m.Name(), err))
	}

	return nil
}

// Schedule places every motor's release on the event list at its described
// release time
func (exp *Experiment) Schedule(evtMgr *evtm.EventManager) {
	for idx, md := range exp.Cfg.Motors {
		evtMgr.Schedule(exp, idx, releaseMotor, vrtime.SecondsToTime(md.Release))
	}
}

// Run schedules the configured releases and runs the event list until it
// drains or virtual time reaches stopTime
func (exp *Experiment) Run(evtMgr *evtm.EventManager, stopTime float64) {
	exp.Schedule(evtMgr)
	evtMgr.Run(stopTime)
}

// RunExperiment is the one-call form: build, run on a fresh event manager,
// and return the experiment with its results filled in
func RunExperiment(cfg *ExpCfg, tm *TraceManager, sink PlotSink, stopTime float64) (*Experiment, error) {
	exp, err := BuildExperiment(cfg, tm, sink)
	if err != nil {
		return nil, err
	}
	evtMgr := evtm.New()
	exp.Run(evtMgr, stopTime)

	return exp, nil
}

// MeasureFlux reports, per flux-meter surface, the number of tube segment
// crossings of that surface in the generated network
func (exp *Experiment) MeasureFlux() map[string]float64 {
	flux := make(map[string]float64)
	for name, vs := range exp.meters {
		flux[name] = vs.Flux(exp.Network.Segments)
	}
	return flux
}

// PersistenceSweep regenerates the network once per offered persistence
// length and reports the resulting structural entropy as an XY series,
// emitted through the sink.  Each regeneration draws from its own stream so
// the sweep points are independent but reproducible
func PersistenceSweep(cfg TubeNetworkConfig, persistenceLengths []float64, sink PlotSink) ([]XY, error) {
	series := make([]XY, 0, len(persistenceLengths))
	for idx, pl := range persistenceLengths {
		swept := cfg
		swept.PersistenceLength = pl
		stream := rngstream.New(fmt.Sprintf("sweep-%d", idx))
		tn, err := GenerateTubeNetwork(swept, stream)
		if err != nil {
			return nil, err
		}
		series = append(series, XY{X: pl, Y: tn.Stats().StructuralEntropy})
	}

	err := sink.EmitXYSeries(series, "persistence length", "structural entropy")
	if err != nil {
		return nil, err
	}
	return series, nil
}

// A Message is the payload a motor transports; its content is opaque to
// the transport machinery
type Message struct {
	ID      int
	Payload any
}

// ComputePropagationDelay extracts the propagation delay from a transport
// outcome.  The second return is false when the motor never arrived, in
// which case no delay is defined
func ComputePropagationDelay(rslt TransportResult) (float64, bool) {
	if !rslt.Arrived {
		return 0.0, false
	}
	return rslt.Delay, true
}

// ReceivedMessageAfterPropagation passes the offered message through the
// transport outcome: the message is delivered unchanged when the motor
// arrived, and not at all otherwise
func ReceivedMessageAfterPropagation(msg Message, rslt TransportResult) (Message, bool) {
	if !rslt.Arrived {
		return Message{}, false
	}
	return msg, true
}
