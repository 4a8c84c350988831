package motornet

// motor.go holds the transported entity itself.  A motor owns its current
// position, an optional destination volume, its position history, and its
// own SimulationContext, so several motors draw from independent random
// streams.  It refers to tube geometry but never owns it.

import (
	"github.com/iti/evt/vrtime"
)

// A TransportResult reports the outcome of one transport run
type TransportResult struct {
	// whether the motor reached its destination volume
	Arrived bool

	// virtual time consumed by the run (s); this is the propagation delay
	// when Arrived is true
	Delay float64

	// number of successful tube bindings during the run
	Bindings int
}

// A Motor is the simulated transport entity, moved by diffusion and by
// directed walks along tubes
type Motor struct {
	name string

	// current position; mutated only by the motor's own moves
	Location Point3

	// destination volume, valid only when hasDestination
	destination    Box
	hasDestination bool

	// every position visited during runs, append-only until ClearHistory
	history []Point3

	// surfaces that confine or observe this motor's trajectory
	surfaces []*VolumeSurface

	// optional universe box; a zero-size box means unbounded
	universe    Box
	hasUniverse bool

	// optional trace sink; transitions go unrecorded while nil
	traceMgr *TraceManager
	traceID  int

	ctx *SimulationContext
}

// CreateMotor is a constructor.  The name seeds the motor's private random
// stream, so motors with distinct names evolve independently
func CreateMotor(name string, start Point3) *Motor {
	m := new(Motor)
	m.name = name
	m.Location = start
	m.history = []Point3{}
	m.surfaces = []*VolumeSurface{}
	m.ctx = CreateSimulationContext(name)
	return m
}

// Name returns the motor's unique name
func (m *Motor) Name() string {
	return m.name
}

// SetStartingPoint places the motor, e.g. at a transmitter's location
func (m *Motor) SetStartingPoint(pt Point3) {
	m.Location = pt
}

// SetDestinationVolume sets the axis-aligned box the motor is trying to
// reach, e.g. the location of a receiver
func (m *Motor) SetDestinationVolume(lowerLeft, upperRight Point3) {
	m.destination = Box{Lower: lowerLeft, Upper: upperRight}
	m.hasDestination = true
}

// SetUniverse confines the motor's diffusion to a box it reflects off of
func (m *Motor) SetUniverse(lowerLeft, upperRight Point3) {
	m.universe = Box{Lower: lowerLeft, Upper: upperRight}
	m.hasUniverse = true
}

// AddVolumeSurface attaches a spherical boundary to the motor.  Only
// ReflectiveBarrier surfaces alter the trajectory
func (m *Motor) AddVolumeSurface(vs *VolumeSurface) {
	m.surfaces = append(m.surfaces, vs)
}

// InDestination reports whether the motor currently sits inside its
// destination volume.  A motor with no destination is never there
func (m *Motor) InDestination() bool {
	return m.hasDestination && m.destination.Contains(m.Location)
}

// History returns the positions visited so far, in visit order
func (m *Motor) History() []Point3 {
	return m.history
}

// ClearHistory discards the recorded positions between runs
func (m *Motor) ClearHistory() {
	m.history = []Point3{}
}

// Elapsed returns the virtual time this motor has consumed (s)
func (m *Motor) Elapsed() float64 {
	return m.ctx.Elapsed()
}

// Context exposes the motor's simulation context
func (m *Motor) Context() *SimulationContext {
	return m.ctx
}

// SetTrace attaches a trace manager and the id under which this motor's
// transitions are recorded
func (m *Motor) SetTrace(tm *TraceManager, id int) {
	m.traceMgr = tm
	m.traceID = id
}

// logTransition cuts one trace record at the motor's current clock
func (m *Motor) logTransition(op string, segment int) {
	if m.traceMgr == nil {
		return
	}
	AddMotorTrace(m.traceMgr, vrtime.SecondsToTime(m.Elapsed()), m.traceID, segment, op, m.Location)
}

// confine applies the universe box and any reflective surfaces to a step
// from last to next, returning the corrected position
func (m *Motor) confine(last, next Point3) Point3 {
	if m.hasUniverse {
		next = m.universe.Reflect(next)
	}
	for _, vs := range m.surfaces {
		if vs.Kind == ReflectiveBarrier {
			next = vs.Reflect(last, next)
		}
	}
	return next
}

// step performs one confined diffusion step and records it
func (m *Motor) step(mc MotionConfig) {
	next := BrownianStep(m.ctx, m.Location, mc)
	m.Location = m.confine(m.Location, next)
	m.history = append(m.history, m.Location)
}

// floatToCapture diffuses until a segment is captured, the destination is
// reached, or the float timeout expires.  The capture test follows each
// diffusion step, never precedes one, so a motor released at a tube's end
// must drift away before it can re-bind; a step that lands in the
// destination ends the float with no binding.  The caller checks arrival
// before the first step
func (m *Motor) floatToCapture(net *TubeNetwork, mc MotionConfig) (int, bool) {
	for i := 0; i < mc.FloatTimeout; i++ {
		m.step(mc)
		if m.InDestination() {
			return 0, false
		}
		seg, found := FindNearestTube(m.Location, net.Segments, mc.CaptureRadius)
		if found && bindingDraw(m.ctx, mc) {
			return seg, true
		}
	}
	return 0, false
}

// walkTube walks the bound motor from the captured segment to the end of
// its tube, checking arrival at each segment boundary.  Reaching the tube
// end releases the binding
func (m *Motor) walkTube(segIdx int, net *TubeNetwork, mc MotionConfig) {
	segPerTube := net.Config().SegmentsPerTube
	segToGo := segPerTube - segIdx%segPerTube

	for i := segIdx; i < segIdx+segToGo; i++ {
		if m.InDestination() {
			return
		}
		end := net.Segments[i].End
		m.ctx.advance(m.Location.DistanceTo(end) / mc.MovementRate)
		m.Location = end
		m.history = append(m.history, end)
	}
}

// MoveToDestination alternates floating and tube walking until the motor
// arrives or maxCycles float/walk rounds have been spent.  The cycle
// ceiling guarantees termination when the network never carries the motor
// near its destination; running out of cycles is a normal "did not arrive"
// outcome that callers must handle, not an error.  A motor already inside
// its destination returns at once with no time consumed and an unmodified
// history beyond the starting entry
func (m *Motor) MoveToDestination(net *TubeNetwork, mc MotionConfig, maxCycles int) TransportResult {
	started := m.ctx.Elapsed()
	if len(m.history) == 0 {
		m.history = append(m.history, m.Location)
	}
	m.logTransition("release", -1)

	bindings := 0
	for cycle := 0; cycle < maxCycles; cycle++ {
		if m.InDestination() {
			break
		}
		seg, captured := m.floatToCapture(net, mc)
		if captured {
			bindings++
			m.logTransition("bind", seg)
			m.walkTube(seg, net, mc)
			m.logTransition("unbind", seg)
		}
	}

	rslt := TransportResult{
		Arrived:  m.InDestination(),
		Delay:    m.ctx.Elapsed() - started,
		Bindings: bindings,
	}
	if rslt.Arrived {
		m.logTransition("arrive", -1)
	} else {
		m.logTransition("timeout", -1)
	}
	return rslt
}

// FloatToDestination transports the motor by pure diffusion, ignoring the
// tube network, until arrival or maxSteps diffusion steps
func (m *Motor) FloatToDestination(mc MotionConfig, maxSteps int) TransportResult {
	started := m.ctx.Elapsed()
	if len(m.history) == 0 {
		m.history = append(m.history, m.Location)
	}

	for i := 0; i < maxSteps; i++ {
		if m.InDestination() {
			break
		}
		m.step(mc)
	}

	return TransportResult{
		Arrived: m.InDestination(),
		Delay:   m.ctx.Elapsed() - started,
	}
}
