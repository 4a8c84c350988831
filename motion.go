package motornet

// motion.go holds the stochastic motion primitives a motor is driven by:
// the free Brownian diffusion step, the bounded float-until-capture search,
// and the directed walk along a captured tube.  Every primitive consumes
// randomness and time only through the SimulationContext it is handed.

import (
	"fmt"
	"math"
)

// A MotionConfig collects the physical parameters of motor movement
type MotionConfig struct {
	// duration of one diffusion step (s)
	TimeStep float64 `json:"timestep" yaml:"timestep"`

	// diffusion coefficient of the unbound motor (nm^2/s)
	Diffusion float64 `json:"diffusion" yaml:"diffusion"`

	// maximum distance at which a floating motor can bind a tube (nm)
	CaptureRadius float64 `json:"captureradius" yaml:"captureradius"`

	// probability that a motor within capture radius actually binds;
	// 1.0 gives deterministic capture
	BindingProb float64 `json:"bindingprob" yaml:"bindingprob"`

	// speed of the bound walk along a tube (nm/s)
	MovementRate float64 `json:"movementrate" yaml:"movementrate"`

	// diffusion steps after which an uncaptured float gives up
	FloatTimeout int `json:"floattimeout" yaml:"floattimeout"`
}

// Validate checks the motion parameters, gathering all reportable problems
// into one error
func (mc MotionConfig) Validate() error {
	var errs []error
	if mc.TimeStep <= 0.0 {
		errs = append(errs, fmt.Errorf("time step %f must be positive", mc.TimeStep))
	}
	if mc.Diffusion < 0.0 {
		errs = append(errs, fmt.Errorf("diffusion coefficient %f must be non-negative", mc.Diffusion))
	}
	if mc.CaptureRadius < 0.0 {
		errs = append(errs, fmt.Errorf("capture radius %f must be non-negative", mc.CaptureRadius))
	}
	if mc.BindingProb < 0.0 || mc.BindingProb > 1.0 {
		errs = append(errs, fmt.Errorf("binding probability %f must lie in [0,1]", mc.BindingProb))
	}
	if mc.MovementRate <= 0.0 {
		errs = append(errs, fmt.Errorf("movement rate %f must be positive", mc.MovementRate))
	}
	if mc.FloatTimeout < 1 {
		errs = append(errs, fmt.Errorf("float timeout %d must be positive", mc.FloatTimeout))
	}
	return ReportErrs(errs)
}

// DefaultMotionConfig gives the reference motion parameters
func DefaultMotionConfig() MotionConfig {
	return MotionConfig{
		TimeStep:      0.1,
		Diffusion:     100.0,
		CaptureRadius: 15.0,
		BindingProb:   1.0,
		MovementRate:  1000.0,
		FloatTimeout:  200,
	}
}

// sigma returns the per-axis standard deviation of one diffusion step,
// sqrt(2*D*dt), so that position variance grows as 2*D*t per axis
func (mc MotionConfig) sigma() float64 {
	return math.Sqrt(2.0 * mc.Diffusion * mc.TimeStep)
}

// BrownianStep returns the position reached from pos after one diffusion
// step, displacing each axis independently by a zero-mean Gaussian, and
// advances the context clock by one time step
func BrownianStep(ctx *SimulationContext, pos Point3, mc MotionConfig) Point3 {
	sigma := mc.sigma()
	next := Point3{
		X: pos.X + ctx.Gaussian(sigma),
		Y: pos.Y + ctx.Gaussian(sigma),
		Z: pos.Z + ctx.Gaussian(sigma),
	}
	ctx.advance(mc.TimeStep)
	return next
}

// FreeFloat diffuses from start for steps steps, appending each new
// position to history, and returns the final position
func FreeFloat(ctx *SimulationContext, start Point3, steps int, mc MotionConfig, history *[]Point3) Point3 {
	at := start
	for i := 0; i < steps; i++ {
		at = BrownianStep(ctx, at, mc)
		*history = append(*history, at)
	}
	return at
}

// FloatToTube diffuses from start until a tube segment lies within the
// capture radius and a binding draw succeeds, or until the float timeout
// expires.  Each visited position is appended to history.  The capture
// test follows each diffusion step, never precedes one, so a motor
// released on a tube drifts before it can re-bind.  The returns are the
// final position, the index of the captured segment, and whether capture
// happened; an uncaptured timeout is a normal outcome of the stochastic
// search, not an error
func FloatToTube(ctx *SimulationContext, start Point3, segments []Segment3, mc MotionConfig, history *[]Point3) (Point3, int, bool) {
	at := start
	for i := 0; i < mc.FloatTimeout; i++ {
		at = BrownianStep(ctx, at, mc)
		*history = append(*history, at)
		seg, found := FindNearestTube(at, segments, mc.CaptureRadius)
		if found && bindingDraw(ctx, mc) {
			return at, seg, true
		}
	}
	return at, 0, false
}

// bindingDraw decides whether a motor within capture radius binds.  The
// draw is uniform on (0,1) against the binding probability, giving the
// probability its plain meaning
func bindingDraw(ctx *SimulationContext, mc MotionConfig) bool {
	if mc.BindingProb >= 1.0 {
		return true
	}
	return ctx.U01() < mc.BindingProb
}

// WalkTube walks a bound motor forward from the captured segment through
// the end of that segment's tube, appending each segment end point to
// history and charging the clock with traversal time at the movement rate.
// Reaching the tube's last segment releases the binding; the return is the
// release position.  segIdx must index into net.Segments
func WalkTube(ctx *SimulationContext, segIdx int, net *TubeNetwork, mc MotionConfig, history *[]Point3) Point3 {
	segPerTube := net.Config().SegmentsPerTube
	segOfTube := segIdx % segPerTube
	segToGo := segPerTube - segOfTube

	at := net.Segments[segIdx].Start
	for i := segIdx; i < segIdx+segToGo; i++ {
		end := net.Segments[i].End
		ctx.advance(at.DistanceTo(end) / mc.MovementRate)
		*history = append(*history, end)
		at = end
	}
	return at
}
