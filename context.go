package motornet

// context.go holds the SimulationContext, the explicit bundle of random
// number stream and elapsed-time accumulator that every stochastic or
// time-consuming call receives.  There is no package-global simulation
// state; reproducibility is controlled by the rngstream master seed and by
// giving each stochastic entity its own named stream.

import (
	"math"

	"github.com/iti/rngstream"
)

// SetMasterSeed fixes the seed from which every subsequently created rng
// stream is derived.  Call once, before building networks or motors, to make
// a run reproducible
func SetMasterSeed(seed uint64) {
	rngstream.SetRngStreamMasterSeed(seed)
}

// A SimulationContext bundles a random number stream with the virtual time
// consumed so far.  Each motor owns one, so multiple motors draw from
// independent streams and interleaving does not perturb reproducibility
type SimulationContext struct {
	rngstrm *rngstream.RngStream
	elapsed float64
}

// CreateSimulationContext is a constructor.  The name seeds the stream's
// position in the rngstream sequence, so distinct names give independent
// streams
func CreateSimulationContext(name string) *SimulationContext {
	ctx := new(SimulationContext)
	ctx.rngstrm = rngstream.New(name)
	ctx.elapsed = 0.0
	return ctx
}

// Elapsed returns the virtual time consumed through this context (seconds)
func (ctx *SimulationContext) Elapsed() float64 {
	return ctx.elapsed
}

// ResetClock zeroes the elapsed-time accumulator, for reuse across runs
func (ctx *SimulationContext) ResetClock() {
	ctx.elapsed = 0.0
}

// advance adds the duration of one completed step or walk to the clock
func (ctx *SimulationContext) advance(dt float64) {
	ctx.elapsed += dt
}

// U01 returns a uniform sample from (0,1)
func (ctx *SimulationContext) U01() float64 {
	return ctx.rngstrm.RandU01()
}

// Rng exposes the underlying stream for callers that sample directly
func (ctx *SimulationContext) Rng() *rngstream.RngStream {
	return ctx.rngstrm
}

// Gaussian returns a zero-mean normal sample with standard deviation sigma
func (ctx *SimulationContext) Gaussian(sigma float64) float64 {
	return gaussianRV(ctx.rngstrm, sigma)
}

// gaussianRV transforms two U01 samples into one zero-mean Gaussian sample
// of standard deviation sigma via Box-Muller
func gaussianRV(rngstrm *rngstream.RngStream, sigma float64) float64 {
	u1 := rngstrm.RandU01()
	u2 := rngstrm.RandU01()
	return sigma * math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}
