// Package sat exposes the small presentation-facing helpers main.go wires
// into the solver's verbose reporting, kept separate from internal/sat so
// they carry no dependency on the engine's internals.
package sat

// EMA is an exponentially weighted moving average, used to smooth the
// conflicts/sec and propagations/sec figures printed once per
// learned-size-adjustment tick rather than reporting the noisier
// instantaneous per-tick rate.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in [0, 1); higher values
// weigh history more heavily against each new sample.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the running average, seeding it directly on the first
// call so the reported rate isn't biased toward zero before any history
// has accumulated.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
		return
	}
	ema.value = ema.decay*ema.value + x*(1-ema.decay)
}

// Val returns the current average.
func (ema *EMA) Val() float64 {
	return ema.value
}
