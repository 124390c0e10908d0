package control

// LowPassFilter is a first order exponential smoother.
type LowPassFilter struct {
	a     float64
	b     float64
	last  float64
	ready bool
}

// NewLowPassFilter builds a filter with time constant tau and sample period
// ts, both in seconds. The cutoff frequency is 1/(2*pi*tau).
func NewLowPassFilter(tau, ts float64) *LowPassFilter {
	a := 1.0
	if tau+ts > 0 {
		a = ts / (tau + ts)
	}
	return &LowPassFilter{a: a, b: 1 - a}
}

func (f *LowPassFilter) Filt(val float64) float64 {
	if f.ready {
		val = f.a*val + f.b*f.last
	} else {
		f.ready = true
	}
	f.last = val
	return val
}

func (f *LowPassFilter) Last() float64 {
	return f.last
}

func (f *LowPassFilter) Ready() bool {
	return f.ready
}
