package rk4

// VelocityFunc is du/dt = f(v) of a second-order equation reduced to a
// first-order pair. It depends on v only; the reduction gives it no access
// to u or t.
type VelocityFunc func(v float64) float64

// AccelFunc is dv/dt = g(v, u, t) of the reduced pair.
type AccelFunc func(v, u, t float64) float64

// Coupled integrates a second-order equation, reduced to the system
// du/dt = f(v), dv/dt = g(v, u, t), with fixed-step RK4. The u and v stages
// are advanced jointly: each g stage sees the previous stage's f and g
// increments together.
type Coupled struct {
	f  VelocityFunc
	g  AccelFunc
	ts []float64
	us []float64
	vs []float64
}

func NewCoupled(f VelocityFunc, g AccelFunc) *Coupled {
	return &Coupled{f: f, g: g}
}

// Solve advances (u, v) from t0 across the half-open range [t0, tEnd)
// stepped by h and returns the final pair. One (t, u, v) triple is appended
// per completed step; history from earlier Solve calls is kept until Reset.
// A step either completes fully or fails before any of its values are
// recorded.
func (c *Coupled) Solve(t0, u0, v0, tEnd, h float64) (float64, float64, error) {
	steps, err := StepCount(t0, tEnd, h)
	if err != nil {
		return u0, v0, err
	}

	u, v := u0, v0
	for i := 0; i < steps; i++ {
		t := t0 + float64(i)*h

		k1 := c.f(v)
		m1 := c.g(v, u, t)

		k2 := c.f(v + m1*h/2)
		m2 := c.g(v+m1*h/2, u+k1*h/2, t+h/2)

		k3 := c.f(v + m2*h/2)
		m3 := c.g(v+m2*h/2, u+k2*h/2, t+h/2)

		k4 := c.f(v + m3*h)
		m4 := c.g(v+m3*h, u+k3*h, t+h)

		nextU := u + (h/6)*(k1+2*k2+2*k3+k4)
		nextV := v + (h/6)*(m1+2*m2+2*m3+m4)
		if !finite(k1) || !finite(k2) || !finite(k3) || !finite(k4) ||
			!finite(m1) || !finite(m2) || !finite(m3) || !finite(m4) ||
			!finite(nextU) || !finite(nextV) {
			return u, v, &StepError{Step: i, Time: t, Err: ErrNonFiniteSlope}
		}

		u, v = nextU, nextV
		c.us = append(c.us, u)
		c.vs = append(c.vs, v)
		c.ts = append(c.ts, t0+float64(i+1)*h)
	}

	return u, v, nil
}

// Trajectory returns copies of the accumulated time, u, and v histories.
func (c *Coupled) Trajectory() (ts, us, vs []float64) {
	return cloneFloats(c.ts), cloneFloats(c.us), cloneFloats(c.vs)
}

// Steps reports the number of accumulated trajectory entries.
func (c *Coupled) Steps() int {
	return len(c.ts)
}

// Reset discards all accumulated history. The slope functions are kept.
func (c *Coupled) Reset() {
	c.ts = nil
	c.us = nil
	c.vs = nil
}
