package controller

import "rtb-pacing/internal/core/domain"

// PID is a discrete PID controller over the spend error. It bids while
// the control signal is strictly positive. The integral and previous error
// accumulate for the whole run and are never reset.
type PID struct {
	Kp, Ki, Kd float64

	integral      float64
	previousError float64
}

// NewPID returns a controller with zeroed state.
func NewPID(gains domain.PIDParams) *PID {
	return &PID{Kp: gains.Kp, Ki: gains.Ki, Kd: gains.Kd}
}

// Decide updates the accumulators and reports whether to bid. A zero dt
// contributes nothing to the integral and yields a zero derivative.
func (c *PID) Decide(target, actual, dt float64) bool {
	return c.Signal(target, actual, dt) > 0
}

// Signal advances the controller by one step and returns the raw control
// value Kp*e + Ki*∫e + Kd*de/dt.
func (c *PID) Signal(target, actual, dt float64) float64 {
	err := target - actual
	c.integral += err * dt

	var derivative float64
	if dt != 0 {
		derivative = (err - c.previousError) / dt
	}
	c.previousError = err

	return c.Kp*err + c.Ki*c.integral + c.Kd*derivative
}

// Integral returns the accumulated error.
func (c *PID) Integral() float64 { return c.integral }

// PreviousError returns the error seen on the last call.
func (c *PID) PreviousError() float64 { return c.previousError }

func (*PID) TargetMode() TargetMode { return TargetLinear }
