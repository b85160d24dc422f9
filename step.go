package weld2d

// TimeStep describes one solver step. DtRatio is the current dt divided by
// the previous dt; it rescales warm-started impulses when the step size
// changes.
type TimeStep struct {
	Dt                 float64 // time step
	InvDt              float64 // inverse time step (0 if dt == 0)
	DtRatio            float64 // dt * inv_dt0
	VelocityIterations int
	PositionIterations int
	WarmStarting       bool
}

// Position is a body's center-of-mass translation and orientation in the
// shared solver buffers.
type Position struct {
	C Vec2
	A float64
}

// Velocity is a body's linear and angular velocity in the shared solver
// buffers.
type Velocity struct {
	V Vec2
	W float64
}

// SolverData is the per-step state an island solver hands to each
// constraint. Positions and Velocities are parallel slices indexed by
// island slot and mutated in place; sequential constraints touching the
// same body see each other's writes.
type SolverData struct {
	Step       TimeStep
	Positions  []Position
	Velocities []Velocity
}
