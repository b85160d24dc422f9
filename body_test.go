package weld2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyMassSetup(t *testing.T) {
	static := NewBody(BodyDef{})
	assert.Zero(t, static.InvMass())
	assert.Zero(t, static.InvInertia())

	dynamic := NewBody(BodyDef{Mass: 4, RotationalInertia: 0.5})
	assert.Equal(t, 0.25, dynamic.InvMass())
	assert.Equal(t, 2.0, dynamic.InvInertia())
}

func TestBodyPointMapping(t *testing.T) {
	b := NewBody(BodyDef{Position: Vec2{2, 1}, Angle: Pi / 2, Mass: 1, RotationalInertia: 1})

	world := b.WorldPoint(Vec2{1, 0})
	assert.InDelta(t, 2.0, world.X, 1e-15)
	assert.InDelta(t, 2.0, world.Y, 1e-15)

	local := b.LocalPoint(world)
	assert.InDelta(t, 1.0, local.X, 1e-15)
	assert.InDelta(t, 0.0, local.Y, 1e-15)
}

func TestBodySolverRoundTrip(t *testing.T) {
	b := NewBody(BodyDef{
		Position:          Vec2{1, 1},
		Angle:             0.25,
		LocalCenter:       Vec2{0.5, 0},
		Mass:              1,
		RotationalInertia: 1,
	})
	b.SetIslandIndex(0)

	data := SolverData{
		Positions:  make([]Position, 1),
		Velocities: make([]Velocity, 1),
	}
	b.SyncToSolver(data)

	assert.Equal(t, b.WorldCenter(), data.Positions[0].C)
	assert.InDelta(t, 0.25, data.Positions[0].A, 1e-15)

	// Solve pass moves the center of mass and spins the body; the origin
	// transform must follow.
	data.Positions[0].C = data.Positions[0].C.Add(Vec2{0.1, -0.1})
	data.Positions[0].A += 0.5
	data.Velocities[0] = Velocity{V: Vec2{1, 2}, W: -3}
	b.SyncFromSolver(data)

	assert.Equal(t, data.Positions[0].C, b.WorldCenter())
	assert.Equal(t, Vec2{1, 2}, b.LinearVelocity())
	assert.Equal(t, -3.0, b.AngularVelocity())

	// The stored local center still maps onto the world center.
	mapped := b.WorldPoint(b.LocalCenter())
	assert.InDelta(t, b.WorldCenter().X, mapped.X, 1e-14)
	assert.InDelta(t, b.WorldCenter().Y, mapped.Y, 1e-14)
}
