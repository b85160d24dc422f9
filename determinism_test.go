package weld2d_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/topchiyev/weld2d"
)

// runWeldScenario simulates a dynamic body welded to a static one for a
// fixed number of steps and returns a full-precision trace of the moving
// body's state.
func runWeldScenario() string {
	ground := weld2d.NewBody(weld2d.BodyDef{})
	box := weld2d.NewBody(weld2d.BodyDef{
		Position:          weld2d.Vec2{X: 0, Y: 1},
		Angle:             0.1,
		LinearVelocity:    weld2d.Vec2{X: 2, Y: -1},
		AngularVelocity:   3,
		Mass:              2,
		RotationalInertia: 0.5,
	})

	def := weld2d.MakeWeldJointDef()
	def.Initialize(ground, box, weld2d.Vec2{X: 0, Y: 0.5})
	joint := weld2d.CreateJoint(&def)

	const dt = 1.0 / 60.0
	step := weld2d.TimeStep{
		Dt:                 dt,
		InvDt:              1.0 / dt,
		DtRatio:            1.0,
		VelocityIterations: 8,
		PositionIterations: 3,
		WarmStarting:       true,
	}

	bodies := []*weld2d.Body{ground, box}
	var trace strings.Builder

	for i := 0; i < 60; i++ {
		data := weld2d.SolverData{
			Step:       step,
			Positions:  make([]weld2d.Position, len(bodies)),
			Velocities: make([]weld2d.Velocity, len(bodies)),
		}
		for slot, b := range bodies {
			b.SetIslandIndex(slot)
			b.SyncToSolver(data)
		}

		joint.InitVelocityConstraints(data)
		for it := 0; it < step.VelocityIterations; it++ {
			joint.SolveVelocityConstraints(data)
		}

		for slot := range data.Positions {
			data.Positions[slot].C = data.Positions[slot].C.Add(data.Velocities[slot].V.Mult(dt))
			data.Positions[slot].A += data.Velocities[slot].W * dt
		}

		for it := 0; it < step.PositionIterations; it++ {
			joint.SolvePositionConstraints(data)
		}

		for _, b := range bodies {
			b.SyncFromSolver(data)
		}

		force := joint.ReactionForce(step.InvDt)
		fmt.Fprintf(&trace, "%02d pos %.17g %.17g angle %.17g vel %.17g %.17g %.17g force %.17g %.17g torque %.17g\n",
			i,
			box.WorldCenter().X, box.WorldCenter().Y, box.Angle(),
			box.LinearVelocity().X, box.LinearVelocity().Y, box.AngularVelocity(),
			force.X, force.Y, joint.ReactionTorque(step.InvDt))
	}

	return trace.String()
}

// The solver must be fully deterministic: replaying the same scenario
// yields a bit-identical trace.
func TestWeldScenarioDeterminism(t *testing.T) {
	first := runWeldScenario()
	second := runWeldScenario()

	if first != second {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(first),
			B:        difflib.SplitLines(second),
			FromFile: "first run",
			ToFile:   "second run",
			Context:  2,
		}
		text, err := difflib.GetUnifiedDiffString(diff)
		if err != nil {
			t.Fatal(err)
		}
		t.Fatalf("traces differ:\n%s", text)
	}
}
