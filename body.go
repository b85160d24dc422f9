package weld2d

// BodyDef holds the data needed to construct a rigid body.
type BodyDef struct {
	// World position of the body origin and its angle in radians.
	Position Vec2
	Angle    float64

	LinearVelocity  Vec2
	AngularVelocity float64

	// Mass in kilograms. A value of 0 makes the body static.
	Mass float64

	// RotationalInertia about the center of mass. A value of 0 locks
	// rotation against impulses.
	RotationalInertia float64

	// LocalCenter is the center of mass in body-local coordinates.
	LocalCenter Vec2
}

// Body is the rigid-body collaborator the constraint solver works
// against. It carries only what joints need: inverse mass and inertia,
// the local center offset, the current transform and velocities, and a
// stable island slot assigned by the island solver.
type Body struct {
	islandIndex int

	xf          Transform // body origin transform
	sweepC      Vec2      // world center of mass
	localCenter Vec2

	linearVelocity  Vec2
	angularVelocity float64

	invMass float64
	invI    float64
}

func NewBody(def BodyDef) *Body {
	b := &Body{
		xf:              MakeTransform(def.Position, def.Angle),
		localCenter:     def.LocalCenter,
		linearVelocity:  def.LinearVelocity,
		angularVelocity: def.AngularVelocity,
	}

	if def.Mass > 0.0 {
		b.invMass = 1.0 / def.Mass
	}
	if def.RotationalInertia > 0.0 {
		b.invI = 1.0 / def.RotationalInertia
	}

	b.sweepC = b.xf.Apply(def.LocalCenter)

	return b
}

func (b *Body) IslandIndex() int {
	return b.islandIndex
}

func (b *Body) SetIslandIndex(index int) {
	b.islandIndex = index
}

func (b *Body) InvMass() float64 {
	return b.invMass
}

func (b *Body) InvInertia() float64 {
	return b.invI
}

func (b *Body) LocalCenter() Vec2 {
	return b.localCenter
}

func (b *Body) Angle() float64 {
	return b.xf.Q.Angle()
}

// Position returns the world position of the body origin.
func (b *Body) Position() Vec2 {
	return b.xf.P
}

// WorldCenter returns the world position of the center of mass.
func (b *Body) WorldCenter() Vec2 {
	return b.sweepC
}

func (b *Body) LinearVelocity() Vec2 {
	return b.linearVelocity
}

func (b *Body) SetLinearVelocity(v Vec2) {
	b.linearVelocity = v
}

func (b *Body) AngularVelocity() float64 {
	return b.angularVelocity
}

func (b *Body) SetAngularVelocity(w float64) {
	b.angularVelocity = w
}

// WorldPoint maps a point in body-local coordinates to world coordinates.
func (b *Body) WorldPoint(localPoint Vec2) Vec2 {
	return b.xf.Apply(localPoint)
}

// LocalPoint maps a point in world coordinates to body-local coordinates.
func (b *Body) LocalPoint(worldPoint Vec2) Vec2 {
	return b.xf.ApplyInverse(worldPoint)
}

// SyncToSolver copies the body's state into the shared buffers at its
// island slot. The island solver calls this before the solve.
func (b *Body) SyncToSolver(data SolverData) {
	data.Positions[b.islandIndex] = Position{C: b.sweepC, A: b.Angle()}
	data.Velocities[b.islandIndex] = Velocity{V: b.linearVelocity, W: b.angularVelocity}
}

// SyncFromSolver reads the solved state back from the shared buffers and
// recomputes the origin transform from the center of mass.
func (b *Body) SyncFromSolver(data SolverData) {
	p := data.Positions[b.islandIndex]
	v := data.Velocities[b.islandIndex]

	b.sweepC = p.C
	b.linearVelocity = v.V
	b.angularVelocity = v.W

	q := MakeRot(p.A)
	b.xf.Q = q
	b.xf.P = p.C.Sub(q.Rotate(b.localCenter))
}
