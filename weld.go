package weld2d

import "math"

// WeldJointDef defines a weld joint. You need to specify the local anchor
// points where the bodies are attached and the relative body angle. The
// position of the anchor points is important for computing the reaction
// torque.
type WeldJointDef struct {
	JointDef

	// LocalAnchorA is the anchor point relative to bodyA's origin.
	LocalAnchorA Vec2

	// LocalAnchorB is the anchor point relative to bodyB's origin.
	LocalAnchorB Vec2

	// ReferenceAngle is the bodyB angle minus bodyA angle in the
	// reference state (radians).
	ReferenceAngle float64

	// FrequencyHz is the mass-spring-damper frequency in Hertz.
	// Rotation only. Disable softness with a value of 0.
	FrequencyHz float64

	// DampingRatio: 0 = no damping, 1 = critical damping.
	DampingRatio float64
}

func MakeWeldJointDef() WeldJointDef {
	return WeldJointDef{
		JointDef: JointDef{Type: JointTypeWeld},
	}
}

func (def *WeldJointDef) jointType() JointType {
	return JointTypeWeld
}

// Initialize sets the bodies, anchors, and reference angle from a world
// anchor point and the bodies' current poses.
func (def *WeldJointDef) Initialize(bodyA, bodyB *Body, anchor Vec2) {
	def.BodyA = bodyA
	def.BodyB = bodyB
	def.LocalAnchorA = bodyA.LocalPoint(anchor)
	def.LocalAnchorB = bodyB.LocalPoint(anchor)
	def.ReferenceAngle = bodyB.Angle() - bodyA.Angle()
}

// WeldJoint glues two bodies together so their relative position and
// orientation stay fixed. It may distort somewhat because the island
// constraint solver is approximate. Softness on the angular degree of
// freedom is available through the frequency and damping ratio.
//
// Point-to-point constraint
// C = p2 - p1
// Cdot = v2 + cross(w2, r2) - v1 - cross(w1, r1)
// J = [-I -r1_skew I r2_skew]
//
// Angle constraint
// C = angle2 - angle1 - referenceAngle
// Cdot = w2 - w1
// J = [0 0 -1 0 0 1]
// K = invI1 + invI2
type WeldJoint struct {
	jointBase

	frequencyHz  float64
	dampingRatio float64
	bias         float64

	// Solver shared
	localAnchorA   Vec2
	localAnchorB   Vec2
	referenceAngle float64
	gamma          float64
	impulse        Vec3

	// Solver temp
	indexA       int
	indexB       int
	rA           Vec2
	rB           Vec2
	localCenterA Vec2
	localCenterB Vec2
	invMassA     float64
	invMassB     float64
	invIA        float64
	invIB        float64
	mass         Mat33
}

func NewWeldJoint(def *WeldJointDef) *WeldJoint {
	j := &WeldJoint{
		jointBase:      makeJointBase(def.JointDef),
		localAnchorA:   def.LocalAnchorA,
		localAnchorB:   def.LocalAnchorB,
		referenceAngle: def.ReferenceAngle,
		frequencyHz:    def.FrequencyHz,
		dampingRatio:   def.DampingRatio,
	}
	j.impulse.SetZero()
	return j
}

// LocalAnchorA is the anchor point relative to bodyA's origin.
func (j *WeldJoint) LocalAnchorA() Vec2 {
	return j.localAnchorA
}

// LocalAnchorB is the anchor point relative to bodyB's origin.
func (j *WeldJoint) LocalAnchorB() Vec2 {
	return j.localAnchorB
}

func (j *WeldJoint) ReferenceAngle() float64 {
	return j.referenceAngle
}

// SetFrequency changes the spring frequency in Hz. It takes effect at the
// next setup; a value of 0 makes the joint fully rigid.
func (j *WeldJoint) SetFrequency(hz float64) {
	j.frequencyHz = hz
}

func (j *WeldJoint) Frequency() float64 {
	return j.frequencyHz
}

// SetDampingRatio changes the damping ratio. It takes effect at the next
// setup.
func (j *WeldJoint) SetDampingRatio(ratio float64) {
	j.dampingRatio = ratio
}

func (j *WeldJoint) DampingRatio() float64 {
	return j.dampingRatio
}

func (j *WeldJoint) AnchorA() Vec2 {
	return j.bodyA.WorldPoint(j.localAnchorA)
}

func (j *WeldJoint) AnchorB() Vec2 {
	return j.bodyB.WorldPoint(j.localAnchorB)
}

func (j *WeldJoint) ReactionForce(invDt float64) Vec2 {
	return Vec2{j.impulse.X, j.impulse.Y}.Mult(invDt)
}

func (j *WeldJoint) ReactionTorque(invDt float64) float64 {
	return invDt * j.impulse.Z
}

// weldK builds the coupling matrix for the two linear and one angular
// degrees of freedom. Off-diagonal terms are computed once and mirrored,
// so the result is always symmetric.
//
// K = [mA+mB+rAy^2*iA+rBy^2*iB,  -rAy*iA*rAx-rBy*iB*rBx,  -rAy*iA-rBy*iB]
//     [ -rAy*iA*rAx-rBy*iB*rBx, mA+mB+rAx^2*iA+rBx^2*iB,   rAx*iA+rBx*iB]
//     [         -rAy*iA-rBy*iB,           rAx*iA+rBx*iB,           iA+iB]
func weldK(mA, mB, iA, iB float64, rA, rB Vec2) Mat33 {
	var k Mat33
	k.Ex.X = mA + mB + rA.Y*rA.Y*iA + rB.Y*rB.Y*iB
	k.Ey.X = -rA.Y*rA.X*iA - rB.Y*rB.X*iB
	k.Ez.X = -rA.Y*iA - rB.Y*iB
	k.Ex.Y = k.Ey.X
	k.Ey.Y = mA + mB + rA.X*rA.X*iA + rB.X*rB.X*iB
	k.Ez.Y = rA.X*iA + rB.X*iB
	k.Ex.Z = k.Ez.X
	k.Ey.Z = k.Ez.Y
	k.Ez.Z = iA + iB
	return k
}

func (j *WeldJoint) InitVelocityConstraints(data SolverData) {
	j.indexA = j.bodyA.IslandIndex()
	j.indexB = j.bodyB.IslandIndex()
	j.localCenterA = j.bodyA.LocalCenter()
	j.localCenterB = j.bodyB.LocalCenter()
	j.invMassA = j.bodyA.InvMass()
	j.invMassB = j.bodyB.InvMass()
	j.invIA = j.bodyA.InvInertia()
	j.invIB = j.bodyB.InvInertia()

	aA := data.Positions[j.indexA].A
	vA := data.Velocities[j.indexA].V
	wA := data.Velocities[j.indexA].W

	aB := data.Positions[j.indexB].A
	vB := data.Velocities[j.indexB].V
	wB := data.Velocities[j.indexB].W

	qA := MakeRot(aA)
	qB := MakeRot(aB)

	j.rA = qA.Rotate(j.localAnchorA.Sub(j.localCenterA))
	j.rB = qB.Rotate(j.localAnchorB.Sub(j.localCenterB))

	mA := j.invMassA
	mB := j.invMassB
	iA := j.invIA
	iB := j.invIB

	k := weldK(mA, mB, iA, iB, j.rA, j.rB)

	if j.frequencyHz > 0.0 {
		j.mass = k.Inverse22()

		invM := iA + iB
		m := 0.0
		if invM > 0.0 {
			m = 1.0 / invM
		}

		c := aB - aA - j.referenceAngle

		omega := 2.0 * Pi * j.frequencyHz

		// Damping coefficient
		d := 2.0 * m * j.dampingRatio * omega

		// Spring stiffness
		stiffness := m * omega * omega

		h := data.Step.Dt
		j.gamma = h * (d + h*stiffness)
		if j.gamma != 0.0 {
			j.gamma = 1.0 / j.gamma
		} else {
			j.gamma = 0.0
		}
		j.bias = c * h * stiffness * j.gamma

		invM += j.gamma
		if invM != 0.0 {
			j.mass.Ez.Z = 1.0 / invM
		} else {
			j.mass.Ez.Z = 0.0
		}
	} else if k.Ez.Z == 0.0 {
		j.mass = k.Inverse22()
		j.gamma = 0.0
		j.bias = 0.0
	} else {
		j.mass = k.SymInverse()
		j.gamma = 0.0
		j.bias = 0.0
	}

	if data.Step.WarmStarting {
		// Scale impulses to support a variable time step.
		j.impulse = j.impulse.Mult(data.Step.DtRatio)

		p := Vec2{j.impulse.X, j.impulse.Y}

		vA = vA.Sub(p.Mult(mA))
		wA -= iA * (j.rA.Cross(p) + j.impulse.Z)

		vB = vB.Add(p.Mult(mB))
		wB += iB * (j.rB.Cross(p) + j.impulse.Z)
	} else {
		j.impulse.SetZero()
	}

	data.Velocities[j.indexA].V = vA
	data.Velocities[j.indexA].W = wA
	data.Velocities[j.indexB].V = vB
	data.Velocities[j.indexB].W = wB
}

func (j *WeldJoint) SolveVelocityConstraints(data SolverData) {
	vA := data.Velocities[j.indexA].V
	wA := data.Velocities[j.indexA].W
	vB := data.Velocities[j.indexB].V
	wB := data.Velocities[j.indexB].W

	mA := j.invMassA
	mB := j.invMassB
	iA := j.invIA
	iB := j.invIB

	if j.frequencyHz > 0.0 {
		// The angular sub-problem goes first; the linear sub-problem then
		// sees the updated angular velocities. This ordering affects
		// convergence under iteration and must not change.
		cdot2 := wB - wA

		impulse2 := -j.mass.Ez.Z * (cdot2 + j.bias + j.gamma*j.impulse.Z)
		j.impulse.Z += impulse2

		wA -= iA * impulse2
		wB += iB * impulse2

		cdot1 := vB.Add(CrossSV(wB, j.rB)).Sub(vA).Sub(CrossSV(wA, j.rA))

		impulse1 := j.mass.Mul22(cdot1).Neg()
		j.impulse.X += impulse1.X
		j.impulse.Y += impulse1.Y

		p := impulse1

		vA = vA.Sub(p.Mult(mA))
		wA -= iA * j.rA.Cross(p)

		vB = vB.Add(p.Mult(mB))
		wB += iB * j.rB.Cross(p)
	} else {
		cdot1 := vB.Add(CrossSV(wB, j.rB)).Sub(vA).Sub(CrossSV(wA, j.rA))
		cdot2 := wB - wA
		cdot := Vec3{cdot1.X, cdot1.Y, cdot2}

		impulse := j.mass.MulV3(cdot).Neg()
		j.impulse = j.impulse.Add(impulse)

		p := Vec2{impulse.X, impulse.Y}

		vA = vA.Sub(p.Mult(mA))
		wA -= iA * (j.rA.Cross(p) + impulse.Z)

		vB = vB.Add(p.Mult(mB))
		wB += iB * (j.rB.Cross(p) + impulse.Z)
	}

	data.Velocities[j.indexA].V = vA
	data.Velocities[j.indexA].W = wA
	data.Velocities[j.indexB].V = vB
	data.Velocities[j.indexB].W = wB
}

func (j *WeldJoint) SolvePositionConstraints(data SolverData) bool {
	cA := data.Positions[j.indexA].C
	aA := data.Positions[j.indexA].A
	cB := data.Positions[j.indexB].C
	aB := data.Positions[j.indexB].A

	qA := MakeRot(aA)
	qB := MakeRot(aB)

	mA := j.invMassA
	mB := j.invMassB
	iA := j.invIA
	iB := j.invIB

	// Position solving uses fresh geometry every call, not the anchors
	// snapshotted during setup.
	rA := qA.Rotate(j.localAnchorA.Sub(j.localCenterA))
	rB := qB.Rotate(j.localAnchorB.Sub(j.localCenterB))

	k := weldK(mA, mB, iA, iB, rA, rB)

	c1 := cB.Add(rB).Sub(cA).Sub(rA)
	c2 := aB - aA - j.referenceAngle

	positionError := c1.Length()
	angularError := math.Abs(c2)

	if j.frequencyHz > 0.0 {
		// The spring resolves orientation at the velocity level, so only
		// the linear error gets a position correction. The angular error
		// still counts against the tolerance check.
		p := k.Solve22(c1).Neg()

		cA = cA.Sub(p.Mult(mA))
		aA -= iA * rA.Cross(p)

		cB = cB.Add(p.Mult(mB))
		aB += iB * rB.Cross(p)
	} else {
		c := Vec3{c1.X, c1.Y, c2}

		var impulse Vec3
		if k.Ez.Z > 0.0 {
			impulse = k.Solve33(c).Neg()
		} else {
			impulse2 := k.Solve22(c1).Neg()
			impulse = Vec3{impulse2.X, impulse2.Y, 0.0}
		}

		p := Vec2{impulse.X, impulse.Y}

		cA = cA.Sub(p.Mult(mA))
		aA -= iA * (rA.Cross(p) + impulse.Z)

		cB = cB.Add(p.Mult(mB))
		aB += iB * (rB.Cross(p) + impulse.Z)
	}

	data.Positions[j.indexA].C = cA
	data.Positions[j.indexA].A = aA
	data.Positions[j.indexB].C = cB
	data.Positions[j.indexB].A = aB

	return positionError <= LinearSlop && angularError <= AngularSlop
}
