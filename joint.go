package weld2d

// JointType tags each joint variant. The set is closed; the island solver
// dispatches on it without reflection.
type JointType uint8

const (
	JointTypeUnknown JointType = iota
	JointTypeRevolute
	JointTypePrismatic
	JointTypeDistance
	JointTypePulley
	JointTypeMouse
	JointTypeGear
	JointTypeWheel
	JointTypeWeld
	JointTypeFriction
	JointTypeRope
	JointTypeMotor
)

// JointDef is the shared part of every joint definition.
type JointDef struct {
	// Type is set automatically by concrete joint defs.
	Type JointType

	// UserData attaches application specific data to the joint.
	UserData interface{}

	// The two attached bodies.
	BodyA *Body
	BodyB *Body

	// CollideConnected lets the attached bodies still collide with each
	// other.
	CollideConnected bool
}

// JointDefiner is satisfied by every concrete joint definition.
type JointDefiner interface {
	jointType() JointType
}

// Joint is the capability set the island solver needs from a constraint:
// a setup pass, repeated velocity solves, repeated position solves, and
// reaction queries for breakage or sensor logic.
type Joint interface {
	Type() JointType
	BodyA() *Body
	BodyB() *Body

	// AnchorA and AnchorB are the joint anchors in world coordinates.
	AnchorA() Vec2
	AnchorB() Vec2

	// ReactionForce is the force the joint applies at the anchor, given
	// the inverse time step.
	ReactionForce(invDt float64) Vec2

	// ReactionTorque is the torque the joint applies, given the inverse
	// time step.
	ReactionTorque(invDt float64) float64

	CollideConnected() bool
	UserData() interface{}

	// InitVelocityConstraints runs exactly once per step, before any
	// velocity solve.
	InitVelocityConstraints(data SolverData)

	// SolveVelocityConstraints runs once per velocity iteration.
	SolveVelocityConstraints(data SolverData)

	// SolvePositionConstraints runs once per position iteration and
	// reports whether the constraint error is within tolerance.
	SolvePositionConstraints(data SolverData) bool
}

// jointBase carries the fields common to every joint variant.
type jointBase struct {
	jtype            JointType
	bodyA            *Body
	bodyB            *Body
	collideConnected bool
	userData         interface{}
}

func makeJointBase(def JointDef) jointBase {
	weldAssert(def.BodyA != def.BodyB)

	return jointBase{
		jtype:            def.Type,
		bodyA:            def.BodyA,
		bodyB:            def.BodyB,
		collideConnected: def.CollideConnected,
		userData:         def.UserData,
	}
}

func (j *jointBase) Type() JointType {
	return j.jtype
}

func (j *jointBase) BodyA() *Body {
	return j.bodyA
}

func (j *jointBase) BodyB() *Body {
	return j.bodyB
}

func (j *jointBase) CollideConnected() bool {
	return j.collideConnected
}

func (j *jointBase) UserData() interface{} {
	return j.userData
}

func (j *jointBase) SetUserData(data interface{}) {
	j.userData = data
}

// CreateJoint builds the joint variant matching the definition's type
// tag. Only the weld joint is implemented; the other type slots exist so
// the enum stays a closed set.
func CreateJoint(def JointDefiner) Joint {
	switch d := def.(type) {
	case *WeldJointDef:
		return NewWeldJoint(d)
	}

	weldAssert(false)
	return nil
}
