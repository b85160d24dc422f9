package weld2d

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// JointRecord is a reconstructible snapshot of a weld joint's
// configuration. It replaces a printf-style dump: the caller picks the
// output format, and a marshalled record round-trips back into an
// equivalent definition.
type JointRecord struct {
	Type             string  `yaml:"type"`
	BodyA            int     `yaml:"bodyA"`
	BodyB            int     `yaml:"bodyB"`
	CollideConnected bool    `yaml:"collideConnected"`
	LocalAnchorA     Vec2    `yaml:"localAnchorA"`
	LocalAnchorB     Vec2    `yaml:"localAnchorB"`
	ReferenceAngle   float64 `yaml:"referenceAngle"`
	FrequencyHz      float64 `yaml:"frequencyHz"`
	DampingRatio     float64 `yaml:"dampingRatio"`
}

// Record snapshots the joint's configuration. Bodies are identified by
// their island indices.
func (j *WeldJoint) Record() JointRecord {
	return JointRecord{
		Type:             "weld",
		BodyA:            j.bodyA.IslandIndex(),
		BodyB:            j.bodyB.IslandIndex(),
		CollideConnected: j.collideConnected,
		LocalAnchorA:     j.localAnchorA,
		LocalAnchorB:     j.localAnchorB,
		ReferenceAngle:   j.referenceAngle,
		FrequencyHz:      j.frequencyHz,
		DampingRatio:     j.dampingRatio,
	}
}

func (r JointRecord) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal joint record: %w", err)
	}
	return out, nil
}

func UnmarshalJointRecord(data []byte) (JointRecord, error) {
	var r JointRecord
	if err := yaml.Unmarshal(data, &r); err != nil {
		return JointRecord{}, fmt.Errorf("unmarshal joint record: %w", err)
	}
	return r, nil
}

// Def rebuilds a joint definition equivalent to the recorded one. The
// caller resolves the recorded island indices back to bodies.
func (r JointRecord) Def(bodyA, bodyB *Body) WeldJointDef {
	def := MakeWeldJointDef()
	def.BodyA = bodyA
	def.BodyB = bodyB
	def.CollideConnected = r.CollideConnected
	def.LocalAnchorA = r.LocalAnchorA
	def.LocalAnchorB = r.LocalAnchorB
	def.ReferenceAngle = r.ReferenceAngle
	def.FrequencyHz = r.FrequencyHz
	def.DampingRatio = r.DampingRatio
	return def
}
