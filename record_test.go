package weld2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topchiyev/weld2d"
)

func TestJointRecordRoundTrip(t *testing.T) {
	bodyA := weld2d.NewBody(weld2d.BodyDef{Position: weld2d.Vec2{X: 1, Y: 2}, Mass: 1, RotationalInertia: 1})
	bodyB := weld2d.NewBody(weld2d.BodyDef{Position: weld2d.Vec2{X: 3, Y: 2}, Mass: 4, RotationalInertia: 2})
	bodyA.SetIslandIndex(0)
	bodyB.SetIslandIndex(1)

	def := weld2d.MakeWeldJointDef()
	def.BodyA = bodyA
	def.BodyB = bodyB
	def.CollideConnected = true
	def.LocalAnchorA = weld2d.Vec2{X: 0.1, Y: -0.25}
	def.LocalAnchorB = weld2d.Vec2{X: -1.9, Y: -0.25}
	def.ReferenceAngle = math.Pi / 7
	def.FrequencyHz = 4.5
	def.DampingRatio = 0.3
	joint := weld2d.NewWeldJoint(&def)

	record := joint.Record()
	require.Equal(t, "weld", record.Type)
	require.Equal(t, 0, record.BodyA)
	require.Equal(t, 1, record.BodyB)

	out, err := record.Marshal()
	require.NoError(t, err)

	back, err := weld2d.UnmarshalJointRecord(out)
	require.NoError(t, err)
	assert.Equal(t, record, back)

	rebuilt := back.Def(bodyA, bodyB)
	assert.Equal(t, def.LocalAnchorA, rebuilt.LocalAnchorA)
	assert.Equal(t, def.LocalAnchorB, rebuilt.LocalAnchorB)
	assert.Equal(t, def.ReferenceAngle, rebuilt.ReferenceAngle)
	assert.Equal(t, def.FrequencyHz, rebuilt.FrequencyHz)
	assert.Equal(t, def.DampingRatio, rebuilt.DampingRatio)
	assert.Equal(t, def.CollideConnected, rebuilt.CollideConnected)
	assert.Equal(t, weld2d.JointTypeWeld, rebuilt.Type)
}

func TestUnmarshalJointRecordRejectsGarbage(t *testing.T) {
	_, err := weld2d.UnmarshalJointRecord([]byte("localAnchorA: [unclosed"))
	assert.Error(t, err)
}
