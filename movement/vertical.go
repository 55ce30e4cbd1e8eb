package movement

import (
	"math"

	"github.com/milk9111/polarities/common"
)

func (c *Controller) integrateVertical(grounded bool, dt float64) {
	s := &c.state
	st := &c.stats

	gravityModifier := 1.0
	if !grounded && math.Abs(s.Velocity.Y) < st.VerticalSpeedApexThreshold {
		gravityModifier = st.GraceGravityModifier
	}

	switch {
	case grounded && !s.IgnoreGroundCollision && s.Velocity.Y <= 0:
		s.Velocity.Y = st.WeightForce
	case c.intent.Y < 0 && s.Velocity.Y <= st.FastFallActuationSpeed:
		s.Velocity.Y = common.MoveTowards(s.Velocity.Y, -st.FastFallSpeed, st.FastFallAccel*gravityModifier*dt)
	default:
		s.Velocity.Y = common.MoveTowards(s.Velocity.Y, -st.SlowFallSpeed, st.GravityAccel*gravityModifier*dt)
	}
}
