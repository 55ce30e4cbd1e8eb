package movement

import (
	"math"

	"github.com/milk9111/polarities/common"
)

type accelSet struct {
	groundAccel float64
	groundDecel float64
	airAccel    float64
	airDecel    float64
	topSpeed    float64
}

// selectAccel picks the normal or sprint curve. Sprint only engages once the
// character is already at walking speed.
func (c *Controller) selectAccel(in Intent) {
	st := &c.stats
	m := c.state.AccelerationModifier
	if in.Sprint && math.Abs(c.state.Velocity.X) >= st.NormalSpeed {
		c.accel = accelSet{
			groundAccel: st.SprintGroundAccel * m,
			groundDecel: st.SprintGroundDecel * m,
			airAccel:    st.SprintAirAccel * m,
			airDecel:    st.SprintAirDecel * m,
			topSpeed:    st.SprintSpeed,
		}
		return
	}
	c.accel = accelSet{
		groundAccel: st.NormalGroundAccel * m,
		groundDecel: st.NormalGroundDecel * m,
		airAccel:    st.NormalAirAccel * m,
		airDecel:    st.NormalAirDecel * m,
		topSpeed:    st.NormalSpeed,
	}
}

func (c *Controller) integrateHorizontal(grounded bool, dt float64) {
	v := &c.state.Velocity
	if c.intent.X == 0 {
		rate := c.accel.airDecel
		if grounded {
			rate = c.accel.groundDecel
		}
		v.X = common.MoveTowards(v.X, 0, rate*dt)
		return
	}
	rate := c.accel.airAccel
	if grounded {
		rate = c.accel.groundAccel
	}
	v.X = common.MoveTowards(v.X, float64(c.intent.X)*c.accel.topSpeed, rate*dt)
}
