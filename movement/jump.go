package movement

import "math"

// updateJump runs the coyote/buffer state machine for one input frame.
func (c *Controller) updateJump(in Intent, grounded bool, dt float64) {
	s := &c.state
	st := &c.stats

	if (grounded || s.IsClimbing) && !s.IsJumping {
		s.CoyoteTimer = st.CoyoteTime
	} else {
		s.CoyoteTimer = math.Max(0, s.CoyoteTimer-dt)
	}

	if in.JumpPressed && !s.IsJumping {
		s.BufferTimer = st.JumpBufferTime
		// jump wins over holding onto a ladder
		s.IsClimbing = false
	} else {
		s.BufferTimer = math.Max(0, s.BufferTimer-dt)
	}

	if s.CoyoteTimer > 0 && s.BufferTimer > 0 {
		s.Velocity.Y = st.JumpForce
		s.BufferTimer = 0
		s.IsJumping = true
		c.log.Debug("jump")
	}

	if s.IsJumping && !in.JumpHeld && s.Velocity.Y > 0 && s.Velocity.Y < st.MinJumpHeightThreshold {
		s.Velocity.Y *= st.JumpHeightModifier
		s.CoyoteTimer = 0
		s.IsJumping = false
	}

	if s.Velocity.Y <= 0 {
		s.IsJumping = false
	}
}
