package movement

import "github.com/jakecoffman/cp"

func (c *Controller) updateIce(g groundProbe) {
	if g.onIce {
		c.state.AccelerationModifier = c.stats.IceAccelerationModifier
	} else if g.grounded {
		c.state.AccelerationModifier = 1
	}
}

func (c *Controller) checkLadder(in Intent) {
	if c.state.IsOnLadder && in.Y != 0 {
		c.state.IsClimbing = true
	}
}

// climbLadder replaces gravity while climbing.
func (c *Controller) climbLadder() {
	if c.state.IsClimbing && !c.state.IsJumping {
		c.state.Velocity.Y = c.stats.LadderClimbSpeed * float64(c.intent.Y)
	}
}

func (c *Controller) oneWayPlatform(in Intent) {
	if in.Y < 0 && c.state.OneWay != 0 {
		c.startPassThrough(c.state.OneWay)
	}
	if in.X != 0 && in.Y == 0 && !in.JumpHeld {
		c.snapToPlatform()
	}
}

// startPassThrough drops the character through a one-way platform for a fixed
// duration. A platform already being passed through is left alone.
func (c *Controller) startPassThrough(id ColliderID) {
	if !c.tasks.Schedule(id, c.stats.PassThroughDuration) {
		return
	}
	c.world.SetCollisionEnabled(c.body.ID(), id, false)
	c.state.IgnoreGroundCollision = true
	c.log.WithField("platform", id).Debug("pass-through start")
}

func (c *Controller) finishPassThrough(id ColliderID) {
	c.world.SetCollisionEnabled(c.body.ID(), id, true)
	c.state.IgnoreGroundCollision = c.tasks.Len() > 0
	c.log.WithField("platform", id).Debug("pass-through end")
}

// snapToPlatform lifts the character flush onto its own one-way platform
// when its feet have sunk below the top by less than the snap threshold.
func (c *Controller) snapToPlatform() {
	hit, ok := c.world.Raycast(c.body.Position(), c.snapDir, c.stats.SnapRayLength, LayerGround)
	if !ok || hit.Collider.Category != c.polarity.OwnOneWay() {
		return
	}
	top := c.polarity.LocalTop(hit.Collider.Bounds)
	bottom := c.polarity.LocalBottom(c.body.Bounds())
	depth := top - bottom
	if depth <= 0 || depth >= c.stats.SnapThreshold {
		return
	}
	c.body.SetPosition(c.body.Position().Add(c.polarity.ToWorld(cp.Vector{Y: depth})))
}

func (c *Controller) checkHazards() {
	if c.ended {
		return
	}
	st := &c.stats
	center := c.anchor(c.rig.Hurtbox).Add(c.polarity.ToWorld(st.HurtboxCenter))
	switch {
	case c.world.OverlapCapsule(center, st.HurtboxSize, st.HurtboxDirection, LayerHazard):
		c.endAttempt(RestartHazard)
	case c.world.OverlapCapsule(center, st.HurtboxSize, st.HurtboxDirection, c.polarity.Other().HurtboxLayer()):
		c.endAttempt(RestartOtherCharacter)
	}
}

// endAttempt signals a restart once per attempt.
func (c *Controller) endAttempt(cause RestartCause) {
	c.ended = true
	c.log.WithField("cause", cause).Info("attempt ended")
	c.signals.RestartAttempt(c.polarity, cause)
}

// OnTriggerEnter is called when the body starts overlapping a sensor.
func (c *Controller) OnTriggerEnter(col Collider) {
	if col.Category == CategoryLadder {
		c.state.IsOnLadder = true
	}
}

// OnTriggerExit is called when the body stops overlapping a sensor.
func (c *Controller) OnTriggerExit(col Collider) {
	if col.Category == CategoryLadder {
		c.state.IsOnLadder = false
		c.state.IsClimbing = false
	}
}

// OnCollisionEnter is called when the body starts touching a solid collider.
func (c *Controller) OnCollisionEnter(col Collider) {
	if col.Category == c.polarity.OwnOneWay() {
		c.state.OneWay = col.ID
	}
}

func (c *Controller) OnCollisionExit(col Collider) {
	if col.ID == c.state.OneWay {
		c.state.OneWay = 0
	}
}
