package movement

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/common"
	"github.com/sirupsen/logrus"
)

// Config carries everything a Controller needs. World, Body, Signals and
// Stats are required, as is every rig anchor.
type Config struct {
	Polarity Polarity
	Stats    *Stats
	Rig      Rig
	World    World
	Body     Body
	Signals  Signals
	Log      logrus.FieldLogger
	// SnapDirection is the world-space direction of the one-way snap ray.
	// Zero selects the polarity's default.
	SnapDirection cp.Vector
}

// Controller runs one character's movement pipeline. HandleInput is called
// once per rendered frame and FixedUpdate once per simulation tick.
type Controller struct {
	polarity Polarity
	stats    Stats
	rig      Rig
	world    World
	body     Body
	signals  Signals
	log      logrus.FieldLogger
	snapDir  cp.Vector

	state     State
	intent    Intent
	accel     accelSet
	tasks     *TaskScheduler
	declipped []ColliderID
	ended     bool
}

// NewController validates cfg and builds a controller at rest.
func NewController(cfg Config) (*Controller, error) {
	if !cfg.Polarity.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolarity, cfg.Polarity)
	}
	switch {
	case cfg.Stats == nil:
		return nil, fmt.Errorf("%w: stats", ErrMissingReference)
	case cfg.World == nil:
		return nil, fmt.Errorf("%w: world", ErrMissingReference)
	case cfg.Body == nil:
		return nil, fmt.Errorf("%w: body", ErrMissingReference)
	case cfg.Signals == nil:
		return nil, fmt.Errorf("%w: signals", ErrMissingReference)
	}
	if err := cfg.Rig.validate(); err != nil {
		return nil, err
	}

	var lg logrus.FieldLogger = common.DiscardLogger()
	if cfg.Log != nil {
		lg = cfg.Log
	}
	snap := cfg.SnapDirection
	if snap == (cp.Vector{}) {
		snap = cfg.Polarity.DefaultSnapDirection()
	}

	c := &Controller{
		polarity: cfg.Polarity,
		stats:    *cfg.Stats,
		rig:      cfg.Rig,
		world:    cfg.World,
		body:     cfg.Body,
		signals:  cfg.Signals,
		log:      lg.WithField("polarity", cfg.Polarity.String()),
		snapDir:  snap.Normalize(),
		state:    newState(),
		tasks:    NewTaskScheduler(),
	}
	c.selectAccel(Intent{})
	return c, nil
}

// HandleInput runs the variable-rate phase: ice, acceleration curve, jump
// state machine, facing, ladder grab and one-way platform handling.
func (c *Controller) HandleInput(in Intent, dt float64) {
	c.intent = in
	g := c.probeGround()
	c.updateIce(g)
	c.selectAccel(in)
	c.updateJump(in, g.grounded, dt)
	c.flip(in)
	c.checkLadder(in)
	c.oneWayPlatform(in)
}

// FixedUpdate runs the fixed-rate phase and pushes the result to the body.
func (c *Controller) FixedUpdate(dt float64) {
	for _, id := range c.tasks.Advance(dt) {
		c.finishPassThrough(id)
	}

	s := &c.state
	s.PreviousVelocity = s.Velocity

	g := c.probeGround()
	c.integrateVertical(g.grounded, dt)
	c.integrateHorizontal(g.grounded, dt)
	impulse := c.resolveEdges()
	c.climbLadder()
	if s.Velocity.Y <= 0 {
		s.IsJumping = false
	}
	c.checkHazards()

	c.body.SetVelocity(c.polarity.ToWorld(s.Velocity))
	if impulse != (cp.Vector{}) {
		c.body.ApplyImpulse(c.polarity.ToWorld(impulse))
	}
}

func (c *Controller) flip(in Intent) {
	if c.state.FacingRight && in.X < 0 || !c.state.FacingRight && in.X > 0 {
		c.state.FacingRight = !c.state.FacingRight
	}
}

// Reset returns the controller to its spawn state and re-enables every
// collision it disabled.
func (c *Controller) Reset() {
	self := c.body.ID()
	for _, id := range c.tasks.CancelAll() {
		c.world.SetCollisionEnabled(self, id, true)
	}
	c.restoreDeclipped()
	c.state = newState()
	c.intent = Intent{}
	c.ended = false
	c.selectAccel(Intent{})
}

// State returns a copy of the simulation state.
func (c *Controller) State() State {
	return c.state
}

// Polarity reports which character this controller drives.
func (c *Controller) Polarity() Polarity {
	return c.polarity
}

// Body returns the physics body the controller writes velocity to.
func (c *Controller) Body() Body {
	return c.body
}

// Stats returns a copy of the tuning the controller was built with.
func (c *Controller) Stats() Stats {
	return c.stats
}

// Ended reports whether the current attempt has been signalled to restart.
func (c *Controller) Ended() bool {
	return c.ended
}

// WorldVelocity returns the velocity last pushed to the body.
func (c *Controller) WorldVelocity() cp.Vector {
	return c.polarity.ToWorld(c.state.Velocity)
}
