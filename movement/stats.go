package movement

import "github.com/jakecoffman/cp"

// Stats is the tuning bundle shared by a character's controller. It is read
// once when the controller is built and never written afterwards.
//
// Preconditions (not checked): every speed, acceleration, time, threshold and
// size is >= 0, WeightForce is <= 0, IceAccelerationModifier is in (0, 1].
type Stats struct {
	NormalSpeed         float64 `yaml:"normalSpeed"`
	NormalGroundAccel   float64 `yaml:"normalGroundAccel"`
	NormalGroundDecel   float64 `yaml:"normalGroundDecel"`
	NormalAirAccel      float64 `yaml:"normalAirAccel"`
	NormalAirDecel      float64 `yaml:"normalAirDecel"`
	SprintSpeed         float64 `yaml:"sprintSpeed"`
	SprintGroundAccel   float64 `yaml:"sprintGroundAccel"`
	SprintGroundDecel   float64 `yaml:"sprintGroundDecel"`
	SprintAirAccel      float64 `yaml:"sprintAirAccel"`
	SprintAirDecel      float64 `yaml:"sprintAirDecel"`

	JumpForce              float64 `yaml:"jumpForce"`
	GravityAccel           float64 `yaml:"gravityAccel"`
	WeightForce            float64 `yaml:"weightForce"`
	CoyoteTime             float64 `yaml:"coyoteTime"`
	JumpBufferTime         float64 `yaml:"jumpBufferTime"`
	JumpHeightModifier     float64 `yaml:"jumpHeightModifier"`
	MinJumpHeightThreshold float64 `yaml:"minJumpHeightThreshold"`

	FastFallSpeed          float64 `yaml:"fastFallSpeed"`
	FastFallAccel          float64 `yaml:"fastFallAccel"`
	FastFallActuationSpeed float64 `yaml:"fastFallActuationSpeed"`
	SlowFallSpeed          float64 `yaml:"slowFallSpeed"`

	GraceGravityModifier       float64 `yaml:"graceGravityModifier"`
	VerticalSpeedApexThreshold float64 `yaml:"verticalSpeedApexThreshold"`

	// Probe geometry. Sizes are full extents in world units.
	GroundProbeSize    cp.Vector `yaml:"groundProbeSize"`
	CeilingProbeSize   cp.Vector `yaml:"ceilingProbeSize"`
	CeilingBoxSize     float64   `yaml:"ceilingBoxSize"`
	CeilingBoxPosition float64   `yaml:"ceilingBoxPosition"`
	SideProbeInset     float64   `yaml:"sideProbeInset"`
	SideProbeHeight    float64   `yaml:"sideProbeHeight"`
	NearbyGroundMargin float64   `yaml:"nearbyGroundMargin"`

	ClipForce     float64 `yaml:"clipForce"`
	CeilingBounce float64 `yaml:"ceilingBounce"`

	LadderClimbSpeed        float64 `yaml:"ladderClimbSpeed"`
	IceAccelerationModifier float64 `yaml:"iceAccelerationModifier"`

	PassThroughDuration float64 `yaml:"passThroughDuration"`
	SnapThreshold       float64 `yaml:"snapThreshold"`
	SnapRayLength       float64 `yaml:"snapRayLength"`

	HurtboxCenter    cp.Vector        `yaml:"hurtboxCenter"`
	HurtboxSize      cp.Vector        `yaml:"hurtboxSize"`
	HurtboxDirection CapsuleDirection `yaml:"hurtboxDirection"`
}

// DefaultStats returns the stock tuning.
func DefaultStats() Stats {
	return Stats{
		NormalSpeed:       5,
		NormalGroundAccel: 60,
		NormalGroundDecel: 40,
		NormalAirAccel:    50,
		NormalAirDecel:    30,
		SprintSpeed:       5,
		SprintGroundAccel: 40,
		SprintGroundDecel: 30,
		SprintAirAccel:    30,
		SprintAirDecel:    20,

		JumpForce:              17,
		GravityAccel:           75,
		WeightForce:            -1.5,
		CoyoteTime:             0.08,
		JumpBufferTime:         0.08,
		JumpHeightModifier:     0.4,
		MinJumpHeightThreshold: 14,

		FastFallSpeed:          17,
		FastFallAccel:          75,
		FastFallActuationSpeed: 3,
		SlowFallSpeed:          17,

		GraceGravityModifier:       0.4,
		VerticalSpeedApexThreshold: 3,

		GroundProbeSize:    cp.Vector{X: 0.4, Y: 0.1},
		CeilingProbeSize:   cp.Vector{X: 0.4, Y: 0.1},
		CeilingBoxSize:     0.25,
		CeilingBoxPosition: -0.5,
		SideProbeInset:     0.05,
		SideProbeHeight:    0.1,
		NearbyGroundMargin: 0.5,

		ClipForce:     1.5,
		CeilingBounce: 0.9,

		LadderClimbSpeed:        5,
		IceAccelerationModifier: 0.05,

		PassThroughDuration: 0.25,
		SnapThreshold:       1,
		SnapRayLength:       1,

		HurtboxCenter:    cp.Vector{},
		HurtboxSize:      cp.Vector{X: 0.5, Y: 1.375},
		HurtboxDirection: CapsuleVertical,
	}
}

// sideProbeOffset is the horizontal distance from the ceiling box anchor to
// each side probe's center.
func (s *Stats) sideProbeOffset() float64 {
	return (1 - s.CeilingBoxSize + s.CeilingBoxPosition) / 2
}

func (s *Stats) sideProbeSize() cp.Vector {
	return cp.Vector{X: s.CeilingBoxSize - s.SideProbeInset, Y: s.SideProbeHeight}
}
