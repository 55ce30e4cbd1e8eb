package movement

// RawInput is one frame of device state: axis values in [-1, 1] and held
// buttons.
type RawInput struct {
	Horizontal float64
	Vertical   float64
	Jump       bool
	Sprint     bool
}

// Intent is the normalized per-frame command the controller consumes.
type Intent struct {
	X, Y        int
	Sprint      bool
	JumpPressed bool
	JumpHeld    bool
}

// AxisDeadzone is the magnitude below which an axis reads as zero.
const AxisDeadzone = 0.2

// Sampler turns raw held levels into an Intent, deriving the jump edge from
// the previous frame.
type Sampler struct {
	jumpWasHeld bool
}

func NewSampler() *Sampler {
	return &Sampler{}
}

func (s *Sampler) Sample(raw RawInput) Intent {
	in := Intent{
		X:        axis(raw.Horizontal),
		Y:        axis(raw.Vertical),
		Sprint:   raw.Sprint,
		JumpHeld: raw.Jump,
	}
	in.JumpPressed = raw.Jump && !s.jumpWasHeld
	s.jumpWasHeld = raw.Jump
	return in
}

// Reset forgets the previous frame so a held jump does not read as a fresh
// press after a restart.
func (s *Sampler) Reset(raw RawInput) {
	s.jumpWasHeld = raw.Jump
}

func axis(v float64) int {
	switch {
	case v > AxisDeadzone:
		return 1
	case v < -AxisDeadzone:
		return -1
	}
	return 0
}
