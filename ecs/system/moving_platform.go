package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
)

const platformArrival = 0.01

// MovingPlatformSystem sets each platform's velocity for the coming physics
// step. Platforms accelerate toward their current end, brake so they stop on
// it, wait Pause seconds and head back.
type MovingPlatformSystem struct {
	dt float64
}

func NewMovingPlatformSystem() *MovingPlatformSystem {
	return &MovingPlatformSystem{dt: common.FixedStep}
}

func (s *MovingPlatformSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.MovingPlatformComponent.Kind(), func(_ ecs.Entity, mp *component.MovingPlatform) {
		if mp.Body == nil {
			return
		}
		mp.Body.SetVelocity(s.step(mp))
	})
}

func (s *MovingPlatformSystem) step(mp *component.MovingPlatform) cp.Vector {
	if mp.Wait > 0 {
		mp.Wait -= s.dt
		return cp.Vector{}
	}

	pos := mp.Body.Position()
	target := platformTarget(mp)
	remaining := pos.Distance(target)
	if remaining <= platformArrival {
		mp.Reverse = !mp.Reverse
		mp.Speed = 0
		mp.Wait = mp.Pause
		return target.Sub(pos).Mult(1 / s.dt)
	}

	if mp.Acceleration <= 0 {
		mp.Speed = mp.MaxSpeed
	} else {
		dv := mp.Acceleration * s.dt
		if remaining <= mp.Speed*mp.Speed/(2*mp.Acceleration) {
			mp.Speed = max(common.MoveTowards(mp.Speed, 0, dv), dv)
		} else {
			mp.Speed = common.MoveTowards(mp.Speed, mp.MaxSpeed, dv)
		}
	}

	next := pos.LerpConst(target, mp.Speed*s.dt)
	return next.Sub(pos).Mult(1 / s.dt)
}

func platformTarget(mp *component.MovingPlatform) cp.Vector {
	if mp.Reverse {
		return mp.Start
	}
	return mp.Start.Add(mp.Direction.Mult(mp.TargetDistance))
}
