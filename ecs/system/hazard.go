package system

import (
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/movement"
	"github.com/sirupsen/logrus"
)

// HazardSystem receives restart signals from the controllers and turns them
// into RestartRequest entities at its point in the frame.
type HazardSystem struct {
	log     logrus.FieldLogger
	pending []component.RestartRequest
}

// NewHazardSystem returns a HazardSystem with nothing pending.
func NewHazardSystem(log logrus.FieldLogger) *HazardSystem {
	return &HazardSystem{log: log}
}

// RestartAttempt implements movement.Signals.
func (h *HazardSystem) RestartAttempt(p movement.Polarity, cause movement.RestartCause) {
	h.pending = append(h.pending, component.RestartRequest{Polarity: p, Cause: cause})
}

func (h *HazardSystem) Update(w *ecs.World) {
	if h == nil || w == nil || len(h.pending) == 0 {
		return
	}
	for i := range h.pending {
		req := h.pending[i]
		if h.log != nil {
			h.log.WithFields(logrus.Fields{
				"polarity": req.Polarity.String(),
				"cause":    req.Cause.String(),
			}).Info("restart requested")
		}
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.RestartRequestComponent.Kind(), &req)
	}
	h.pending = h.pending[:0]
}
