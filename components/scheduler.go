package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScheduledTask runs Run once its clock finishes, unless the owning fighter
// has moved to a newer generation in the meantime.
type ScheduledTask struct {
	Owner      donburi.Entity
	Generation uint64
	Clock      *gween.Tween
	Run        func(w donburi.World, owner *donburi.Entry)
}

type SchedulerData struct {
	Tasks []*ScheduledTask
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
