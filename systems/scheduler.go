package systems

import (
	"github.com/automoto/doomerang-duel/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Schedule runs fn after delayMs of simulated time, provided owner is still
// in the action it was in when the task was scheduled.
func Schedule(w donburi.World, owner *donburi.Entry, delayMs float64, fn func(w donburi.World, owner *donburi.Entry)) {
	entry, ok := components.Scheduler.First(w)
	if !ok {
		return
	}
	scheduler := components.Scheduler.Get(entry)
	scheduler.Tasks = append(scheduler.Tasks, &components.ScheduledTask{
		Owner:      owner.Entity(),
		Generation: components.Fighter.Get(owner).Generation,
		Clock:      gween.New(0, float32(delayMs), float32(delayMs), ease.Linear),
		Run:        fn,
	})
}

// UpdateScheduler advances every task clock and fires the finished ones.
// Tasks whose owner changed generation are dropped without running.
func UpdateScheduler(ecs *ecs.ECS) {
	entry, ok := components.Scheduler.First(ecs.World)
	if !ok {
		return
	}
	scheduler := components.Scheduler.Get(entry)
	dt := float32(getMatch(ecs.World).DeltaMs)

	pending := scheduler.Tasks
	scheduler.Tasks = nil
	keep := pending[:0]
	for _, task := range pending {
		owner, live := taskOwner(ecs.World, task)
		if !live {
			continue
		}
		if _, done := task.Clock.Update(dt); !done {
			keep = append(keep, task)
			continue
		}
		task.Run(ecs.World, owner)
	}
	// Tasks scheduled by a task that just ran go after the survivors.
	scheduler.Tasks = append(keep, scheduler.Tasks...)
}

// CancelAll drops every pending task.
func CancelAll(w donburi.World) {
	if entry, ok := components.Scheduler.First(w); ok {
		components.Scheduler.Get(entry).Tasks = nil
	}
}

// PendingTasks is the number of tasks waiting to fire.
func PendingTasks(w donburi.World) int {
	entry, ok := components.Scheduler.First(w)
	if !ok {
		return 0
	}
	return len(components.Scheduler.Get(entry).Tasks)
}

func taskOwner(w donburi.World, task *components.ScheduledTask) (*donburi.Entry, bool) {
	if !w.Valid(task.Owner) {
		return nil, false
	}
	owner := w.Entry(task.Owner)
	if components.Fighter.Get(owner).Generation != task.Generation {
		return nil, false
	}
	return owner, true
}
