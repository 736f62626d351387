package systems

import (
	"math"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every fighter that is still in the round. Values
// are per tick.
func UpdatePhysics(ecs *ecs.ECS) {
	rules := getRules(ecs.World)
	match := getMatch(ecs.World)
	floor := rules.Config.StageFloor(match.Stage)
	minX, maxX := rules.Config.Bounds(rules.Tuning.Fighter.Width)
	moveSpeed := rules.Tuning.Fighter.MoveSpeed
	restSpeed := rules.Tuning.Fighter.WalkStopSpeed
	threshold := rules.Tuning.Physics.FacingThreshold

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		if components.State.Get(e).CurrentState == cfg.Defeated {
			return
		}
		fighter := components.Fighter.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// A held walk keeps its speed against friction.
		if components.State.Get(e).CurrentState == cfg.Walk && fighter.MoveDir != 0 {
			physics.Velocity.X = fighter.MoveDir * moveSpeed
		}

		Integrate(obj.Object, physics, floor, minX, maxX)
		if components.State.Get(e).CurrentState == cfg.Idle && math.Abs(physics.Velocity.X) < restSpeed {
			physics.Velocity.X = 0
		}

		var opponentX *float64
		if opp := opponentOf(ecs.World, e); opp != nil {
			x := components.Object.Get(opp).X
			opponentX = &x
		}
		physics.Facing = Facing(obj.X, opponentX, physics.Velocity.X, physics.Facing, threshold)
	})
}

// Integrate advances one body by one tick: gravity while airborne, velocity,
// friction, horizontal clamping and floor contact.
func Integrate(obj *resolv.Object, physics *components.PhysicsData, floor, minX, maxX float64) {
	if !physics.Grounded {
		physics.Velocity.Y += physics.Gravity
	}

	obj.X += physics.Velocity.X
	physics.Velocity.X *= physics.Friction
	obj.X = math.Max(minX, math.Min(obj.X, maxX))

	landY := floor - obj.H
	dy := physics.Velocity.Y
	if dy > 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 && obj.Y+obj.H+dy >= solids[0].Y {
				landY = solids[0].Y - obj.H
			}
		}
	}
	obj.Y += dy

	physics.Grounded = obj.Y >= landY
	if physics.Grounded {
		obj.Y = landY
		physics.Velocity.Y = 0
	}
	obj.Update()
}

// Facing points at the opponent when there is one. Without an opponent, or
// when both stand on the same x, it follows a clear horizontal velocity and
// otherwise keeps the current facing.
func Facing(x float64, opponentX *float64, vx, current, threshold float64) float64 {
	if opponentX != nil && *opponentX != x {
		return sign(*opponentX - x)
	}
	if math.Abs(vx) > threshold {
		return sign(vx)
	}
	if current == 0 {
		return cfg.DirectionRight
	}
	return current
}
