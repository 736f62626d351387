package factory

import (
	"math"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	cellSize       = 16
	floorThickness = 32
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateArena builds the collision space for a match and lays the floor of
// the first stage.
func CreateArena(ecs *ecs.ECS, mc *cfg.MatchConfig) *donburi.Entry {
	deepest := mc.Floor
	for i := range mc.Stages {
		deepest = math.Max(deepest, mc.StageFloor(i))
	}
	height := int(math.Max(float64(cfg.C.Height), deepest+floorThickness))
	space := CreateSpace(ecs, int(math.Ceil(mc.Width)), height, cellSize, cellSize)

	floor := archetypes.Floor.Spawn(ecs)
	obj := resolv.NewObject(0, mc.StageFloor(0), mc.Width, floorThickness, tags.ResolvSolid)
	obj.Data = floor
	components.Object.SetValue(floor, components.ObjectData{Object: obj})
	components.Space.Get(space).Add(obj)
	return space
}

// PlaceFloor moves the floor to the height of the current stage.
func PlaceFloor(w donburi.World, y float64) {
	tags.Floor.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Y = y
		obj.Update()
	})
}
