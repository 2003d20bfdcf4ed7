package entities

import (
	"image/color"

	"github.com/decker502/shapewars/pkg/components"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

// 特殊武器参数
const (
	SpecialSpeed            = 2.0
	SpecialLifespanFactor   = 5 // 寿命和冷却均为子弹寿命的倍数
	specialOutlineThickness = 2 // 相对子弹轮廓宽度的倍数
)

var (
	specialFill    = color.RGBA{R: 200, A: 255}
	specialOutline = color.RGBA{R: 255, A: 255}
)

// NewBullet 从 origin 的位置向 target 发射一颗子弹
// 速度方向指向目标，幅值固定为配置的子弹速度；与点击距离无关。
func NewBullet(em *ecs.EntityManager, gs *game.GameState, origin *ecs.Entity, target utils.Vec2) *ecs.Entity {
	cfg := gs.Config.Bullet
	from := origin.Transform.Position

	e := em.AddEntity(ecs.TagBullet)
	e.Transform = &components.TransformComponent{
		Position: from,
		Velocity: from.Dist(target).Normalize().Mul(cfg.Speed),
	}
	e.Shape = &components.ShapeComponent{
		Radius:           cfg.ShapeRadius,
		Sides:            cfg.Sides,
		Fill:             cfg.Fill.RGBA(),
		Outline:          cfg.Outline.RGBA(),
		OutlineThickness: cfg.OutlineThickness,
	}
	e.Collision = &components.CollisionComponent{Radius: cfg.CollisionRadius}
	e.Lifespan = components.NewLifespanComponent(cfg.Lifespan)
	return e
}

// SpecialCooldown 特殊武器冷却帧数
func SpecialCooldown(gs *game.GameState) int {
	return gs.Config.Bullet.Lifespan * SpecialLifespanFactor
}

// NewSpecialWeapon 发射特殊武器
//
// 距上次发射不足 SpecialCooldown 帧时不发射，返回 (nil, false)。
// 发射时以固定速度 2 飞向目标，外形取玩家的半径和边数，寿命为子弹寿命 × 5，
// 并把 gs.LastSpecialTime 重置为当前帧。
func NewSpecialWeapon(em *ecs.EntityManager, gs *game.GameState, origin *ecs.Entity, target utils.Vec2) (*ecs.Entity, bool) {
	cooldown := SpecialCooldown(gs)
	if gs.FramesSince(gs.LastSpecialTime) < cooldown {
		return nil, false
	}

	player := gs.Config.Player
	from := origin.Transform.Position

	e := em.AddEntity(ecs.TagSpecial)
	e.Transform = &components.TransformComponent{
		Position: from,
		Velocity: from.Dist(target).Normalize().Mul(SpecialSpeed),
	}
	e.Shape = &components.ShapeComponent{
		Radius:           player.ShapeRadius,
		Sides:            player.Sides,
		Fill:             specialFill,
		Outline:          specialOutline,
		OutlineThickness: gs.Config.Bullet.OutlineThickness * specialOutlineThickness,
	}
	e.Collision = &components.CollisionComponent{Radius: player.CollisionRadius}
	e.Lifespan = components.NewLifespanComponent(cooldown)

	gs.LastSpecialTime = gs.CurrentFrame
	return e, true
}
