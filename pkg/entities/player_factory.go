package entities

import (
	"github.com/decker502/shapewars/pkg/components"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

// NewPlayer 创建玩家实体
// 玩家位于窗口中心，初速度为零，外形和碰撞半径取自玩家配置。
// 创建后 gs.Player 指向该实体；实体在下一次刷新后才可被查询。
func NewPlayer(em *ecs.EntityManager, gs *game.GameState) *ecs.Entity {
	cfg := gs.Config.Player

	e := em.AddEntity(ecs.TagPlayer)
	e.Transform = &components.TransformComponent{
		Position: gs.WindowCenter(),
		Velocity: utils.Vec2{},
	}
	e.Shape = &components.ShapeComponent{
		Radius:           cfg.ShapeRadius,
		Sides:            cfg.Sides,
		Fill:             cfg.Fill.RGBA(),
		Outline:          cfg.Outline.RGBA(),
		OutlineThickness: cfg.OutlineThickness,
	}
	e.Collision = &components.CollisionComponent{Radius: cfg.CollisionRadius}
	e.Input = &components.InputComponent{}

	gs.Player = e.Handle()
	return e
}

// Player 返回当前玩家实体
// 玩家尚未刷新入库或已被移除时返回 false
func Player(em *ecs.EntityManager, gs *game.GameState) (*ecs.Entity, bool) {
	return em.Get(gs.Player)
}
