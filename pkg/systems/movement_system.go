package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
)

// MovementSystem 玩家控制、敌人反弹和位置积分
type MovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	logger        *zap.Logger
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState, logger *zap.Logger) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		gameState:     gs,
		logger:        logger.Named("movement"),
	}
}

// Update 每个未暂停的 tick 执行一次
//
// 顺序：
//  1. 玩家按轴处理：靠近边界时拉回到 radius+speed 以内并忽略该轴输入，否则按输入设置速度
//  2. 敌人越界时翻转对应轴速度（不修正位置，越界的敌人可能在界外多停留一个 tick）
//  3. 所有带 Transform 的实体 position += velocity
func (s *MovementSystem) Update() {
	s.controlPlayer()
	s.bounceEnemies()

	for _, e := range s.entityManager.GetEntities() {
		if e.Transform == nil {
			continue
		}
		e.Transform.Position.AddAssign(e.Transform.Velocity)
	}
}

func (s *MovementSystem) controlPlayer() {
	player, ok := entities.Player(s.entityManager, s.gameState)
	if !ok || player.Transform == nil || player.Input == nil {
		return
	}

	cfg := s.gameState.Config
	r := cfg.Player.CollisionRadius
	speed := cfg.Player.Speed
	pos := &player.Transform.Position
	vel := &player.Transform.Velocity
	in := player.Input

	pos.Y, vel.Y = clampAxis(pos.Y, vel.Y, float64(cfg.Window.Height), r, speed, in.Up, in.Down)
	pos.X, vel.X = clampAxis(pos.X, vel.X, float64(cfg.Window.Width), r, speed, in.Left, in.Right)
}

// clampAxis 单轴的边界钳制与输入控制
// neg/pos 分别为朝负方向和正方向的输入；两者都未按下时速度归零
func clampAxis(p, v, extent, r, speed float64, neg, pos bool) (float64, float64) {
	switch {
	case p < r:
		return r + speed, v
	case p > extent-r:
		return extent - r - speed, v
	case neg:
		return p, -speed
	case pos:
		return p, speed
	default:
		return p, 0
	}
}

func (s *MovementSystem) bounceEnemies() {
	cfg := s.gameState.Config
	r := cfg.Enemy.ShapeRadius
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)

	for _, e := range s.entityManager.GetEntitiesByTag(ecs.TagEnemy) {
		if e.Transform == nil {
			continue
		}
		p := e.Transform.Position
		if p.X < r || p.X > w-r {
			e.Transform.Velocity.BounceX()
		}
		if p.Y < r || p.Y > h-r {
			e.Transform.Velocity.BounceY()
		}
	}
}
