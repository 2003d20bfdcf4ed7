package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
)

// specialFieldFactor 特殊武器外圈半径相对内圈的倍数
const specialFieldFactor = 5

// specialPullDivisor 外圈内敌人速度 = 指向特殊武器的位移 / specialPullDivisor
const specialPullDivisor = 50

// CollisionSystem 圆形接近检测
//
// 所有判定使用配置中的碰撞半径，距离不超过半径之和即视为碰撞。
// 销毁只做标记，本 tick 的查询结果里仍可遍历到已销毁实体，
// 因此每一对在结算前都重新检查双方是否存活，同一实体不会被重复计分。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	logger        *zap.Logger
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, logger *zap.Logger) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
		logger:        logger.Named("collision"),
	}
}

// Update 依次处理 敌人×子弹、玩家×敌人、敌人×特殊武器、子弹×小敌人
func (s *CollisionSystem) Update() {
	cfg := s.gameState.Config
	bulletRange := cfg.Bullet.CollisionRadius + cfg.Enemy.CollisionRadius
	playerRange := cfg.Player.CollisionRadius + cfg.Enemy.CollisionRadius

	enemies := s.entityManager.GetEntitiesByTag(ecs.TagEnemy)
	bullets := s.entityManager.GetEntitiesByTag(ecs.TagBullet)
	specials := s.entityManager.GetEntitiesByTag(ecs.TagSpecial)
	player, hasPlayer := entities.Player(s.entityManager, s.gameState)

	for _, e := range enemies {
		if !e.IsAlive() || e.Transform == nil {
			continue
		}

		for _, b := range bullets {
			if !b.IsAlive() || b.Transform == nil {
				continue
			}
			if distance(e, b) <= bulletRange {
				s.killEnemy(e, "bullet")
				b.Destroy()
				break
			}
		}
		if !e.IsAlive() {
			continue
		}

		if hasPlayer && player.Transform != nil && distance(player, e) <= playerRange {
			e.Destroy()
			player.Transform.Position = s.gameState.WindowCenter()
			s.logger.Debug("player hit", zap.Uint64("enemy", e.ID()), zap.Int("frame", s.gameState.CurrentFrame))
			continue
		}

		for _, sp := range specials {
			if !sp.IsAlive() || sp.Transform == nil {
				continue
			}
			d := distance(e, sp)
			if d <= bulletRange {
				s.killEnemy(e, "special")
				break
			}
			if d <= bulletRange*specialFieldFactor {
				e.Transform.Velocity = e.Transform.Position.Dist(sp.Transform.Position).Div(specialPullDivisor)
				if sp.Lifespan != nil && sp.Lifespan.Remaining == 0 {
					s.killEnemy(e, "special-burst")
					break
				}
			}
		}
	}

	smallEnemies := s.entityManager.GetEntitiesByTag(ecs.TagSmallEnemy)
	for _, b := range bullets {
		if !b.IsAlive() || b.Transform == nil {
			continue
		}
		for _, se := range smallEnemies {
			if !se.IsAlive() || se.Transform == nil {
				continue
			}
			if distance(b, se) <= bulletRange {
				s.award(se)
				se.Destroy()
				b.Destroy()
				break
			}
		}
	}
}

// killEnemy 计分、生成碎片并销毁敌人
func (s *CollisionSystem) killEnemy(e *ecs.Entity, cause string) {
	s.award(e)
	fragments := entities.NewSmallEnemies(s.entityManager, s.gameState, e)
	e.Destroy()

	if ce := s.logger.Check(zap.DebugLevel, "enemy killed"); ce != nil {
		ce.Write(
			zap.Uint64("id", e.ID()),
			zap.String("by", cause),
			zap.Int("fragments", len(fragments)),
			zap.Int("score", s.gameState.Score),
		)
	}
}

func (s *CollisionSystem) award(e *ecs.Entity) {
	if e.Score != nil {
		s.gameState.AddScore(e.Score.Value)
	}
}

// distance 两个实体位置之间的距离
func distance(a, b *ecs.Entity) float64 {
	return a.Transform.Position.Dist(b.Transform.Position).Length()
}
