package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
)

// SpawnerSystem 按冷却时间生成敌人
type SpawnerSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	logger        *zap.Logger
}

// NewSpawnerSystem 创建生成系统
func NewSpawnerSystem(em *ecs.EntityManager, gs *game.GameState, logger *zap.Logger) *SpawnerSystem {
	return &SpawnerSystem{
		entityManager: em,
		gameState:     gs,
		logger:        logger.Named("spawner"),
	}
}

// Update 距上次生成已满 SpawnInterval 帧时生成一个敌人
func (s *SpawnerSystem) Update() {
	gs := s.gameState
	if gs.FramesSince(gs.LastEnemySpawnTime) < gs.Config.Enemy.SpawnInterval {
		return
	}

	e := entities.NewEnemy(s.entityManager, gs)
	if ce := s.logger.Check(zap.DebugLevel, "enemy spawned"); ce != nil {
		ce.Write(
			zap.Uint64("id", e.ID()),
			zap.Int("frame", gs.CurrentFrame),
			zap.Int("sides", e.Shape.Sides),
			zap.Float64("x", e.Transform.Position.X),
			zap.Float64("y", e.Transform.Position.Y),
		)
	}
}
