package scenes

import (
	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/systems"
)

// GameScene 主游戏场景
//
// 持有实体管理器、模拟上下文和全部系统，按固定顺序推进一个 tick：
//  1. 实体生命周期刷新
//  2. 未暂停时：生成 → 移动 → 碰撞 → 寿命
//  3. 输入
//  4. 渲染
//  5. 帧计数 +1
//
// 整个 tick 在调用方的 goroutine 上同步执行。
type GameScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	logger        *zap.Logger

	spawnerSystem   *systems.SpawnerSystem
	movementSystem  *systems.MovementSystem
	collisionSystem *systems.CollisionSystem
	lifespanSystem  *systems.LifespanSystem
	inputSystem     *systems.InputSystem
	renderSystem    *systems.RenderSystem
}

// NewGameScene 创建游戏场景并生成玩家
// 玩家在第一个 tick 的刷新后进入存活集合
func NewGameScene(cfg *config.GameConfig, seed int64, logger *zap.Logger) *GameScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg, seed)

	s := &GameScene{
		entityManager:   em,
		gameState:       gs,
		logger:          logger.Named("scene"),
		spawnerSystem:   systems.NewSpawnerSystem(em, gs, logger),
		movementSystem:  systems.NewMovementSystem(em, gs, logger),
		collisionSystem: systems.NewCollisionSystem(em, gs, logger),
		lifespanSystem:  systems.NewLifespanSystem(em),
		inputSystem:     systems.NewInputSystem(em, gs, logger),
		renderSystem:    systems.NewRenderSystem(em, gs),
	}

	entities.NewPlayer(em, gs)
	s.logger.Info("game scene created",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int64("seed", seed))
	return s
}

// Tick 推进一个 tick
// 输入源中的关闭请求会让 Running 返回 false，但本 tick 的渲染照常完成。
func (s *GameScene) Tick(src game.InputSource, r game.Renderer) {
	s.entityManager.Update()

	if !s.gameState.Paused {
		s.spawnerSystem.Update()
		s.movementSystem.Update()
		s.collisionSystem.Update()
		s.lifespanSystem.Update()
	}

	s.inputSystem.Update(src)
	s.renderSystem.Draw(r)

	s.gameState.CurrentFrame++
}

// Run 连续执行 tick，直到收到关闭请求或达到 maxTicks（<= 0 表示不限）
// 返回实际执行的 tick 数
func (s *GameScene) Run(src game.InputSource, r game.Renderer, maxTicks int) int {
	n := 0
	for s.Running() && (maxTicks <= 0 || n < maxTicks) {
		s.Tick(src, r)
		n++
	}
	return n
}

// Running 是否尚未收到关闭请求
func (s *GameScene) Running() bool {
	return s.gameState.Running
}

// State 返回模拟上下文
func (s *GameScene) State() *game.GameState {
	return s.gameState
}

// EntityManager 返回实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Summary 当前局面的日志字段：帧数、得分和各标签的存活数量
func (s *GameScene) Summary() []zap.Field {
	fields := []zap.Field{
		zap.Int("frames", s.gameState.CurrentFrame),
		zap.Int("score", s.gameState.Score),
		zap.Uint64("created", s.entityManager.TotalCreated()),
	}
	for _, tag := range ecs.Tags() {
		fields = append(fields, zap.Int(tag.String(), len(s.entityManager.GetEntitiesByTag(tag))))
	}
	return fields
}
