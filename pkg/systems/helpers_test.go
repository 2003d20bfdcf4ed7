package systems

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/components"
	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

// newTestConfig 测试配置：窗口 1280×720，各类碰撞半径均为 32/10
func newTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Window: config.WindowConfig{Width: 1280, Height: 720, FrameLimit: 60},
		Player: config.PlayerConfig{
			ShapeRadius: 32, CollisionRadius: 32, Speed: 5,
			Fill: config.RGB{R: 5, G: 5, B: 5}, Outline: config.RGB{R: 255},
			OutlineThickness: 4, Sides: 8,
		},
		Enemy: config.EnemyConfig{
			ShapeRadius: 32, CollisionRadius: 32, SpeedMin: 3, SpeedMax: 3,
			Outline: config.RGB{R: 255, G: 255, B: 255}, OutlineThickness: 2,
			SidesMin: 3, SidesMax: 8, FragmentLifespan: 90, SpawnInterval: 60,
		},
		Bullet: config.BulletConfig{
			ShapeRadius: 10, CollisionRadius: 10, Speed: 20,
			Fill: config.RGB{R: 255, G: 255, B: 255}, Outline: config.RGB{R: 255, G: 255, B: 255},
			OutlineThickness: 2, Sides: 20, Lifespan: 90,
		},
	}
}

func newTestWorld() (*ecs.EntityManager, *game.GameState) {
	return ecs.NewEntityManager(), game.NewGameState(newTestConfig(), 1)
}

var testLogger = zap.NewNop()

// addEnemy 添加一个指定位置和边数的敌人（未刷新）
func addEnemy(em *ecs.EntityManager, pos, vel utils.Vec2, sides int) *ecs.Entity {
	e := em.AddEntity(ecs.TagEnemy)
	e.Transform = &components.TransformComponent{Position: pos, Velocity: vel}
	e.Shape = &components.ShapeComponent{
		Radius: 32, Sides: sides,
		Fill:    color.RGBA{R: 100, G: 150, B: 200, A: 255},
		Outline: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	e.Collision = &components.CollisionComponent{Radius: 32}
	e.Score = &components.ScoreComponent{Value: sides * 100}
	return e
}

func addBullet(em *ecs.EntityManager, pos utils.Vec2) *ecs.Entity {
	e := em.AddEntity(ecs.TagBullet)
	e.Transform = &components.TransformComponent{Position: pos}
	e.Shape = &components.ShapeComponent{Radius: 10, Sides: 20}
	e.Collision = &components.CollisionComponent{Radius: 10}
	e.Lifespan = components.NewLifespanComponent(90)
	return e
}

func addSpecial(em *ecs.EntityManager, pos utils.Vec2, remaining int) *ecs.Entity {
	e := em.AddEntity(ecs.TagSpecial)
	e.Transform = &components.TransformComponent{Position: pos}
	e.Shape = &components.ShapeComponent{Radius: 32, Sides: 8}
	e.Collision = &components.CollisionComponent{Radius: 32}
	e.Lifespan = &components.LifespanComponent{Remaining: remaining, Total: 450}
	return e
}

func addSmallEnemy(em *ecs.EntityManager, pos utils.Vec2, score int) *ecs.Entity {
	e := em.AddEntity(ecs.TagSmallEnemy)
	e.Transform = &components.TransformComponent{Position: pos}
	e.Shape = &components.ShapeComponent{Radius: 16, Sides: 4}
	e.Collision = &components.CollisionComponent{Radius: 16}
	e.Score = &components.ScoreComponent{Value: score}
	e.Lifespan = components.NewLifespanComponent(90)
	return e
}

// addPlayer 在指定位置放置玩家
func addPlayer(em *ecs.EntityManager, gs *game.GameState, pos utils.Vec2) *ecs.Entity {
	p := entities.NewPlayer(em, gs)
	p.Transform.Position = pos
	return p
}
