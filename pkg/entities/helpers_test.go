package entities

import (
	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/game"
)

// newTestConfig 返回测试用的游戏配置
func newTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Window: config.WindowConfig{Width: 1280, Height: 720, FrameLimit: 60},
		Player: config.PlayerConfig{
			ShapeRadius: 32, CollisionRadius: 32, Speed: 5,
			Fill: config.RGB{R: 5, G: 5, B: 5}, Outline: config.RGB{R: 255},
			OutlineThickness: 4, Sides: 8,
		},
		Enemy: config.EnemyConfig{
			ShapeRadius: 32, CollisionRadius: 32, SpeedMin: 3, SpeedMax: 6,
			Outline: config.RGB{R: 255, G: 255, B: 255}, OutlineThickness: 2,
			SidesMin: 3, SidesMax: 8, FragmentLifespan: 90, SpawnInterval: 60,
		},
		Bullet: config.BulletConfig{
			ShapeRadius: 10, CollisionRadius: 10, Speed: 10,
			Fill: config.RGB{R: 255, G: 255, B: 255}, Outline: config.RGB{R: 255, G: 255, B: 255},
			OutlineThickness: 2, Sides: 20, Lifespan: 90,
		},
	}
}

func newTestState(seed int64) *game.GameState {
	return game.NewGameState(newTestConfig(), seed)
}
