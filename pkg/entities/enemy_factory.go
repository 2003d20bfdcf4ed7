package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/shapewars/pkg/components"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

// NewEnemy 在窗口内随机位置生成一个敌人
//
// 位置在 [r, W-r] × [r, H-r] 内均匀分布（r 为敌人外形半径），
// 速度按轴由 SampleEnemyVelocity 采样，边数在 [SidesMin, SidesMax] 内均匀分布，
// 填充色随机、轮廓色取自配置，分值为边数 × 100。
// 同时把 gs.LastEnemySpawnTime 记为当前帧。
func NewEnemy(em *ecs.EntityManager, gs *game.GameState) *ecs.Entity {
	cfg := gs.Config.Enemy
	rng := gs.Rand
	w := float64(gs.Config.Window.Width)
	h := float64(gs.Config.Window.Height)
	r := cfg.ShapeRadius

	pos := utils.Vec2{
		X: r + rng.Float64()*(w-2*r),
		Y: r + rng.Float64()*(h-2*r),
	}
	sides := cfg.SidesMin + rng.Intn(cfg.SidesMax-cfg.SidesMin+1)
	fill := color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}

	e := em.AddEntity(ecs.TagEnemy)
	e.Transform = &components.TransformComponent{
		Position: pos,
		Velocity: SampleEnemyVelocity(rng, cfg.SpeedMin, cfg.SpeedMax),
	}
	e.Shape = &components.ShapeComponent{
		Radius:           r,
		Sides:            sides,
		Fill:             fill,
		Outline:          cfg.Outline.RGBA(),
		OutlineThickness: cfg.OutlineThickness,
	}
	e.Collision = &components.CollisionComponent{Radius: cfg.CollisionRadius}
	e.Score = &components.ScoreComponent{Value: sides * 100}

	gs.LastEnemySpawnTime = gs.CurrentFrame
	return e
}

// SampleEnemyVelocity 对两个轴分别调用 sampleAxisSpeed
func SampleEnemyVelocity(rng *rand.Rand, speedMin, speedMax float64) utils.Vec2 {
	return utils.Vec2{
		X: sampleAxisSpeed(rng, speedMin, speedMax),
		Y: sampleAxisSpeed(rng, speedMin, speedMax),
	}
}

// sampleAxisSpeed 单轴速度采样
//
// 先在 [-speedMax, speedMax] 的整数步上均匀取值；若结果落在 (0, speedMin) 内，
// 按原符号向外偏移一个取自 [speedMin-1, speedMax-1] 的量，最后把幅值截断到 speedMax。
// 结果的幅值要么为 0，要么落在 [speedMin, speedMax]。
func sampleAxisSpeed(rng *rand.Rand, speedMin, speedMax float64) float64 {
	maxStep := int(speedMax)
	v := float64(rng.Intn(2*maxStep+1) - maxStep)

	mag := math.Abs(v)
	if mag > 0 && mag < speedMin {
		span := int(speedMax) - int(speedMin) + 1
		if span < 1 {
			span = 1
		}
		mag += speedMin - 1 + float64(rng.Intn(span))
		if mag > speedMax {
			mag = speedMax
		}
		v = math.Copysign(mag, v)
	}
	return v
}

// NewSmallEnemies 敌人被击杀时的碎片
//
// 生成与父实体边数相同数量的 small-enemy，角度按 360/边数 均匀分布，碎片的朝向即其分配角度。
// 每个碎片的速度为父实体速度幅值沿其角度分解后再减半，外形与碰撞半径为父实体的一半，
// 颜色与父实体相同，分值翻倍，带有配置的碎片寿命。碎片不会再分裂。
func NewSmallEnemies(em *ecs.EntityManager, gs *game.GameState, parent *ecs.Entity) []*ecs.Entity {
	if parent.Transform == nil || parent.Shape == nil {
		return nil
	}

	sides := parent.Shape.Sides
	if sides <= 0 {
		return nil
	}
	speed := parent.Transform.Velocity.Length()
	step := 360.0 / float64(sides)

	var collisionRadius float64
	if parent.Collision != nil {
		collisionRadius = parent.Collision.Radius / 2
	}
	score := 0
	if parent.Score != nil {
		score = parent.Score.Value * 2
	}

	fragments := make([]*ecs.Entity, 0, sides)
	for i := 0; i < sides; i++ {
		angle := float64(i) * step
		rad := angle * math.Pi / 180
		vel := utils.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}.Mul(speed).Div(2)

		e := em.AddEntity(ecs.TagSmallEnemy)
		e.Transform = &components.TransformComponent{
			Position: parent.Transform.Position,
			Velocity: vel,
			Angle:    angle,
		}
		e.Shape = &components.ShapeComponent{
			Radius:           parent.Shape.Radius / 2,
			Sides:            sides,
			Fill:             parent.Shape.Fill,
			Outline:          parent.Shape.Outline,
			OutlineThickness: parent.Shape.OutlineThickness,
		}
		e.Collision = &components.CollisionComponent{Radius: collisionRadius}
		e.Score = &components.ScoreComponent{Value: score}
		e.Lifespan = components.NewLifespanComponent(gs.Config.Enemy.FragmentLifespan)

		fragments = append(fragments, e)
	}
	return fragments
}
