package systems

import (
	"strconv"

	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/game"
)

// rotationPerFrame 每次渲染时形状旋转的角度（度）
const rotationPerFrame = 1.0

// RenderSystem 把所有存活实体的快照提交给 Renderer
//
// 暂停期间同样运行。每渲染一次，实体角度增加 1 度。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Draw 按插入顺序绘制实体，最后绘制分数
func (s *RenderSystem) Draw(r game.Renderer) {
	r.Clear()

	for _, e := range s.entityManager.GetEntities() {
		if e.Transform == nil || e.Shape == nil {
			continue
		}
		e.Transform.Angle += rotationPerFrame
		sh := e.Shape
		r.DrawShape(e.Transform.Position, e.Transform.Angle, sh.Radius, sh.Sides, sh.Fill, sh.Outline, sh.OutlineThickness)
	}

	r.DrawText(ScoreText(s.gameState.Score))
	r.Present()
}

// ScoreText 分数文字
func ScoreText(score int) string {
	return "Score : " + strconv.Itoa(score)
}
