package systems

import (
	"github.com/decker502/shapewars/pkg/ecs"
)

// LifespanSystem 有限寿命实体的淡出与销毁
type LifespanSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifespanSystem 创建寿命系统
func NewLifespanSystem(em *ecs.EntityManager) *LifespanSystem {
	return &LifespanSystem{
		entityManager: em,
	}
}

// Update 对每个带 Lifespan 的实体：
// Remaining > 0 时递减并按 Remaining/Total 重设填充和轮廓的透明度，
// 否则（上一个 tick 已耗尽，或创建时即为 0）销毁实体。
func (s *LifespanSystem) Update() {
	for _, e := range s.entityManager.GetEntities() {
		l := e.Lifespan
		if l == nil {
			continue
		}

		if l.Remaining <= 0 {
			e.Destroy()
			continue
		}

		l.Remaining--
		if e.Shape != nil {
			alpha := l.Alpha()
			e.Shape.Fill.A = alpha
			e.Shape.Outline.A = alpha
		}
	}
}
