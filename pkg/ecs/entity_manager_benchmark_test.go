package ecs

import (
	"testing"

	"github.com/decker502/shapewars/pkg/components"
)

// ========== 辅助函数：创建测试数据 ==========

// setupBenchmarkEntities 创建指定数量的实体并完成一次刷新
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	tags := Tags()
	for i := 0; i < count; i++ {
		e := em.AddEntity(tags[i%len(tags)])
		e.Transform = &components.TransformComponent{}
	}
	em.Update()
	return em
}

// BenchmarkUpdateChurn 每轮销毁一半实体并补充同样数量的新实体
func BenchmarkUpdateChurn(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, e := range em.GetEntities() {
			if j%2 == 0 {
				e.Destroy()
				em.AddEntity(e.Tag())
			}
		}
		em.Update()
	}
}

func BenchmarkGetEntitiesByTag(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	n := 0
	for i := 0; i < b.N; i++ {
		n += len(em.GetEntitiesByTag(TagEnemy))
	}
	_ = n
}

func BenchmarkIntegrateAll(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range em.GetEntities() {
			e.Transform.Position.AddAssign(e.Transform.Velocity)
		}
	}
}
