package entities

import (
	"math"
	"testing"

	"github.com/decker502/shapewars/pkg/components"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/utils"
)

func newOrigin(em *ecs.EntityManager, x, y float64) *ecs.Entity {
	e := em.AddEntity(ecs.TagPlayer)
	e.Transform = &components.TransformComponent{Position: utils.Vec2{X: x, Y: y}}
	return e
}

func TestNewBullet(t *testing.T) {
	tests := []struct {
		name   string
		origin utils.Vec2
		target utils.Vec2
		want   utils.Vec2
	}{
		// 距离 50，速度 10
		{"3-4-5 三角形", utils.Vec2{}, utils.Vec2{X: 30, Y: 40}, utils.Vec2{X: 6, Y: 8}},
		{"水平向左", utils.Vec2{X: 100, Y: 100}, utils.Vec2{X: 0, Y: 100}, utils.Vec2{X: -10, Y: 0}},
		{"目标与起点重合", utils.Vec2{X: 5, Y: 5}, utils.Vec2{X: 5, Y: 5}, utils.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			gs := newTestState(1)
			origin := newOrigin(em, tt.origin.X, tt.origin.Y)

			b := NewBullet(em, gs, origin, tt.target)

			v := b.Transform.Velocity
			if math.Abs(v.X-tt.want.X) > 1e-9 || math.Abs(v.Y-tt.want.Y) > 1e-9 {
				t.Errorf("expected velocity %+v, got %+v", tt.want, v)
			}
			if !b.Transform.Position.Equal(tt.origin) {
				t.Errorf("bullet should start at origin, got %+v", b.Transform.Position)
			}
			if b.Tag() != ecs.TagBullet {
				t.Errorf("expected bullet tag, got %v", b.Tag())
			}
			if b.Lifespan == nil || b.Lifespan.Total != 90 {
				t.Errorf("unexpected lifespan %+v", b.Lifespan)
			}
			if b.Collision.Radius != 10 || b.Shape.Sides != 20 {
				t.Errorf("unexpected geometry: cr=%v sides=%d", b.Collision.Radius, b.Shape.Sides)
			}
		})
	}
}

// TestNewSpecialWeaponCooldown 冷却为子弹寿命 × 5
func TestNewSpecialWeaponCooldown(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(1)
	origin := newOrigin(em, 0, 0)
	cooldown := SpecialCooldown(gs)
	if cooldown != 450 {
		t.Fatalf("expected cooldown 450, got %d", cooldown)
	}

	gs.CurrentFrame = cooldown - 1
	if _, ok := NewSpecialWeapon(em, gs, origin, utils.Vec2{X: 10}); ok {
		t.Fatal("special should not fire before the first cooldown elapses")
	}

	gs.CurrentFrame = cooldown
	s, ok := NewSpecialWeapon(em, gs, origin, utils.Vec2{X: 10})
	if !ok {
		t.Fatal("special should fire once the cooldown elapses")
	}
	if gs.LastSpecialTime != cooldown {
		t.Errorf("expected LastSpecialTime=%d, got %d", cooldown, gs.LastSpecialTime)
	}
	if v := s.Transform.Velocity; v.X != SpecialSpeed || v.Y != 0 {
		t.Errorf("expected velocity (2, 0), got %+v", v)
	}
	if s.Lifespan.Total != cooldown {
		t.Errorf("expected lifespan %d, got %d", cooldown, s.Lifespan.Total)
	}
	if s.Shape.Radius != gs.Config.Player.ShapeRadius || s.Shape.Sides != gs.Config.Player.Sides {
		t.Errorf("special should use player geometry, got %+v", s.Shape)
	}
	if s.Shape.OutlineThickness != 4 {
		t.Errorf("expected outline thickness 4, got %v", s.Shape.OutlineThickness)
	}
	if s.Tag() != ecs.TagSpecial {
		t.Errorf("expected special tag, got %v", s.Tag())
	}

	gs.CurrentFrame = cooldown + 10
	if _, ok := NewSpecialWeapon(em, gs, origin, utils.Vec2{X: 10}); ok {
		t.Error("special should be on cooldown right after firing")
	}
	if gs.LastSpecialTime != cooldown {
		t.Error("a refused shot must not reset the cooldown")
	}

	gs.CurrentFrame = 2 * cooldown
	if _, ok := NewSpecialWeapon(em, gs, origin, utils.Vec2{X: 10}); !ok {
		t.Error("special should fire again after another cooldown")
	}
}
