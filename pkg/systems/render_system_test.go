package systems

import (
	"testing"

	"github.com/decker502/shapewars/pkg/components"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

func TestRenderSnapshot(t *testing.T) {
	em, gs := newTestWorld()
	addPlayer(em, gs, utils.Vec2{X: 640, Y: 360})
	e := addEnemy(em, utils.Vec2{X: 100, Y: 100}, utils.Vec2{}, 5)
	// 没有外形的实体不绘制
	bare := em.AddEntity(ecs.TagBullet)
	bare.Transform = &components.TransformComponent{}
	em.Update()
	gs.Score = 1200

	dl := game.NewDrawList()
	sys := NewRenderSystem(em, gs)
	sys.Draw(dl)

	frame := dl.Frame()
	if len(frame.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(frame.Shapes))
	}
	if frame.Shapes[0].Sides != 8 || frame.Shapes[1].Sides != 5 {
		t.Errorf("shapes should follow insertion order: %+v", frame.Shapes)
	}
	if len(frame.Texts) != 1 || frame.Texts[0] != "Score : 1200" {
		t.Errorf("unexpected score text %v", frame.Texts)
	}

	sys.Draw(dl)
	if e.Transform.Angle != 2 {
		t.Errorf("expected angle 2 after two frames, got %v", e.Transform.Angle)
	}
	if dl.Frame().Shapes[1].Angle != 2 {
		t.Errorf("drawn angle should follow the transform, got %v", dl.Frame().Shapes[1].Angle)
	}
	if dl.PresentedFrames() != 2 {
		t.Errorf("expected 2 presented frames, got %d", dl.PresentedFrames())
	}
}

func TestScoreText(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Score : 0"},
		{300, "Score : 300"},
		{123456, "Score : 123456"},
	}
	for _, tt := range tests {
		if got := ScoreText(tt.score); got != tt.want {
			t.Errorf("ScoreText(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
