package scenes

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

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
			ShapeRadius: 10, CollisionRadius: 10, Speed: 10,
			Fill: config.RGB{R: 255, G: 255, B: 255}, Outline: config.RGB{R: 255, G: 255, B: 255},
			OutlineThickness: 2, Sides: 20, Lifespan: 90,
		},
	}
}

func newTestScene(seed int64) *GameScene {
	return NewGameScene(newTestConfig(), seed, zap.NewNop())
}

func player(t *testing.T, s *GameScene) *ecs.Entity {
	t.Helper()
	p, ok := entities.Player(s.EntityManager(), s.State())
	if !ok {
		t.Fatal("player not found")
	}
	return p
}

// TestGameScenePlayerAppearsAfterFirstFlush 玩家在第一个 tick 的刷新后可见
func TestGameScenePlayerAppearsAfterFirstFlush(t *testing.T) {
	s := newTestScene(1)
	em := s.EntityManager()

	if len(em.GetEntitiesByTag(ecs.TagPlayer)) != 0 {
		t.Fatal("player should be pending before the first tick")
	}

	dl := game.NewDrawList()
	s.Tick(game.NewScriptedInput(), dl)

	if len(em.GetEntitiesByTag(ecs.TagPlayer)) != 1 {
		t.Fatal("player should be live after the first tick")
	}
	if s.State().CurrentFrame != 1 {
		t.Errorf("expected frame 1, got %d", s.State().CurrentFrame)
	}
	frame := dl.Frame()
	if len(frame.Shapes) != 1 || len(frame.Texts) != 1 || frame.Texts[0] != "Score : 0" {
		t.Errorf("unexpected first frame: %+v", frame)
	}
}

// TestGameSceneEnemySpawnTiming 第 60 帧生成敌人，下一个 tick 刷新后可见
func TestGameSceneEnemySpawnTiming(t *testing.T) {
	s := newTestScene(1)
	in := game.NewScriptedInput()
	r := game.NopRenderer{}
	em := s.EntityManager()

	s.Run(in, r, 60)
	if em.PendingByTag(ecs.TagEnemy) != 0 || len(em.GetEntitiesByTag(ecs.TagEnemy)) != 0 {
		t.Fatal("no enemy expected during the first 60 frames")
	}

	s.Tick(in, r) // 第 60 帧
	if em.PendingByTag(ecs.TagEnemy) != 1 {
		t.Fatalf("expected a pending enemy at frame 60, got %d", em.PendingByTag(ecs.TagEnemy))
	}
	if s.State().LastEnemySpawnTime != 60 {
		t.Errorf("expected LastEnemySpawnTime=60, got %d", s.State().LastEnemySpawnTime)
	}

	s.Tick(in, r)
	if len(em.GetEntitiesByTag(ecs.TagEnemy)) != 1 {
		t.Error("enemy should be live after the next flush")
	}
}

// TestGameScenePause 暂停冻结玩法系统，输入、渲染和帧计数照常
func TestGameScenePause(t *testing.T) {
	s := newTestScene(1)
	in := game.NewScriptedInput()
	dl := game.NewDrawList()

	in.Push(game.KeyDownEvent(game.KeyRight))
	s.Tick(in, dl)
	p := player(t, s)
	center := s.State().WindowCenter()
	if !p.Transform.Position.Equal(center) {
		t.Fatalf("movement runs before input, player should not have moved: %+v", p.Transform.Position)
	}

	in.Push(game.KeyDownEvent(game.KeyPause))
	s.Tick(in, dl)
	moved := center.Add(utils.Vec2{X: 5})
	if !p.Transform.Position.Equal(moved) {
		t.Fatalf("expected %+v, got %+v", moved, p.Transform.Position)
	}
	if !s.State().Paused {
		t.Fatal("scene should be paused")
	}

	for i := 0; i < 100; i++ {
		s.Tick(in, dl)
	}
	if !p.Transform.Position.Equal(moved) {
		t.Errorf("player moved while paused: %+v", p.Transform.Position)
	}
	if n := s.EntityManager().PendingByTag(ecs.TagEnemy) + len(s.EntityManager().GetEntitiesByTag(ecs.TagEnemy)); n != 0 {
		t.Errorf("no enemies should spawn while paused, got %d", n)
	}
	if s.State().CurrentFrame != 102 || dl.PresentedFrames() != 102 {
		t.Errorf("frames and renders continue while paused: frame=%d presented=%d", s.State().CurrentFrame, dl.PresentedFrames())
	}

	// 暂停时鼠标被忽略
	in.Push(game.MouseDownEvent(game.MouseLeft, 0, 0))
	s.Tick(in, dl)
	if s.EntityManager().PendingByTag(ecs.TagBullet) != 0 {
		t.Error("mouse fire should be ignored while paused")
	}

	in.Push(game.KeyDownEvent(game.KeyPause))
	s.Tick(in, dl)
	s.Tick(in, dl)
	if !p.Transform.Position.Equal(moved.Add(utils.Vec2{X: 5})) {
		t.Errorf("movement should resume after unpausing, got %+v", p.Transform.Position)
	}
}

// TestGameSceneCloseStopsAfterRender 关闭请求在当前 tick 渲染完成后停止循环
func TestGameSceneCloseStopsAfterRender(t *testing.T) {
	s := newTestScene(1)
	in := game.NewScriptedInput()
	dl := game.NewDrawList()

	s.Run(in, dl, 5)
	in.Push(game.CloseEvent())
	n := s.Run(in, dl, 0)

	if n != 1 {
		t.Errorf("expected exactly one more tick, got %d", n)
	}
	if s.Running() {
		t.Error("scene should stop after a close request")
	}
	if dl.PresentedFrames() != 6 {
		t.Errorf("closing tick should still render, got %d frames", dl.PresentedFrames())
	}
}

// TestGameSceneBulletFire 子弹速度为 10 时，从玩家位置射向 (+30, +40) 的速度为 (6, 8)
func TestGameSceneBulletFire(t *testing.T) {
	s := newTestScene(1)
	in := game.NewScriptedInput()
	r := game.NopRenderer{}

	s.Tick(in, r)
	c := s.State().WindowCenter()
	in.Push(game.MouseDownEvent(game.MouseLeft, c.X+30, c.Y+40))
	s.Tick(in, r)
	s.Tick(in, r)

	bullets := s.EntityManager().GetEntitiesByTag(ecs.TagBullet)
	if len(bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(bullets))
	}
	v := bullets[0].Transform.Velocity
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("expected velocity (6, 8), got %+v", v)
	}
	// 已经积分过一次
	if want := c.Add(utils.Vec2{X: 6, Y: 8}); !bullets[0].Transform.Position.Equal(want) {
		t.Errorf("expected position %+v, got %+v", want, bullets[0].Transform.Position)
	}
}

// TestGameSceneBulletExpires 子弹在寿命 + 1 个 tick 后销毁
func TestGameSceneBulletExpires(t *testing.T) {
	cfg := newTestConfig()
	cfg.Bullet.Lifespan = 3
	cfg.Bullet.Speed = 0
	s := NewGameScene(cfg, 1, zap.NewNop())
	in := game.NewScriptedInput()
	r := game.NopRenderer{}

	s.Tick(in, r)
	in.Push(game.MouseDownEvent(game.MouseLeft, 0, 0))
	s.Tick(in, r)

	em := s.EntityManager()
	ticks := 0
	for {
		s.Tick(in, r)
		ticks++
		if len(em.GetEntitiesByTag(ecs.TagBullet)) == 0 {
			break
		}
		if ticks > 10 {
			t.Fatal("bullet never expired")
		}
	}
	// 刷新入库后存活 3 个 tick，第 4 个 tick 标记销毁，第 5 个 tick 刷新时移除
	if ticks != 5 {
		t.Errorf("expected bullet gone after 5 ticks, got %d", ticks)
	}
}

// TestGameSceneDeterministic 相同种子和输入得到相同局面
func TestGameSceneDeterministic(t *testing.T) {
	run := func() []utils.Vec2 {
		s := newTestScene(2024)
		s.Run(game.NewScriptedInput(), game.NopRenderer{}, 400)
		// 第 60, 120, ..., 360 帧各生成一个敌人，外加玩家
		if got := s.EntityManager().TotalCreated(); got != 7 {
			t.Fatalf("expected 7 entities created, got %d", got)
		}
		var out []utils.Vec2
		for _, e := range s.EntityManager().GetEntitiesByTag(ecs.TagEnemy) {
			out = append(out, e.Transform.Position)
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("enemy counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("enemy %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGameSceneSummary(t *testing.T) {
	s := newTestScene(1)
	s.Run(game.NewScriptedInput(), game.NopRenderer{}, 3)

	fields := s.Summary()
	if len(fields) != 3+len(ecs.Tags()) {
		t.Fatalf("unexpected field count %d", len(fields))
	}
	if fields[0].Key != "frames" || fields[0].Integer != 3 {
		t.Errorf("unexpected frames field %+v", fields[0])
	}
}
