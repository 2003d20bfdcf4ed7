// simulate 无界面运行若干 tick 并输出局面统计
//
// 自动驾驶输入每隔固定帧数朝最近的敌人开火，并尝试发射特殊武器。
// 可选用 pkg/profile 采集 CPU、内存或 trace 数据。
//
// 用法（在项目根目录执行）：
//
//	go run ./cmd/simulate -ticks 36000 -seed 1
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/decker502/shapewars/data"
	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/scenes"
	"github.com/decker502/shapewars/pkg/utils"
)

func main() {
	configPath := flag.String("config", "data/config.txt", "游戏配置文件")
	settingsPath := flag.String("settings", "data/settings.toml", "运行设置文件")
	ticks := flag.Int("ticks", 3600, "模拟的 tick 数")
	fireEvery := flag.Int("fire-every", 15, "每隔多少 tick 开火一次（0 = 不开火）")
	seed := flag.Int64("seed", 0, "随机种子（0 = 使用设置中的种子）")
	verbose := flag.Bool("verbose", false, "启用 debug 日志")
	flag.Parse()

	data.Install()
	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "设置加载失败: %v\n", err)
		os.Exit(config.ExitCode(err))
	}
	logger, err := config.NewLogger(settings.Logging, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(config.ExitStartupFailure)
	}

	cfg, err := config.LoadGameConfigHeadless(*configPath)
	if err != nil {
		logger.Error("game config", zap.String("path", *configPath), zap.Error(err))
		_ = logger.Sync()
		os.Exit(config.ExitCode(err))
	}

	if p := startProfile(settings.Profile); p != nil {
		defer p.Stop()
	}

	s := settings.ResolveSeed(*seed)
	scene := scenes.NewGameScene(cfg, s, logger)
	pilot := newAutoPilot(scene, *fireEvery)

	start := time.Now()
	n := scene.Run(pilot, game.NopRenderer{}, *ticks)
	elapsed := time.Since(start)

	fields := append(scene.Summary(),
		zap.Int("ticks", n),
		zap.Int64("seed", s),
		zap.Duration("elapsed", elapsed),
		zap.Float64("ticksPerSecond", float64(n)/elapsed.Seconds()))
	logger.Info("simulation finished", fields...)
	_ = logger.Sync()
}

// startProfile 按设置启动性能分析，mode 为空时返回 nil
func startProfile(cfg config.ProfileSettings) interface{ Stop() } {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil
	}
	return profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook)
}

// autoPilot 脚本化输入：定期朝离玩家最近的敌人开火
type autoPilot struct {
	scene *scenes.GameScene
	every int
	queue *game.ScriptedInput
}

func newAutoPilot(scene *scenes.GameScene, every int) *autoPilot {
	return &autoPilot{scene: scene, every: every, queue: game.NewScriptedInput()}
}

func (a *autoPilot) Poll() []game.InputEvent {
	gs := a.scene.State()
	if a.every > 0 && gs.CurrentFrame%a.every == 0 {
		if target, ok := a.nearestEnemy(); ok {
			a.queue.Push(
				game.MouseDownEvent(game.MouseLeft, target.X, target.Y),
				// 冷却中的特殊武器请求会被忽略
				game.MouseDownEvent(game.MouseRight, target.X, target.Y),
			)
		}
	}
	return a.queue.Poll()
}

func (a *autoPilot) nearestEnemy() (utils.Vec2, bool) {
	em := a.scene.EntityManager()
	player, ok := entities.Player(em, a.scene.State())
	if !ok || player.Transform == nil {
		return utils.Vec2{}, false
	}

	var best utils.Vec2
	bestDist := -1.0
	for _, e := range em.GetEntitiesByTag(ecs.TagEnemy) {
		if !e.IsAlive() || e.Transform == nil {
			continue
		}
		d := player.Transform.Position.Dist(e.Transform.Position).Length()
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Transform.Position, d
		}
	}
	return best, bestDist >= 0
}
