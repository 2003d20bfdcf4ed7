package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/scenes"
)

// Run 在终端中运行游戏，直到收到关闭请求
// 以 frameLimit 的频率驱动 GameScene.Tick；整个模拟在调用方 goroutine 上执行
func Run(scene *scenes.GameScene, cfg *config.GameConfig, settings config.TerminalSettings, logger *zap.Logger) error {
	logger = logger.Named("terminal")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	sound, err := NewSound(settings.Sound)
	if err != nil {
		// 没有声音也能玩
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Close()

	input := NewInput(screen, settings.Scale)
	defer input.Stop()
	renderer := NewRenderer(screen, settings.Scale)

	fps := cfg.Window.FrameLimit
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	w, h := screen.Size()
	logger.Info("starting", zap.Int("cols", w), zap.Int("rows", h), zap.Int("tps", fps))

	score := scene.State().Score
	for scene.Running() {
		<-ticker.C
		scene.Tick(input, renderer)

		if s := scene.State().Score; s > score {
			sound.Hit()
			score = s
		}
	}

	logger.Info("stopped", scene.Summary()...)
	return nil
}
