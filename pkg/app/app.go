// Package app 提供 ebiten 桌面/移动端前端
//
// App 实现 ebiten.Game：Update 推进一个完整的模拟 tick，渲染结果记录到 DrawList，
// Draw 再把最近一次发布的帧重放到屏幕上。
// 桌面端通过 main.go 调用 Run()，移动端通过 mobile/mobile.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/scenes"
)

// WindowTitle 窗口标题
const WindowTitle = "Shape Wars"

// App 游戏应用，实现 ebiten.Game 接口
type App struct {
	cfg      *config.GameConfig
	logger   *zap.Logger
	scene    *scenes.GameScene
	input    *Input
	drawList *game.DrawList
	screen   *ScreenRenderer

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建游戏应用
// 字体数据无法解析时返回包装了 config.ErrFontUnreadable 的错误
func NewApp(cfg *config.GameConfig, seed int64, logger *zap.Logger) (*App, error) {
	screen, err := NewScreenRenderer(cfg.Font)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		logger:   logger.Named("app"),
		scene:    scenes.NewGameScene(cfg, seed, logger),
		input:    NewInput(),
		drawList: game.NewDrawList(),
		screen:   screen,
	}, nil
}

// Run 按配置设置窗口并运行游戏循环，直到窗口关闭
func Run(a *App) error {
	w := a.cfg.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetFullscreen(w.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	if w.FrameLimit > 0 {
		ebiten.SetTPS(w.FrameLimit)
	}

	a.logger.Info("starting",
		zap.Int("width", w.Width),
		zap.Int("height", w.Height),
		zap.Int("tps", ebiten.TPS()),
		zap.Bool("fullscreen", w.Fullscreen))

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	a.logger.Info("stopped", a.scene.Summary()...)
	return nil
}

// Update 推进一个模拟 tick
// 收到关闭请求时，本 tick 渲染完成后返回 ebiten.Termination
func (a *App) Update() error {
	a.updateWindowSize()

	a.scene.Tick(a.input, a.drawList)
	if !a.scene.Running() {
		return ebiten.Termination
	}
	return nil
}

// updateWindowSize F11 切换全屏
func (a *App) updateWindowSize() {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 窗口管理器需要几帧时间处理退出全屏
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.logger.Debug("exit fullscreen")
	} else {
		ebiten.SetFullscreen(true)
		a.logger.Debug("enter fullscreen")
	}
}

// Draw 重放最近一次发布的帧
func (a *App) Draw(screen *ebiten.Image) {
	a.screen.Replay(screen, a.drawList.Frame())
}

// DrawFinalScreen 实现 ebiten.FinalScreenDrawer
// 全屏时两侧留黑边，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸固定为配置的窗口大小
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Scene 返回游戏场景
func (a *App) Scene() *scenes.GameScene {
	return a.scene
}
