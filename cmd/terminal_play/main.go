// terminal_play 在终端中运行 Shape Wars（tcell 前端）
//
// 操作：WASD/方向键 移动，Esc 或 p 暂停，鼠标左键射击、右键特殊武器，q 退出。
// 终端占用标准输出，日志请在 settings.toml 的 [logging] file 中指定文件。
//
// 用法（在项目根目录执行）：
//
//	go run ./cmd/terminal_play -settings data/settings.toml
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/decker502/shapewars/internal/terminal"
	"github.com/decker502/shapewars/data"
	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/scenes"
)

func main() {
	configPath := flag.String("config", "data/config.txt", "游戏配置文件")
	settingsPath := flag.String("settings", "data/settings.toml", "运行设置文件")
	logFile := flag.String("log", "", "日志文件（覆盖设置中的 [logging] file）")
	seed := flag.Int64("seed", 0, "随机种子（0 = 使用设置中的种子）")
	verbose := flag.Bool("verbose", false, "启用 debug 日志")
	flag.Parse()

	os.Exit(run(*configPath, *settingsPath, *logFile, *seed, *verbose))
}

func run(configPath, settingsPath, logFile string, seed int64, verbose bool) int {
	data.Install()

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "设置加载失败: %v\n", err)
		return config.ExitCode(err)
	}
	if logFile != "" {
		settings.Logging.File = logFile
	}

	logger, err := config.NewLogger(settings.Logging, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		return config.ExitStartupFailure
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadGameConfigHeadless(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏配置加载失败: %v\n", err)
		return config.ExitCode(err)
	}

	scene := scenes.NewGameScene(cfg, settings.ResolveSeed(seed), logger)
	if err := terminal.Run(scene, cfg, settings.Terminal, logger); err != nil {
		fmt.Fprintf(os.Stderr, "终端前端失败: %v\n", err)
		logger.Error("terminal", zap.Error(err))
		return config.ExitStartupFailure
	}
	return config.ExitOK
}
