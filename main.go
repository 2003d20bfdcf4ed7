package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/decker502/shapewars/data"
	"github.com/decker502/shapewars/pkg/app"
	"github.com/decker502/shapewars/pkg/config"
)

func main() {
	configPath := flag.String("config", "data/config.txt", "游戏配置文件（文本格式，或 .yaml/.yml）")
	settingsPath := flag.String("settings", "data/settings.toml", "运行设置文件")
	verbose := flag.Bool("verbose", false, "启用 debug 日志")
	seed := flag.Int64("seed", 0, "随机种子（0 = 使用设置中的种子）")
	flag.Parse()

	os.Exit(run(*configPath, *settingsPath, *verbose, *seed))
}

func run(configPath, settingsPath string, verbose bool, seed int64) int {
	data.Install()

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "设置加载失败: %v\n", err)
		return config.ExitCode(err)
	}

	logger, err := config.NewLogger(settings.Logging, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		return config.ExitStartupFailure
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadGameConfig(configPath)
	if err != nil {
		logger.Error("game config", zap.String("path", configPath), zap.Error(err))
		return config.ExitCode(err)
	}

	gameApp, err := app.NewApp(cfg, settings.ResolveSeed(seed), logger)
	if err != nil {
		logger.Error("init", zap.Error(err))
		return config.ExitCode(err)
	}

	if err := app.Run(gameApp); err != nil {
		logger.Error("run", zap.Error(err))
		return config.ExitStartupFailure
	}
	return config.ExitOK
}
