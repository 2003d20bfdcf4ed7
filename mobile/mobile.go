//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
// 移动端没有工作目录，配置和字体全部来自 data 包的内置副本。
//
// 手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.shapewars -o build/android/shapewars.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ShapeWars.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/shapewars/data"
	"github.com/decker502/shapewars/pkg/app"
	"github.com/decker502/shapewars/pkg/config"
)

func init() {
	data.Install()

	settings, err := config.LoadSettings("data/settings.toml")
	if err != nil {
		log.Fatalf("设置加载失败: %v", err)
	}
	logger, err := config.NewLogger(settings.Logging, true)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}

	cfg, err := config.LoadGameConfig("data/config.txt")
	if err != nil {
		log.Fatalf("游戏配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(cfg, settings.ResolveSeed(0), logger)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
