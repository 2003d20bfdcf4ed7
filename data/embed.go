// Package data 内置的默认配置文件和字体
//
// //go:embed 只能嵌入当前包目录下的文件，所以声明放在 data/ 目录自身。
// 桌面端、移动端和 cmd 工具都通过 Install 注册这些文件，
// 配置加载器在磁盘上找不到 data/ 路径时回退到这里的副本。
package data

import (
	"embed"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/shapewars/pkg/embedded"
)

// DefaultFontPath 内置字体的路径（Go Regular）
const DefaultFontPath = "data/fonts/goregular.ttf"

//go:embed config.txt config.yaml settings.toml
var files embed.FS

// Install 初始化 embedded 并登记内置字体
func Install() {
	embedded.Init(files)
	// 路径以 data/ 开头，不会失败
	_ = embedded.Register(DefaultFontPath, goregular.TTF)
}
