// Package embedded 提供嵌入资源的统一访问接口
//
// 内置文件由 data 包通过 //go:embed 声明，调用方统一使用 "data/" 前缀的路径访问。
// 本包提供包装函数，让配置加载器在磁盘上找不到 data/ 文件时回退到内置副本。
// 除 embed.FS 外，还可以用 Register 登记来自其他包的内存文件（如内置字体）。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized Init 尚未被调用
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	registered  map[string][]byte
	initialized bool
)

// Init 初始化数据文件系统
// data 以 data 目录为根（其中的 config.txt 对应路径 "data/config.txt"）。
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// Register 登记一个内存文件，path 必须以 "data/" 开头
// 同名时优先于 Init 提供的文件系统
func Register(path string, data []byte) error {
	p, err := normalize(path)
	if err != nil {
		return err
	}
	if registered == nil {
		registered = make(map[string][]byte)
	}
	registered[p] = data
	return nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径并校验前缀，返回去掉 "data/" 前缀后的相对路径
func normalize(path string) (string, error) {
	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return strings.TrimPrefix(path, "data/"), nil
}

// Open 打开内置文件，路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(p)
}

// ReadFile 读取内置文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	if data, ok := registered[p]; ok {
		return data, nil
	}
	return fs.ReadFile(dataFS, p)
}

// Exists 检查文件是否存在于内置文件系统中
func Exists(path string) bool {
	if p, err := normalize(path); err == nil && initialized {
		if _, ok := registered[p]; ok {
			return true
		}
	}
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// reset 仅供测试使用
func reset() {
	dataFS = nil
	registered = nil
	initialized = false
}
