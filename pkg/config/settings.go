package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings 应用层设置（日志、随机种子、性能分析、终端前端）
//
// 与游戏配置分离：游戏配置描述玩法参数，设置描述程序如何运行。
// 配置文件位置: data/settings.toml
type Settings struct {
	Logging    LoggingSettings    `toml:"logging"`
	Simulation SimulationSettings `toml:"simulation"`
	Profile    ProfileSettings    `toml:"profile"`
	Terminal   TerminalSettings   `toml:"terminal"`
}

// LoggingSettings 日志设置
type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // 为空时输出到 stderr
}

// SimulationSettings 模拟设置
type SimulationSettings struct {
	Seed int64 `toml:"seed"` // 0 表示使用当前时间
}

// ProfileSettings 性能分析设置（cmd/simulate 使用）
type ProfileSettings struct {
	Mode string `toml:"mode"` // "", "cpu", "mem", "trace"
	Path string `toml:"path"`
}

// TerminalSettings 终端前端设置
type TerminalSettings struct {
	Scale float64 `toml:"scale"` // 每个字符单元对应的像素数
	Sound bool    `toml:"sound"` // 得分时播放提示音
}

// LoadSettings 加载应用设置
//
// 先填充默认值，再用文件内容覆盖；path 为空时直接返回默认值。
// data/ 下的路径在磁盘上不存在时回退到内置副本。
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := readSource(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileSettings{
			Path: ".",
		},
		Terminal: TerminalSettings{
			Scale: 8,
			Sound: true,
		},
	}
}

// Validate 验证设置有效性
func (s *Settings) Validate() error {
	switch s.Profile.Mode {
	case "", "cpu", "mem", "trace":
	default:
		return fmt.Errorf("%w: unknown profile mode %q", ErrInvalidConfig, s.Profile.Mode)
	}
	if s.Terminal.Scale <= 0 {
		return fmt.Errorf("%w: terminal scale %.1f must be positive", ErrInvalidConfig, s.Terminal.Scale)
	}
	return nil
}

// ResolveSeed 确定本次运行的随机种子
// 优先使用非零的 override（命令行参数），其次是设置中的种子，都为 0 时取当前时间
func (s *Settings) ResolveSeed(override int64) int64 {
	switch {
	case override != 0:
		return override
	case s.Simulation.Seed != 0:
		return s.Simulation.Seed
	default:
		return time.Now().UnixNano()
	}
}
