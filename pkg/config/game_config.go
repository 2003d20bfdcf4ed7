package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/shapewars/pkg/embedded"
)

// GameConfig 游戏配置
//
// 对应配置文件中的 Window / Font / Player / Enemy / Bullet 五种记录。
// 支持两种格式：按空白分隔的文本格式（.txt 等）和 YAML 格式（.yaml/.yml），
// 两者字段一一对应，错误类型相同。
type GameConfig struct {
	Window WindowConfig `yaml:"window"`
	Font   FontConfig   `yaml:"font"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Bullet BulletConfig `yaml:"bullet"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	FrameLimit int  `yaml:"frameLimit"` // 每秒 tick 数
	Fullscreen bool `yaml:"fullscreen"`
}

// FontConfig 计分文字字体
type FontConfig struct {
	Path  string  `yaml:"path"`
	Size  float64 `yaml:"size"`
	Color RGB     `yaml:"color"`

	// Data 加载时读取的字体文件内容
	Data []byte `yaml:"-"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	ShapeRadius      float64 `yaml:"shapeRadius"`
	CollisionRadius  float64 `yaml:"collisionRadius"`
	Speed            float64 `yaml:"speed"`
	Fill             RGB     `yaml:"fill"`
	Outline          RGB     `yaml:"outline"`
	OutlineThickness float64 `yaml:"outlineThickness"`
	Sides            int     `yaml:"sides"`
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	ShapeRadius      float64 `yaml:"shapeRadius"`
	CollisionRadius  float64 `yaml:"collisionRadius"`
	SpeedMin         float64 `yaml:"speedMin"`
	SpeedMax         float64 `yaml:"speedMax"`
	Outline          RGB     `yaml:"outline"`
	OutlineThickness float64 `yaml:"outlineThickness"`
	SidesMin         int     `yaml:"sidesMin"`
	SidesMax         int     `yaml:"sidesMax"`
	FragmentLifespan int     `yaml:"fragmentLifespan"` // 碎片寿命（tick）
	SpawnInterval    int     `yaml:"spawnInterval"`    // 生成间隔（tick）
}

// BulletConfig 子弹配置
type BulletConfig struct {
	ShapeRadius      float64 `yaml:"shapeRadius"`
	CollisionRadius  float64 `yaml:"collisionRadius"`
	Speed            float64 `yaml:"speed"`
	Fill             RGB     `yaml:"fill"`
	Outline          RGB     `yaml:"outline"`
	OutlineThickness float64 `yaml:"outlineThickness"`
	Sides            int     `yaml:"sides"`
	Lifespan         int     `yaml:"lifespan"` // 寿命（tick）
}

// RGB 不带透明度的颜色
type RGB struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// RGBA 转换为不透明的 color.RGBA
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

func (c RGB) validate(field string) error {
	for _, v := range []int{c.R, c.G, c.B} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %s channel %d out of range 0-255", ErrInvalidConfig, field, v)
		}
	}
	return nil
}

// LoadGameConfig 加载游戏配置
//
// 按扩展名选择格式（.yaml/.yml 为 YAML，其余为文本格式），读取字体文件并校验。
// 文本格式在遇到 Font 记录时立即读取字体，因此多个致命错误并存时以先出现的记录为准。
// data/ 下的路径在磁盘上不存在时回退到内置副本。
//
// 返回的错误可用 errors.Is 判断 ErrUnknownRecord / ErrFontUnreadable /
// ErrMalformedRecord / ErrInvalidConfig。
func LoadGameConfig(path string) (*GameConfig, error) {
	return loadGameConfig(path, true)
}

// LoadGameConfigHeadless 加载游戏配置但不读取字体文件
// 终端前端和无界面模拟不绘制矢量文字，Font 记录仍需存在且格式正确
func LoadGameConfigHeadless(path string) (*GameConfig, error) {
	return loadGameConfig(path, false)
}

func loadGameConfig(path string, withFont bool) (*GameConfig, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	var loadFont func(*FontConfig) error
	if withFont {
		loadFont = (*FontConfig).load
	}

	var cfg *GameConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// YAML 映射无序，字体在整个文档解析完成后读取
		if cfg, err = ParseGameConfigYAML(data); err == nil && loadFont != nil {
			err = loadFont(&cfg.Font)
		}
	default:
		// 文本格式按记录顺序处理，Font 记录出现时即读取字体
		cfg, err = parseGameConfig(strings.NewReader(string(data)), loadFont)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config %s: %w", path, err)
	}
	return cfg, nil
}

// load 读取字体文件内容
func (f *FontConfig) load() error {
	data, err := readSource(f.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFontUnreadable, f.Path, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrFontUnreadable, f.Path)
	}
	f.Data = data
	return nil
}

// readSource 优先读取磁盘文件，data/ 路径不存在时回退到内置文件系统
func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if os.IsNotExist(err) && embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return nil, err
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口尺寸为正且能容纳敌人半径，帧率非负
//   - 所有多边形边数 >= 3，且 SidesMin <= SidesMax
//   - 0 <= SpeedMin <= SpeedMax
//   - 半径、寿命、生成间隔非负
//   - 颜色通道在 0-255 之间
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if float64(c.Window.Width) < 2*c.Enemy.ShapeRadius || float64(c.Window.Height) < 2*c.Enemy.ShapeRadius {
		return fmt.Errorf("%w: window %dx%d cannot fit enemy radius %.1f", ErrInvalidConfig, c.Window.Width, c.Window.Height, c.Enemy.ShapeRadius)
	}
	if c.Window.FrameLimit < 0 {
		return fmt.Errorf("%w: frame limit %d must not be negative", ErrInvalidConfig, c.Window.FrameLimit)
	}

	if c.Player.Sides < 3 {
		return fmt.Errorf("%w: player sides %d < 3", ErrInvalidConfig, c.Player.Sides)
	}
	if c.Bullet.Sides < 3 {
		return fmt.Errorf("%w: bullet sides %d < 3", ErrInvalidConfig, c.Bullet.Sides)
	}
	if c.Enemy.SidesMin < 3 || c.Enemy.SidesMin > c.Enemy.SidesMax {
		return fmt.Errorf("%w: enemy sides range [%d, %d] invalid", ErrInvalidConfig, c.Enemy.SidesMin, c.Enemy.SidesMax)
	}

	if c.Enemy.SpeedMin < 0 || c.Enemy.SpeedMin > c.Enemy.SpeedMax {
		return fmt.Errorf("%w: enemy speed range [%.1f, %.1f] invalid", ErrInvalidConfig, c.Enemy.SpeedMin, c.Enemy.SpeedMax)
	}

	radii := map[string]float64{
		"player shape radius":     c.Player.ShapeRadius,
		"player collision radius": c.Player.CollisionRadius,
		"enemy shape radius":      c.Enemy.ShapeRadius,
		"enemy collision radius":  c.Enemy.CollisionRadius,
		"bullet shape radius":     c.Bullet.ShapeRadius,
		"bullet collision radius": c.Bullet.CollisionRadius,
	}
	for name, r := range radii {
		if r < 0 {
			return fmt.Errorf("%w: %s %.1f must not be negative", ErrInvalidConfig, name, r)
		}
	}

	if c.Enemy.FragmentLifespan < 0 || c.Bullet.Lifespan < 0 {
		return fmt.Errorf("%w: lifespans must not be negative", ErrInvalidConfig)
	}
	if c.Enemy.SpawnInterval < 0 {
		return fmt.Errorf("%w: spawn interval %d must not be negative", ErrInvalidConfig, c.Enemy.SpawnInterval)
	}

	colors := []struct {
		name string
		c    RGB
	}{
		{"font color", c.Font.Color},
		{"player fill", c.Player.Fill},
		{"player outline", c.Player.Outline},
		{"enemy outline", c.Enemy.Outline},
		{"bullet fill", c.Bullet.Fill},
		{"bullet outline", c.Bullet.Outline},
	}
	for _, col := range colors {
		if err := col.c.validate(col.name); err != nil {
			return err
		}
	}

	return nil
}
