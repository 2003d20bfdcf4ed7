package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseGameConfigYAML 解析 YAML 格式的游戏配置
//
// 顶层键为 window / font / player / enemy / bullet，
// 其它顶层键与文本格式中的未知记录一样返回 ErrUnknownRecord。
func ParseGameConfigYAML(data []byte) (*GameConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	cfg := &GameConfig{}
	if len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformedRecord)
	}

	// 映射节点的 Content 为 key, value 交替排列
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var target any
		switch key.Value {
		case "window":
			target = &cfg.Window
		case "font":
			target = &cfg.Font
		case "player":
			target = &cfg.Player
		case "enemy":
			target = &cfg.Enemy
		case "bullet":
			target = &cfg.Bullet
		default:
			return nil, fmt.Errorf("%w: object type '%s' (line %d)", ErrUnknownRecord, key.Value, key.Line)
		}

		if err := value.Decode(target); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, key.Value, err)
		}
	}
	return cfg, nil
}
