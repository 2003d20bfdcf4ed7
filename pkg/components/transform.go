package components

import "github.com/decker502/shapewars/pkg/utils"

// TransformComponent 实体的位置、速度与旋转角
//
// 移动系统每个 tick 执行一次 Position += Velocity。
// Angle 以角度为单位，渲染时每帧递增用于旋转外观。
type TransformComponent struct {
	Position utils.Vec2
	Velocity utils.Vec2
	Angle    float64 // 旋转角（度）
}
