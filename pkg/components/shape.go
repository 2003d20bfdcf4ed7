package components

import "image/color"

// ShapeComponent 正多边形外观
//
// 生命周期系统通过修改 Fill.A / Outline.A 实现淡出效果，RGB 通道保持不变。
type ShapeComponent struct {
	Radius           float64    // 外接圆半径（像素）
	Sides            int        // 边数，>= 3
	Fill             color.RGBA // 填充颜色
	Outline          color.RGBA // 描边颜色
	OutlineThickness float64    // 描边宽度（像素）
}
