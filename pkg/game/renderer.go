package game

import (
	"image/color"

	"github.com/decker502/shapewars/pkg/utils"
)

// Renderer 渲染协作者
//
// 渲染系统每个 tick 按 Clear → DrawShape/DrawText → Present 的顺序调用。
type Renderer interface {
	Clear()
	// DrawShape 绘制以 pos 为中心的正多边形，angle 为旋转角（度）
	DrawShape(pos utils.Vec2, angle, radius float64, sides int, fill, outline color.RGBA, outlineThickness float64)
	DrawText(s string)
	Present()
}

// ShapeCommand 一次 DrawShape 调用的参数
type ShapeCommand struct {
	Position         utils.Vec2
	Angle            float64
	Radius           float64
	Sides            int
	Fill             color.RGBA
	Outline          color.RGBA
	OutlineThickness float64
}

// DrawFrame 一帧的渲染快照
type DrawFrame struct {
	Shapes []ShapeCommand
	Texts  []string
}

// DrawList 记录渲染命令的 Renderer
//
// Present 时把正在构建的一帧发布为快照，之后由具体前端（如 ebiten 的 Draw）重放。
// 测试中直接检查快照内容。
type DrawList struct {
	building  DrawFrame
	presented DrawFrame
	frames    int
}

// NewDrawList 创建空的渲染命令列表
func NewDrawList() *DrawList {
	return &DrawList{}
}

// Clear 开始新的一帧
func (d *DrawList) Clear() {
	d.building = DrawFrame{
		Shapes: make([]ShapeCommand, 0, len(d.presented.Shapes)),
	}
}

// DrawShape 记录一次多边形绘制
func (d *DrawList) DrawShape(pos utils.Vec2, angle, radius float64, sides int, fill, outline color.RGBA, outlineThickness float64) {
	d.building.Shapes = append(d.building.Shapes, ShapeCommand{
		Position:         pos,
		Angle:            angle,
		Radius:           radius,
		Sides:            sides,
		Fill:             fill,
		Outline:          outline,
		OutlineThickness: outlineThickness,
	})
}

// DrawText 记录一段文字
func (d *DrawList) DrawText(s string) {
	d.building.Texts = append(d.building.Texts, s)
}

// Present 发布当前帧
func (d *DrawList) Present() {
	d.presented = d.building
	d.building = DrawFrame{}
	d.frames++
}

// Frame 返回最近一次发布的快照
func (d *DrawList) Frame() DrawFrame {
	return d.presented
}

// PresentedFrames 已发布的帧数
func (d *DrawList) PresentedFrames() int {
	return d.frames
}

// NopRenderer 丢弃所有渲染调用（无界面模拟使用）
type NopRenderer struct{}

func (NopRenderer) Clear() {}
func (NopRenderer) DrawShape(utils.Vec2, float64, float64, int, color.RGBA, color.RGBA, float64) {
}
func (NopRenderer) DrawText(string) {}
func (NopRenderer) Present()        {}
