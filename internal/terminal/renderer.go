// Package terminal 基于 tcell 的终端前端
//
// 世界坐标按 Scale 像素映射到一个字符单元，纵向再除以 2 以补偿字符的宽高比。
// 多边形在终端里近似为实心圆盘：填充色作为背景色，外圈用轮廓色绘制。
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/shapewars/pkg/utils"
)

// cellAspect 字符单元的高宽比
const cellAspect = 2.0

// Renderer 把渲染调用画到 tcell.Screen 上
type Renderer struct {
	screen tcell.Screen
	scale  float64
	line   int // 下一行文字所在的行
}

// NewRenderer 创建终端渲染器，scale 为每个字符单元对应的像素数
func NewRenderer(screen tcell.Screen, scale float64) *Renderer {
	return &Renderer{screen: screen, scale: scale}
}

// Clear 清屏并重置文字行
func (r *Renderer) Clear() {
	r.screen.Clear()
	r.line = 0
}

// DrawShape 绘制近似的多边形
// 距中心不超过半径的单元用填充色做背景；距边缘一个轮廓宽度以内的单元用轮廓色
func (r *Renderer) DrawShape(pos utils.Vec2, angle, radius float64, sides int, fill, outline color.RGBA, outlineThickness float64) {
	cx, cy := r.cell(pos)
	rx := radius / r.scale
	ry := rx / cellAspect
	if rx <= 0 {
		return
	}
	ring := outlineThickness / r.scale
	if ring < 0.5 && outlineThickness > 0 {
		ring = 0.5
	}

	fillStyle := tcell.StyleDefault.Background(toColor(fill))
	outlineStyle := tcell.StyleDefault.Background(toColor(outline))

	w, h := r.screen.Size()
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			dx := float64(x) - cx
			dy := (float64(y) - cy) * cellAspect
			d := math.Hypot(dx, dy)
			if d > rx {
				continue
			}
			style := fillStyle
			if d >= rx-ring {
				style = outlineStyle
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	// 中心标出边数，旋转角无法在字符网格上表现
	if x, y := int(math.Round(cx)), int(math.Round(cy)); x >= 0 && y >= 0 && x < w && y < h && sides < 10 {
		r.screen.SetContent(x, y, rune('0'+sides), nil, fillStyle.Foreground(toColor(outline)))
	}
}

// DrawText 从左上角开始逐行绘制文字
func (r *Renderer) DrawText(s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range s {
		r.screen.SetContent(x, r.line, ch, nil, style)
		x++
	}
	r.line++
}

// Present 刷新到终端
func (r *Renderer) Present() {
	r.screen.Show()
}

// cell 世界坐标到字符单元坐标
func (r *Renderer) cell(p utils.Vec2) (float64, float64) {
	return p.X / r.scale, p.Y / (r.scale * cellAspect)
}

// toColor 终端没有透明度，按 alpha 把颜色向黑色衰减
func toColor(c color.RGBA) tcell.Color {
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
}
