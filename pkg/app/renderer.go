package app

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ScreenRenderer 把 DrawFrame 绘制到 ebiten 屏幕
type ScreenRenderer struct {
	face      *text.GoTextFace
	textColor color.RGBA

	vertices []ebiten.Vertex // 复用，避免每帧分配
	indices  []uint16
}

// NewScreenRenderer 用配置中已读取的字体数据创建渲染器
func NewScreenRenderer(font config.FontConfig) (*ScreenRenderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(font.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrFontUnreadable, font.Path, err)
	}
	return &ScreenRenderer{
		face: &text.GoTextFace{
			Source:    source,
			Size:      font.Size,
			Direction: text.DirectionLeftToRight,
		},
		textColor: font.Color.RGBA(),
	}, nil
}

// Replay 绘制一帧快照
func (r *ScreenRenderer) Replay(screen *ebiten.Image, frame game.DrawFrame) {
	screen.Clear()
	for _, s := range frame.Shapes {
		r.drawShape(screen, s)
	}

	y := 0.0
	for _, line := range frame.Texts {
		op := &text.DrawOptions{}
		op.GeoM.Translate(0, y)
		op.ColorScale.ScaleWithColor(r.textColor)
		text.Draw(screen, line, r.face, op)
		y += r.face.Size
	}
}

// drawShape 以三角扇填充正多边形，再逐边描出轮廓
func (r *ScreenRenderer) drawShape(screen *ebiten.Image, s game.ShapeCommand) {
	pts := PolygonVertices(s.Position, s.Angle, s.Radius, s.Sides)
	if len(pts) < 3 {
		return
	}

	fr, fg, fb, fa := colorFloats(s.Fill)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	r.vertices = append(r.vertices, ebiten.Vertex{
		DstX: float32(s.Position.X), DstY: float32(s.Position.Y),
		SrcX: 1, SrcY: 1,
		ColorR: fr, ColorG: fg, ColorB: fb, ColorA: fa,
	})
	for i, p := range pts {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: fr, ColorG: fg, ColorB: fb, ColorA: fa,
		})
		next := (i+1)%len(pts) + 1
		r.indices = append(r.indices, 0, uint16(i+1), uint16(next))
	}
	screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, nil)

	if s.OutlineThickness <= 0 {
		return
	}
	width := float32(s.OutlineThickness)
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), width, s.Outline, true)
	}
}

// PolygonVertices 正多边形顶点
// 第一个顶点在未旋转时位于正上方，angle 为顺时针旋转角（度）
func PolygonVertices(center utils.Vec2, angle, radius float64, sides int) []utils.Vec2 {
	if sides < 3 {
		return nil
	}
	pts := make([]utils.Vec2, sides)
	base := angle*math.Pi/180 - math.Pi/2
	step := 2 * math.Pi / float64(sides)
	for i := range pts {
		theta := base + float64(i)*step
		pts[i] = utils.Vec2{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return pts
}

func colorFloats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
