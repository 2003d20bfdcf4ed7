package utils

import "math"

// Vec2 二维向量（值类型，无身份）
//
// 用于实体的位置、速度以及各种位移计算。
// 值接收者的方法返回新向量；指针接收者的方法原地修改。
type Vec2 struct {
	X float64
	Y float64
}

// NewVec2 创建向量
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul 返回 v * s
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div 返回 v / s
// s 为 0 时结果为 ±Inf/NaN，与浮点除法语义一致，由调用方保证
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// AddAssign v += o
func (v *Vec2) AddAssign(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

// SubAssign v -= o
func (v *Vec2) SubAssign(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

// MulAssign v *= s
func (v *Vec2) MulAssign(s float64) {
	v.X *= s
	v.Y *= s
}

// DivAssign v /= s
func (v *Vec2) DivAssign(s float64) {
	v.X /= s
	v.Y /= s
}

// Equal 精确比较两个向量的分量
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Length 欧几里得长度
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist 返回从 v 指向 o 的位移向量（o - v），不是标量距离
//
// 需要距离时请使用 v.Dist(o).Length()。碰撞计算依赖这一语义。
func (v Vec2) Dist(o Vec2) Vec2 {
	return Vec2{X: o.X - v.X, Y: o.Y - v.Y}
}

// Normalize 返回同方向的单位向量；零向量原样返回
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// BounceX 原地翻转 X 分量（墙面反弹近似，不修正位置）
func (v *Vec2) BounceX() {
	v.X *= -1
}

// BounceY 原地翻转 Y 分量
func (v *Vec2) BounceY() {
	v.Y *= -1
}
