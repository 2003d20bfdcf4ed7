package components

// CollisionComponent 圆形碰撞体
// 碰撞检测只使用该半径，与渲染半径无关（通常更小）
type CollisionComponent struct {
	Radius float64
}
