package components

// LifespanComponent 以 tick 计的有限寿命
//
// Remaining 每个 tick 递减 1，透明度按 Remaining/Total 缩放；
// Remaining 已为 0 时的下一个 tick 实体被销毁。
// 带有该组件的实体必须同时带有 ShapeComponent。
type LifespanComponent struct {
	Remaining int
	Total     int
}

// NewLifespanComponent 创建满寿命组件
func NewLifespanComponent(total int) *LifespanComponent {
	return &LifespanComponent{Remaining: total, Total: total}
}

// Alpha 根据剩余寿命计算透明度 (0-255)
func (l *LifespanComponent) Alpha() uint8 {
	if l.Total <= 0 || l.Remaining <= 0 {
		return 0
	}
	if l.Remaining >= l.Total {
		return 255
	}
	return uint8(255 * float64(l.Remaining) / float64(l.Total))
}
