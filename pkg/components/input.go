package components

// InputComponent 玩家方向键状态
// 只由输入系统写入，移动系统读取
type InputComponent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}
