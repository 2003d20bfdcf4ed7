package game

// InputEventType 输入事件类型
type InputEventType int

const (
	EventClose InputEventType = iota
	EventKeyDown
	EventKeyUp
	EventMouseDown
)

// Key 游戏关心的按键
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
)

// MouseButton 鼠标按键
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// InputEvent 离散输入事件
type InputEvent struct {
	Type   InputEventType
	Key    Key         // EventKeyDown / EventKeyUp
	Button MouseButton // EventMouseDown
	X, Y   float64     // EventMouseDown 的窗口坐标
}

// InputSource 输入协作者，每个 tick 非阻塞地轮询一次
type InputSource interface {
	Poll() []InputEvent
}

// ScriptedInput 预先排队的输入源
// 每次 Poll 取出并清空队列；测试和无界面模拟使用
type ScriptedInput struct {
	queue []InputEvent
}

// NewScriptedInput 创建空的脚本输入源
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

// Push 追加事件，在下一次 Poll 时交付
func (s *ScriptedInput) Push(events ...InputEvent) {
	s.queue = append(s.queue, events...)
}

// Poll 返回并清空排队的事件
func (s *ScriptedInput) Poll() []InputEvent {
	events := s.queue
	s.queue = nil
	return events
}

// KeyDownEvent 构造按下事件
func KeyDownEvent(k Key) InputEvent {
	return InputEvent{Type: EventKeyDown, Key: k}
}

// KeyUpEvent 构造抬起事件
func KeyUpEvent(k Key) InputEvent {
	return InputEvent{Type: EventKeyUp, Key: k}
}

// MouseDownEvent 构造鼠标按下事件
func MouseDownEvent(b MouseButton, x, y float64) InputEvent {
	return InputEvent{Type: EventMouseDown, Button: b, X: x, Y: y}
}

// CloseEvent 构造关闭请求事件
func CloseEvent() InputEvent {
	return InputEvent{Type: EventClose}
}
