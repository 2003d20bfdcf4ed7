package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/shapewars/pkg/game"
)

// Input 从 ebiten 的键盘、鼠标和触摸状态生成离散输入事件
//
// 键位：W/A/S/D 移动，Escape 暂停；鼠标左键发射子弹，右键发射特殊武器。
// 触摸设备上单指点击等同左键，第二根手指按下等同右键。
type Input struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
	events  []game.InputEvent
}

// NewInput 创建 ebiten 输入源
func NewInput() *Input {
	return &Input{}
}

// Poll 收集本 tick 的输入事件
func (in *Input) Poll() []game.InputEvent {
	in.events = in.events[:0]

	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, game.CloseEvent())
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if gk, ok := KeyFor(k); ok {
			in.events = append(in.events, game.KeyDownEvent(gk))
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if gk, ok := KeyFor(k); ok {
			in.events = append(in.events, game.KeyUpEvent(gk))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.events = append(in.events, game.MouseDownEvent(game.MouseLeft, float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		in.events = append(in.events, game.MouseDownEvent(game.MouseRight, float64(x), float64(y)))
	}

	in.pollTouches()
	return in.events
}

// pollTouches 新按下的触摸点：当前只有一根手指时发射子弹，否则发射特殊武器
func (in *Input) pollTouches() {
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	if len(in.touches) == 0 {
		return
	}
	active := len(ebiten.AppendTouchIDs(nil))
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		button := game.MouseLeft
		if active > 1 {
			button = game.MouseRight
		}
		in.events = append(in.events, game.MouseDownEvent(button, float64(x), float64(y)))
	}
}

// KeyFor 把 ebiten 按键映射到游戏按键
func KeyFor(k ebiten.Key) (game.Key, bool) {
	switch k {
	case ebiten.KeyW:
		return game.KeyUp, true
	case ebiten.KeyS:
		return game.KeyDown, true
	case ebiten.KeyA:
		return game.KeyLeft, true
	case ebiten.KeyD:
		return game.KeyRight, true
	case ebiten.KeyEscape:
		return game.KeyPause, true
	}
	return 0, false
}
