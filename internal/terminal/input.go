package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/shapewars/pkg/game"
)

// holdTicks 终端只报告按下事件，方向键按下后保持这么多 tick 再自动抬起
const holdTicks = 8

// Input 把 tcell 事件转换为游戏输入事件
//
// tcell 事件由一个后台 goroutine 通过 PollEvent 读取并放入缓冲通道，
// Poll 在模拟 goroutine 上非阻塞地取出通道中已有的全部事件。
type Input struct {
	events chan tcell.Event
	stop   chan struct{}
	scale  float64

	tick    int
	held    map[game.Key]int // 按键 -> 自动抬起的 tick
	buttons tcell.ButtonMask // 上一次鼠标事件的按键状态
	out     []game.InputEvent
}

func newInput(scale float64) *Input {
	return &Input{
		events: make(chan tcell.Event, 100),
		stop:   make(chan struct{}),
		scale:  scale,
		held:   make(map[game.Key]int),
	}
}

// NewInput 创建输入源并启动读取 screen 事件的 goroutine
// goroutine 在 Stop 之后或 screen.Fini 使 PollEvent 返回 nil 时退出
func NewInput(screen tcell.Screen, scale float64) *Input {
	in := newInput(scale)
	go in.pump(screen.PollEvent)
	return in
}

// Stop 通知读取 goroutine 退出；之后不再有事件进入缓冲通道
func (in *Input) Stop() {
	select {
	case <-in.stop:
	default:
		close(in.stop)
	}
}

// pump 持续读取事件放入缓冲通道
// 通道已满且无人消费时阻塞在 select 上，Stop 会将其唤醒
func (in *Input) pump(poll func() tcell.Event) {
	for {
		select {
		case <-in.stop:
			return
		default:
		}

		ev := poll()
		if ev == nil {
			return
		}

		select {
		case in.events <- ev:
		case <-in.stop:
			return
		}
	}
}

// Poll 取出本 tick 的事件，并为到期的方向键生成抬起事件
func (in *Input) Poll() []game.InputEvent {
	in.out = in.out[:0]
	in.tick++

drain:
	for {
		select {
		case ev := <-in.events:
			in.handle(ev)
		default:
			break drain
		}
	}

	for _, k := range []game.Key{game.KeyUp, game.KeyDown, game.KeyLeft, game.KeyRight} {
		if until, ok := in.held[k]; ok && in.tick >= until {
			delete(in.held, k)
			in.out = append(in.out, game.KeyUpEvent(k))
		}
	}
	return in.out
}

func (in *Input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	}
}

func (in *Input) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		in.out = append(in.out, game.CloseEvent())
		return
	case tcell.KeyEscape:
		in.out = append(in.out, game.KeyDownEvent(game.KeyPause))
		return
	case tcell.KeyUp:
		in.press(game.KeyUp, game.KeyDown)
		return
	case tcell.KeyDown:
		in.press(game.KeyDown, game.KeyUp)
		return
	case tcell.KeyLeft:
		in.press(game.KeyLeft, game.KeyRight)
		return
	case tcell.KeyRight:
		in.press(game.KeyRight, game.KeyLeft)
		return
	case tcell.KeyRune:
	default:
		return
	}

	if ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c' {
		in.out = append(in.out, game.CloseEvent())
		return
	}
	switch ev.Rune() {
	case 'q':
		in.out = append(in.out, game.CloseEvent())
	case 'p':
		in.out = append(in.out, game.KeyDownEvent(game.KeyPause))
	case 'w':
		in.press(game.KeyUp, game.KeyDown)
	case 's':
		in.press(game.KeyDown, game.KeyUp)
	case 'a':
		in.press(game.KeyLeft, game.KeyRight)
	case 'd':
		in.press(game.KeyRight, game.KeyLeft)
	}
}

// press 按下 k，同时松开相反方向
// 重复按下只延长保持时间
func (in *Input) press(k, opposite game.Key) {
	if _, ok := in.held[opposite]; ok {
		delete(in.held, opposite)
		in.out = append(in.out, game.KeyUpEvent(opposite))
	}
	if _, ok := in.held[k]; !ok {
		in.out = append(in.out, game.KeyDownEvent(k))
	}
	in.held[k] = in.tick + holdTicks
}

// handleMouse 只在按键从未按下变为按下时发射
func (in *Input) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ in.buttons
	in.buttons = buttons

	cx, cy := ev.Position()
	x, y := in.toWorld(cx, cy)
	if pressed&tcell.ButtonPrimary != 0 {
		in.out = append(in.out, game.MouseDownEvent(game.MouseLeft, x, y))
	}
	if pressed&tcell.ButtonSecondary != 0 {
		in.out = append(in.out, game.MouseDownEvent(game.MouseRight, x, y))
	}
}

// toWorld 字符单元中心对应的世界坐标
func (in *Input) toWorld(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * in.scale, (float64(cy) + 0.5) * in.scale * cellAspect
}
