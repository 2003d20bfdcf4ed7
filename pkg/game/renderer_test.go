package game

import (
	"image/color"
	"testing"

	"github.com/decker502/shapewars/pkg/utils"
)

func TestDrawListPublishesOnPresent(t *testing.T) {
	d := NewDrawList()

	d.Clear()
	d.DrawShape(utils.Vec2{X: 1, Y: 2}, 10, 5, 3, color.RGBA{R: 1, A: 255}, color.RGBA{G: 1, A: 255}, 2)
	d.DrawText("Score : 0")

	// Present 之前快照为空
	if n := len(d.Frame().Shapes); n != 0 {
		t.Errorf("frame should be empty before Present, got %d shapes", n)
	}

	d.Present()
	frame := d.Frame()
	if len(frame.Shapes) != 1 || len(frame.Texts) != 1 {
		t.Fatalf("unexpected frame: %+v", frame)
	}
	if frame.Shapes[0].Sides != 3 || frame.Shapes[0].Position.X != 1 {
		t.Errorf("unexpected shape: %+v", frame.Shapes[0])
	}
	if frame.Texts[0] != "Score : 0" {
		t.Errorf("unexpected text: %q", frame.Texts[0])
	}

	// 下一帧构建期间，上一帧快照保持不变
	d.Clear()
	d.DrawText("Score : 100")
	if d.Frame().Texts[0] != "Score : 0" {
		t.Error("presented frame changed while building the next one")
	}
	d.Present()
	if d.Frame().Texts[0] != "Score : 100" || len(d.Frame().Shapes) != 0 {
		t.Errorf("unexpected second frame: %+v", d.Frame())
	}
	if d.PresentedFrames() != 2 {
		t.Errorf("expected 2 presented frames, got %d", d.PresentedFrames())
	}
}

func TestScriptedInput(t *testing.T) {
	in := NewScriptedInput()
	if got := in.Poll(); len(got) != 0 {
		t.Errorf("expected no events, got %v", got)
	}

	in.Push(KeyDownEvent(KeyUp), MouseDownEvent(MouseLeft, 3, 4))
	in.Push(CloseEvent())

	got := in.Poll()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Type != EventKeyDown || got[0].Key != KeyUp {
		t.Errorf("unexpected first event: %+v", got[0])
	}
	if got[1].Type != EventMouseDown || got[1].Button != MouseLeft || got[1].X != 3 || got[1].Y != 4 {
		t.Errorf("unexpected second event: %+v", got[1])
	}
	if got[2].Type != EventClose {
		t.Errorf("unexpected third event: %+v", got[2])
	}

	if again := in.Poll(); len(again) != 0 {
		t.Errorf("queue should be drained, got %v", again)
	}
}
