package terminal

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	hitFreq    = 880
	hitLength  = 50 * time.Millisecond
)

// Sound 得分提示音
// 未启用或扬声器初始化失败时所有方法都是空操作
type Sound struct {
	enabled bool
}

// NewSound 初始化扬声器；enabled 为 false 时不触碰音频设备
func NewSound(enabled bool) (*Sound, error) {
	if !enabled {
		return &Sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, err
	}
	return &Sound{enabled: true}, nil
}

// Hit 播放一声短促的正弦音
func (s *Sound) Hit() {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, hitFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(hitLength), sine))
}

// Close 关闭扬声器
func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
}
