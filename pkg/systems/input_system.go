package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/entities"
	"github.com/decker502/shapewars/pkg/game"
	"github.com/decker502/shapewars/pkg/utils"
)

// InputSystem 消费输入源的离散事件
//
// 只设置玩家的输入标志和游戏状态（暂停、关闭），移动逻辑由 MovementSystem 处理。
// 暂停期间仍然处理按键，但忽略鼠标发射。
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	logger        *zap.Logger
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, logger *zap.Logger) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
		logger:        logger.Named("input"),
	}
}

// Update 轮询一次输入源并处理全部事件
func (s *InputSystem) Update(src game.InputSource) {
	for _, ev := range src.Poll() {
		switch ev.Type {
		case game.EventClose:
			s.gameState.Running = false
			s.logger.Info("close requested", zap.Int("frame", s.gameState.CurrentFrame))
		case game.EventKeyDown:
			if ev.Key == game.KeyPause {
				s.gameState.TogglePause()
				s.logger.Debug("pause toggled", zap.Bool("paused", s.gameState.Paused))
				continue
			}
			s.setKey(ev.Key, true)
		case game.EventKeyUp:
			s.setKey(ev.Key, false)
		case game.EventMouseDown:
			if s.gameState.Paused {
				continue
			}
			s.fire(ev.Button, utils.Vec2{X: ev.X, Y: ev.Y})
		}
	}
}

func (s *InputSystem) setKey(k game.Key, down bool) {
	player, ok := entities.Player(s.entityManager, s.gameState)
	if !ok || player.Input == nil {
		return
	}
	switch k {
	case game.KeyUp:
		player.Input.Up = down
	case game.KeyDown:
		player.Input.Down = down
	case game.KeyLeft:
		player.Input.Left = down
	case game.KeyRight:
		player.Input.Right = down
	}
}

func (s *InputSystem) fire(button game.MouseButton, target utils.Vec2) {
	player, ok := entities.Player(s.entityManager, s.gameState)
	if !ok || player.Transform == nil {
		return
	}

	switch button {
	case game.MouseLeft:
		entities.NewBullet(s.entityManager, s.gameState, player, target)
	case game.MouseRight:
		if _, fired := entities.NewSpecialWeapon(s.entityManager, s.gameState, player, target); !fired {
			s.logger.Debug("special weapon cooling down",
				zap.Int("frame", s.gameState.CurrentFrame),
				zap.Int("lastFired", s.gameState.LastSpecialTime))
		}
	}
}
