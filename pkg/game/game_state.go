package game

import (
	"math/rand"

	"github.com/decker502/shapewars/pkg/config"
	"github.com/decker502/shapewars/pkg/ecs"
	"github.com/decker502/shapewars/pkg/utils"
)

// GameState 模拟上下文
//
// 把帧计数、冷却计时、得分、暂停状态和随机源集中在一个显式的值里，
// 每个系统通过它读取时间相关的状态，而不是依赖全局变量。
type GameState struct {
	Config *config.GameConfig
	Rand   *rand.Rand

	CurrentFrame       int // 当前帧（tick）编号，每个 tick 末尾递增
	LastEnemySpawnTime int // 上次生成敌人的帧
	LastSpecialTime    int // 上次发射特殊武器的帧
	Score              int

	Paused  bool // 暂停时只冻结玩法系统，刷新、输入和渲染照常运行
	Running bool // 收到关闭请求后置为 false

	// Player 玩家实体句柄（非持有引用，实体归 EntityManager 所有）
	Player ecs.EntityID
}

// NewGameState 创建模拟上下文，使用给定种子的伪随机源
func NewGameState(cfg *config.GameConfig, seed int64) *GameState {
	return &GameState{
		Config:  cfg,
		Rand:    rand.New(rand.NewSource(seed)),
		Running: true,
	}
}

// TogglePause 切换暂停状态
func (gs *GameState) TogglePause() {
	gs.Paused = !gs.Paused
}

// AddScore 增加得分
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
}

// WindowCenter 返回窗口中心坐标
func (gs *GameState) WindowCenter() utils.Vec2 {
	return utils.Vec2{
		X: float64(gs.Config.Window.Width) / 2,
		Y: float64(gs.Config.Window.Height) / 2,
	}
}

// FramesSince 距离某一帧经过的帧数
func (gs *GameState) FramesSince(frame int) int {
	return gs.CurrentFrame - frame
}
