package components

import (
	"github.com/decker502/mascot/pkg/clock"
	"github.com/decker502/mascot/pkg/motion"
	"github.com/decker502/mascot/pkg/types"
)

// CharacterComponent 吉祥物角色的核心状态
//
// 不变式：
//   - State == StateEating 时两个后台定时器都未挂起
//   - PromptTimer 与 GiveUpTimer 同一时刻最多只有一个在等待
//   - Direction 只通过方向判定或重置为正面来修改
type CharacterComponent struct {
	// BaseX/BaseY 逻辑落点；显示位置在跳跃中会偏离，但落点不变
	BaseX float64
	BaseY float64

	// Width/Height 贴图未缩放尺寸，用于方向判定
	Width  float64
	Height float64

	Direction types.Direction
	State     types.ActivityState

	// IsWaitingImpatiently 注视食物期间至少催促过一次
	IsWaitingImpatiently bool
	// IsWatching 食物正在被拖动、角色正在注视
	IsWatching bool

	PromptTimer *clock.Timer
	GiveUpTimer *clock.Timer

	// Motion 该角色独占的跳跃计时器
	Motion *motion.MotionTimer
}
