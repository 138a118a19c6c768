// Package motion 实现跳跃动画生成器（MotionTimer）以及基于回调的顺序步骤执行器
package motion

import (
	"errors"
	"fmt"
	"time"

	"github.com/decker502/mascot/pkg/clock"
)

// JumpTimeScale 真实毫秒到动画时间的换算系数
// 每帧动画时间增量 = 帧间隔毫秒数 / JumpTimeScale
const JumpTimeScale = 5.0

// ErrInvalidJumpParams 重力或初速度不为正时返回
var ErrInvalidJumpParams = errors.New("gravity and power must be positive")

// JumpParams 简化抛体运动参数
//
// 高度公式：height(t) = Power·t − 0.5·Gravity·t²
type JumpParams struct {
	Gravity float64 // 减速度
	Power   float64 // 初速度
}

// Validate 检查参数是否满足 Gravity > 0 且 Power > 0
func (p JumpParams) Validate() error {
	if p.Gravity <= 0 || p.Power <= 0 {
		return fmt.Errorf("%w: gravity=%.2f power=%.2f", ErrInvalidJumpParams, p.Gravity, p.Power)
	}
	return nil
}

// HeightAt 计算动画时间 t 时的跳跃高度（向上为正）
func (p JumpParams) HeightAt(t float64) float64 {
	return p.Power*t - 0.5*p.Gravity*t*t
}

// Duration 返回高度回到 0 的动画时间 2·Power/Gravity
func (p JumpParams) Duration() float64 {
	return 2 * p.Power / p.Gravity
}

// MotionTimer 驱动单个对象的垂直跳跃动画
//
// 每个动画对象持有自己的 MotionTimer 实例。同一实例同一时刻只有一次跳跃在执行：
// 跳跃未结束时再次调用 StartJump，旧跳跃立即取消（不触发 onComplete），
// 位置先回到旧跳跃的基线，再从 t=0 开始新跳跃。
type MotionTimer struct {
	clock clock.FrameClock

	active   bool
	elapsed  float64 // 动画时间，不是毫秒
	params   JumpParams
	baseline float64

	onUpdate   func(y float64)
	onComplete func()
	handle     clock.TickHandle
}

// NewMotionTimer 创建绑定到逐帧时钟的跳跃计时器
func NewMotionTimer(c clock.FrameClock) *MotionTimer {
	return &MotionTimer{clock: c}
}

// IsActive 是否有跳跃在执行
func (m *MotionTimer) IsActive() bool {
	return m.active
}

// Elapsed 当前跳跃已经过的动画时间
func (m *MotionTimer) Elapsed() float64 {
	return m.elapsed
}

// Baseline 当前（或最近一次）跳跃的基线 Y 坐标
func (m *MotionTimer) Baseline() float64 {
	return m.baseline
}

// StartJump 开始一次跳跃
//
// 参数：
//   - params: 重力与初速度，必须都为正
//   - baseline: 起跳/落地的 Y 坐标
//   - onUpdate: 每个动画步调用，参数为绝对 Y 坐标（baseline − height）
//   - onComplete: 跳跃自然结束时调用一次；被新跳跃打断时不调用
//
// 返回：
//   - error: 参数非法时返回 ErrInvalidJumpParams，且不影响正在执行的跳跃
func (m *MotionTimer) StartJump(params JumpParams, baseline float64, onUpdate func(y float64), onComplete func()) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if m.active {
		// 打断旧跳跃：回到旧基线，丢弃旧的完成回调
		prevUpdate, prevBaseline := m.onUpdate, m.baseline
		m.stop()
		if prevUpdate != nil {
			prevUpdate(prevBaseline)
		}
	}

	m.active = true
	m.elapsed = 0
	m.params = params
	m.baseline = baseline
	m.onUpdate = onUpdate
	m.onComplete = onComplete
	m.handle = m.clock.Add(m.tick)
	return nil
}

// JumpAndWait 与 StartJump 相同，但返回一个在跳跃结束时完成的 Signal
// 跳跃被打断时 Signal 永远不会完成
func (m *MotionTimer) JumpAndWait(params JumpParams, baseline float64, onUpdate func(y float64)) (*Signal, error) {
	sig := NewSignal()
	if err := m.StartJump(params, baseline, onUpdate, sig.Resolve); err != nil {
		return nil, err
	}
	return sig, nil
}

// Cancel 立即停止当前跳跃并回到基线，不触发 onComplete
func (m *MotionTimer) Cancel() {
	if !m.active {
		return
	}
	update, baseline := m.onUpdate, m.baseline
	m.stop()
	if update != nil {
		update(baseline)
	}
}

func (m *MotionTimer) stop() {
	m.clock.Remove(m.handle)
	m.active = false
	m.handle = 0
	m.onUpdate = nil
	m.onComplete = nil
}

func (m *MotionTimer) tick(delta time.Duration) {
	if !m.active {
		return
	}

	height := m.params.HeightAt(m.elapsed)
	if height < 0 {
		update, complete, baseline := m.onUpdate, m.onComplete, m.baseline
		m.stop()
		if update != nil {
			update(baseline)
		}
		if complete != nil {
			complete()
		}
		return
	}

	if m.onUpdate != nil {
		m.onUpdate(m.baseline - height)
	}
	deltaMS := float64(delta) / float64(time.Millisecond)
	m.elapsed += deltaMS / JumpTimeScale
}
