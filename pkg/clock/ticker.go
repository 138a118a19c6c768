// Package clock 提供动画核心使用的两种时间源
//
//   - Ticker：逐帧时钟，每帧把 deltaTime 分发给已注册的回调（对应渲染循环）
//   - Scheduler：基于延迟的一次性定时器（对应宏任务定时器）
//
// 两者都不启动 goroutine，完全由游戏主循环驱动（App.Update 中依次调用
// Scheduler.Advance 与 Ticker.Tick），因此所有回调都运行在同一个线程上。
package clock

import "time"

// TickFunc 逐帧回调，参数为本帧经过的真实时间
type TickFunc func(delta time.Duration)

// TickHandle 逐帧回调的注册句柄，用于注销
type TickHandle uint64

// FrameClock 逐帧时钟端口
// MotionTimer 只依赖这个接口，测试和游戏循环共用同一个 Ticker 实现
type FrameClock interface {
	Add(fn TickFunc) TickHandle
	Remove(h TickHandle)
}

// Ticker 逐帧时钟
//
// 回调按注册顺序执行。回调内部允许注册/注销其他回调：
// 本帧内被注销的回调不会再被调用，本帧内新注册的回调从下一帧开始执行。
type Ticker struct {
	nextID  TickHandle
	order   []TickHandle
	entries map[TickHandle]TickFunc
}

// NewTicker 创建逐帧时钟
func NewTicker() *Ticker {
	return &Ticker{
		nextID:  1, // 0 保留为无效句柄
		entries: make(map[TickHandle]TickFunc),
	}
}

// Add 注册逐帧回调
func (t *Ticker) Add(fn TickFunc) TickHandle {
	h := t.nextID
	t.nextID++
	t.entries[h] = fn
	t.order = append(t.order, h)
	return h
}

// Remove 注销逐帧回调，重复注销或注销无效句柄是空操作
func (t *Ticker) Remove(h TickHandle) {
	if _, ok := t.entries[h]; !ok {
		return
	}
	delete(t.entries, h)
	for i, id := range t.order {
		if id == h {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len 返回当前注册的回调数量
func (t *Ticker) Len() int {
	return len(t.entries)
}

// Tick 推进一帧
func (t *Ticker) Tick(delta time.Duration) {
	// 拷贝一份快照，回调中修改注册表不影响本次遍历
	snapshot := make([]TickHandle, len(t.order))
	copy(snapshot, t.order)

	for _, h := range snapshot {
		fn, ok := t.entries[h]
		if !ok {
			continue // 本帧内已被注销
		}
		fn(delta)
	}
}
