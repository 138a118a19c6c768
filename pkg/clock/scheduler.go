package clock

import (
	"container/heap"
	"time"
)

// DelayScheduler 一次性延迟定时器端口
type DelayScheduler interface {
	After(delay time.Duration, fn func()) *Timer
}

// Timer 一次性定时器句柄
type Timer struct {
	due       time.Duration
	seq       uint64
	fn        func()
	index     int // 在堆中的位置，-1 表示已出堆
	fired     bool
	cancelled bool
	owner     *Scheduler
}

// Cancel 取消定时器
// 返回 true 表示本次调用真正阻止了回调；已触发或已取消的定时器返回 false（空操作）
func (t *Timer) Cancel() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	if t.index >= 0 && t.owner != nil {
		heap.Remove(&t.owner.queue, t.index)
	}
	return true
}

// Pending 定时器是否仍在等待触发
func (t *Timer) Pending() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Scheduler 由游戏循环推进的定时器调度器
// 到期时间相同的定时器按注册顺序触发
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewScheduler 创建调度器，内部时间从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 返回调度器的内部时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After 在 delay 之后触发 fn，负延迟视为 0
func (s *Scheduler) After(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Timer{
		due:   s.now + delay,
		seq:   s.seq,
		fn:    fn,
		owner: s,
	}
	heap.Push(&s.queue, t)
	return t
}

// Pending 返回等待中的定时器数量
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// Advance 推进调度器时间并触发所有到期的定时器
//
// 回调内部新注册且在本次推进范围内到期的定时器也会在本次调用中触发，
// 因此 Advance(10s) 与十次 Advance(1s) 的触发顺序一致。
func (s *Scheduler) Advance(delta time.Duration) {
	target := s.now + delta
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		if next.due > s.now {
			s.now = next.due
		}
		next.fired = true
		if next.fn != nil {
			next.fn()
		}
	}
	s.now = target
}

// timerQueue 定时器最小堆（按到期时间、注册序号排序）
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
