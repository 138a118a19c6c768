package motion

// Signal 一次性完成信号
//
// 游戏循环是单线程的，等待方不能阻塞，因此通过 Then 注册续体；
// Done 返回的 channel 在完成时关闭，便于测试或外部 goroutine 观察。
type Signal struct {
	resolved bool
	ch       chan struct{}
	waiters  []func()
}

// NewSignal 创建未完成的信号
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Resolve 完成信号并按注册顺序执行续体，重复调用是空操作
func (s *Signal) Resolve() {
	if s.resolved {
		return
	}
	s.resolved = true
	close(s.ch)
	waiters := s.waiters
	s.waiters = nil
	for _, fn := range waiters {
		fn()
	}
}

// Then 注册续体；信号已完成时立即执行
func (s *Signal) Then(fn func()) {
	if s.resolved {
		fn()
		return
	}
	s.waiters = append(s.waiters, fn)
}

// IsResolved 信号是否已完成
func (s *Signal) IsResolved() bool {
	return s.resolved
}

// Done 返回完成时关闭的 channel
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}
