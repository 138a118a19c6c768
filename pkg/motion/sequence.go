package motion

import (
	"time"

	"github.com/decker502/mascot/pkg/clock"
)

// Step 顺序执行中的一步
// 步骤完成时必须调用 next；多次调用只有第一次生效
type Step func(next func())

// Run 依次执行所有步骤，返回在最后一步完成后完成的 Signal
//
// 第 N+1 步只会在第 N 步调用 next 之后开始。步骤之间可以跨越任意多帧，
// 期间控制权回到游戏循环，其他输入事件照常处理。
func Run(steps ...Step) *Signal {
	done := NewSignal()

	var runAt func(i int)
	runAt = func(i int) {
		if i >= len(steps) {
			done.Resolve()
			return
		}
		called := false
		steps[i](func() {
			if called {
				return
			}
			called = true
			runAt(i + 1)
		})
	}
	runAt(0)

	return done
}

// Wait 等待指定时长
func Wait(s clock.DelayScheduler, d time.Duration) Step {
	return func(next func()) {
		s.After(d, next)
	}
}

// Do 同步执行 fn 后立即进入下一步
func Do(fn func()) Step {
	return func(next func()) {
		fn()
		next()
	}
}

// Await 执行 start 并等待其返回的 Signal 完成
// start 返回 nil 时视为立即完成
func Await(start func() *Signal) Step {
	return func(next func()) {
		sig := start()
		if sig == nil {
			next()
			return
		}
		sig.Then(next)
	}
}

// Repeat 把同一组步骤重复 n 次展开
func Repeat(n int, steps ...Step) []Step {
	out := make([]Step, 0, n*len(steps))
	for i := 0; i < n; i++ {
		out = append(out, steps...)
	}
	return out
}
