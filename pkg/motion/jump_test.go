package motion

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/decker502/mascot/pkg/clock"
)

const frame = 16 * time.Millisecond

// runUntilIdle 推进时钟直到跳跃结束，返回推进的帧数
func runUntilIdle(t *testing.T, ticker *clock.Ticker, m *MotionTimer) int {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !m.IsActive() {
			return i
		}
		ticker.Tick(frame)
	}
	t.Fatal("jump never finished")
	return 0
}

func TestHeightFormula(t *testing.T) {
	tests := []struct {
		name    string
		gravity float64
		power   float64
	}{
		{name: "touch jump", gravity: 1, power: 15},
		{name: "nibble jump", gravity: 1, power: 8},
		{name: "heavy gravity", gravity: 3.5, power: 12},
		{name: "light gravity", gravity: 0.25, power: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := JumpParams{Gravity: tt.gravity, Power: tt.power}
			d := p.Duration()
			if want := 2 * tt.power / tt.gravity; math.Abs(d-want) > 1e-9 {
				t.Fatalf("Duration() = %f, want %f", d, want)
			}

			// [0, 2p/g] 内高度非负
			for i := 0; i <= 100; i++ {
				ti := d * float64(i) / 100
				if h := p.HeightAt(ti); h < -1e-9 {
					t.Errorf("HeightAt(%f) = %f, expected non-negative", ti, h)
				}
			}

			// 之后立即为负
			if h := p.HeightAt(d + 1e-6); h >= 0 {
				t.Errorf("HeightAt just after duration = %f, expected negative", h)
			}
		})
	}
}

func TestJumpTerminatesWithinOneStep(t *testing.T) {
	ticker := clock.NewTicker()
	m := NewMotionTimer(ticker)
	p := JumpParams{Gravity: 1, Power: 15}

	var lastY float64
	completed := 0
	var elapsedAtEnd float64
	err := m.StartJump(p, 300, func(y float64) { lastY = y }, func() {
		completed++
		elapsedAtEnd = m.Elapsed()
	})
	if err != nil {
		t.Fatalf("StartJump() error: %v", err)
	}

	runUntilIdle(t, ticker, m)

	if completed != 1 {
		t.Fatalf("Expected onComplete once, got %d", completed)
	}
	if lastY != 300 {
		t.Errorf("Expected final y snapped to baseline 300, got %f", lastY)
	}

	step := float64(frame) / float64(time.Millisecond) / JumpTimeScale
	overshoot := elapsedAtEnd - p.Duration()
	if overshoot <= 0 || overshoot > step+1e-9 {
		t.Errorf("Termination time %f should be within one step (%f) after %f", elapsedAtEnd, step, p.Duration())
	}
	if ticker.Len() != 0 {
		t.Errorf("Timer should unregister itself from the clock, %d callbacks left", ticker.Len())
	}
}

func TestJumpMovesUpward(t *testing.T) {
	ticker := clock.NewTicker()
	m := NewMotionTimer(ticker)

	minY := math.Inf(1)
	_ = m.StartJump(JumpParams{Gravity: 1, Power: 15}, 300, func(y float64) {
		if y < minY {
			minY = y
		}
		if y > 300 {
			t.Errorf("y=%f went below the baseline", y)
		}
	}, nil)
	runUntilIdle(t, ticker, m)

	// 峰值高度 p²/(2g) = 112.5，离散步进会略低于峰值
	if minY > 300-100 || minY < 300-112.5-1e-9 {
		t.Errorf("Unexpected apex y=%f", minY)
	}
}

func TestJumpRestartSnapsToPreviousBaseline(t *testing.T) {
	ticker := clock.NewTicker()
	m := NewMotionTimer(ticker)

	var ys []float64
	firstCompleted := false
	secondCompleted := 0

	_ = m.StartJump(JumpParams{Gravity: 1, Power: 15}, 100, func(y float64) {
		ys = append(ys, y)
	}, func() { firstCompleted = true })

	for i := 0; i < 4; i++ {
		ticker.Tick(frame)
	}

	ys = ys[:0]
	_ = m.StartJump(JumpParams{Gravity: 1, Power: 8}, 200, func(y float64) {
		ys = append(ys, y)
	}, func() { secondCompleted++ })

	if len(ys) != 1 || ys[0] != 100 {
		t.Fatalf("Restart should snap to the first baseline 100 before animating, got %v", ys)
	}
	if m.Elapsed() != 0 {
		t.Errorf("Restarted jump should begin at t=0, got %f", m.Elapsed())
	}

	ticker.Tick(frame)
	if ys[1] != 200 {
		t.Errorf("First frame of the new jump should be at its baseline (t=0), got %f", ys[1])
	}

	runUntilIdle(t, ticker, m)

	if firstCompleted {
		t.Error("Cancelled jump must never call onComplete")
	}
	if secondCompleted != 1 {
		t.Errorf("Expected second onComplete once, got %d", secondCompleted)
	}
	if ticker.Len() != 0 {
		t.Errorf("Expected no leftover clock callbacks, got %d", ticker.Len())
	}
}

func TestStartJumpRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params JumpParams
	}{
		{name: "zero gravity", params: JumpParams{Gravity: 0, Power: 15}},
		{name: "negative gravity", params: JumpParams{Gravity: -1, Power: 15}},
		{name: "zero power", params: JumpParams{Gravity: 1, Power: 0}},
		{name: "negative power", params: JumpParams{Gravity: 1, Power: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticker := clock.NewTicker()
			m := NewMotionTimer(ticker)

			// 先启动一个合法跳跃，非法调用不应打断它
			_ = m.StartJump(JumpParams{Gravity: 1, Power: 15}, 0, nil, nil)
			ticker.Tick(frame)

			err := m.StartJump(tt.params, 50, nil, nil)
			if !errors.Is(err, ErrInvalidJumpParams) {
				t.Fatalf("Expected ErrInvalidJumpParams, got %v", err)
			}
			if !m.IsActive() || m.Baseline() != 0 {
				t.Error("Rejected call must not affect the running jump")
			}

			if _, err := m.JumpAndWait(tt.params, 50, nil); !errors.Is(err, ErrInvalidJumpParams) {
				t.Errorf("JumpAndWait: expected ErrInvalidJumpParams, got %v", err)
			}
		})
	}
}

func TestJumpAndWaitResolves(t *testing.T) {
	ticker := clock.NewTicker()
	m := NewMotionTimer(ticker)

	sig, err := m.JumpAndWait(JumpParams{Gravity: 1, Power: 8}, 10, nil)
	if err != nil {
		t.Fatalf("JumpAndWait() error: %v", err)
	}
	if sig.IsResolved() {
		t.Fatal("Signal should not resolve before the jump ends")
	}

	runUntilIdle(t, ticker, m)

	select {
	case <-sig.Done():
	default:
		t.Error("Done channel should be closed after the jump ends")
	}
}

func TestCancelDoesNotComplete(t *testing.T) {
	ticker := clock.NewTicker()
	m := NewMotionTimer(ticker)

	var lastY float64
	completed := false
	_ = m.StartJump(JumpParams{Gravity: 1, Power: 15}, 42, func(y float64) { lastY = y }, func() { completed = true })
	ticker.Tick(frame)
	ticker.Tick(frame)

	m.Cancel()
	ticker.Tick(frame)

	if completed {
		t.Error("Cancel must not call onComplete")
	}
	if lastY != 42 {
		t.Errorf("Cancel should snap to baseline, got %f", lastY)
	}
	if m.IsActive() {
		t.Error("Timer should be inactive after Cancel")
	}
	m.Cancel() // 空操作
}

func TestStartJumpFromCompletionCallback(t *testing.T) {
	ticker := clock.NewTicker()
	m := NewMotionTimer(ticker)
	jumps := 0

	var again func()
	again = func() {
		jumps++
		if jumps < 3 {
			_ = m.StartJump(JumpParams{Gravity: 1, Power: 4}, 0, nil, again)
		}
	}
	_ = m.StartJump(JumpParams{Gravity: 1, Power: 4}, 0, nil, again)

	runUntilIdle(t, ticker, m)

	if jumps != 3 {
		t.Errorf("Expected 3 chained jumps, got %d", jumps)
	}
}
