package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerDown 按下（鼠标左键或触摸开始）
	PointerDown PointerEventKind = iota
	// PointerMove 移动（按住拖动或悬停）
	PointerMove
	// PointerUp 松开，包括在窗口外松开
	PointerUp
)

// String 返回事件类型名称
func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent 一次指针事件，坐标为逻辑屏幕坐标
type PointerEvent struct {
	Kind PointerEventKind
	X, Y float64
}

// PointerSample 某一帧的原始指针状态
type PointerSample struct {
	// Pressed 是否有指针按下
	Pressed bool
	// X, Y 指针位置
	X, Y int
	// Touch 位置来自触摸
	Touch bool
}

// SamplePointer 读取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸
func SamplePointer() PointerSample {
	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{Pressed: true, X: x, Y: y, Touch: true}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// PointerTracker 把逐帧的指针状态转换为按下/移动/松开事件
// 只跟踪一个指针，多点触摸时只使用第一个触点
type PointerTracker struct {
	pressed bool
	touch   bool
	lastX   int
	lastY   int
	hasLast bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// IsPressed 上一帧指针是否处于按下状态
func (t *PointerTracker) IsPressed() bool {
	return t.pressed
}

// Next 根据本帧采样生成事件
//
// 规则：
//   - 未按下 → 按下：PointerDown
//   - 按下期间位置变化：PointerMove
//   - 按下 → 未按下：PointerUp，位置变化时先送出一次 PointerMove
//   - 未按下时位置变化：PointerMove（用于按钮悬停）
//
// 触摸松开后没有位置，松开事件及之后的空闲帧沿用最后的触摸位置，
// 直到下一次鼠标按下为止。
func (t *PointerTracker) Next(sample PointerSample) []PointerEvent {
	x, y := sample.X, sample.Y
	if !sample.Pressed && t.touch {
		x, y = t.lastX, t.lastY
	}
	moved := !t.hasLast || x != t.lastX || y != t.lastY

	var events []PointerEvent
	switch {
	case sample.Pressed && !t.pressed:
		events = append(events, PointerEvent{Kind: PointerDown, X: float64(x), Y: float64(y)})
	case !sample.Pressed && t.pressed:
		if moved {
			events = append(events, PointerEvent{Kind: PointerMove, X: float64(x), Y: float64(y)})
		}
		events = append(events, PointerEvent{Kind: PointerUp, X: float64(x), Y: float64(y)})
	case moved:
		events = append(events, PointerEvent{Kind: PointerMove, X: float64(x), Y: float64(y)})
	}

	t.pressed = sample.Pressed
	if sample.Pressed {
		t.touch = sample.Touch
	}
	t.lastX, t.lastY = x, y
	t.hasLast = true
	return events
}

// Reset 清除跟踪状态
func (t *PointerTracker) Reset() {
	*t = PointerTracker{}
}
