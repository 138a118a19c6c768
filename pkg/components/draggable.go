package components

import "github.com/decker502/mascot/pkg/ecs"

// DragCallback 拖拽生命周期回调，坐标为指针的全局坐标
type DragCallback func(id ecs.EntityID, x, y float64)

// DraggableComponent 可拖拽目标（食物）
//
// 拖拽开始时 DragSystem 会把该实体提到同类实体的最上层；
// 移动时实体位置跟随指针；松开（包括在窗口外松开）时结束拖拽。
// IsEnabled 为 false 时不响应拖拽，进食序列期间由编排层关闭。
type DraggableComponent struct {
	IsEnabled  bool
	IsDragging bool

	OnDragStart DragCallback
	OnDragMove  DragCallback
	OnDragEnd   DragCallback
}
