package systems

import (
	"math"

	"github.com/decker502/mascot/pkg/components"
	"github.com/decker502/mascot/pkg/ecs"
	"github.com/decker502/mascot/pkg/utils"
)

// noEntity 没有实体被拖拽
const noEntity ecs.EntityID = 0

// DragSystem 拖拽系统
//
// 职责：
//   - 指针按下时找到最上层的可拖拽实体并开始拖拽
//   - 把被拖拽的实体提到同类实体的最上层
//   - 移动时让实体中心跟随指针（限制在视口内）
//   - 指针在任意位置松开都结束拖拽
//
// 同一时刻只有一个实体处于拖拽中。回调顺序与生命周期一致：
// OnDragStart → OnDragMove* → OnDragEnd
type DragSystem struct {
	entityManager *ecs.EntityManager
	bounds        utils.Size
	dragging      ecs.EntityID
}

// NewDragSystem 创建拖拽系统
// bounds 为视口尺寸，拖拽位置会被限制在 [0, bounds] 内；传零值表示不限制
func NewDragSystem(em *ecs.EntityManager, bounds utils.Size) *DragSystem {
	return &DragSystem{
		entityManager: em,
		bounds:        bounds,
	}
}

// Dragging 返回当前被拖拽的实体
func (s *DragSystem) Dragging() (ecs.EntityID, bool) {
	if s.dragging == noEntity {
		return noEntity, false
	}
	if !s.entityManager.Exists(s.dragging) {
		s.dragging = noEntity
		return noEntity, false
	}
	return s.dragging, true
}

// HitTest 返回指针下方最上层的可拖拽实体
// ZIndex 相同时后创建的实体在上层
func (s *DragSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	found := noEntity
	bestZ := math.MinInt

	ids := ecs.GetEntitiesWith3[*components.DraggableComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager)
	for _, id := range ids {
		drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
		if !drag.IsEnabled {
			continue
		}
		if !s.contains(id, x, y) {
			continue
		}
		z := s.zIndex(id)
		if z >= bestZ {
			bestZ = z
			found = id
		}
	}

	return found, found != noEntity
}

// HandlePointerDown 处理指针按下，命中可拖拽实体时返回 true
func (s *DragSystem) HandlePointerDown(x, y float64) bool {
	if _, busy := s.Dragging(); busy {
		return true
	}

	id, ok := s.HitTest(x, y)
	if !ok {
		return false
	}

	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	drag.IsDragging = true
	s.dragging = id
	s.bringToFront(id)

	if drag.OnDragStart != nil {
		drag.OnDragStart(id, x, y)
	}
	return true
}

// HandlePointerMove 处理指针移动
// 先通知回调，再把实体移动到指针位置
func (s *DragSystem) HandlePointerMove(x, y float64) {
	id, ok := s.Dragging()
	if !ok {
		return
	}
	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)

	if drag.OnDragMove != nil {
		drag.OnDragMove(id, x, y)
	}

	// 回调里可能已经关闭了拖拽（例如开始进食），此后位置归进食序列所有
	if !drag.IsEnabled || !drag.IsDragging {
		return
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X, pos.Y = s.clamp(x, y)
	}
}

// HandlePointerUp 处理指针松开，无论松开位置在哪里都会结束拖拽
func (s *DragSystem) HandlePointerUp(x, y float64) {
	id, ok := s.Dragging()
	if !ok {
		return
	}
	s.dragging = noEntity

	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	drag.IsDragging = false
	if drag.OnDragEnd != nil {
		drag.OnDragEnd(id, x, y)
	}
}

// Release 放弃当前拖拽且不触发 OnDragEnd，用于实体被外部移除的情况
func (s *DragSystem) Release() {
	id, ok := s.Dragging()
	if ok {
		if drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id); ok {
			drag.IsDragging = false
		}
	}
	s.dragging = noEntity
}

// bringToFront 把实体的 ZIndex 设为其他可拖拽实体的最大值加一
func (s *DragSystem) bringToFront(id ecs.EntityID) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return
	}

	top := math.MinInt
	for _, other := range ecs.GetEntitiesWith2[*components.DraggableComponent, *components.SpriteComponent](s.entityManager) {
		if other == id {
			continue
		}
		otherSprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, other)
		if otherSprite.ZIndex > top {
			top = otherSprite.ZIndex
		}
	}

	if top != math.MinInt && sprite.ZIndex <= top {
		sprite.ZIndex = top + 1
	}
}

// contains 命中区域以位置为中心，尺寸为未缩放尺寸乘以缩放
func (s *DragSystem) contains(id ecs.EntityID, x, y float64) bool {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	click, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)

	sx, sy := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		sx, sy = scale.ScaleX, scale.ScaleY
	}

	local := utils.ToLocal(utils.Point{X: x, Y: y}, utils.Point{X: pos.X, Y: pos.Y}, sx, sy)
	return utils.ContainsLocal(local, utils.Size{Width: click.Width, Height: click.Height})
}

func (s *DragSystem) zIndex(id ecs.EntityID) int {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		return sprite.ZIndex
	}
	return 0
}

func (s *DragSystem) clamp(x, y float64) (float64, float64) {
	if s.bounds.Width > 0 {
		x = math.Max(0, math.Min(x, s.bounds.Width))
	}
	if s.bounds.Height > 0 {
		y = math.Max(0, math.Min(y, s.bounds.Height))
	}
	return x, y
}
