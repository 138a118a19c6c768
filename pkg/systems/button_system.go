package systems

import (
	"github.com/decker502/mascot/pkg/components"
	"github.com/decker502/mascot/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测悬停（更新按钮状态为 UIHovered）
//   - 在按钮内按下并在按钮内松开时触发 OnClick 回调
//   - 根据 Enabled 状态决定是否响应交互
//
// 指针事件由 InputSystem 转发，鼠标与触摸共用同一套处理
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pressed       ecs.EntityID
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 同步禁用状态
// 禁用的按钮显示为 UIDisabled，重新启用后恢复为 UINormal
func (s *ButtonSystem) Update(deltaTime float64) {
	for _, entityID := range s.buttons() {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !button.Enabled {
			button.State = components.UIDisabled
			if s.pressed == entityID {
				s.pressed = noEntity
			}
		} else if button.State == components.UIDisabled {
			button.State = components.UINormal
		}
	}
}

// HandlePointerMove 更新悬停状态
func (s *ButtonSystem) HandlePointerMove(x, y float64) {
	for _, entityID := range s.buttons() {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !button.Enabled {
			continue
		}

		switch {
		case s.pressed == entityID && s.hit(entityID, x, y):
			button.State = components.UIClicked
		case s.hit(entityID, x, y):
			button.State = components.UIHovered
		default:
			button.State = components.UINormal
		}
	}
}

// HandlePointerDown 在启用的按钮上按下时返回 true
func (s *ButtonSystem) HandlePointerDown(x, y float64) bool {
	for _, entityID := range s.buttons() {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !button.Enabled || !s.hit(entityID, x, y) {
			continue
		}
		// 按下状态（显示按下效果）
		button.State = components.UIClicked
		s.pressed = entityID
		return true
	}
	return false
}

// HandlePointerUp 松开时若仍在按下的按钮内则触发回调
func (s *ButtonSystem) HandlePointerUp(x, y float64) {
	entityID := s.pressed
	s.pressed = noEntity
	if entityID == noEntity {
		return
	}

	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || !button.Enabled {
		return
	}

	if !s.hit(entityID, x, y) {
		button.State = components.UINormal
		return
	}

	// 释放后恢复悬停状态，回调内可能会禁用按钮
	button.State = components.UIHovered
	if button.OnClick != nil {
		button.OnClick()
	}
}

func (s *ButtonSystem) buttons() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
}

// hit 检测指针是否在按钮范围内（位置为左上角）
func (s *ButtonSystem) hit(entityID ecs.EntityID, x, y float64) bool {
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	return x >= pos.X &&
		x <= pos.X+button.Width &&
		y >= pos.Y &&
		y <= pos.Y+button.Height
}
