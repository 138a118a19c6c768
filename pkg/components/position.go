package components

// PositionComponent 实体在屏幕上的显示位置（视觉中心）
// 角色跳跃时该位置随动画变化，逻辑落点保存在 CharacterComponent.BaseX/BaseY
type PositionComponent struct {
	X float64
	Y float64
}
