package components

// ClickableComponent 标记实体可以被点击/触摸
// Width/Height 为贴图未缩放的尺寸，命中区域以 PositionComponent 为中心
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素，未缩放)
	Height    float64 // 可点击区域的高度(像素，未缩放)
	IsEnabled bool    // 是否响应点击
}
