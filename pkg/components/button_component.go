package components

// ButtonComponent 按钮组件
// 纯数据组件：外观、尺寸、状态、回调。位置取自 PositionComponent（左上角）
type ButtonComponent struct {
	// TextureKey 按钮贴图资源ID
	TextureKey string
	// Label 按钮文字（贴图缺失时绘制）
	Label string

	// Width/Height 按钮尺寸（像素，已缩放）
	Width  float64
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击，绘制为半透明）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}
