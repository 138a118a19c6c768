package config

// 布局配置常量
// 所有坐标使用设计分辨率下的逻辑坐标，窗口缩放由 Ebitengine 自动处理

const (
	// DesignWidth 设计分辨率宽度（即视口最大宽度）
	DesignWidth = 925.0

	// DesignHeight 设计分辨率高度，宽高比 16:12
	DesignHeight = DesignWidth * 12.0 / 16.0

	// SpawnButtonX/Y 投放食物按钮左上角
	SpawnButtonX = 24.0
	SpawnButtonY = DesignHeight - 84.0

	// SpawnButtonWidth/Height 投放食物按钮尺寸
	SpawnButtonWidth  = 180.0
	SpawnButtonHeight = 56.0

	// DisabledButtonAlpha 禁用按钮的不透明度
	DisabledButtonAlpha = 0.6
)

// ViewportWidth 根据窗口宽度计算逻辑视口宽度
// 窗口比最大宽度宽时固定为最大宽度，比最小宽度窄时固定为最小宽度
func ViewportWidth(windowWidth int, w WindowConfig) int {
	switch {
	case windowWidth > w.MaxWidth:
		return w.MaxWidth
	case windowWidth < w.MinWidth:
		return w.MinWidth
	default:
		return windowWidth
	}
}

// ViewportSize 返回视口宽高以及舞台缩放（视口宽度 / 最大宽度）
func ViewportSize(windowWidth int, w WindowConfig) (width, height int, stageScale float64) {
	width = ViewportWidth(windowWidth, w)
	height = int(float64(width) / w.AspectRatio)
	stageScale = float64(width) / float64(w.MaxWidth)
	return width, height, stageScale
}
