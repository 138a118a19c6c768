package components

// ScaleComponent 存储实体级别的缩放因子
// 点击检测和方向判定都会先除去该缩放，换算到贴图的原始尺寸
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.5 = 50%）
	ScaleY float64
}
