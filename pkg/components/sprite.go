package components

// SpriteComponent 存储实体的视觉表现
// 贴图通过资源ID间接引用，由 RenderSystem 在绘制时从 ResourceManager 取图，
// 因此逻辑层切换外观时不依赖任何图像对象
type SpriteComponent struct {
	TextureKey string  // 贴图资源ID，如 "bocchi-front"
	ZIndex     int     // 绘制顺序，越大越靠前
	Alpha      float64 // 不透明度 0.0 ~ 1.0
	Hidden     bool    // 是否隐藏
}
