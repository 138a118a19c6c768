// Package utils 提供通用工具函数：坐标换算、方向判定、随机数来源、占位贴图
package utils

// Point 二维坐标
type Point struct {
	X, Y float64
}

// Size 二维尺寸
type Size struct {
	Width, Height float64
}

// ToLocal 把全局坐标转换为以 center 为原点、除去缩放后的局部坐标
// 缩放为 0 时按 1 处理，避免除零
func ToLocal(global, center Point, scaleX, scaleY float64) Point {
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	return Point{
		X: (global.X - center.X) / scaleX,
		Y: (global.Y - center.Y) / scaleY,
	}
}

// ContainsLocal 判断局部坐标是否落在以原点为中心、尺寸为 size 的矩形内
func ContainsLocal(local Point, size Size) bool {
	return local.X >= -size.Width/2 && local.X <= size.Width/2 &&
		local.Y >= -size.Height/2 && local.Y <= size.Height/2
}
