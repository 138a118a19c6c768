package utils

import "github.com/decker502/mascot/pkg/types"

// 方向判定区域常量（设计分辨率下的屏幕单位）
const (
	// DirectionMarginTop 视图上边缘向内判定为"上"的宽度
	DirectionMarginTop = 80.0
	// DirectionMarginBottom 视图下边缘向内判定为"下"的宽度
	DirectionMarginBottom = 80.0
	// DirectionFrontAreaSide 水平方向"正面"区域的半宽
	DirectionFrontAreaSide = 100.0
)

// verticalZone 纵向三分类
type verticalZone int

const (
	verticalFront verticalZone = iota
	verticalUp
	verticalDown
)

// horizontalZone 横向五分类
type horizontalZone int

const (
	horizontalFront horizontalZone = iota
	horizontalLeft
	horizontalFrontLeft
	horizontalRight
	horizontalFrontRight
)

// DirectionResolver 把相对角色中心的局部坐标映射为面朝方向
//
// 局部坐标系以角色中心为原点、已除去缩放，Y 轴向下为正。
// 判定是一个全函数：任何输入（包括 NaN、超出视图的坐标）都会得到 11 个方向之一，
// 靠近中心的死区返回正面。
type DirectionResolver struct {
	MarginTop     float64
	MarginBottom  float64
	FrontAreaSide float64
}

// DefaultDirectionResolver 返回使用固定常量的判定器
func DefaultDirectionResolver() DirectionResolver {
	return DirectionResolver{
		MarginTop:     DirectionMarginTop,
		MarginBottom:  DirectionMarginBottom,
		FrontAreaSide: DirectionFrontAreaSide,
	}
}

// ResolveDirection 使用默认常量判定方向
func ResolveDirection(local Point, view Size) types.Direction {
	return DefaultDirectionResolver().Resolve(local, view)
}

// Resolve 判定方向
//
// 参数：
//   - local: 相对角色中心的局部坐标（未缩放）
//   - view: 角色视图的未缩放尺寸
//
// 返回：
//   - types.Direction: 面朝方向
func (r DirectionResolver) Resolve(local Point, view Size) types.Direction {
	return combineZones(r.horizontal(local.X, view.Width), r.vertical(local.Y, view.Height))
}

func (r DirectionResolver) vertical(y, height float64) verticalZone {
	if y < -height/2+r.MarginTop {
		return verticalUp
	}
	if y > height/2-r.MarginBottom {
		return verticalDown
	}
	return verticalFront
}

func (r DirectionResolver) horizontal(x, width float64) horizontalZone {
	switch {
	case x < -width/2:
		return horizontalLeft
	case x < -r.FrontAreaSide:
		return horizontalFrontLeft
	case x > width/2:
		return horizontalRight
	case x > r.FrontAreaSide:
		return horizontalFrontRight
	default:
		return horizontalFront
	}
}

// combineZones 组合横纵分类
// frontleft/frontright 与 up/down 组合时和 left/right 一样收敛到对角方向，
// 没有单独的"浅对角"方向
func combineZones(h horizontalZone, v verticalZone) types.Direction {
	switch h {
	case horizontalLeft, horizontalFrontLeft:
		switch v {
		case verticalUp:
			return types.DirectionUpLeft
		case verticalDown:
			return types.DirectionDownLeft
		}
		if h == horizontalLeft {
			return types.DirectionLeft
		}
		return types.DirectionFrontLeft
	case horizontalRight, horizontalFrontRight:
		switch v {
		case verticalUp:
			return types.DirectionUpRight
		case verticalDown:
			return types.DirectionDownRight
		}
		if h == horizontalRight {
			return types.DirectionRight
		}
		return types.DirectionFrontRight
	default:
		switch v {
		case verticalUp:
			return types.DirectionUp
		case verticalDown:
			return types.DirectionDown
		}
		return types.DirectionFront
	}
}
