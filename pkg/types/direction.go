// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Direction 角色面朝的方向
// 八个方位加上正面，不存在背面（角色永远不会背对镜头）
type Direction int

const (
	// DirectionFront 正面（默认）
	DirectionFront Direction = iota
	DirectionUp
	DirectionUpLeft
	DirectionUpRight
	DirectionFrontLeft
	DirectionFrontRight
	DirectionLeft
	DirectionRight
	DirectionDown
	DirectionDownLeft
	DirectionDownRight
)

// DirectionCount 方向总数
const DirectionCount = 11

// AllDirections 按定义顺序返回全部方向
func AllDirections() []Direction {
	return []Direction{
		DirectionFront,
		DirectionUp,
		DirectionUpLeft,
		DirectionUpRight,
		DirectionFrontLeft,
		DirectionFrontRight,
		DirectionLeft,
		DirectionRight,
		DirectionDown,
		DirectionDownLeft,
		DirectionDownRight,
	}
}

// String 返回方向名称，同时用作贴图键的后缀
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionUpLeft:
		return "upleft"
	case DirectionUpRight:
		return "upright"
	case DirectionFrontLeft:
		return "frontleft"
	case DirectionFrontRight:
		return "frontright"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionDownLeft:
		return "downleft"
	case DirectionDownRight:
		return "downright"
	default:
		return "front"
	}
}

// IsValid 是否为已定义的方向
func (d Direction) IsValid() bool {
	return d >= DirectionFront && d <= DirectionDownRight
}

// Mirror 返回水平镜像后的方向
// front/up/down 在水平镜像下保持不变
func (d Direction) Mirror() Direction {
	switch d {
	case DirectionUpLeft:
		return DirectionUpRight
	case DirectionUpRight:
		return DirectionUpLeft
	case DirectionFrontLeft:
		return DirectionFrontRight
	case DirectionFrontRight:
		return DirectionFrontLeft
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionDownLeft:
		return DirectionDownRight
	case DirectionDownRight:
		return DirectionDownLeft
	default:
		return d
	}
}

// TextureName 返回该方向对应的角色贴图资源ID
// 未定义的方向回退到正面贴图
func (d Direction) TextureName() string {
	return "bocchi-" + d.String()
}

// ParseDirection 根据名称（或完整贴图键 "bocchi-<name>"）解析方向
func ParseDirection(name string) (Direction, bool) {
	const prefix = "bocchi-"
	if len(name) > len(prefix) && name[:len(prefix)] == prefix {
		name = name[len(prefix):]
	}
	for _, d := range AllDirections() {
		if d.String() == name {
			return d, true
		}
	}
	return DirectionFront, false
}
