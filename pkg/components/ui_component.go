package components

// UIState 按钮的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停在按钮上
	UIHovered
	// UIClicked 按钮被按下且指针仍在按钮内
	UIClicked
	// UIDisabled 按钮禁用，不响应指针
	UIDisabled
)

func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
