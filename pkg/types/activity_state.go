package types

// ActivityState 角色当前的活动状态，四个状态互斥
type ActivityState int

const (
	// StateReady 空闲，可以接受新的动作
	StateReady ActivityState = iota
	// StateJumping 点击触发的跳跃中（允许再次点击重新起跳）
	StateJumping
	// StateEating 进食序列执行中
	StateEating
	// StatePrompting 等待投喂时的催促跳跃中
	StatePrompting
)

// String 返回状态名称（用于日志）
func (s ActivityState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateJumping:
		return "Jumping"
	case StateEating:
		return "Eating"
	case StatePrompting:
		return "Prompting"
	default:
		return "Unknown"
	}
}
