package anim

// TriggerKind 外部请求的一次性手势类型
type TriggerKind int

const (
	// TriggerIdle 空闲（不会启动手势）
	TriggerIdle TriggerKind = iota
	// TriggerWaveLeft 左手挥手
	TriggerWaveLeft
	// TriggerWaveRight 右手挥手
	TriggerWaveRight
)

// String 返回触发类型名称
func (k TriggerKind) String() string {
	switch k {
	case TriggerIdle:
		return "idle"
	case TriggerWaveLeft:
		return "wave-left"
	case TriggerWaveRight:
		return "wave-right"
	default:
		return "unknown"
	}
}

// Trigger 动画触发事件
// RequestID 严格递增，同类型的连续触发也会各自重新开始手势
type Trigger struct {
	Kind      TriggerKind
	RequestID uint64
}

// Side 挥手的一侧
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String 返回侧别名称
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Direction 手臂旋转方向：左侧 -1，右侧 +1
func (s Side) Direction() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

// sideFor 把触发类型映射到挥手侧别，idle 返回 SideNone
func sideFor(kind TriggerKind) Side {
	switch kind {
	case TriggerWaveLeft:
		return SideLeft
	case TriggerWaveRight:
		return SideRight
	default:
		return SideNone
	}
}
