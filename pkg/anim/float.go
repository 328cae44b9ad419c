package anim

import "math"

// 悬浮动作的固定比例：时间缩放 1/4，俯仰与偏航振幅 1/8，翻滚振幅 1/20，
// 上下浮动范围 ±0.1，三者再乘以各自的强度
const (
	floatTimeScale = 0.25
	floatTiltScale = 1.0 / 8
	floatRollScale = 1.0 / 20
	floatRange     = 0.1
)

// FloatTuning 悬浮待机动作参数
type FloatTuning struct {
	Speed             float64 `yaml:"speed"`
	RotationIntensity float64 `yaml:"rotationIntensity"`
	FloatIntensity    float64 `yaml:"floatIntensity"`
	// Phase 时钟偏移（秒），让多个悬浮节点错开
	Phase float64 `yaml:"phase"`
}

// FloatPose 悬浮枢轴节点的位移与倾斜
type FloatPose struct {
	OffsetY float64
	Pitch   float64
	Yaw     float64
	Roll    float64
}

// StepFloat 由时钟直接求出悬浮姿态
//
// 没有跨帧状态：同一时刻总是得到同一姿态，不参与指数混合。
func StepFloat(t FloatTuning, clock float64) FloatPose {
	a := (clock + t.Phase) * floatTimeScale * t.Speed
	s, c := math.Sincos(a)
	return FloatPose{
		OffsetY: s * floatRange * t.FloatIntensity,
		Pitch:   c * floatTiltScale * t.RotationIntensity,
		Yaw:     s * floatTiltScale * t.RotationIntensity,
		Roll:    s * floatRollScale * t.RotationIntensity,
	}
}

// FloatLimits 各分量的振幅上限
func FloatLimits(t FloatTuning) FloatPose {
	return FloatPose{
		OffsetY: floatRange * math.Abs(t.FloatIntensity),
		Pitch:   floatTiltScale * math.Abs(t.RotationIntensity),
		Yaw:     floatTiltScale * math.Abs(t.RotationIntensity),
		Roll:    floatRollScale * math.Abs(t.RotationIntensity),
	}
}
