package anim

import (
	"math"

	"github.com/decker502/folio/pkg/mathutil"
)

// 手势时间轴是固定的，不开放配置
const (
	// GestureDuration 一次挥手的总时长（秒）
	GestureDuration = 1.2
	// gestureRaiseEnd 抬手阶段结束位置（占总时长比例）
	gestureRaiseEnd = 0.25
	// gestureLowerStart 放手阶段开始位置（占总时长比例）
	gestureLowerStart = 0.75

	// BlinkDuration 一次眨眼的时长（秒）
	BlinkDuration = 0.15
)

// HeadTuning 头部跟随鼠标参数
type HeadTuning struct {
	// Gain 指针坐标到头部角度的增益（弧度）
	Gain float64 `yaml:"gain"`
	Rate float64 `yaml:"rate"`
}

// JumpTuning 点击跳跃参数
type JumpTuning struct {
	// Speed 跳跃相位推进速度（弧度/秒），相位到达 π 时落地
	Speed     float64 `yaml:"speed"`
	Amplitude float64 `yaml:"amplitude"`
	// SettleRate 非跳跃时身体回落到 0 的混合速度
	SettleRate float64 `yaml:"settleRate"`
}

// GestureTuning 挥手动作参数
type GestureTuning struct {
	// MaxPitch 肩部最大抬起角度（弧度）
	MaxPitch        float64 `yaml:"maxPitch"`
	WobbleFrequency float64 `yaml:"wobbleFrequency"`
	WobbleAmplitude float64 `yaml:"wobbleAmplitude"`
	ArmRate         float64 `yaml:"armRate"`
	// IdleReturnRate 空闲时双臂回到 0 的混合速度
	IdleReturnRate float64 `yaml:"idleReturnRate"`
}

// BlinkTuning 眨眼间隔，单位秒，在 [MinInterval, MaxInterval) 内均匀随机
type BlinkTuning struct {
	MinInterval float64 `yaml:"minInterval"`
	MaxInterval float64 `yaml:"maxInterval"`
}

// ExpressionPreset 一种表情对应的眼睛缩放与颜色
type ExpressionPreset struct {
	ScaleX float64        `yaml:"scaleX"`
	ScaleY float64        `yaml:"scaleY"`
	Color  mathutil.Color `yaml:"color"`
}

// ExpressionTuning 表情预设与混合速度
type ExpressionTuning struct {
	Idle      ExpressionPreset `yaml:"idle"`
	Hover     ExpressionPreset `yaml:"hover"`
	Excited   ExpressionPreset `yaml:"excited"`
	ScaleRate float64          `yaml:"scaleRate"`
	ColorRate float64          `yaml:"colorRate"`
}

// CharacterTuning 角色动画的全部参数
type CharacterTuning struct {
	Head       HeadTuning       `yaml:"head"`
	Jump       JumpTuning       `yaml:"jump"`
	Gesture    GestureTuning    `yaml:"gesture"`
	Blink      BlinkTuning      `yaml:"blink"`
	Expression ExpressionTuning `yaml:"expression"`
	Float      FloatTuning      `yaml:"float"`
}

// DefaultCharacterTuning 返回默认角色参数
func DefaultCharacterTuning() CharacterTuning {
	return CharacterTuning{
		Head: HeadTuning{Gain: 0.5, Rate: 5},
		Jump: JumpTuning{Speed: 5, Amplitude: 0.6, SettleRate: 10},
		Gesture: GestureTuning{
			MaxPitch:        math.Pi * 0.8,
			WobbleFrequency: 15,
			WobbleAmplitude: 0.2,
			ArmRate:         15,
			IdleReturnRate:  5,
		},
		Blink: BlinkTuning{MinInterval: 2, MaxInterval: 5},
		Expression: ExpressionTuning{
			Idle:      ExpressionPreset{ScaleX: 1, ScaleY: 1, Color: mathutil.White},
			Hover:     ExpressionPreset{ScaleX: 1.2, ScaleY: 1.2, Color: mathutil.MustHex("#00ff00")},
			Excited:   ExpressionPreset{ScaleX: 1.3, ScaleY: 0.1, Color: mathutil.MustHex("#00e5ff")},
			ScaleRate: 20,
			ColorRate: 10,
		},
		Float: FloatTuning{Speed: 4, RotationIntensity: 0.5, FloatIntensity: 0.5},
	}
}

// CarouselTuning 转盘旋转与相机参数
type CarouselTuning struct {
	RotationRate float64       `yaml:"rotationRate"`
	CameraRate   float64       `yaml:"cameraRate"`
	Overview     mathutil.Vec3 `yaml:"overview"`
	Zoomed       mathutil.Vec3 `yaml:"zoomed"`
	// LookAt 相机每帧重新对准的点
	LookAt mathutil.Vec3 `yaml:"lookAt"`
	Float  FloatTuning   `yaml:"float"`
}

// DefaultCarouselTuning 返回默认转盘参数
func DefaultCarouselTuning() CarouselTuning {
	return CarouselTuning{
		RotationRate: 4,
		CameraRate:   2,
		Overview:     mathutil.V3(0, 0.5, 9.5),
		Zoomed:       mathutil.V3(0, 0, 6),
		LookAt:       mathutil.V3(0, 0, 0),
		Float:        FloatTuning{Speed: 2, RotationIntensity: 0.05, FloatIntensity: 0.2},
	}
}

// CardTuning 卡片聚焦参数
type CardTuning struct {
	HoverScale  float64 `yaml:"hoverScale"`
	ActiveScale float64 `yaml:"activeScale"`
	ScaleRate   float64 `yaml:"scaleRate"`

	ActiveOpacity   float64 `yaml:"activeOpacity"`
	InactiveOpacity float64 `yaml:"inactiveOpacity"`
	HoverBonus      float64 `yaml:"hoverBonus"`
	// FocusOtherOpacity 其他卡片处于放大状态时的透明度
	FocusOtherOpacity float64 `yaml:"focusOtherOpacity"`
	OpacityRate       float64 `yaml:"opacityRate"`
}

// DefaultCardTuning 返回默认卡片参数
func DefaultCardTuning() CardTuning {
	return CardTuning{
		HoverScale:        1.15,
		ActiveScale:       1.1,
		ScaleRate:         10,
		ActiveOpacity:     1,
		InactiveOpacity:   0.6,
		HoverBonus:        0.4,
		FocusOtherOpacity: 0.05,
		OpacityRate:       5,
	}
}
