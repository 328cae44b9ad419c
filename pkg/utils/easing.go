package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数把进度 p 映射为曲线值。调用方负责把 p 限制在 [0, 1]，
// 这里的函数不做裁剪。
//
// 参考：https://easings.net/

// CurveKind 缓动曲线类型
type CurveKind int

const (
	// CurveLinear 线性（无缓动）
	CurveLinear CurveKind = iota
	// CurveEaseOutQuad 二次方缓出，手臂抬起阶段使用
	CurveEaseOutQuad
	// CurveEaseInQuad 二次方缓入，手臂放下阶段使用
	CurveEaseInQuad
	// CurveSineBump 半正弦鼓包 0 -> 1 -> 0，眨眼与跳跃轨迹使用
	CurveSineBump
)

// String 返回曲线名称（用于日志和配置）
func (k CurveKind) String() string {
	switch k {
	case CurveLinear:
		return "linear"
	case CurveEaseOutQuad:
		return "easeOutQuad"
	case CurveEaseInQuad:
		return "easeInQuad"
	case CurveSineBump:
		return "sineBump"
	default:
		return "unknown"
	}
}

// EaseLinear 线性缓动（无缓动）
func EaseLinear(p float64) float64 {
	return p
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(p) = 1 - (1-p)²
func EaseOutQuad(p float64) float64 {
	return 1 - (1-p)*(1-p)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(p) = p²
func EaseInQuad(p float64) float64 {
	return p * p
}

// SineBump 半正弦鼓包
// 公式：f(p) = sin(p·π)，p=0.5 时达到峰值 1
func SineBump(p float64) float64 {
	return math.Sin(p * math.Pi)
}

// EaseCurve 按曲线类型计算缓动值
// 未知类型按线性处理
func EaseCurve(kind CurveKind, p float64) float64 {
	switch kind {
	case CurveEaseOutQuad:
		return EaseOutQuad(p)
	case CurveEaseInQuad:
		return EaseInQuad(p)
	case CurveSineBump:
		return SineBump(p)
	default:
		return EaseLinear(p)
	}
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach 指数逼近（每帧混合）
//
// 每帧把 current 向 target 推进 rate*dt 的比例，不做裁剪：
// rate*dt > 1 时会越过目标，rate*dt > 2 时会发散振荡。
func Approach(current, target, rate, dt float64) float64 {
	return Lerp(current, target, rate*dt)
}

// ApproachClamped 指数逼近，混合比例限制在 [0, 1]
// 卡顿帧（dt 很大）时直接到达目标，不会越过
func ApproachClamped(current, target, rate, dt float64) float64 {
	return Lerp(current, target, BlendFactor(rate, dt))
}

// BlendFactor 返回裁剪后的混合比例 min(1, max(0, rate*dt))
func BlendFactor(rate, dt float64) float64 {
	k := rate * dt
	if k < 0 {
		return 0
	}
	if k > 1 {
		return 1
	}
	return k
}

// Blender 按配置选择裁剪或不裁剪的指数逼近
type Blender struct {
	// Clamp 为 true 时混合比例不超过 1
	Clamp bool
}

// Factor 返回本帧的混合比例
func (b Blender) Factor(rate, dt float64) float64 {
	if b.Clamp {
		return BlendFactor(rate, dt)
	}
	return rate * dt
}

// Approach 按 Blender 的裁剪策略做指数逼近
func (b Blender) Approach(current, target, rate, dt float64) float64 {
	return Lerp(current, target, b.Factor(rate, dt))
}
