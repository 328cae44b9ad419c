package anim

import (
	"math"

	"github.com/decker502/folio/pkg/utils"
)

// CardState 单张卡片的跨帧状态
type CardState struct {
	Scale   float64
	Opacity float64
}

// NewCardState 返回挂载时的默认状态
func NewCardState() CardState {
	return CardState{Scale: 1, Opacity: 1}
}

// CardInput 一帧的卡片输入
type CardInput struct {
	Dt      float64
	Hovered bool
	Active  bool
	// Zoomed 转盘是否处于放大状态（放大的总是当前选中卡片）
	Zoomed bool
}

// CardTargets 计算卡片的目标缩放和透明度
func CardTargets(in CardInput, t CardTuning) (scale, opacity float64) {
	switch {
	case in.Hovered:
		scale = t.HoverScale
	case in.Active:
		scale = t.ActiveScale
	default:
		scale = 1
	}

	if in.Zoomed && !in.Active {
		return scale, t.FocusOtherOpacity
	}

	opacity = t.InactiveOpacity
	if in.Active {
		opacity = t.ActiveOpacity
	}
	if in.Hovered {
		opacity += t.HoverBonus
	}
	return scale, math.Min(opacity, 1)
}

// StepCard 推进一帧；缩放和透明度以不同速度独立混合
func StepCard(s CardState, in CardInput, t CardTuning, blend utils.Blender) CardState {
	scale, opacity := CardTargets(in, t)
	s.Scale = blend.Approach(s.Scale, scale, t.ScaleRate, in.Dt)
	s.Opacity = blend.Approach(s.Opacity, opacity, t.OpacityRate, in.Dt)
	return s
}
