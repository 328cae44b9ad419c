package anim

import (
	"math"
	"testing"

	"github.com/decker502/folio/pkg/utils"
)

// TestCardTargets 测试卡片目标缩放与透明度
func TestCardTargets(t *testing.T) {
	tuning := DefaultCardTuning()

	tests := []struct {
		name        string
		in          CardInput
		wantScale   float64
		wantOpacity float64
	}{
		{"普通", CardInput{}, 1, 0.6},
		{"选中", CardInput{Active: true}, 1.1, 1},
		{"悬停", CardInput{Hovered: true}, 1.15, 1},
		{"选中且悬停不超过 1", CardInput{Active: true, Hovered: true}, 1.15, 1},
		{"其他卡片放大", CardInput{Zoomed: true}, 1, 0.05},
		{"其他卡片放大时悬停", CardInput{Zoomed: true, Hovered: true}, 1.15, 0.05},
		{"自身放大", CardInput{Zoomed: true, Active: true}, 1.1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, opacity := CardTargets(tt.in, tuning)
			if math.Abs(scale-tt.wantScale) > 1e-9 {
				t.Errorf("scale = %v, 期望 %v", scale, tt.wantScale)
			}
			if math.Abs(opacity-tt.wantOpacity) > 1e-9 {
				t.Errorf("opacity = %v, 期望 %v", opacity, tt.wantOpacity)
			}
		})
	}
}

// TestStepCardIndependentRates 测试缩放与透明度以不同速度混合
func TestStepCardIndependentRates(t *testing.T) {
	tuning := DefaultCardTuning()
	s := NewCardState()
	s = StepCard(s, CardInput{Dt: frame, Hovered: true, Zoomed: true}, tuning, utils.Blender{Clamp: true})

	// 缩放：1 -> 1.15，比例 10/60
	wantScale := 1 + 0.15*10*frame
	// 透明度：1 -> 0.05，比例 5/60
	wantOpacity := 1 + (0.05-1)*5*frame
	if math.Abs(s.Scale-wantScale) > 1e-9 {
		t.Errorf("Scale = %v, 期望 %v", s.Scale, wantScale)
	}
	if math.Abs(s.Opacity-wantOpacity) > 1e-9 {
		t.Errorf("Opacity = %v, 期望 %v", s.Opacity, wantOpacity)
	}
}
