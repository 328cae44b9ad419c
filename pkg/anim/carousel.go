package anim

import (
	"math"

	"github.com/decker502/folio/pkg/mathutil"
	"github.com/decker502/folio/pkg/utils"
)

// CarouselState 转盘与相机的跨帧状态
type CarouselState struct {
	// Rotation 转盘绕 Y 轴的角度
	Rotation float64
	Camera   mathutil.Vec3
	// View 相机朝向，每帧由 LookAt 重新计算，不参与混合
	View mathutil.Mat3
}

// NewCarouselState 返回挂载时的默认状态（相机位于总览位置）
func NewCarouselState(t CarouselTuning) CarouselState {
	return CarouselState{
		Camera: t.Overview,
		View:   mathutil.LookAt(t.Overview, t.LookAt, worldUp),
	}
}

// CarouselInput 一帧的转盘输入
type CarouselInput struct {
	Dt          float64
	ActiveIndex int
	Count       int
	Zoomed      bool
}

var worldUp = mathutil.V3(0, 1, 0)

// TargetRotation 选中第 index 张卡片时转盘的目标角度
func TargetRotation(index, count int) float64 {
	if count <= 0 {
		return 0
	}
	return -(float64(index) * (2 * math.Pi / float64(count)))
}

// TargetCamera 相机目标位置
func TargetCamera(t CarouselTuning, zoomed bool) mathutil.Vec3 {
	if zoomed {
		return t.Zoomed
	}
	return t.Overview
}

// StepCarousel 推进一帧：旋转与相机分别以各自速度逼近目标，然后重新对准 LookAt
func StepCarousel(s CarouselState, in CarouselInput, t CarouselTuning, blend utils.Blender) CarouselState {
	s.Rotation = blend.Approach(s.Rotation, TargetRotation(in.ActiveIndex, in.Count), t.RotationRate, in.Dt)
	s.Camera = s.Camera.Lerp(TargetCamera(t, in.Zoomed), blend.Factor(t.CameraRate, in.Dt))
	s.View = mathutil.LookAt(s.Camera, t.LookAt, worldUp)
	return s
}
