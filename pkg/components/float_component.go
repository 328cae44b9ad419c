package components

import "github.com/decker502/folio/pkg/anim"

// FloatComponent 悬浮枢轴
// 枢轴节点位于父节点原点，FloatSystem 每帧覆盖它的 Position.Y 和 Rotation
type FloatComponent struct {
	Tuning anim.FloatTuning
}
