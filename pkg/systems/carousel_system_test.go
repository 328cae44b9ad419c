package systems

import (
	"math"
	"testing"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
)

// TestCarouselSystemRotation 转盘旋转到选中卡片
func TestCarouselSystemRotation(t *testing.T) {
	ts := newTestScene(t)
	sys := NewCarouselSystem(ts.em, ts.gs, ts.cfg.Carousel.Motion, ts.blender(), ts.camera)

	ts.gs.Selection.Next()
	ts.gs.Selection.Next()
	ts.runFrames(180, sys.Update)

	node, _ := ecs.GetComponent[*components.NodeComponent](ts.em, ts.carousel)
	want := -2 * (2 * math.Pi / 6)
	if !near(node.Rotation.Y, want, 1e-3) {
		t.Errorf("rotation.y = %v, 期望 %v", node.Rotation.Y, want)
	}
}

// TestCarouselSystemCamera 放大时相机靠近，取消后回到总览
func TestCarouselSystemCamera(t *testing.T) {
	ts := newTestScene(t)
	sys := NewCarouselSystem(ts.em, ts.gs, ts.cfg.Carousel.Motion, ts.blender(), ts.camera)
	cam, _ := ecs.GetComponent[*components.CameraComponent](ts.em, ts.camera)

	ts.gs.Selection.ToggleZoom()
	ts.runFrames(360, sys.Update)
	if !near(cam.Position.Z, 6, 0.01) || !near(cam.Position.Y, 0, 0.01) {
		t.Errorf("放大后相机 = %+v, 期望 (0, 0, 6)", cam.Position)
	}

	// 相机始终对准原点：视线方向的 z 分量为负
	forward := cam.View.MulVec3(cam.Position.Scale(-1))
	if forward.Z >= 0 {
		t.Errorf("相机空间中原点应在前方, got %+v", forward)
	}

	ts.gs.Selection.Next()
	ts.runFrames(360, sys.Update)
	if !near(cam.Position.Z, 9.5, 0.01) || !near(cam.Position.Y, 0.5, 0.01) {
		t.Errorf("取消放大后相机 = %+v, 期望 (0, 0.5, 9.5)", cam.Position)
	}
}

// TestCarouselSystemNoCamera 相机实体缺失时只更新转盘
func TestCarouselSystemNoCamera(t *testing.T) {
	ts := newTestScene(t)
	sys := NewCarouselSystem(ts.em, ts.gs, ts.cfg.Carousel.Motion, ts.blender(), 0)

	ts.gs.Selection.Next()
	ts.runFrames(10, sys.Update)

	node, _ := ecs.GetComponent[*components.NodeComponent](ts.em, ts.carousel)
	if node.Rotation.Y >= 0 {
		t.Errorf("rotation.y = %v, 期望开始向负方向旋转", node.Rotation.Y)
	}
}
