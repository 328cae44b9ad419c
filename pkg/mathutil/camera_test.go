package mathutil

import (
	"math"
	"testing"
)

// TestLookAtOrigin 测试相机对准原点时原点投影到屏幕中心
func TestLookAtOrigin(t *testing.T) {
	cam := Camera{
		Position: V3(0, 0.5, 9.5),
		FOV:      45,
	}
	cam.View = LookAt(cam.Position, Vec3{}, V3(0, 1, 0))

	p, ok := cam.Project(Vec3{}, 800, 600)
	if !ok {
		t.Fatal("origin should be in front of the camera")
	}
	if math.Abs(p.X-400) > 1e-6 || math.Abs(p.Y-300) > 1e-6 {
		t.Errorf("origin projected to (%v, %v), 期望屏幕中心", p.X, p.Y)
	}
	if math.Abs(p.Depth-cam.Position.Len()) > 1e-6 {
		t.Errorf("depth = %v, 期望 %v", p.Depth, cam.Position.Len())
	}
}

// TestProjectAxes 测试屏幕坐标方向：+X 向右，+Y 向上
func TestProjectAxes(t *testing.T) {
	cam := Camera{Position: V3(0, 0, 10), FOV: 45}
	cam.View = LookAt(cam.Position, Vec3{}, V3(0, 1, 0))

	right, _ := cam.Project(V3(1, 0, 0), 800, 600)
	up, _ := cam.Project(V3(0, 1, 0), 800, 600)
	if right.X <= 400 {
		t.Errorf("+X 应投影到右侧, got x=%v", right.X)
	}
	if up.Y >= 300 {
		t.Errorf("+Y 应投影到上方, got y=%v", up.Y)
	}
}

// TestProjectBehindCamera 测试相机背后的点被裁剪
func TestProjectBehindCamera(t *testing.T) {
	cam := Camera{Position: V3(0, 0, 10), FOV: 45}
	cam.View = LookAt(cam.Position, Vec3{}, V3(0, 1, 0))
	if _, ok := cam.Project(V3(0, 0, 20), 800, 600); ok {
		t.Error("point behind the camera should be clipped")
	}
}

// TestLookAtDegenerate 测试 eye == target 时返回单位矩阵
func TestLookAtDegenerate(t *testing.T) {
	if m := LookAt(V3(1, 1, 1), V3(1, 1, 1), V3(0, 1, 0)); m != Mat3Identity() {
		t.Errorf("degenerate LookAt = %v, 期望单位矩阵", m)
	}
}
