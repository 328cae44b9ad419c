package components

import "github.com/decker502/folio/pkg/mathutil"

// CameraComponent 场景相机
//
// 位置和朝向由转盘系统每帧写入，渲染时只读。
type CameraComponent struct {
	// Position 相机世界坐标
	Position mathutil.Vec3

	// View 世界到相机空间的旋转（LookAt 结果）
	View mathutil.Mat3

	// FOV 垂直视场角（度）
	FOV float64
}

// Camera 转换为投影用的相机
func (c *CameraComponent) Camera() mathutil.Camera {
	return mathutil.Camera{Position: c.Position, View: c.View, FOV: c.FOV}
}
