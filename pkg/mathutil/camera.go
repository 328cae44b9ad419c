package mathutil

import "math"

// LookAt 构建相机朝向矩阵（世界 -> 相机）
// 行依次为相机的右、上、后方向；相机沿 -Z 观察，与 three.js 约定一致
func LookAt(eye, target, up Vec3) Mat3 {
	back := eye.Sub(target).Normalize()
	if back == (Vec3{}) {
		return Mat3Identity()
	}
	right := up.Cross(back).Normalize()
	if right == (Vec3{}) {
		// up 与视线平行时退化，换一个参考轴
		right = V3(1, 0, 0)
	}
	trueUp := back.Cross(right)
	return Mat3{
		right.X, right.Y, right.Z,
		trueUp.X, trueUp.Y, trueUp.Z,
		back.X, back.Y, back.Z,
	}
}

// Camera 透视相机
type Camera struct {
	Position Vec3
	// View 世界 -> 相机旋转，由 LookAt 生成
	View Mat3
	// FOV 垂直视场角（度）
	FOV float64
}

// ScreenPoint 投影后的屏幕坐标
type ScreenPoint struct {
	X, Y float64
	// Depth 到相机的距离（沿视线），用于画家算法排序
	Depth float64
}

// nearPlane 近裁剪距离
const nearPlane = 0.05

// Project 把世界坐标投影到 width×height 视口
// 点在近裁剪面之后时 ok 为 false
func (c Camera) Project(p Vec3, width, height float64) (ScreenPoint, bool) {
	v := c.View.MulVec3(p.Sub(c.Position))
	depth := -v.Z
	if depth < nearPlane {
		return ScreenPoint{}, false
	}
	f := (height / 2) / math.Tan(Deg2Rad(c.FOV)/2)
	return ScreenPoint{
		X:     width/2 + f*v.X/depth,
		Y:     height/2 - f*v.Y/depth,
		Depth: depth,
	}, true
}

// Deg2Rad 角度转弧度
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
