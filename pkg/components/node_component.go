package components

import (
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/mathutil"
)

// NodeComponent 场景图节点
//
// 局部变换 = 平移(Position) · 旋转(Rotation, XYZ 欧拉角) · 缩放(Scale)。
// Parent 为 0 时节点挂在世界根上。
type NodeComponent struct {
	Parent   ecs.EntityID
	Position mathutil.Vec3
	// Rotation 欧拉角（弧度），按 X、Y、Z 顺序应用
	Rotation mathutil.Vec3
	Scale    mathutil.Vec3
	// Visible 为 false 时节点及其子节点都不绘制
	Visible bool
}

// NewNode 创建单位缩放、可见的节点
func NewNode(parent ecs.EntityID, position mathutil.Vec3) *NodeComponent {
	return &NodeComponent{
		Parent:   parent,
		Position: position,
		Scale:    mathutil.Uniform(1),
		Visible:  true,
	}
}

// ShapeKind 节点几何形状
type ShapeKind int

const (
	// ShapeBox 以节点原点为中心的长方体，Size 为 (宽, 高, 深)
	ShapeBox ShapeKind = iota
	// ShapeQuad XY 平面上的矩形，法线朝 +Z，双面可见
	ShapeQuad
	// ShapeDisc XZ 平面上的椭圆，直径为 (Size.X, Size.Z)，法线朝 +Y
	ShapeDisc
)

// ShapeComponent 节点上的可绘制几何体
type ShapeComponent struct {
	Kind    ShapeKind
	Size    mathutil.Vec3
	Color   mathutil.Color
	Opacity float64
	// Unlit 为 true 时不做光照着色（屏幕、眼睛等自发光表面）
	Unlit bool
	// Ground 地面层：先于其他所有面绘制，不参与深度排序
	Ground bool
}

// LabelComponent 跟随节点的屏幕文字
// 文字锚点是节点世界坐标的投影，水平居中
type LabelComponent struct {
	Text    string
	Color   mathutil.Color
	Opacity float64
}
