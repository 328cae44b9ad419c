package render

import (
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/mathutil"
)

// Transform 节点的世界变换：p_world = Origin + Basis · p_local
type Transform struct {
	Basis  mathutil.Mat3
	Origin mathutil.Vec3
}

// Identity 单位变换
func Identity() Transform {
	return Transform{Basis: mathutil.Mat3Identity()}
}

// Apply 把局部坐标变换到世界坐标
func (t Transform) Apply(p mathutil.Vec3) mathutil.Vec3 {
	return t.Origin.Add(t.Basis.MulVec3(p))
}

// Child 组合子节点的局部变换
func (t Transform) Child(n *components.NodeComponent) Transform {
	local := mathutil.Mat3Mul(mathutil.Euler(n.Rotation), scaleMat(n.Scale))
	return Transform{
		Basis:  mathutil.Mat3Mul(t.Basis, local),
		Origin: t.Apply(n.Position),
	}
}

func scaleMat(s mathutil.Vec3) mathutil.Mat3 {
	return mathutil.Mat3{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// worldNode 解析后的节点
type worldNode struct {
	transform Transform
	visible   bool
}

// resolver 按需计算并缓存节点的世界变换
// 父节点缺失（实体不存在或没有 NodeComponent）时，该节点视为不可见
type resolver struct {
	em    *ecs.EntityManager
	cache map[ecs.EntityID]worldNode
	// visiting 检测父子环
	visiting map[ecs.EntityID]bool
}

func newResolver(em *ecs.EntityManager) *resolver {
	return &resolver{
		em:       em,
		cache:    make(map[ecs.EntityID]worldNode),
		visiting: make(map[ecs.EntityID]bool),
	}
}

func (r *resolver) resolve(id ecs.EntityID) worldNode {
	if wn, ok := r.cache[id]; ok {
		return wn
	}
	node, ok := ecs.GetComponent[*components.NodeComponent](r.em, id)
	if !ok || r.visiting[id] {
		return worldNode{}
	}

	r.visiting[id] = true
	parent := worldNode{transform: Identity(), visible: true}
	if node.Parent != 0 {
		parent = r.resolve(node.Parent)
	}
	delete(r.visiting, id)

	wn := worldNode{
		transform: parent.transform.Child(node),
		visible:   parent.visible && node.Visible,
	}
	r.cache[id] = wn
	return wn
}

// WorldTransform 计算单个节点的世界变换
// 节点或其祖先缺失、不可见时 ok 为 false
func WorldTransform(em *ecs.EntityManager, id ecs.EntityID) (Transform, bool) {
	wn := newResolver(em).resolve(id)
	return wn.transform, wn.visible
}
