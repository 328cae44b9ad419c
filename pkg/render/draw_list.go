package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/mathutil"
)

// Point 屏幕坐标
type Point struct {
	X, Y float64
}

// Polygon 一个投影后的凸多边形面
type Polygon struct {
	Points []Point
	Color  color.RGBA // 预乘 alpha
	// Depth 面中心到相机的距离
	Depth float64
	// Owner 可拾取时为 ClickableComponent.Owner，否则为 0
	Owner ecs.EntityID
	// Ground 地面层，排在所有普通面之前
	Ground bool
}

// Label 投影后的文字
type Label struct {
	Text  string
	X, Y  float64
	Color color.RGBA
	Depth float64
}

// DrawList 一帧的绘制内容，Polygons 先地面层，再按从远到近排序
type DrawList struct {
	Width, Height float64
	Polygons      []Polygon
	Labels        []Label
}

// Light 方向光 + 环境光
type Light struct {
	Dir     mathutil.Vec3
	Ambient float64
	Direct  float64
}

// DefaultLight 右上前方的主光源
func DefaultLight() Light {
	return Light{
		Dir:     mathutil.V3(10, 10, 5).Normalize(),
		Ambient: 0.6,
		Direct:  0.45,
	}
}

// Shade 面法线的亮度系数（双面）
func (l Light) Shade(normal mathutil.Vec3) float64 {
	return l.Ambient + math.Abs(normal.Dot(l.Dir))*l.Direct
}

// discSegments 椭圆的边数
const discSegments = 32

// face 局部空间中的一个面
type face struct {
	corners []mathutil.Vec3
	normal  mathutil.Vec3
	// cull 为 true 时背对相机的面被剔除
	cull bool
}

// shapeFaces 生成形状的面（局部坐标）
func shapeFaces(s *components.ShapeComponent) []face {
	hx, hy, hz := s.Size.X/2, s.Size.Y/2, s.Size.Z/2
	v := mathutil.V3

	switch s.Kind {
	case components.ShapeQuad:
		return []face{{
			corners: []mathutil.Vec3{v(-hx, -hy, 0), v(hx, -hy, 0), v(hx, hy, 0), v(-hx, hy, 0)},
			normal:  v(0, 0, 1),
		}}
	case components.ShapeDisc:
		corners := make([]mathutil.Vec3, discSegments)
		for i := range corners {
			sin, cos := math.Sincos(float64(i) / discSegments * 2 * math.Pi)
			corners[i] = v(cos*hx, 0, sin*hz)
		}
		return []face{{corners: corners, normal: v(0, 1, 0)}}
	}

	return []face{
		{corners: []mathutil.Vec3{v(-hx, -hy, hz), v(hx, -hy, hz), v(hx, hy, hz), v(-hx, hy, hz)}, normal: v(0, 0, 1), cull: true},
		{corners: []mathutil.Vec3{v(hx, -hy, -hz), v(-hx, -hy, -hz), v(-hx, hy, -hz), v(hx, hy, -hz)}, normal: v(0, 0, -1), cull: true},
		{corners: []mathutil.Vec3{v(hx, -hy, hz), v(hx, -hy, -hz), v(hx, hy, -hz), v(hx, hy, hz)}, normal: v(1, 0, 0), cull: true},
		{corners: []mathutil.Vec3{v(-hx, -hy, -hz), v(-hx, -hy, hz), v(-hx, hy, hz), v(-hx, hy, -hz)}, normal: v(-1, 0, 0), cull: true},
		{corners: []mathutil.Vec3{v(-hx, hy, hz), v(hx, hy, hz), v(hx, hy, -hz), v(-hx, hy, -hz)}, normal: v(0, 1, 0), cull: true},
		{corners: []mathutil.Vec3{v(-hx, -hy, -hz), v(hx, -hy, -hz), v(hx, -hy, hz), v(-hx, -hy, hz)}, normal: v(0, -1, 0), cull: true},
	}
}

// BuildDrawList 投影所有可见的 ShapeComponent 和 LabelComponent
//
// 使用画家算法：面按中心深度从远到近排序，近裁剪面之后的面整体丢弃。
func BuildDrawList(em *ecs.EntityManager, cam mathutil.Camera, width, height float64, light Light) *DrawList {
	list := &DrawList{Width: width, Height: height}
	r := newResolver(em)

	for _, id := range ecs.GetEntitiesWith2[*components.NodeComponent, *components.ShapeComponent](em) {
		wn := r.resolve(id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
		if !wn.visible || shape.Opacity <= 0 {
			continue
		}

		var owner ecs.EntityID
		if click, ok := ecs.GetComponent[*components.ClickableComponent](em, id); ok && click.IsEnabled {
			owner = click.Owner
		}

		for _, f := range shapeFaces(shape) {
			if p, ok := projectFace(f, wn.transform, cam, width, height, shape, light); ok {
				p.Owner = owner
				p.Ground = shape.Ground
				list.Polygons = append(list.Polygons, p)
			}
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.NodeComponent, *components.LabelComponent](em) {
		wn := r.resolve(id)
		label, _ := ecs.GetComponent[*components.LabelComponent](em, id)
		if !wn.visible || label.Opacity <= 0 || label.Text == "" {
			continue
		}
		sp, ok := cam.Project(wn.transform.Origin, width, height)
		if !ok {
			continue
		}
		list.Labels = append(list.Labels, Label{
			Text:  label.Text,
			X:     sp.X,
			Y:     sp.Y,
			Color: label.Color.RGBA(label.Opacity),
			Depth: sp.Depth,
		})
	}

	sort.SliceStable(list.Polygons, func(i, j int) bool {
		a, b := list.Polygons[i], list.Polygons[j]
		if a.Ground != b.Ground {
			return a.Ground
		}
		return a.Depth > b.Depth
	})
	sort.SliceStable(list.Labels, func(i, j int) bool {
		return list.Labels[i].Depth > list.Labels[j].Depth
	})
	return list
}

func projectFace(f face, t Transform, cam mathutil.Camera, width, height float64, shape *components.ShapeComponent, light Light) (Polygon, bool) {
	world := make([]mathutil.Vec3, len(f.corners))
	var center mathutil.Vec3
	for i, c := range f.corners {
		world[i] = t.Apply(c)
		center = center.Add(world[i])
	}
	center = center.Scale(1 / float64(len(world)))

	normal := t.Basis.MulVec3(f.normal).Normalize()
	if f.cull && normal.Dot(cam.Position.Sub(center)) <= 0 {
		return Polygon{}, false
	}

	points := make([]Point, 0, len(world))
	for _, w := range world {
		sp, ok := cam.Project(w, width, height)
		if !ok {
			return Polygon{}, false
		}
		points = append(points, Point{X: sp.X, Y: sp.Y})
	}
	cp, ok := cam.Project(center, width, height)
	if !ok {
		return Polygon{}, false
	}

	col := shape.Color
	if !shape.Unlit {
		col = col.Scale(light.Shade(normal))
	}
	return Polygon{
		Points: points,
		Color:  col.RGBA(shape.Opacity),
		Depth:  cp.Depth,
	}, true
}
