package render

import "github.com/decker502/folio/pkg/ecs"

// Pick 返回 (x, y) 处最前面的可拾取多边形的 Owner
func (l *DrawList) Pick(x, y float64) (ecs.EntityID, bool) {
	if l == nil {
		return 0, false
	}
	for i := len(l.Polygons) - 1; i >= 0; i-- {
		p := l.Polygons[i]
		if p.Owner == 0 {
			continue
		}
		if ContainsPoint(p.Points, x, y) {
			return p.Owner, true
		}
	}
	return 0, false
}

// ContainsPoint 奇偶规则判断点是否在多边形内（凹多边形同样适用）
func ContainsPoint(pts []Point, x, y float64) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
