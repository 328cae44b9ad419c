package render

import (
	"image/color"
	"math"
)

// Surface 绘制目标
//
// 颜色一律为预乘 alpha 的 color.RGBA。Text 的 (x, y) 是文字框左上角。
type Surface interface {
	Size() (width, height int)
	Fill(c color.RGBA)
	FillPolygon(pts []Point, c color.RGBA)
	Text(s string, x, y, size float64, c color.RGBA)
	MeasureText(s string, size float64) (width, height float64)
}

// LabelSize 场景内标签的字号
const LabelSize = 15

// Draw 按绘制列表顺序绘制：先多边形（远到近），再标签（水平居中于锚点）
func Draw(s Surface, l *DrawList) {
	for _, p := range l.Polygons {
		s.FillPolygon(p.Points, p.Color)
	}
	for _, lb := range l.Labels {
		w, h := s.MeasureText(lb.Text, LabelSize)
		s.Text(lb.Text, lb.X-w/2, lb.Y-h/2, LabelSize, lb.Color)
	}
}

// Rect 矩形的四个顶点（顺时针）
func Rect(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// Circle 近似圆的正多边形
func Circle(cx, cy, r float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point, segments)
	for i := range pts {
		a := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = Point{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}
