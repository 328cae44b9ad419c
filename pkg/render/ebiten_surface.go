package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage 纯白纹理，用于 DrawTriangles 填充纯色
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var loadFaceSource = sync.OnceValues(func() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return src, nil
})

// LoadFaceSource 加载内置字体
func LoadFaceSource() (*text.GoTextFaceSource, error) {
	return loadFaceSource()
}

// EbitenSurface 在 ebiten.Image 上绘制
type EbitenSurface struct {
	dst *ebiten.Image
	// source 为 nil 时退回 ebitenutil.DebugPrintAt（无颜色、固定字号）
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenSurface 创建绘制目标
func NewEbitenSurface(dst *ebiten.Image, source *text.GoTextFaceSource) *EbitenSurface {
	return &EbitenSurface{
		dst:    dst,
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}
}

// Reset 切换绘制目标（每帧调用，复用顶点缓冲和字体）
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
}

// Size 画布尺寸
func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Fill 填充背景
func (s *EbitenSurface) Fill(c color.RGBA) {
	s.dst.Fill(c)
}

// FillPolygon 扇形三角化填充凸多边形
func (s *EbitenSurface) FillPolygon(pts []Point, c color.RGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}

	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.source, Size: size}
		s.faces[size] = f
	}
	return f
}

// Text 绘制文字
func (s *EbitenSurface) Text(str string, x, y, size float64, c color.RGBA) {
	if s.source == nil {
		ebitenutil.DebugPrintAt(s.dst, str, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face(size), op)
}

// MeasureText 测量文字尺寸
func (s *EbitenSurface) MeasureText(str string, size float64) (float64, float64) {
	if s.source == nil {
		// DebugPrintAt 的字符格为 6x16
		return float64(len(str) * 6), 16
	}
	f := s.face(size)
	return text.Measure(str, f, f.Size*1.2)
}
