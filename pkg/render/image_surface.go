package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var parseGoRegular = sync.OnceValues(func() (*opentype.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
})

// ImageSurface 在内存图像上光栅化
//
// 多边形在 supersample 倍分辨率的缓冲上绘制，Image() 时用 CatmullRom 缩小；
// 文字在缩小之后直接绘制到最终图像上。
type ImageSurface struct {
	width, height int
	supersample   int

	buf    *image.RGBA
	raster *vector.Rasterizer

	font  *opentype.Font
	faces map[float64]font.Face
	texts []textOp
}

type textOp struct {
	s    string
	x, y float64
	size float64
	c    color.RGBA
}

// NewImageSurface 创建 width×height 的画布
// supersample < 1 时按 1 处理
func NewImageSurface(width, height, supersample int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	if supersample < 1 {
		supersample = 1
	}
	f, err := parseGoRegular()
	if err != nil {
		return nil, err
	}
	w, h := width*supersample, height*supersample
	return &ImageSurface{
		width:       width,
		height:      height,
		supersample: supersample,
		buf:         image.NewRGBA(image.Rect(0, 0, w, h)),
		raster:      vector.NewRasterizer(w, h),
		font:        f,
		faces:       make(map[float64]font.Face),
	}, nil
}

// Size 画布尺寸（最终分辨率）
func (s *ImageSurface) Size() (int, int) {
	return s.width, s.height
}

// Fill 填充背景并清空待绘制文字
func (s *ImageSurface) Fill(c color.RGBA) {
	draw.Draw(s.buf, s.buf.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	s.texts = s.texts[:0]
}

// FillPolygon 光栅化多边形
func (s *ImageSurface) FillPolygon(pts []Point, c color.RGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	k := float32(s.supersample)
	b := s.buf.Bounds()

	s.raster.Reset(b.Dx(), b.Dy())
	s.raster.MoveTo(float32(pts[0].X)*k, float32(pts[0].Y)*k)
	for _, p := range pts[1:] {
		s.raster.LineTo(float32(p.X)*k, float32(p.Y)*k)
	}
	s.raster.ClosePath()
	s.raster.DrawOp = draw.Over
	s.raster.Draw(s.buf, b, image.NewUniform(c), image.Point{})
}

func (s *ImageSurface) face(size float64) font.Face {
	f, ok := s.faces[size]
	if ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Size 为正时不会失败
		return nil
	}
	s.faces[size] = f
	return f
}

// Text 记录文字，在 Image() 缩小之后绘制
func (s *ImageSurface) Text(str string, x, y, size float64, c color.RGBA) {
	s.texts = append(s.texts, textOp{s: str, x: x, y: y, size: size, c: c})
}

// MeasureText 测量文字尺寸
func (s *ImageSurface) MeasureText(str string, size float64) (float64, float64) {
	f := s.face(size)
	if f == nil {
		return 0, 0
	}
	adv := font.MeasureString(f, str)
	m := f.Metrics()
	return float64(adv) / 64, float64(m.Ascent+m.Descent) / 64
}

// Image 合成最终图像
func (s *ImageSurface) Image() *image.RGBA {
	dst := s.buf
	if s.supersample > 1 {
		dst = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), s.buf, s.buf.Bounds(), draw.Src, nil)
	} else {
		dst = image.NewRGBA(s.buf.Bounds())
		draw.Draw(dst, dst.Bounds(), s.buf, image.Point{}, draw.Src)
	}

	for _, t := range s.texts {
		f := s.face(t.size)
		if f == nil {
			continue
		}
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(t.c),
			Face: f,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(t.x * 64), Y: fixed.Int26_6(t.y*64) + f.Metrics().Ascent},
		}
		d.DrawString(t.s)
	}
	return dst
}
