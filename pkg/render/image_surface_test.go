package render

import (
	"image/color"
	"testing"
)

// TestImageSurfaceFillPolygon 测试多边形光栅化与缩小
func TestImageSurfaceFillPolygon(t *testing.T) {
	for _, ss := range []int{1, 2} {
		s, err := NewImageSurface(40, 30, ss)
		if err != nil {
			t.Fatalf("NewImageSurface failed: %v", err)
		}
		s.Fill(color.RGBA{255, 255, 255, 255})
		s.FillPolygon(Rect(10, 10, 20, 10), color.RGBA{255, 0, 0, 255})

		img := s.Image()
		if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 40 || h != 30 {
			t.Fatalf("supersample=%d 尺寸 = %dx%d, 期望 40x30", ss, w, h)
		}

		inside := img.RGBAAt(20, 15)
		if inside.R < 240 || inside.G > 15 || inside.B > 15 {
			t.Errorf("supersample=%d 内部像素 = %+v, 期望红色", ss, inside)
		}
		outside := img.RGBAAt(2, 2)
		if outside.R < 240 || outside.G < 240 || outside.B < 240 {
			t.Errorf("supersample=%d 外部像素 = %+v, 期望白色", ss, outside)
		}
	}
}

// TestImageSurfaceText 测试文字测量与绘制
func TestImageSurfaceText(t *testing.T) {
	s, err := NewImageSurface(200, 40, 1)
	if err != nil {
		t.Fatalf("NewImageSurface failed: %v", err)
	}
	s.Fill(color.RGBA{255, 255, 255, 255})

	w, h := s.MeasureText("Virtual Office", 16)
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureText = (%v, %v), 期望为正", w, h)
	}
	short, _ := s.MeasureText("Virtual", 16)
	if short >= w {
		t.Errorf("较短文字宽度 %v 应小于 %v", short, w)
	}

	s.Text("Virtual Office", 4, 4, 16, color.RGBA{0, 0, 0, 255})
	img := s.Image()

	dark := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("文字没有绘制任何像素")
	}
}

// TestNewImageSurfaceInvalid 非法尺寸返回错误
func TestNewImageSurfaceInvalid(t *testing.T) {
	if _, err := NewImageSurface(0, 10, 1); err == nil {
		t.Error("expected error for zero width")
	}
}

// TestDrawCentersLabels 标签水平居中于锚点
func TestDrawCentersLabels(t *testing.T) {
	s, err := NewImageSurface(100, 100, 1)
	if err != nil {
		t.Fatalf("NewImageSurface failed: %v", err)
	}
	Draw(s, &DrawList{Labels: []Label{{Text: "abc", X: 50, Y: 50, Color: color.RGBA{0, 0, 0, 255}}}})

	if len(s.texts) != 1 {
		t.Fatalf("len(texts) = %d, 期望 1", len(s.texts))
	}
	w, _ := s.MeasureText("abc", LabelSize)
	if got := s.texts[0].x; got != 50-w/2 {
		t.Errorf("text x = %v, 期望 %v", got, 50-w/2)
	}
}
