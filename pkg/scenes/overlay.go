package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/mathutil"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/utils"
)

// 覆盖层布局（像素）
const (
	overlayPadding     = 32.0
	panelMaxWidth      = 460.0
	panelInset         = 24.0
	navButtonRadius    = 26.0
	navButtonGap       = 14.0
	linkButtonHeight   = 36.0
	badgeHeight        = 22.0
	descriptionLeading = 1.45

	brandSize       = 26.0
	subtitleSize    = 12.0
	headerLinkSize  = 13.0
	badgeSize       = 11.0
	titleSize       = 26.0
	descriptionSize = 14.0
	buttonSize      = 14.0

	// revealRate 面板随放大状态淡入的速度
	revealRate = 6.0
	// panelDrop 未放大时面板下沉的距离
	panelDrop = 8.0
)

// brandAccent 标题中圆点和悬停按钮的颜色
var brandAccent = mathutil.MustHex("#007aff")

// hotspot 覆盖层上可点击的区域
type hotspot struct {
	action Action
	shape  []render.Point
}

// Overlay 2D 信息面板
//
// 包含页眉、当前项目的分类/序号/标题/简介、"Visit Project" 按钮和左右导航按钮。
// 点击区域在每次 Draw 时重新计算，HitTest 使用最近一次绘制的布局。
type Overlay struct {
	palette config.PaletteConfig
	blend   utils.Blender

	// reveal 放大程度 [0, 1]，控制面板不透明度和位移
	reveal  float64
	hovered Action

	hotspots []hotspot
	// panel 面板区域，遮挡其后的 3D 拾取
	panel []render.Point
}

// NewOverlay 创建覆盖层
func NewOverlay(palette config.PaletteConfig, blend utils.Blender) *Overlay {
	return &Overlay{palette: palette, blend: blend}
}

// Update 推进面板的淡入动画
func (o *Overlay) Update(zoomed bool, dt float64) {
	target := 0.0
	if zoomed {
		target = 1
	}
	o.reveal = o.blend.Approach(o.reveal, target, revealRate, dt)
}

// Reveal 当前面板放大程度
func (o *Overlay) Reveal() float64 {
	return o.reveal
}

// SetHovered 设置悬停的按钮
func (o *Overlay) SetHovered(a Action) {
	o.hovered = a
}

// Hovered 当前悬停的按钮
func (o *Overlay) Hovered() Action {
	return o.hovered
}

// HitTest 返回 (x, y) 处的按钮操作，未命中返回 ActionNone
func (o *Overlay) HitTest(x, y float64) Action {
	for i := len(o.hotspots) - 1; i >= 0; i-- {
		if render.ContainsPoint(o.hotspots[i].shape, x, y) {
			return o.hotspots[i].action
		}
	}
	return ActionNone
}

// Covers 判断 (x, y) 是否落在面板或按钮上
func (o *Overlay) Covers(x, y float64) bool {
	if len(o.panel) > 0 && render.ContainsPoint(o.panel, x, y) {
		return true
	}
	return o.HitTest(x, y) != ActionNone
}

// Draw 绘制覆盖层并记录点击区域
func (o *Overlay) Draw(s render.Surface, gs *game.GameState) {
	o.hotspots = o.hotspots[:0]
	w, h := s.Size()
	width, height := float64(w), float64(h)

	o.drawHeader(s, width)
	navLeft := o.drawNav(s, width, height)

	panelWidth := panelMaxWidth
	if avail := navLeft - 2*overlayPadding; avail < panelWidth {
		panelWidth = avail
	}
	if panelWidth < 160 {
		panelWidth = width - 2*overlayPadding
	}
	o.drawPanel(s, gs, overlayPadding, height-overlayPadding, panelWidth)
}

func (o *Overlay) drawHeader(s render.Surface, width float64) {
	text := o.palette.Text.RGBA(1)
	muted := o.palette.MutedText.RGBA(1)

	x, y := overlayPadding, overlayPadding
	s.Text("LEO", x, y, brandSize, text)
	bw, bh := s.MeasureText("LEO", brandSize)
	s.Text(".", x+bw, y, brandSize, brandAccent.RGBA(1))
	s.Text("Interactive 3D Portfolio", x, y+bh+2, subtitleSize, muted)

	right := width - overlayPadding
	for _, link := range []string{"Contact", "About"} {
		lw, _ := s.MeasureText(link, headerLinkSize)
		right -= lw
		s.Text(link, right, y+6, headerLinkSize, muted)
		right -= 24
	}
}

// drawNav 绘制右下角的导航按钮，返回按钮区域的左边界
func (o *Overlay) drawNav(s render.Surface, width, height float64) float64 {
	cy := height - overlayPadding - navButtonRadius
	nextX := width - overlayPadding - navButtonRadius
	prevX := nextX - 2*navButtonRadius - navButtonGap

	o.roundButton(s, ActionPrev, "<", prevX, cy)
	o.roundButton(s, ActionNext, ">", nextX, cy)
	return prevX - navButtonRadius
}

func (o *Overlay) roundButton(s render.Surface, a Action, glyph string, cx, cy float64) {
	shape := render.Circle(cx, cy, navButtonRadius, 24)
	fill, ink := o.palette.Panel.RGBA(0.85), o.palette.Text.RGBA(1)
	if o.hovered == a {
		fill, ink = o.palette.Text.RGBA(1), o.palette.Panel.RGBA(1)
	}
	s.FillPolygon(shape, fill)
	gw, gh := s.MeasureText(glyph, buttonSize+4)
	s.Text(glyph, cx-gw/2, cy-gh/2, buttonSize+4, ink)
	o.hotspots = append(o.hotspots, hotspot{action: a, shape: shape})
}

// drawPanel 绘制左下角的项目面板，bottom 为面板下边缘
func (o *Overlay) drawPanel(s render.Surface, gs *game.GameState, x, bottom, width float64) {
	p := gs.ActiveProject()
	inner := width - 2*panelInset
	lines := wrapText(s, p.Description, descriptionSize, inner)
	_, titleH := s.MeasureText(p.Title, titleSize)
	lineH := descriptionSize * descriptionLeading

	height := panelInset + badgeHeight + 14 + titleH + 10 +
		float64(len(lines))*lineH + 18 + linkButtonHeight + panelInset

	alpha := 0.9 + 0.1*o.reveal
	top := bottom - height + panelDrop*(1-o.reveal)
	o.panel = render.Rect(x, top, width, height)
	s.FillPolygon(o.panel, o.palette.Panel.RGBA(0.8*alpha))

	text := o.palette.Text.RGBA(alpha)
	muted := o.palette.MutedText.RGBA(alpha)
	cx, cy := x+panelInset, top+panelInset

	// 分类徽章和序号
	category := strings.ToUpper(p.Category)
	cw, ch := s.MeasureText(category, badgeSize)
	s.FillPolygon(render.Rect(cx, cy, cw+16, badgeHeight), o.palette.Text.RGBA(alpha))
	s.Text(category, cx+8, cy+(badgeHeight-ch)/2, badgeSize, o.palette.Panel.RGBA(alpha))

	counter := fmt.Sprintf("%d / %d", gs.Selection.ActiveIndex()+1, gs.Selection.Count())
	_, nh := s.MeasureText(counter, badgeSize)
	s.Text(counter, cx+cw+28, cy+(badgeHeight-nh)/2, badgeSize, muted)
	cy += badgeHeight + 14

	s.Text(p.Title, cx, cy, titleSize, text)
	cy += titleH + 10

	for _, line := range lines {
		s.Text(line, cx, cy, descriptionSize, muted)
		cy += lineH
	}
	cy += 18

	o.linkButton(s, "Visit Project", cx, cy, p.Accent, alpha)
}

func (o *Overlay) linkButton(s render.Surface, label string, x, y float64, accent mathutil.Color, alpha float64) {
	lw, lh := s.MeasureText(label, buttonSize)
	shape := render.Rect(x, y, lw+40, linkButtonHeight)

	var fill, ink color.RGBA
	if o.hovered == ActionOpenLink {
		fill, ink = brandAccent.RGBA(alpha), o.palette.Panel.RGBA(alpha)
	} else {
		fill, ink = o.palette.Text.RGBA(alpha), o.palette.Panel.RGBA(alpha)
	}
	s.FillPolygon(shape, fill)
	// 左侧的项目主题色条
	s.FillPolygon(render.Rect(x, y, 4, linkButtonHeight), accent.RGBA(alpha))
	s.Text(label, x+20, y+(linkButtonHeight-lh)/2, buttonSize, ink)
	o.hotspots = append(o.hotspots, hotspot{action: ActionOpenLink, shape: shape})
}

// wrapText 按单词折行，单个超长单词独占一行
func wrapText(s render.Surface, text string, size, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if w, _ := s.MeasureText(candidate, size); w > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
