package scenes

import (
	"log"
	"math"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	loadingText = "LOADING EXPERIENCE"
	loadingSize = 13.0
	// loadingMinDuration 占位画面至少显示的时间（秒）
	loadingMinDuration = 0.6
	loadingDots        = 12
	loadingRadius      = 18.0
	loadingBarWidth    = 160.0
)

// SceneBuilder 构建加载完成后切换到的场景
type SceneBuilder func() (game.Scene, error)

// LoadingScene 启动占位画面
//
// 第一帧只绘制占位画面，之后才调用 build 构建场景，
// 构建完成且显示满 loadingMinDuration 后切换。构建失败时停留在本场景并显示错误。
type LoadingScene struct {
	sceneManager *game.SceneManager
	palette      config.PaletteConfig
	surface      *render.EbitenSurface
	build        SceneBuilder

	elapsedTime float64
	// progress 进度条显示值，构建完成前停在一半
	progress float64
	drawn    bool

	next game.Scene
	err  error
}

// NewLoadingScene 创建加载场景
// source 为 nil 时使用调试字体
func NewLoadingScene(sm *game.SceneManager, palette config.PaletteConfig, source *text.GoTextFaceSource, build SceneBuilder) *LoadingScene {
	return &LoadingScene{
		sceneManager: sm,
		palette:      palette,
		surface:      render.NewEbitenSurface(nil, source),
		build:        build,
	}
}

// Update 推进加载流程
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime

	if s.drawn && s.next == nil && s.err == nil {
		s.next, s.err = s.build()
		if s.err != nil {
			log.Printf("[Scene] Loading failed: %v", s.err)
		} else {
			log.Printf("[Scene] Loading complete after %.2fs", s.elapsedTime)
		}
	}

	target := 0.5
	if s.next != nil {
		target = 1
	}
	s.progress = utils.ApproachClamped(s.progress, target, 8, deltaTime)

	if s.next != nil && s.elapsedTime >= loadingMinDuration {
		s.sceneManager.SwitchTo(s.next)
	}
}

// Err 构建失败的错误
func (s *LoadingScene) Err() error {
	return s.err
}

// Draw 绘制占位画面
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	s.surface.Reset(screen)
	s.render(s.surface)
}

func (s *LoadingScene) render(surface render.Surface) {
	s.drawn = true
	w, h := surface.Size()
	cx, cy := float64(w)/2, float64(h)/2
	surface.Fill(s.palette.Background.RGBA(1))

	// 旋转的点阵，头部最亮
	head := int(s.elapsedTime*loadingDots) % loadingDots
	for i := 0; i < loadingDots; i++ {
		a := float64(i) / loadingDots * 2 * math.Pi
		age := (head - i + loadingDots) % loadingDots
		alpha := 1 - float64(age)/loadingDots
		x, y := cx+math.Cos(a)*loadingRadius, cy-30+math.Sin(a)*loadingRadius
		surface.FillPolygon(render.Circle(x, y, 3, 8), s.palette.Text.RGBA(alpha))
	}

	msg := loadingText
	if s.err != nil {
		msg = "FAILED: " + s.err.Error()
	}
	tw, th := surface.MeasureText(msg, loadingSize)
	surface.Text(msg, cx-tw/2, cy+8, loadingSize, s.palette.MutedText.RGBA(1))

	barY := cy + 8 + th + 10
	surface.FillPolygon(render.Rect(cx-loadingBarWidth/2, barY, loadingBarWidth, 2), s.palette.MutedText.RGBA(0.25))
	surface.FillPolygon(render.Rect(cx-loadingBarWidth/2, barY, loadingBarWidth*s.progress, 2), s.palette.Text.RGBA(1))
}
