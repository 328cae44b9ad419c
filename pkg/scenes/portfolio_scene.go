package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// keyBindings 键盘到操作的映射
var keyBindings = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyArrowLeft, ActionPrev},
	{ebiten.KeyArrowRight, ActionNext},
	{ebiten.KeyEnter, ActionToggleZoom},
	{ebiten.KeySpace, ActionToggleZoom},
	{ebiten.KeyH, ActionToggleOverlay},
	{ebiten.KeyF3, ActionToggleDebug},
	{ebiten.KeyJ, ActionJump},
}

// PortfolioScene 用 ebiten 驱动 World：读取鼠标/触摸/键盘输入，绘制到屏幕
type PortfolioScene struct {
	world   *World
	surface *render.EbitenSurface
	actions []Action
}

// NewPortfolioScene 创建转盘场景
func NewPortfolioScene(world *World, source *text.GoTextFaceSource) *PortfolioScene {
	return &PortfolioScene{
		world:   world,
		surface: render.NewEbitenSurface(nil, source),
	}
}

// World 返回场景核心
func (s *PortfolioScene) World() *World {
	return s.world
}

// Update 采集输入并推进一帧
func (s *PortfolioScene) Update(deltaTime float64) {
	s.world.Update(deltaTime, s.readInput())
}

func (s *PortfolioScene) readInput() FrameInput {
	// 触摸按下等同于在触点处点击
	p := utils.ReadPointer()
	in := FrameInput{
		CursorX:   p.X,
		CursorY:   p.Y,
		HasCursor: p.HasPosition,
		Clicked:   p.JustPressed,
	}

	s.actions = s.actions[:0]
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			s.actions = append(s.actions, b.action)
		}
	}
	in.Actions = s.actions
	return in
}

// Draw 绘制场景，F3 打开时叠加调试信息
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	s.surface.Reset(screen)
	s.world.Draw(s.surface)

	if !s.world.DebugVisible() {
		return
	}
	y := 96
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, y)
	for _, line := range s.world.DebugLines() {
		y += 16
		ebitenutil.DebugPrintAt(screen, line, 8, y)
	}
}

// Close 保存用户设置
func (s *PortfolioScene) Close() error {
	sm := s.world.GameState().GetSettingsManager()
	if sm == nil {
		return nil
	}
	if err := sm.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Scene] Settings saved on close")
	return nil
}
