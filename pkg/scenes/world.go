package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/entities"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/systems"
	"github.com/decker502/folio/pkg/utils"
)

// Action 一帧内的离散用户操作（键盘或覆盖层按钮）
type Action int

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionToggleZoom
	ActionToggleOverlay
	ActionToggleDebug
	ActionJump
	ActionOpenLink
)

// String 返回操作名称
func (a Action) String() string {
	switch a {
	case ActionPrev:
		return "prev"
	case ActionNext:
		return "next"
	case ActionToggleZoom:
		return "zoom"
	case ActionToggleOverlay:
		return "overlay"
	case ActionToggleDebug:
		return "debug"
	case ActionJump:
		return "jump"
	case ActionOpenLink:
		return "link"
	default:
		return "none"
	}
}

// FrameInput 一帧的输入快照
type FrameInput struct {
	// CursorX/CursorY 指针像素坐标（相对上一次绘制的画布）
	CursorX float64
	CursorY float64
	// HasCursor 为 false 时保持上一帧的指针位置
	HasCursor bool
	// Clicked 本帧是否按下了主键
	Clicked bool
	Actions []Action
}

// World 转盘场景的核心
//
// 不依赖具体的绘制后端：PortfolioScene 用 ebiten 驱动它，
// cmd/snapshot 用离屏图像驱动它。
type World struct {
	cfg           *config.SceneConfig
	gameState     *game.GameState
	entityManager *ecs.EntityManager

	camera ecs.EntityID
	robot  ecs.EntityID
	cards  []ecs.EntityID

	interactionSystem *systems.InteractionSystem
	floatSystem       *systems.FloatSystem
	characterSystem   *systems.CharacterAnimationSystem
	carouselSystem    *systems.CarouselSystem
	cardFocusSystem   *systems.CardFocusSystem

	overlay  *Overlay
	light    render.Light
	drawList *render.DrawList

	// OnOpenLink 点击 "Visit Project" 时调用，可为 nil
	OnOpenLink func(p config.Project)

	frames int
}

// NewWorld 创建场景实体和全部系统
//
// randFloat 用于眨眼间隔，传 nil 时使用固定的区间中点。
func NewWorld(cfg *config.SceneConfig, gs *game.GameState, randFloat func() float64) (*World, error) {
	if cfg == nil {
		cfg = config.DefaultSceneConfig()
	}

	em := ecs.NewEntityManager()
	camera := entities.NewCameraEntity(em, cfg)
	_, cards, err := entities.NewCarouselEntity(em, cfg, gs.Projects)
	if err != nil {
		return nil, fmt.Errorf("failed to build carousel: %w", err)
	}
	robot := entities.NewRobotEntity(em, cfg)
	entities.NewFloorEntity(em, cfg)

	blend := utils.Blender{Clamp: cfg.Blend.Clamp}
	controller := anim.NewCharacter(cfg.Robot.Motion, blend, randFloat)

	w := &World{
		cfg:               cfg,
		gameState:         gs,
		entityManager:     em,
		camera:            camera,
		robot:             robot,
		cards:             cards,
		interactionSystem: systems.NewInteractionSystem(em, gs),
		floatSystem:       systems.NewFloatSystem(em, gs),
		characterSystem:   systems.NewCharacterAnimationSystem(em, gs, controller),
		carouselSystem:    systems.NewCarouselSystem(em, gs, cfg.Carousel.Motion, blend, camera),
		cardFocusSystem:   systems.NewCardFocusSystem(em, gs, cfg.Carousel.Card, blend),
		overlay:           NewOverlay(cfg.Palette, blend),
		light:             render.DefaultLight(),
	}
	log.Printf("[Scene] World ready: %d cards, robot=%d", len(cards), robot)
	return w, nil
}

// GameState 返回共享的运行时状态
func (w *World) GameState() *game.GameState {
	return w.gameState
}

// EntityManager 返回场景实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// Robot 返回机器人根实体
func (w *World) Robot() ecs.EntityID {
	return w.robot
}

// Cards 返回卡片实体（按项目顺序）
func (w *World) Cards() []ecs.EntityID {
	return w.cards
}

// Overlay 返回覆盖层
func (w *World) Overlay() *Overlay {
	return w.overlay
}

// DrawList 返回上一次绘制生成的绘制列表，尚未绘制时为 nil
func (w *World) DrawList() *render.DrawList {
	return w.drawList
}

// Update 推进一帧
//
// 顺序：时钟 → 指针 → 离散操作 → 拾取与交互 → 悬浮 → 转盘 → 卡片 → 角色。
// 拾取使用上一帧的绘制列表；覆盖层按钮优先于 3D 场景接收点击。
func (w *World) Update(dt float64, in FrameInput) {
	dt = w.gameState.Advance(dt)
	w.frames++

	if in.HasCursor {
		w.setPointer(in.CursorX, in.CursorY)
	}

	for _, a := range in.Actions {
		w.apply(a)
	}

	clicked := in.Clicked
	covered := false
	if w.overlayVisible() && in.HasCursor {
		hovered := w.overlay.HitTest(in.CursorX, in.CursorY)
		w.overlay.SetHovered(hovered)
		if hovered != ActionNone && clicked {
			w.apply(hovered)
		}
		covered = w.overlay.Covers(in.CursorX, in.CursorY)
	} else {
		w.overlay.SetHovered(ActionNone)
	}

	var hit ecs.EntityID
	if w.drawList != nil && in.HasCursor && !covered {
		hit, _ = w.drawList.Pick(in.CursorX, in.CursorY)
	}
	w.interactionSystem.Update(hit, clicked)

	w.floatSystem.Update(dt)
	w.carouselSystem.Update(dt)
	w.cardFocusSystem.Update(dt)
	w.characterSystem.Update(dt)
	w.overlay.Update(w.gameState.Selection.Zoomed(), dt)
}

// Draw 绘制背景、3D 场景和覆盖层，并保存绘制列表供下一帧拾取
func (w *World) Draw(s render.Surface) {
	width, height := s.Size()
	s.Fill(w.cfg.Palette.Background.RGBA(1))

	cam, ok := ecs.GetComponent[*components.CameraComponent](w.entityManager, w.camera)
	if !ok {
		return
	}
	w.drawList = render.BuildDrawList(w.entityManager, cam.Camera(), float64(width), float64(height), w.light)
	render.Draw(s, w.drawList)

	if w.overlayVisible() {
		w.overlay.Draw(s, w.gameState)
	}
}

// DebugLines 调试信息（F3 打开）
func (w *World) DebugLines() []string {
	gs := w.gameState
	lines := []string{
		fmt.Sprintf("frame %d  clock %.2fs", w.frames, gs.Clock),
		fmt.Sprintf("pointer %.2f, %.2f", gs.PointerX, gs.PointerY),
		fmt.Sprintf("active %d/%d  zoomed %v", gs.Selection.ActiveIndex()+1, gs.Selection.Count(), gs.Selection.Zoomed()),
	}
	if char, ok := ecs.GetComponent[*components.CharacterComponent](w.entityManager, w.robot); ok {
		st := char.State
		gesture := "idle"
		if !st.Gesture.IsIdle() {
			gesture = fmt.Sprintf("wave %s %.2fs", st.Gesture.Side, st.Gesture.Elapsed)
		}
		lines = append(lines,
			"gesture "+gesture,
			fmt.Sprintf("jump %v  body %.2f", st.Jump.Active, st.Pose.BodyOffset),
			fmt.Sprintf("expression %v  hovered %v", st.Expression, char.Hovered),
		)
	}
	if w.drawList != nil {
		lines = append(lines, fmt.Sprintf("polygons %d  labels %d", len(w.drawList.Polygons), len(w.drawList.Labels)))
	}
	return lines
}

// DebugVisible 是否显示调试信息
func (w *World) DebugVisible() bool {
	sm := w.gameState.GetSettingsManager()
	return sm != nil && sm.GetSettings().ShowDebug
}

func (w *World) overlayVisible() bool {
	sm := w.gameState.GetSettingsManager()
	return sm == nil || sm.GetSettings().ShowOverlay
}

// setPointer 像素坐标转换为 [-1, 1] 归一化坐标，Y 向上为正
func (w *World) setPointer(x, y float64) {
	width, height := float64(w.cfg.Window.Width), float64(w.cfg.Window.Height)
	if w.drawList != nil {
		width, height = w.drawList.Width, w.drawList.Height
	}
	if width <= 0 || height <= 0 {
		return
	}
	w.gameState.SetPointer(x/width*2-1, -(y/height*2 - 1))
}

func (w *World) apply(a Action) {
	gs := w.gameState
	switch a {
	case ActionPrev:
		gs.Selection.Prev()
	case ActionNext:
		gs.Selection.Next()
	case ActionToggleZoom:
		gs.Selection.ToggleZoom()
	case ActionToggleOverlay:
		if sm := gs.GetSettingsManager(); sm != nil {
			log.Printf("[Scene] overlay -> %v", sm.ToggleOverlay())
		}
	case ActionToggleDebug:
		if sm := gs.GetSettingsManager(); sm != nil {
			log.Printf("[Scene] debug -> %v", sm.ToggleDebug())
		}
	case ActionJump:
		if char, ok := ecs.GetComponent[*components.CharacterComponent](w.entityManager, w.robot); ok {
			char.Clicked = true
		}
	case ActionOpenLink:
		p := gs.ActiveProject()
		log.Printf("[Scene] open link %q (%s)", p.Link, p.Title)
		if w.OnOpenLink != nil {
			w.OnOpenLink(p)
		}
	}
}
