package systems

import (
	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/utils"
)

// CarouselSystem 转盘旋转与相机控制
//
// 读取选中状态，推进转盘状态，然后写入转盘节点的 Y 轴旋转和相机。
type CarouselSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	tuning        anim.CarouselTuning
	blend         utils.Blender
	cameraEntity  ecs.EntityID
}

// NewCarouselSystem 创建转盘系统
func NewCarouselSystem(em *ecs.EntityManager, gs *game.GameState, tuning anim.CarouselTuning, blend utils.Blender, camera ecs.EntityID) *CarouselSystem {
	return &CarouselSystem{
		entityManager: em,
		gameState:     gs,
		tuning:        tuning,
		blend:         blend,
		cameraEntity:  camera,
	}
}

// Update 推进一帧
func (s *CarouselSystem) Update(dt float64) {
	sel := s.gameState.Selection
	in := anim.CarouselInput{
		Dt:          dt,
		ActiveIndex: sel.ActiveIndex(),
		Count:       sel.Count(),
		Zoomed:      sel.Zoomed(),
	}

	cam, hasCamera := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)

	for _, id := range ecs.GetEntitiesWith2[*components.CarouselComponent, *components.NodeComponent](s.entityManager) {
		carousel, _ := ecs.GetComponent[*components.CarouselComponent](s.entityManager, id)
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)

		carousel.State = anim.StepCarousel(carousel.State, in, s.tuning, s.blend)
		node.Rotation.Y = carousel.State.Rotation

		if hasCamera {
			cam.Position = carousel.State.Camera
			cam.View = carousel.State.View
		}
	}
}
