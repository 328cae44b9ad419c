package systems

import (
	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/mathutil"
	"github.com/decker502/folio/pkg/utils"
)

// 卡片标题透明度（不做混合，直接切换）
const (
	titleActiveOpacity   = 1.0
	titleInactiveOpacity = 0.4
)

// CardFocusSystem 卡片悬停/选中/放大时的缩放与透明度
type CardFocusSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	tuning        anim.CardTuning
	blend         utils.Blender
}

// NewCardFocusSystem 创建卡片聚焦系统
func NewCardFocusSystem(em *ecs.EntityManager, gs *game.GameState, tuning anim.CardTuning, blend utils.Blender) *CardFocusSystem {
	return &CardFocusSystem{
		entityManager: em,
		gameState:     gs,
		tuning:        tuning,
		blend:         blend,
	}
}

// Update 推进一帧
func (s *CardFocusSystem) Update(dt float64) {
	sel := s.gameState.Selection

	for _, id := range ecs.GetEntitiesWith2[*components.CardComponent, *components.NodeComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)

		active := card.Index == sel.ActiveIndex()
		card.State = anim.StepCard(card.State, anim.CardInput{
			Dt:      dt,
			Hovered: card.Hovered,
			Active:  active,
			Zoomed:  sel.Zoomed(),
		}, s.tuning, s.blend)

		node.Scale = mathutil.Uniform(card.State.Scale)

		for _, part := range []ecs.EntityID{card.Face, card.Frame} {
			if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, part); ok {
				shape.Opacity = card.State.Opacity
			}
		}
		if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, card.Title); ok {
			label.Opacity = titleInactiveOpacity
			if active {
				label.Opacity = titleActiveOpacity
			}
		}
	}
}
