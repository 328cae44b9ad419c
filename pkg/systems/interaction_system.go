package systems

import (
	"log"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/game"
)

// InteractionSystem 把指针拾取结果分发给卡片和机器人
//
// hit 是指针下最前面的可点击节点的 Owner（没有命中时为 0）。
// 悬停状态每帧重写；点击卡片调用 Selection.Select，点击机器人设置 Clicked。
type InteractionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(em *ecs.EntityManager, gs *game.GameState) *InteractionSystem {
	return &InteractionSystem{entityManager: em, gameState: gs}
}

// Update 应用本帧的拾取结果
func (s *InteractionSystem) Update(hit ecs.EntityID, clicked bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.CardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		card.Hovered = id == hit
		if card.Hovered && clicked {
			log.Printf("[Interaction] 点击卡片 %d", card.Index)
			s.gameState.Selection.Select(card.Index)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.CharacterComponent](s.entityManager) {
		char, _ := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
		char.Hovered = id == hit
		if char.Hovered && clicked {
			char.Clicked = true
		}
	}
}
