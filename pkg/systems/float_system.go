package systems

import (
	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/game"
)

// FloatSystem 悬浮待机动作
//
// 姿态只取决于场景时钟，每帧直接覆盖悬浮枢轴的 Position.Y 和 Rotation。
// 转盘旋转和角色跳跃写在枢轴的子节点上，互不干扰。
type FloatSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewFloatSystem 创建悬浮系统
func NewFloatSystem(em *ecs.EntityManager, gs *game.GameState) *FloatSystem {
	return &FloatSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 推进一帧
func (s *FloatSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.FloatComponent, *components.NodeComponent](s.entityManager) {
		fc, _ := ecs.GetComponent[*components.FloatComponent](s.entityManager, id)
		node, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)

		pose := anim.StepFloat(fc.Tuning, s.gameState.Clock)
		node.Position.Y = pose.OffsetY
		node.Rotation.X = pose.Pitch
		node.Rotation.Y = pose.Yaw
		node.Rotation.Z = pose.Roll
	}
}
