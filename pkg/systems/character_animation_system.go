package systems

import (
	"log"

	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/game"
)

// CharacterAnimationSystem 驱动陪伴机器人
//
// 每帧：从事件队列取出手势事件（最多一个），推进角色状态机，
// 再把混合后的姿态写回机器人的各个节点。
type CharacterAnimationSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	controller    *anim.Character
}

// NewCharacterAnimationSystem 创建角色动画系统
func NewCharacterAnimationSystem(em *ecs.EntityManager, gs *game.GameState, controller *anim.Character) *CharacterAnimationSystem {
	return &CharacterAnimationSystem{
		entityManager: em,
		gameState:     gs,
		controller:    controller,
	}
}

// Update 推进一帧
// 机器人的节点没有全部挂载时跳过，不消费手势事件，点击直接丢弃
func (s *CharacterAnimationSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CharacterComponent](s.entityManager) {
		char, _ := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
		if !s.rigMounted(char.Rig) {
			char.Clicked = false
			continue
		}

		in := anim.CharacterInput{
			Dt:       dt,
			Clock:    s.gameState.Clock,
			PointerX: s.gameState.PointerX,
			PointerY: s.gameState.PointerY,
			Hovered:  char.Hovered,
			Clicked:  char.Clicked,
		}
		if t, ok := s.gameState.Triggers.Take(); ok {
			in.Trigger = &t
			log.Printf("[Character] 手势事件 #%d: %s", t.RequestID, t.Kind)
		}

		prev := char.State
		char.State = s.controller.Step(char.State, in)
		char.Clicked = false

		if char.State.Jump.Active && !prev.Jump.Active {
			log.Printf("[Character] 起跳")
		}
		if char.State.Expression != prev.Expression {
			log.Printf("[Character] 表情 %s -> %s", prev.Expression, char.State.Expression)
		}

		s.applyPose(char)
	}
}

// rigMounted 检查所有部件节点都存在
func (s *CharacterAnimationSystem) rigMounted(rig components.RobotRig) bool {
	nodes := []ecs.EntityID{rig.Body, rig.Head, rig.LeftEye, rig.RightEye, rig.LeftArm, rig.RightArm}
	for _, id := range nodes {
		if !ecs.HasComponent[*components.NodeComponent](s.entityManager, id) {
			return false
		}
	}
	return true
}

func (s *CharacterAnimationSystem) node(id ecs.EntityID) *components.NodeComponent {
	n, _ := ecs.GetComponent[*components.NodeComponent](s.entityManager, id)
	return n
}

// applyPose 把姿态写入节点
func (s *CharacterAnimationSystem) applyPose(char *components.CharacterComponent) {
	pose := char.State.Pose
	rig := char.Rig

	s.node(rig.Body).Position.Y = pose.BodyOffset

	head := s.node(rig.Head)
	head.Rotation.X = pose.HeadPitch
	head.Rotation.Y = pose.HeadYaw

	for _, arm := range []struct {
		id   ecs.EntityID
		pose anim.ArmPose
	}{
		{rig.LeftArm, pose.LeftArm},
		{rig.RightArm, pose.RightArm},
	} {
		n := s.node(arm.id)
		n.Rotation.Z = arm.pose.Pitch
		n.Rotation.X = arm.pose.Wobble
	}

	for _, eye := range []struct {
		id   ecs.EntityID
		pose anim.EyePose
	}{
		{rig.LeftEye, pose.LeftEye},
		{rig.RightEye, pose.RightEye},
	} {
		n := s.node(eye.id)
		n.Scale.X = eye.pose.ScaleX
		n.Scale.Y = eye.pose.ScaleY
		if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, eye.id); ok {
			shape.Color = eye.pose.Color
		}
	}

	// 悬停高亮：手臂和天线灯变为高亮色
	limb, bulb := char.Palette.Limb, char.Palette.Bulb
	if char.Hovered {
		limb, bulb = char.Palette.Highlight, char.Palette.Highlight
	}
	for _, id := range rig.Limbs {
		if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id); ok {
			shape.Color = limb
		}
	}
	if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, rig.Bulb); ok {
		shape.Color = bulb
	}
}
