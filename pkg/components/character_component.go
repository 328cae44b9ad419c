package components

import (
	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/mathutil"
)

// RobotRig 机器人各个可动部件的节点
//
// 任一节点缺失（实体不存在或没有 NodeComponent）时，
// 角色系统跳过该帧，不修改任何状态。
type RobotRig struct {
	// Float 悬浮枢轴，由 FloatSystem 驱动，不属于角色系统的挂载检查
	Float ecs.EntityID
	// Body 整体跳跃节点，BodyOffset 写入其 Position.Y
	Body     ecs.EntityID
	Head     ecs.EntityID
	LeftEye  ecs.EntityID
	RightEye ecs.EntityID
	// LeftArm/RightArm 肩部枢轴节点
	LeftArm  ecs.EntityID
	RightArm ecs.EntityID
	// Limbs 悬停时变色的手臂几何节点
	Limbs []ecs.EntityID
	// Bulb 天线顶端的灯
	Bulb ecs.EntityID
}

// RobotPalette 悬停相关的配色
type RobotPalette struct {
	Limb      mathutil.Color
	Bulb      mathutil.Color
	Highlight mathutil.Color
}

// CharacterComponent 陪伴机器人
type CharacterComponent struct {
	State anim.CharacterState

	// Hovered 指针是否悬停在机器人上
	Hovered bool
	// Clicked 本帧是否被点击，角色系统消费后清零
	Clicked bool

	Rig     RobotRig
	Palette RobotPalette
}
