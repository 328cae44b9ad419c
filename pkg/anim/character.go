package anim

import (
	"math"

	"github.com/decker502/folio/pkg/mathutil"
	"github.com/decker502/folio/pkg/utils"
)

// GestureKind 手势状态机的状态
type GestureKind int

const (
	GestureIdle GestureKind = iota
	GestureWaving
)

// GesturePhase 手势状态（带标签的联合体）
// Kind == GestureWaving 时 Side 和 Elapsed 有效
type GesturePhase struct {
	Kind    GestureKind
	Side    Side
	Elapsed float64
}

// IsIdle 是否处于空闲
func (g GesturePhase) IsIdle() bool {
	return g.Kind == GestureIdle
}

// JumpState 跳跃叠加层（与手势可同时进行）
type JumpState struct {
	Active bool
	// Phase 跳跃相位，[0, π) 内有效
	Phase float64
}

// BlinkState 眨眼计时
type BlinkState struct {
	// Remaining 当前眨眼剩余时间，始终 >= 0，为 0 表示未在眨眼
	Remaining float64
	// NextAt 下一次眨眼的绝对时钟时间
	NextAt float64
}

// Active 是否正在眨眼
func (b BlinkState) Active() bool {
	return b.Remaining > 0
}

// Closure 眨眼闭合度 [0, 1]，半程时为 1
func (b BlinkState) Closure() float64 {
	if b.Remaining <= 0 {
		return 0
	}
	progress := 1 - b.Remaining/BlinkDuration
	return utils.EaseCurve(utils.CurveSineBump, progress)
}

// ArmPose 肩部姿态
type ArmPose struct {
	// Pitch 绕 Z 轴的抬起角度
	Pitch float64
	// Wobble 绕 X 轴的摆动角度
	Wobble float64
}

// EyePose 眼睛姿态
type EyePose struct {
	ScaleX float64
	ScaleY float64
	Color  mathutil.Color
}

// Pose 当前混合后的角色姿态，由渲染层逐帧读取
type Pose struct {
	HeadPitch  float64 // 头部 rotation.x
	HeadYaw    float64 // 头部 rotation.y
	BodyOffset float64 // 身体 position.y

	LeftArm  ArmPose
	RightArm ArmPose
	LeftEye  EyePose
	RightEye EyePose
}

// CharacterState 角色动画的全部跨帧状态
type CharacterState struct {
	Gesture GesturePhase
	Jump    JumpState
	Blink   BlinkState
	Pose    Pose

	// Expression 最近一帧解析出的表情（只读，调试用）
	Expression ExpressionKind
}

// NewCharacterState 返回挂载时的默认状态
func NewCharacterState() CharacterState {
	eye := EyePose{ScaleX: 1, ScaleY: 1, Color: mathutil.White}
	return CharacterState{
		Pose: Pose{LeftEye: eye, RightEye: eye},
	}
}

// CharacterInput 一帧的外部输入，时钟与 delta 在帧开始时采样一次
type CharacterInput struct {
	Dt    float64
	Clock float64
	// PointerX/PointerY 归一化指针坐标 [-1, 1]，Y 向上为正
	PointerX float64
	PointerY float64
	Hovered  bool
	// Clicked 本帧点击了角色
	Clicked bool
	// Trigger 本帧取出的手势事件，没有事件时为 nil
	Trigger *Trigger
}

// Character 角色动画控制器
type Character struct {
	tuning CharacterTuning
	blend  utils.Blender
	// randFloat 返回 [0, 1) 的随机数，用于眨眼间隔
	randFloat func() float64
}

// NewCharacter 创建角色控制器
// randFloat 为 nil 时眨眼间隔取区间中点
func NewCharacter(tuning CharacterTuning, blend utils.Blender, randFloat func() float64) *Character {
	if randFloat == nil {
		randFloat = func() float64 { return 0.5 }
	}
	return &Character{tuning: tuning, blend: blend, randFloat: randFloat}
}

// Tuning 返回控制器参数
func (c *Character) Tuning() CharacterTuning {
	return c.tuning
}

// Step 推进一帧
//
// 帧内顺序固定：事件 -> 头部跟随 -> 跳跃 -> 表情（含眨眼）-> 手势/手臂。
func (c *Character) Step(s CharacterState, in CharacterInput) CharacterState {
	if in.Trigger != nil {
		s = ApplyTrigger(s, *in.Trigger)
	}
	if in.Clicked {
		s = StartJump(s)
	}

	s = c.stepHead(s, in)
	s = c.stepJump(s, in)
	s = c.stepExpression(s, in)
	s = c.stepGesture(s, in)
	return s
}

// ApplyTrigger 处理手势事件
// idle 事件被忽略；新事件立即替换正在进行的手势并从 0 开始计时
func ApplyTrigger(s CharacterState, t Trigger) CharacterState {
	side := sideFor(t.Kind)
	if side == SideNone {
		return s
	}
	s.Gesture = GesturePhase{Kind: GestureWaving, Side: side, Elapsed: 0}
	return s
}

// StartJump 开始跳跃，已在跳跃中时不做任何事
func StartJump(s CharacterState) CharacterState {
	if s.Jump.Active {
		return s
	}
	s.Jump = JumpState{Active: true, Phase: 0}
	return s
}

func (c *Character) stepHead(s CharacterState, in CharacterInput) CharacterState {
	h := c.tuning.Head
	s.Pose.HeadYaw = c.blend.Approach(s.Pose.HeadYaw, in.PointerX*h.Gain, h.Rate, in.Dt)
	s.Pose.HeadPitch = c.blend.Approach(s.Pose.HeadPitch, -in.PointerY*h.Gain, h.Rate, in.Dt)
	return s
}

func (c *Character) stepJump(s CharacterState, in CharacterInput) CharacterState {
	j := c.tuning.Jump
	if !s.Jump.Active {
		s.Pose.BodyOffset = c.blend.Approach(s.Pose.BodyOffset, 0, j.SettleRate, in.Dt)
		return s
	}

	s.Jump.Phase += in.Dt * j.Speed
	if s.Jump.Phase < math.Pi {
		s.Pose.BodyOffset = math.Sin(s.Jump.Phase) * j.Amplitude
		return s
	}

	// 落地
	s.Pose.BodyOffset = 0
	s.Jump = JumpState{}
	return s
}

// stepBlink 推进眨眼计时，与跳跃、手势互不影响
func (c *Character) stepBlink(b BlinkState, in CharacterInput) BlinkState {
	if b.Remaining > 0 {
		b.Remaining -= in.Dt
		if b.Remaining <= 0 {
			b.Remaining = 0
			b.NextAt = in.Clock + c.blinkInterval()
		}
		return b
	}
	if in.Clock > b.NextAt {
		b.Remaining = BlinkDuration
	}
	return b
}

func (c *Character) blinkInterval() float64 {
	bt := c.tuning.Blink
	return bt.MinInterval + c.randFloat()*(bt.MaxInterval-bt.MinInterval)
}

func (c *Character) stepExpression(s CharacterState, in CharacterInput) CharacterState {
	s.Blink = c.stepBlink(s.Blink, in)

	kind, target := ResolveExpression(c.tuning.Expression, ExpressionContext{
		Jumping:      s.Jump.Active,
		Hovered:      in.Hovered,
		BlinkClosure: s.Blink.Closure(),
	})
	s.Expression = kind

	et := c.tuning.Expression
	s.Pose.LeftEye = c.blendEye(s.Pose.LeftEye, target, et, in.Dt)
	s.Pose.RightEye = c.blendEye(s.Pose.RightEye, target, et, in.Dt)
	return s
}

func (c *Character) blendEye(eye EyePose, target Expression, et ExpressionTuning, dt float64) EyePose {
	eye.ScaleX = c.blend.Approach(eye.ScaleX, target.ScaleX, et.ScaleRate, dt)
	eye.ScaleY = c.blend.Approach(eye.ScaleY, target.ScaleY, et.ScaleRate, dt)
	eye.Color = eye.Color.Lerp(target.Color, c.blend.Factor(et.ColorRate, dt))
	return eye
}

func (c *Character) stepGesture(s CharacterState, in CharacterInput) CharacterState {
	g := c.tuning.Gesture

	if s.Gesture.IsIdle() {
		s.Pose.LeftArm = c.blendArm(s.Pose.LeftArm, ArmPose{}, g.IdleReturnRate, in.Dt)
		s.Pose.RightArm = c.blendArm(s.Pose.RightArm, ArmPose{}, g.IdleReturnRate, in.Dt)
		return s
	}

	s.Gesture.Elapsed += in.Dt
	if s.Gesture.Elapsed > GestureDuration {
		s.Gesture = GesturePhase{}
		return s
	}

	target := WavePose(g, s.Gesture.Side, s.Gesture.Elapsed)
	if s.Gesture.Side == SideLeft {
		s.Pose.LeftArm = c.blendArm(s.Pose.LeftArm, target, g.ArmRate, in.Dt)
	} else {
		s.Pose.RightArm = c.blendArm(s.Pose.RightArm, target, g.ArmRate, in.Dt)
	}
	return s
}

func (c *Character) blendArm(arm, target ArmPose, rate, dt float64) ArmPose {
	arm.Pitch = c.blend.Approach(arm.Pitch, target.Pitch, rate, dt)
	arm.Wobble = c.blend.Approach(arm.Wobble, target.Wobble, rate, dt)
	return arm
}
