package entities

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/mathutil"
)

// 卡片几何参数
const (
	// cardFrameMargin 卡片白色边框宽度
	cardFrameMargin = 0.06
	// cardFrameDepth 边框位于卡面之后的距离
	cardFrameDepth = 0.01
	// cardTitleGap 标题与卡片下边缘的距离
	cardTitleGap = 0.3
)

// NewCameraEntity 创建场景相机实体，初始位于总览位置
func NewCameraEntity(em *ecs.EntityManager, cfg *config.SceneConfig) ecs.EntityID {
	state := anim.NewCarouselState(cfg.Carousel.Motion)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		Position: state.Camera,
		View:     state.View,
		FOV:      cfg.Window.FOV,
	})
	return id
}

// NewCarouselEntity 创建转盘及其卡片
//
// 卡片 i 位于半径为 Radius 的圆上，角度为 i/count·2π，并朝向圆外。
//
// 返回:
//   - ecs.EntityID: 转盘实体ID
//   - []ecs.EntityID: 卡片实体ID，下标与项目下标一致
//   - error: 项目列表为空时返回错误
func NewCarouselEntity(em *ecs.EntityManager, cfg *config.SceneConfig, projects []config.Project) (ecs.EntityID, []ecs.EntityID, error) {
	if len(projects) == 0 {
		return 0, nil, fmt.Errorf("carousel needs at least one project")
	}

	cc := cfg.Carousel

	// 整体偏移节点 → 悬浮枢轴 → 旋转组
	anchor := em.CreateEntity()
	ecs.AddComponent(em, anchor, components.NewNode(0, cc.Offset))
	floatPivot := newFloatPivot(em, anchor, cc.Motion.Float)

	carousel := em.CreateEntity()
	ecs.AddComponent(em, carousel, components.NewNode(floatPivot, mathutil.Vec3{}))
	ecs.AddComponent(em, carousel, &components.CarouselComponent{
		State: anim.NewCarouselState(cc.Motion),
	})

	count := len(projects)
	cards := make([]ecs.EntityID, count)
	for i, p := range projects {
		cards[i] = newCard(em, cfg, carousel, i, count, p)
	}

	log.Printf("[Entities] 创建转盘: %d 张卡片, 半径 %.2f", count, cc.Radius)
	return carousel, cards, nil
}

func newCard(em *ecs.EntityManager, cfg *config.SceneConfig, carousel ecs.EntityID, index, count int, p config.Project) ecs.EntityID {
	cc := cfg.Carousel
	angle := float64(index) / float64(count) * 2 * math.Pi

	card := em.CreateEntity()
	node := components.NewNode(carousel, mathutil.V3(math.Sin(angle)*cc.Radius, 0, math.Cos(angle)*cc.Radius))
	node.Rotation.Y = angle
	ecs.AddComponent(em, card, node)

	frame := em.CreateEntity()
	ecs.AddComponent(em, frame, components.NewNode(card, mathutil.V3(0, 0, -cardFrameDepth)))
	ecs.AddComponent(em, frame, &components.ShapeComponent{
		Kind:    components.ShapeQuad,
		Size:    mathutil.V3(cc.CardWidth+2*cardFrameMargin, cc.CardHeight+2*cardFrameMargin, 0),
		Color:   cfg.Palette.Panel,
		Opacity: 1,
	})
	ecs.AddComponent(em, frame, &components.ClickableComponent{Owner: card, IsEnabled: true})

	face := em.CreateEntity()
	ecs.AddComponent(em, face, components.NewNode(card, mathutil.Vec3{}))
	ecs.AddComponent(em, face, &components.ShapeComponent{
		Kind:    components.ShapeQuad,
		Size:    mathutil.V3(cc.CardWidth, cc.CardHeight, 0),
		Color:   p.Accent,
		Opacity: 1,
	})
	ecs.AddComponent(em, face, &components.ClickableComponent{Owner: card, IsEnabled: true})

	title := em.CreateEntity()
	ecs.AddComponent(em, title, components.NewNode(card, mathutil.V3(0, -cc.CardHeight/2-cardTitleGap, 0.1)))
	ecs.AddComponent(em, title, &components.LabelComponent{
		Text:    p.Title,
		Color:   cfg.Palette.Text,
		Opacity: 1,
	})

	ecs.AddComponent(em, card, &components.CardComponent{
		Index: index,
		State: anim.NewCardState(),
		Face:  face,
		Frame: frame,
		Title: title,
	})
	return card
}

// robotPart 机器人的一个几何部件
type robotPart struct {
	parent   ecs.EntityID
	position mathutil.Vec3
	kind     components.ShapeKind
	size     mathutil.Vec3
	color    mathutil.Color
	unlit    bool
}

// NewRobotEntity 创建陪伴机器人
//
// 节点层级：
//
//	root (位置/朝向/缩放)
//	└── float (悬浮)
//	    └── body (跳跃偏移)
//	        ├── head (跟随指针) ── face, leftEye, rightEye, antenna, bulb
//	        ├── torso
//	        ├── leftArm (肩部枢轴) ── limb
//	        └── rightArm (肩部枢轴) ── limb
func NewRobotEntity(em *ecs.EntityManager, cfg *config.SceneConfig) ecs.EntityID {
	rc := cfg.Robot

	robot := em.CreateEntity()
	root := components.NewNode(0, rc.Position)
	root.Rotation.Y = rc.Yaw
	root.Scale = mathutil.Uniform(rc.Scale)
	ecs.AddComponent(em, robot, root)

	pivot := func(parent ecs.EntityID, pos mathutil.Vec3) ecs.EntityID {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, components.NewNode(parent, pos))
		return id
	}
	part := func(rp robotPart) ecs.EntityID {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, components.NewNode(rp.parent, rp.position))
		ecs.AddComponent(em, id, &components.ShapeComponent{
			Kind:    rp.kind,
			Size:    rp.size,
			Color:   rp.color,
			Opacity: 1,
			Unlit:   rp.unlit,
		})
		ecs.AddComponent(em, id, &components.ClickableComponent{Owner: robot, IsEnabled: true})
		return id
	}

	floatPivot := newFloatPivot(em, robot, rc.Motion.Float)
	body := pivot(floatPivot, mathutil.Vec3{})
	head := pivot(body, mathutil.V3(0, 0.6, 0))
	leftArm := pivot(body, mathutil.V3(-0.22, 0.2, 0))
	rightArm := pivot(body, mathutil.V3(0.22, 0.2, 0))

	part(robotPart{parent: head, kind: components.ShapeBox, size: mathutil.V3(0.5, 0.4, 0.4), color: rc.HeadColor})
	part(robotPart{parent: head, position: mathutil.V3(0, 0, 0.21), kind: components.ShapeQuad, size: mathutil.V3(0.4, 0.25, 0), color: rc.FaceColor, unlit: true})
	leftEye := part(robotPart{parent: head, position: mathutil.V3(-0.1, 0.02, 0.22), kind: components.ShapeQuad, size: mathutil.V3(0.08, 0.08, 0), color: mathutil.White, unlit: true})
	rightEye := part(robotPart{parent: head, position: mathutil.V3(0.1, 0.02, 0.22), kind: components.ShapeQuad, size: mathutil.V3(0.08, 0.08, 0), color: mathutil.White, unlit: true})
	part(robotPart{parent: head, position: mathutil.V3(0, 0.25, 0), kind: components.ShapeBox, size: mathutil.V3(0.04, 0.3, 0.04), color: rc.AntennaColor})
	bulb := part(robotPart{parent: head, position: mathutil.V3(0, 0.4, 0), kind: components.ShapeBox, size: mathutil.Uniform(0.1), color: rc.AntennaBulb, unlit: true})

	part(robotPart{parent: body, position: mathutil.V3(0, 0.1, 0), kind: components.ShapeBox, size: mathutil.V3(0.3, 0.4, 0.3), color: rc.BodyColor})
	leftLimb := part(robotPart{parent: leftArm, position: mathutil.V3(0, -0.12, 0), kind: components.ShapeBox, size: mathutil.V3(0.1, 0.3, 0.1), color: rc.LimbColor})
	rightLimb := part(robotPart{parent: rightArm, position: mathutil.V3(0, -0.12, 0), kind: components.ShapeBox, size: mathutil.V3(0.1, 0.3, 0.1), color: rc.LimbColor})

	ecs.AddComponent(em, robot, &components.CharacterComponent{
		State: anim.NewCharacterState(),
		Rig: components.RobotRig{
			Float:    floatPivot,
			Body:     body,
			Head:     head,
			LeftEye:  leftEye,
			RightEye: rightEye,
			LeftArm:  leftArm,
			RightArm: rightArm,
			Limbs:    []ecs.EntityID{leftLimb, rightLimb},
			Bulb:     bulb,
		},
		Palette: components.RobotPalette{
			Limb:      rc.LimbColor,
			Bulb:      rc.AntennaBulb,
			Highlight: rc.HoverColor,
		},
	})

	log.Printf("[Entities] 创建机器人: 位置 (%.1f, %.1f, %.1f), 缩放 %.1f", rc.Position.X, rc.Position.Y, rc.Position.Z, rc.Scale)
	return robot
}

// newFloatPivot 在 parent 原点处创建悬浮枢轴
func newFloatPivot(em *ecs.EntityManager, parent ecs.EntityID, tuning anim.FloatTuning) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewNode(parent, mathutil.Vec3{}))
	ecs.AddComponent(em, id, &components.FloatComponent{Tuning: tuning})
	return id
}

// shadowInnerScale 最内层椭圆相对外圈的半径比例
const shadowInnerScale = 0.5

// NewFloorEntity 创建地面接触阴影
//
// 每块阴影叠加 Layers 个同心椭圆：半径从外圈 1 线性缩小到 shadowInnerScale，
// 单层透明度取 1-(1-Opacity)^(1/Layers)，使中心叠加后的透明度等于 Opacity。
//
// 返回:
//   - ecs.EntityID: 地面根节点
//   - []ecs.EntityID: 全部椭圆实体
func NewFloorEntity(em *ecs.EntityManager, cfg *config.SceneConfig) (ecs.EntityID, []ecs.EntityID) {
	fc := cfg.Floor

	floor := em.CreateEntity()
	ecs.AddComponent(em, floor, components.NewNode(0, mathutil.V3(0, fc.Y, 0)))

	layers := max(fc.Layers, 1)
	alpha := 1 - math.Pow(1-fc.Opacity, 1/float64(layers))

	var discs []ecs.EntityID
	for _, spot := range fc.Shadows {
		for i := range layers {
			scale := 1 - (1-shadowInnerScale)*float64(i)/float64(layers)
			id := em.CreateEntity()
			ecs.AddComponent(em, id, components.NewNode(floor, mathutil.V3(spot.X, 0, spot.Z)))
			ecs.AddComponent(em, id, &components.ShapeComponent{
				Kind:    components.ShapeDisc,
				Size:    mathutil.V3(2*spot.RadiusX*scale, 0, 2*spot.RadiusZ*scale),
				Color:   fc.Color,
				Opacity: alpha,
				Unlit:   true,
				Ground:  true,
			})
			discs = append(discs, id)
		}
	}

	log.Printf("[Entities] 创建地面阴影: %d 块, 每块 %d 层", len(fc.Shadows), layers)
	return floor, discs
}
