package components

import (
	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/ecs"
)

// CardComponent 转盘上的一张项目卡片
type CardComponent struct {
	// Index 在转盘中的位置，等于项目下标
	Index int

	// Hovered 指针是否悬停在卡片上（由拾取结果写入）
	Hovered bool

	// State 缩放与透明度的当前值
	State anim.CardState

	// Face 卡片正面几何节点，透明度写到它的 ShapeComponent 上
	Face ecs.EntityID
	// Frame 卡片边框节点，透明度与卡面一致
	Frame ecs.EntityID
	// Title 卡片下方标题节点
	Title ecs.EntityID
}
