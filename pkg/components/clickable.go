package components

import "github.com/decker502/folio/pkg/ecs"

// ClickableComponent 标记节点可以被指针拾取
// 命中后交互作用于 Owner（卡片实体或角色实体），而不是被命中的几何节点本身
type ClickableComponent struct {
	Owner     ecs.EntityID
	IsEnabled bool // 是否参与拾取
}
