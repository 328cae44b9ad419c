package components

import "github.com/decker502/folio/pkg/anim"

// CarouselComponent 转盘旋转组
// 卡片节点都挂在该实体下，旋转写入该实体的 NodeComponent.Rotation.Y
type CarouselComponent struct {
	State anim.CarouselState
}
