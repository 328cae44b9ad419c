package game

import (
	"fmt"
	"log"

	"github.com/decker502/folio/pkg/anim"
)

// Selection 转盘选中状态
//
// activeIndex 始终是有效索引（导航时对项目数取模）。
// 由 UI 单方写入，控制器只读。
type Selection struct {
	activeIndex int
	zoomed      bool
	count       int

	// triggers 导航时写入挥手事件，可为 nil
	triggers *TriggerQueue
}

// NewSelection 创建选中状态
//
// 参数：
//   - count: 项目数量，必须大于 0
//   - triggers: 手势事件队列，可为 nil（不触发手势）
func NewSelection(count int, triggers *TriggerQueue) (*Selection, error) {
	if count <= 0 {
		return nil, fmt.Errorf("selection needs at least one project, got %d", count)
	}
	return &Selection{count: count, triggers: triggers}, nil
}

// ActiveIndex 当前选中项
func (s *Selection) ActiveIndex() int {
	return s.activeIndex
}

// Zoomed 是否处于放大状态
func (s *Selection) Zoomed() bool {
	return s.zoomed
}

// Count 项目数量
func (s *Selection) Count() int {
	return s.count
}

// Next 切换到下一个项目，取消放大，并触发右手挥手
func (s *Selection) Next() {
	s.activeIndex = (s.activeIndex + 1) % s.count
	s.zoomed = false
	s.post(anim.TriggerWaveRight)
	log.Printf("[Selection] Next -> %d", s.activeIndex)
}

// Prev 切换到上一个项目，取消放大，并触发左手挥手
func (s *Selection) Prev() {
	s.activeIndex = (s.activeIndex - 1 + s.count) % s.count
	s.zoomed = false
	s.post(anim.TriggerWaveLeft)
	log.Printf("[Selection] Prev -> %d", s.activeIndex)
}

// Select 点击卡片
// 点击当前选中项切换放大；点击其他项则选中它并取消放大
// 越界索引被忽略
func (s *Selection) Select(index int) {
	if index < 0 || index >= s.count {
		log.Printf("[Selection] 忽略越界索引 %d (count=%d)", index, s.count)
		return
	}
	if index == s.activeIndex {
		s.zoomed = !s.zoomed
		log.Printf("[Selection] Toggle zoom -> %v", s.zoomed)
		return
	}
	s.activeIndex = index
	s.zoomed = false
	log.Printf("[Selection] Select -> %d", index)
}

// ToggleZoom 切换当前选中项的放大状态
func (s *Selection) ToggleZoom() {
	s.Select(s.activeIndex)
}

func (s *Selection) post(kind anim.TriggerKind) {
	if s.triggers != nil {
		s.triggers.Post(kind)
	}
}
