package game

import (
	"log"

	"github.com/decker502/folio/pkg/anim"
)

// TriggerQueue 单槽手势事件队列
//
// 导航操作写入，角色系统每帧取出一次。槽位只保存最新的事件：
// 未被消费的旧事件会被新事件覆盖，不排队。
type TriggerQueue struct {
	pending *anim.Trigger
	lastID  uint64
}

// NewTriggerQueue 创建空队列
func NewTriggerQueue() *TriggerQueue {
	return &TriggerQueue{}
}

// Post 写入新事件并分配严格递增的 RequestID
// 槽位中尚未消费的事件被丢弃
func (q *TriggerQueue) Post(kind anim.TriggerKind) anim.Trigger {
	q.lastID++
	t := anim.Trigger{Kind: kind, RequestID: q.lastID}
	if q.pending != nil {
		log.Printf("[TriggerQueue] 覆盖未消费事件 #%d (%s)", q.pending.RequestID, q.pending.Kind)
	}
	q.pending = &t
	return t
}

// Take 取出事件，每个事件只会被取出一次
func (q *TriggerQueue) Take() (anim.Trigger, bool) {
	if q.pending == nil {
		return anim.Trigger{}, false
	}
	t := *q.pending
	q.pending = nil
	return t, true
}

// Pending 是否有未消费事件
func (q *TriggerQueue) Pending() bool {
	return q.pending != nil
}

// LastID 最近分配的 RequestID
func (q *TriggerQueue) LastID() uint64 {
	return q.lastID
}
