package game

import (
	"testing"

	"github.com/decker502/folio/pkg/anim"
)

// TestTriggerQueueConsumeOnce 测试事件只能被取出一次
func TestTriggerQueueConsumeOnce(t *testing.T) {
	q := NewTriggerQueue()
	if _, ok := q.Take(); ok {
		t.Fatal("空队列不应取出事件")
	}

	posted := q.Post(anim.TriggerWaveLeft)
	got, ok := q.Take()
	if !ok || got != posted {
		t.Fatalf("Take() = %+v, %v, 期望 %+v", got, ok, posted)
	}
	if _, ok := q.Take(); ok {
		t.Error("事件被取出后不应再次出现")
	}
}

// TestTriggerQueueOverwrite 测试未消费事件被新事件覆盖
func TestTriggerQueueOverwrite(t *testing.T) {
	q := NewTriggerQueue()
	q.Post(anim.TriggerWaveLeft)
	second := q.Post(anim.TriggerWaveRight)

	got, ok := q.Take()
	if !ok || got != second {
		t.Errorf("Take() = %+v, 期望最新事件 %+v", got, second)
	}
	if q.Pending() {
		t.Error("单槽队列取出后应为空")
	}
}

// TestTriggerQueueIDsIncrease 测试 RequestID 严格递增，同类型事件也不例外
func TestTriggerQueueIDsIncrease(t *testing.T) {
	q := NewTriggerQueue()
	var last uint64
	for i := 0; i < 10; i++ {
		trig := q.Post(anim.TriggerWaveRight)
		if trig.RequestID <= last {
			t.Fatalf("RequestID %d 未严格递增 (上一个 %d)", trig.RequestID, last)
		}
		last = trig.RequestID
		q.Take()
	}
	if q.LastID() != last {
		t.Errorf("LastID() = %d, 期望 %d", q.LastID(), last)
	}
}
