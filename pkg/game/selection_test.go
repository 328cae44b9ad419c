package game

import (
	"testing"

	"github.com/decker502/folio/pkg/anim"
)

func newTestSelection(t *testing.T, count int) (*Selection, *TriggerQueue) {
	t.Helper()
	q := NewTriggerQueue()
	s, err := NewSelection(count, q)
	if err != nil {
		t.Fatalf("NewSelection(%d) error: %v", count, err)
	}
	return s, q
}

// TestNewSelectionEmpty 测试项目数量为 0 时报错
func TestNewSelectionEmpty(t *testing.T) {
	if _, err := NewSelection(0, nil); err == nil {
		t.Error("NewSelection(0) should fail")
	}
}

// TestNextPrevWrap 测试前后导航对项目数取模，并取消放大
func TestNextPrevWrap(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		next      bool
		wantIndex int
		wantKind  anim.TriggerKind
	}{
		{"0 下一个", 0, true, 1, anim.TriggerWaveRight},
		{"5 下一个回绕", 5, true, 0, anim.TriggerWaveRight},
		{"0 上一个回绕", 0, false, 5, anim.TriggerWaveLeft},
		{"3 上一个", 3, false, 2, anim.TriggerWaveLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, q := newTestSelection(t, 6)
			s.activeIndex = tt.start
			s.zoomed = true

			if tt.next {
				s.Next()
			} else {
				s.Prev()
			}

			if s.ActiveIndex() != tt.wantIndex {
				t.Errorf("ActiveIndex = %d, 期望 %d", s.ActiveIndex(), tt.wantIndex)
			}
			if s.Zoomed() {
				t.Error("导航后 Zoomed 应为 false")
			}
			trig, ok := q.Take()
			if !ok {
				t.Fatal("导航应写入手势事件")
			}
			if trig.Kind != tt.wantKind {
				t.Errorf("Trigger.Kind = %v, 期望 %v", trig.Kind, tt.wantKind)
			}
		})
	}
}

// TestNavigationScenario 场景：activeIndex=0，count=6，Next 后 activeIndex=1，触发右手挥手
func TestNavigationScenario(t *testing.T) {
	s, q := newTestSelection(t, 6)
	s.Next()
	if s.ActiveIndex() != 1 || s.Zoomed() {
		t.Errorf("got (%d, %v), 期望 (1, false)", s.ActiveIndex(), s.Zoomed())
	}
	trig, ok := q.Take()
	if !ok || trig.Kind != anim.TriggerWaveRight {
		t.Errorf("Trigger = %+v (%v), 期望 wave-right", trig, ok)
	}
}

// TestSelectSameTogglesZoom 测试点击当前项切换放大且不改变索引
func TestSelectSameTogglesZoom(t *testing.T) {
	s, q := newTestSelection(t, 6)
	s.Select(0)
	if !s.Zoomed() || s.ActiveIndex() != 0 {
		t.Errorf("got (%d, %v), 期望 (0, true)", s.ActiveIndex(), s.Zoomed())
	}
	s.ToggleZoom()
	if s.Zoomed() {
		t.Error("再次切换后 Zoomed 应为 false")
	}
	if q.Pending() {
		t.Error("点击卡片不应触发手势")
	}
}

// TestSelectOtherClearsZoom 测试点击其他项选中它并取消放大
func TestSelectOtherClearsZoom(t *testing.T) {
	s, _ := newTestSelection(t, 6)
	s.Select(0) // 放大
	s.Select(4)
	if s.ActiveIndex() != 4 || s.Zoomed() {
		t.Errorf("got (%d, %v), 期望 (4, false)", s.ActiveIndex(), s.Zoomed())
	}
}

// TestSelectOutOfRange 测试越界索引被忽略
func TestSelectOutOfRange(t *testing.T) {
	s, _ := newTestSelection(t, 6)
	s.Select(6)
	s.Select(-1)
	if s.ActiveIndex() != 0 || s.Zoomed() {
		t.Errorf("越界选择后 got (%d, %v), 期望不变", s.ActiveIndex(), s.Zoomed())
	}
}

// TestActiveIndexAlwaysValid 测试任意导航序列后索引都有效
func TestActiveIndexAlwaysValid(t *testing.T) {
	s, _ := newTestSelection(t, 6)
	ops := "nnpppppppnnnnnnnnnnnnppnpnpnp"
	expected := 0
	for _, op := range ops {
		if op == 'n' {
			s.Next()
			expected = (expected + 1) % 6
		} else {
			s.Prev()
			expected = (expected + 5) % 6
		}
		if s.ActiveIndex() < 0 || s.ActiveIndex() >= s.Count() {
			t.Fatalf("ActiveIndex = %d 越界", s.ActiveIndex())
		}
		if s.ActiveIndex() != expected {
			t.Fatalf("ActiveIndex = %d, 期望 %d", s.ActiveIndex(), expected)
		}
	}
}
