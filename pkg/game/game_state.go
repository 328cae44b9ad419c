package game

import (
	"fmt"

	"github.com/decker502/folio/pkg/config"
)

// GameState 存储跨系统共享的运行时状态
//
// 所有读写都发生在同一个帧回调内，不需要加锁。
type GameState struct {
	Projects  []config.Project
	Selection *Selection
	Triggers  *TriggerQueue

	// Clock 单调时钟（秒），每帧开始时推进一次
	Clock float64

	// PointerX/PointerY 归一化指针坐标 [-1, 1]，Y 向上为正
	PointerX float64
	PointerY float64

	settingsManager *SettingsManager
}

// NewGameState 创建运行时状态
//
// 参数：
//   - projects: 项目列表（只读），不能为空
//   - settings: 设置管理器，可为 nil（使用默认设置，不持久化）
func NewGameState(projects []config.Project, settings *SettingsManager) (*GameState, error) {
	triggers := NewTriggerQueue()
	selection, err := NewSelection(len(projects), triggers)
	if err != nil {
		return nil, fmt.Errorf("failed to create selection: %w", err)
	}
	if settings == nil {
		settings, _ = NewSettingsManager(nil)
	}
	return &GameState{
		Projects:        projects,
		Selection:       selection,
		Triggers:        triggers,
		settingsManager: settings,
	}, nil
}

// ActiveProject 返回当前选中的项目
func (gs *GameState) ActiveProject() config.Project {
	return gs.Projects[gs.Selection.ActiveIndex()]
}

// Advance 推进时钟，返回本帧 delta
func (gs *GameState) Advance(dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	gs.Clock += dt
	return dt
}

// SetPointer 记录归一化指针位置，超出范围的值会被裁剪
func (gs *GameState) SetPointer(x, y float64) {
	gs.PointerX = clampUnit(x)
	gs.PointerY = clampUnit(y)
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
