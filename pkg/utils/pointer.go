package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 一帧内的指针状态（鼠标或触摸）
type PointerState struct {
	X, Y float64
	// HasPosition 指针位置有效（桌面端始终有效，移动端仅在触摸时有效）
	HasPosition bool
	// JustPressed 本帧刚按下（鼠标左键或新触点）
	JustPressed bool
	// Touch 位置来自触摸
	Touch bool
}

// ReadPointer 读取当前指针状态
// 新触点优先，其次是正在按住的触点，最后是鼠标
func ReadPointer() PointerState {
	var p PointerState
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		p = touchState(x, y, true)
	} else if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		p = touchState(x, y, false)
	} else {
		x, y := ebiten.CursorPosition()
		p = mouseState(x, y, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	}

	// 移动端没有悬停，没有触点时光标位置无意义
	if IsMobile() && !p.Touch {
		p.HasPosition = false
	}
	return p
}

func touchState(x, y int, pressed bool) PointerState {
	return PointerState{X: float64(x), Y: float64(y), HasPosition: true, JustPressed: pressed, Touch: true}
}

func mouseState(x, y int, pressed bool) PointerState {
	return PointerState{X: float64(x), Y: float64(y), HasPosition: true, JustPressed: pressed}
}
