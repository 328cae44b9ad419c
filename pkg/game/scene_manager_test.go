package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	closed       bool
	closeErr     error
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// Close records that Close was called.
func (m *MockScene) Close() error {
	m.closed = true
	return m.closeErr
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdateDraw verifies that Update/Draw are forwarded.
func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()

	// 没有场景时不崩溃
	sm.Update(0.016)
	sm.Draw(nil)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded correctly: called=%v dt=%v", mockScene.updateCalled, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerClose verifies that Close reaches scenes implementing Closer.
func TestSceneManagerClose(t *testing.T) {
	sm := NewSceneManager()
	sm.Close() // 没有场景时不崩溃

	mockScene := &MockScene{closeErr: errors.New("disk full")}
	sm.SwitchTo(mockScene)
	sm.Close()
	if !mockScene.closed {
		t.Error("Close was not forwarded to the scene")
	}
}
