package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// saveableScene 实现 Saveable 的场景
type saveableScene struct {
	MockScene
	saveCalls int
	result    bool
}

func (s *saveableScene) SaveOnExit() bool {
	s.saveCalls++
	return s.result
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no current scene initially")
	}
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.4f, got %.4f", deltaTime, mockScene.deltaTime)
	}
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	// 没有活动场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should report success")
	}
}

func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

func TestSceneManagerSaveOnExit(t *testing.T) {
	tests := []struct {
		name   string
		result bool
	}{
		{"save succeeds", true},
		{"save fails", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			scene := &saveableScene{result: tt.result}
			sm.SwitchTo(scene)

			if got := sm.SaveOnExit(); got != tt.result {
				t.Errorf("SaveOnExit() = %v, want %v", got, tt.result)
			}
			if scene.saveCalls != 1 {
				t.Errorf("Expected 1 save call, got %d", scene.saveCalls)
			}
		})
	}
}
