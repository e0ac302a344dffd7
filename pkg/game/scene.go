package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene owns its entities, timers and tweens and advances them in Update.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，场景在窗口关闭前持久化需要保留的数据（如最高分）
type Saveable interface {
	// SaveOnExit 在程序退出前调用
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
