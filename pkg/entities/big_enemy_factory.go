package entities

import (
	"fmt"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
)

// NewBigEnemy 创建奖励敌人
// 从屏幕左侧外完全不可见的位置出发，横穿到右侧外
func NewBigEnemy(em *ecs.EntityManager, cfg *config.GameConfig, sprites SpriteSource) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	b := cfg.BigEnemy
	frames := lookupFrames(sprites, config.SpriteBigEnemy)
	width, height := spriteSize(frames, 1, b.Width, b.Height)

	startX := -width / 2
	endX := cfg.Screen.Width + width/2

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: startX, Y: b.Y})
	em.AddComponent(id, &components.CollisionComponent{Width: width, Height: height})
	em.AddComponent(id, newSpriteComponent(frames, cfg.Enemy.AnimationFPS, config.BigEnemyColor, 1))
	em.AddComponent(id, &components.BigEnemyComponent{
		StartX: startX,
		EndX:   endX,
		Points: b.Score,
	})

	return id, nil
}
