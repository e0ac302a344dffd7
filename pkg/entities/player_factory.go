package entities

import (
	"fmt"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
)

// NewPlayer 创建玩家实体
// 玩家位于屏幕水平中心、高度 yRatio 处，每次按键移动一个精灵宽度
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - sprites: 精灵来源，可为 nil
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 参数无效时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig, sprites SpriteSource) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	frames := lookupFrames(sprites, config.SpritePlayer)
	width, height := spriteSize(frames, 1, cfg.Player.Width, cfg.Player.Height)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.PlayerY(),
	})
	em.AddComponent(id, &components.CollisionComponent{Width: width, Height: height})
	em.AddComponent(id, newSpriteComponent(frames, cfg.Player.AnimationFPS, config.PlayerColor, 1))
	em.AddComponent(id, &components.PlayerComponent{
		Step:        width,
		Interactive: true,
	})

	return id, nil
}
