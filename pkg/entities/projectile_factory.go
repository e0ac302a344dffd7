package entities

import (
	"fmt"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
)

// NewProjectile 创建子弹实体
// 玩家子弹飞向屏幕顶部 (y=0)，敌人子弹飞出屏幕底部 (y=H+子弹高度)
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - sprites: 精灵来源，可为 nil
//   - originX, originY: 发射位置
//   - owner: 子弹归属
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
//   - error: 参数无效时返回错误
func NewProjectile(em *ecs.EntityManager, cfg *config.GameConfig, sprites SpriteSource, originX, originY float64, owner components.ProjectileOwner) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	spriteName := config.SpriteProjectile
	fallback := config.ProjectileColor
	if owner == components.OwnerEnemy {
		spriteName = config.SpriteEnemyProjectile
		fallback = config.EnemyProjectileColor
	}

	p := cfg.Projectile
	frames := lookupFrames(sprites, spriteName)
	width, height := spriteSize(frames, p.Scale, p.Width, p.Height)

	targetY := 0.0
	if owner == components.OwnerEnemy {
		targetY = cfg.Screen.Height + height
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: originX, Y: originY})
	em.AddComponent(id, &components.CollisionComponent{Width: width, Height: height})
	em.AddComponent(id, newSpriteComponent(frames, 0, fallback, p.Scale))
	em.AddComponent(id, &components.ProjectileComponent{
		Owner:   owner,
		OriginX: originX,
		OriginY: originY,
		TargetY: targetY,
	})

	return id, nil
}
