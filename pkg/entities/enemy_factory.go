package entities

import (
	"fmt"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
)

// NewFormation 创建空的阵列实体，初始位置 (0, paddingY)，向右移动
func NewFormation(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	startY := cfg.Formation.PaddingY
	id := em.CreateEntity()
	em.AddComponent(id, &components.FormationComponent{
		X:           0,
		Y:           startY,
		TargetX:     0,
		TargetY:     startY,
		MovingRight: true,
		Members:     make([]ecs.EntityID, 0, cfg.Formation.Rows*cfg.Formation.Columns),
	})
	return id, nil
}

// NewEnemy 创建阵列中的一个敌人并加入阵列成员列表
//
// 参数:
//   - formationID: 所属阵列实体
//   - kind: 敌人种类（config.EnemyKind*）
//   - offsetX, offsetY: 相对阵列原点的偏移
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, sprites SpriteSource, formationID ecs.EntityID, kind int, offsetX, offsetY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if kind < 0 || kind >= config.EnemyKindCount {
		return 0, fmt.Errorf("invalid enemy kind %d", kind)
	}
	formation, ok := ecs.GetComponent[*components.FormationComponent](em, formationID)
	if !ok {
		return 0, fmt.Errorf("entity %d is not a formation", formationID)
	}

	frames := lookupFrames(sprites, config.EnemySpriteNames[kind])
	width, height := spriteSize(frames, 1, cfg.Enemy.Width, cfg.Enemy.Height)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: formation.X + offsetX,
		Y: formation.Y + offsetY,
	})
	em.AddComponent(id, &components.CollisionComponent{Width: width, Height: height})
	em.AddComponent(id, newSpriteComponent(frames, cfg.Enemy.AnimationFPS, config.EnemyColors[kind], 1))
	em.AddComponent(id, &components.EnemyComponent{
		Kind:      kind,
		OffsetX:   offsetX,
		OffsetY:   offsetY,
		Formation: formationID,
	})

	formation.Members = append(formation.Members, id)
	return id, nil
}

// BuildFormation 创建完整的敌人阵列
// 成员按列优先顺序创建：第 i 列第 j 行的偏移为 (paddingX*(i+1), paddingY*(j+1))，
// 种类由 rowLayout[j] 决定
//
// 返回:
//   - ecs.EntityID: 阵列实体ID
//   - error: 创建失败时返回错误
func BuildFormation(em *ecs.EntityManager, cfg *config.GameConfig, sprites SpriteSource) (ecs.EntityID, error) {
	formationID, err := NewFormation(em, cfg)
	if err != nil {
		return 0, err
	}

	f := cfg.Formation
	for i := 0; i < f.Columns; i++ {
		for j := 0; j < f.Rows; j++ {
			offsetX := f.PaddingX * float64(i+1)
			offsetY := f.PaddingY * float64(j+1)
			if _, err := NewEnemy(em, cfg, sprites, formationID, f.RowLayout[j], offsetX, offsetY); err != nil {
				return 0, fmt.Errorf("failed to create enemy at column %d row %d: %w", i, j, err)
			}
		}
	}

	return formationID, nil
}
