package components

import "github.com/brendino500/space-invaders/pkg/ecs"

// EnemyComponent 阵列中的敌人
// OffsetX/OffsetY 是相对阵列原点的偏移，世界坐标 = 阵列偏移 + 成员偏移
type EnemyComponent struct {
	Kind      int          // 敌人种类（config.EnemyKind*）
	OffsetX   float64      // 相对阵列的X偏移
	OffsetY   float64      // 相对阵列的Y偏移
	Formation ecs.EntityID // 所属阵列实体
}
