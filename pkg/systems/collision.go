package systems

import (
	"math"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/ecs"
)

// Overlaps 检查两个以中心点定位的矩形是否严格重叠
// 边缘恰好接触不算重叠
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx) < (aw+bw)/2 &&
		math.Abs(ay-by) < (ah+bh)/2
}

// entitiesOverlap 检查两个实体的碰撞盒是否重叠
// 任一实体缺少位置或碰撞组件、或已被标记删除时返回 false
func entitiesOverlap(em *ecs.EntityManager, a, b ecs.EntityID) bool {
	if !em.IsAlive(a) || !em.IsAlive(b) {
		return false
	}

	posA, ok := ecs.GetComponent[*components.PositionComponent](em, a)
	if !ok {
		return false
	}
	colA, ok := ecs.GetComponent[*components.CollisionComponent](em, a)
	if !ok {
		return false
	}
	posB, ok := ecs.GetComponent[*components.PositionComponent](em, b)
	if !ok {
		return false
	}
	colB, ok := ecs.GetComponent[*components.CollisionComponent](em, b)
	if !ok {
		return false
	}

	return Overlaps(posA.X, posA.Y, colA.Width, colA.Height, posB.X, posB.Y, colB.Width, colB.Height)
}
