package components

import "github.com/brendino500/space-invaders/pkg/ecs"

// FormationComponent 敌人阵列（作为一个刚体整体移动）
//
// X/Y 为当前显示位置（补间中），TargetX/TargetY 为逻辑位置。
// 所有移动决策都基于逻辑位置，成员的世界坐标基于显示位置。
type FormationComponent struct {
	X, Y             float64
	TargetX, TargetY float64

	MovingRight     bool // 当前水平方向
	MoveDownPending bool // 已到达边界，下一步向下移动（粘滞）

	// Members 成员列表，保持创建顺序，唯一
	Members []ecs.EntityID

	Motion Stoppable // 当前位移补间
}

// RemoveMember 从成员列表中移除实体，返回是否找到
func (f *FormationComponent) RemoveMember(id ecs.EntityID) bool {
	for i, m := range f.Members {
		if m == id {
			f.Members = append(f.Members[:i], f.Members[i+1:]...)
			return true
		}
	}
	return false
}
