package components

// ProjectileOwner 子弹归属
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

func (o ProjectileOwner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Stoppable 可取消的进行中动画（补间句柄）
type Stoppable interface {
	Stop()
}

// ProjectileComponent 飞行中的子弹
//
// Resolved 一旦置为 true，子弹不再参与任何碰撞检测，
// 保证同一颗子弹最多结算一次。
type ProjectileComponent struct {
	Owner    ProjectileOwner
	OriginX  float64
	OriginY  float64
	TargetY  float64
	Resolved bool
	Flight   Stoppable // 飞行补间，命中时停止
}
