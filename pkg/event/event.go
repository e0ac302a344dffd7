// Package event 提供单一的事件队列
//
// 系统只负责发布事件，由场景在每帧末尾统一取出并处理，
// 不存在隐式的监听者注册。
package event

// EventType 事件类型
type EventType string

const (
	PlayerShoot       EventType = "PlayerShoot"       // 玩家按下开火键
	EnemyShoot        EventType = "EnemyShoot"        // 敌人发射了一颗子弹
	PlayerCaught      EventType = "PlayerCaught"      // 阵列到达玩家所在行
	PlayerHit         EventType = "PlayerHit"         // 玩家被敌人子弹击中
	EnemyDestroyed    EventType = "EnemyDestroyed"    // 阵列敌人被击毁
	BigEnemyDestroyed EventType = "BigEnemyDestroyed" // 奖励敌人被击毁
	BigEnemyEscaped   EventType = "BigEnemyEscaped"   // 奖励敌人安全离开屏幕
	WaveCleared       EventType = "WaveCleared"       // 阵列被清空
)

// Event 事件
type Event struct {
	Type   EventType
	X, Y   float64 // 事件发生位置（如果有）
	Points int     // 得分（由玩家子弹造成的击毁）
}

// Queue 事件队列，按发布顺序处理
type Queue struct {
	pending []Event
}

// NewQueue 创建事件队列
func NewQueue() *Queue {
	return &Queue{pending: make([]Event, 0, 8)}
}

// Publish 发布事件
func (q *Queue) Publish(e Event) {
	q.pending = append(q.pending, e)
}

// Len 待处理事件数量
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain 依次处理所有待处理事件
// 处理过程中新发布的事件会在同一次 Drain 中被处理
func (q *Queue) Drain(handle func(Event)) {
	for i := 0; i < len(q.pending); i++ {
		handle(q.pending[i])
	}
	q.pending = q.pending[:0]
}

// Clear 丢弃所有待处理事件
func (q *Queue) Clear() {
	q.pending = q.pending[:0]
}
