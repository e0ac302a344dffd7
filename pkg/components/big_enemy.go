package components

// BigEnemyComponent 横穿屏幕的奖励敌人
type BigEnemyComponent struct {
	StartX   float64
	EndX     float64
	Points   int
	Traverse Stoppable // 横穿补间
}
