package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心，用于子弹与敌人/玩家/奖励敌人的重叠检测
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Bounds 返回以 (x, y) 为中心时碰撞盒的左上角和右下角
func (c *CollisionComponent) Bounds(x, y float64) (left, top, right, bottom float64) {
	return x - c.Width/2, y - c.Height/2, x + c.Width/2, y + c.Height/2
}
