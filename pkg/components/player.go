package components

// PlayerComponent 玩家控制状态
type PlayerComponent struct {
	Step        float64 // 每次按键移动的距离（等于精灵宽度）
	Interactive bool    // 是否响应键盘输入（游戏结束后为 false）
	FacingLeft  bool
}
