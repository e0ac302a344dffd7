package game

import "github.com/brendino500/space-invaders/pkg/config"

// GamePhase 游戏阶段
type GamePhase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying GamePhase = iota
	// PhaseGameOver 游戏结束，等待任意键重新开始
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// SessionState 一局游戏的状态
//
// 由场景独占持有，系统只通过事件影响它。
// StepInterval 在关卡之间持续衰减，只有 Reset 才恢复基准值。
type SessionState struct {
	Phase          GamePhase
	Score          int
	ScoreIncrement int     // 当前每次击中阵列敌人的得分
	StepInterval   float64 // 阵列移动间隔（秒）
	Level          int
	HighScore      int

	baseIncrement   int
	levelMultiplier int
	baseInterval    float64
	speedFactor     float64
}

// NewSessionState 根据配置创建会话状态，并处于新一局的初始状态
func NewSessionState(cfg *config.GameConfig) *SessionState {
	s := &SessionState{
		baseIncrement:   cfg.Score.BaseIncrement,
		levelMultiplier: cfg.Score.LevelMultiplier,
		baseInterval:    cfg.Formation.StepInterval,
		speedFactor:     cfg.Formation.SpeedFactor,
	}
	s.Reset()
	return s
}

// Reset 开始新的一局：分数、得分增量、速度全部恢复基准值
// HighScore 不受影响
func (s *SessionState) Reset() {
	s.Phase = PhasePlaying
	s.Score = 0
	s.ScoreIncrement = s.baseIncrement
	s.StepInterval = s.baseInterval
	s.Level = 1
}

// IsPlaying 是否处于游戏进行阶段
func (s *SessionState) IsPlaying() bool {
	return s.Phase == PhasePlaying
}

// RegisterHit 记录一次阵列敌人击杀，返回本次得分
func (s *SessionState) RegisterHit() int {
	s.Score += s.ScoreIncrement
	return s.ScoreIncrement
}

// AddBonus 增加固定奖励分（奖励敌人）
func (s *SessionState) AddBonus(points int) {
	if points > 0 {
		s.Score += points
	}
}

// CompleteLevel 清空一波：得分增量翻倍，移动间隔按系数缩短
func (s *SessionState) CompleteLevel() {
	s.ScoreIncrement *= s.levelMultiplier
	s.StepInterval *= s.speedFactor
	s.Level++
}

// EnterGameOver 进入结束阶段
func (s *SessionState) EnterGameOver() {
	s.Phase = PhaseGameOver
}
