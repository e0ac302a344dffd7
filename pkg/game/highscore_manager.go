package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreRecord 持久化的最高分记录
type HighScoreRecord struct {
	HighScore int       `yaml:"highScore"`
	UpdatedAt time.Time `yaml:"updatedAt,omitempty"`
}

// HighScoreManager 最高分管理器
// 负责最高分的加载、比较和保存
//
// 存储位置：gdata 对象 "highscore"，属性 "global"，内容为 YAML
type HighScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	record       HighScoreRecord
}

// 存储路径常量
const (
	highScoreObject   = "highscore"
	highScoreProperty = "global"
)

// NewHighScoreManager 创建最高分管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅保存在内存）
//
// 返回：
//   - *HighScoreManager: 管理器实例
//   - error: 目前总是 nil，加载失败只记录警告
func NewHighScoreManager(gdataManager *gdata.Manager) (*HighScoreManager, error) {
	hm := &HighScoreManager{gdataManager: gdataManager}

	if err := hm.Load(); err != nil {
		// 加载失败不是致命错误，从 0 开始
		log.Printf("[HighScoreManager] Warning: Failed to load high score: %v (starting from 0)", err)
	}

	return hm, nil
}

// Load 从 gdata 读取最高分
//
// 如果 gdataManager 为 nil 或记录不存在，最高分为 0
func (hm *HighScoreManager) Load() error {
	hm.record = HighScoreRecord{}

	if hm.gdataManager == nil {
		return nil
	}

	if !hm.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var record HighScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if record.HighScore < 0 {
		return fmt.Errorf("stored high score is negative: %d", record.HighScore)
	}

	hm.record = record
	log.Printf("[HighScoreManager] High score loaded: %d", record.HighScore)
	return nil
}

// Save 写入 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (hm *HighScoreManager) Save() error {
	if hm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&hm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	if err := hm.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScoreManager] High score saved: %d", hm.record.HighScore)
	return nil
}

// Get 当前最高分
func (hm *HighScoreManager) Get() int {
	return hm.record.HighScore
}

// Submit 提交一局的最终得分
//
// 比较前重新读取存储，只有 score 大于已保存的最高分时才写入。
// 读取失败时沿用内存中的记录。
//
// 返回：
//   - best: 提交后的最高分，即 max(之前的最高分, score)
//   - improved: 是否刷新了最高分
//   - err: 保存失败时返回错误（内存中的最高分仍然会更新）
func (hm *HighScoreManager) Submit(score int) (best int, improved bool, err error) {
	if hm.gdataManager != nil {
		prev := hm.record
		if err := hm.Load(); err != nil {
			log.Printf("[HighScoreManager] Warning: Failed to reload high score: %v (using cached %d)", err, prev.HighScore)
			hm.record = prev
		}
	}

	if score <= hm.record.HighScore {
		return hm.record.HighScore, false, nil
	}

	hm.record.HighScore = score
	hm.record.UpdatedAt = time.Now()
	if err := hm.Save(); err != nil {
		return score, true, err
	}
	return score, true, nil
}

// Reset 把最高分清零并保存
func (hm *HighScoreManager) Reset() error {
	hm.record = HighScoreRecord{UpdatedAt: time.Now()}
	return hm.Save()
}
