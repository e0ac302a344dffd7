package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenHandle 进行中补间的句柄
//
// Stop 是幂等的，nil 句柄上调用也是安全的。
// 停止后的补间不会再触发 onUpdate / onComplete，即使在同一帧内。
type TweenHandle struct {
	stopped  bool
	finished bool
}

// Stop 停止补间
func (h *TweenHandle) Stop() {
	if h == nil {
		return
	}
	h.stopped = true
}

// Active 补间仍在进行
func (h *TweenHandle) Active() bool {
	return h != nil && !h.stopped && !h.finished
}

// Finished 补间已自然结束
func (h *TweenHandle) Finished() bool {
	return h != nil && h.finished
}

type tweenEntry struct {
	tween      *gween.Tween
	handle     *TweenHandle
	onUpdate   func(value float64)
	onComplete func()
}

// TweenManager 管理所有进行中的补间
//
// 没有全局实例：场景持有自己的 TweenManager 并在每帧调用 Update。
// 同一帧内补间按注册顺序推进。
type TweenManager struct {
	entries []*tweenEntry
}

// NewTweenManager 创建补间管理器
func NewTweenManager() *TweenManager {
	return &TweenManager{entries: make([]*tweenEntry, 0, 16)}
}

// Animate 在 duration 秒内把数值从 from 插值到 to
//
// 参数:
//   - easing: 缓动函数（如 ease.Linear、ease.InOutSine），nil 视为线性
//   - onUpdate: 每次推进后以当前值调用，可为 nil
//   - onComplete: 到达终点后调用一次，可为 nil
//
// 返回:
//   - *TweenHandle: 可用于提前停止补间
func (tm *TweenManager) Animate(from, to, duration float64, easing ease.TweenFunc, onUpdate func(float64), onComplete func()) *TweenHandle {
	if easing == nil {
		easing = ease.Linear
	}
	entry := &tweenEntry{
		tween:      gween.New(float32(from), float32(to), float32(duration), easing),
		handle:     &TweenHandle{},
		onUpdate:   onUpdate,
		onComplete: onComplete,
	}
	tm.entries = append(tm.entries, entry)
	return entry.handle
}

// Update 推进所有补间
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (tm *TweenManager) Update(deltaTime float64) {
	current := append([]*tweenEntry(nil), tm.entries...)
	for _, e := range current {
		if !e.handle.Active() {
			continue
		}

		value, done := e.tween.Update(float32(deltaTime))
		if e.onUpdate != nil {
			e.onUpdate(float64(value))
		}
		// onUpdate 中可能已经停止了补间（如子弹命中）
		if !e.handle.Active() {
			continue
		}
		if done {
			e.handle.finished = true
			if e.onComplete != nil {
				e.onComplete()
			}
		}
	}

	tm.compact()
}

func (tm *TweenManager) compact() {
	alive := tm.entries[:0]
	for _, e := range tm.entries {
		if e.handle.Active() {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(tm.entries); i++ {
		tm.entries[i] = nil
	}
	tm.entries = alive
}

// StopAll 停止所有补间
func (tm *TweenManager) StopAll() {
	for _, e := range tm.entries {
		e.handle.Stop()
	}
	tm.compact()
}

// Active 进行中的补间数量
func (tm *TweenManager) Active() int {
	count := 0
	for _, e := range tm.entries {
		if e.handle.Active() {
			count++
		}
	}
	return count
}
