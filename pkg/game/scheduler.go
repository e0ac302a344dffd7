package game

// TaskHandle 计划任务句柄
//
// Cancel 是幂等的：对已取消或已完成的任务调用 Cancel 不会有任何效果，
// nil 句柄上调用也是安全的。
type TaskHandle struct {
	cancelled bool
	done      bool
}

// Cancel 取消任务，返回本次调用是否真正取消了一个仍在等待的任务
func (h *TaskHandle) Cancel() bool {
	if h == nil || h.cancelled || h.done {
		return false
	}
	h.cancelled = true
	return true
}

// Active 任务仍在等待执行（未取消、未完成）
func (h *TaskHandle) Active() bool {
	return h != nil && !h.cancelled && !h.done
}

type scheduledTask struct {
	handle    *TaskHandle
	remaining float64 // 距离下次执行的时间（秒）
	interval  float64 // 重复任务的间隔，单次任务为 0
	repeat    bool
	fn        func()
}

// Scheduler 帧驱动的定时器
//
// 所有回调都在 Update 中按注册顺序同步执行。
// Update 期间新注册的任务从下一次 Update 开始计时。
type Scheduler struct {
	tasks []*scheduledTask
}

// NewScheduler 创建定时器
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make([]*scheduledTask, 0, 8)}
}

// After 在 delay 秒后执行一次 fn
func (s *Scheduler) After(delay float64, fn func()) *TaskHandle {
	return s.add(&scheduledTask{
		handle:    &TaskHandle{},
		remaining: delay,
		fn:        fn,
	})
}

// Every 每隔 interval 秒执行一次 fn，直到句柄被取消
func (s *Scheduler) Every(interval float64, fn func()) *TaskHandle {
	return s.add(&scheduledTask{
		handle:    &TaskHandle{},
		remaining: interval,
		interval:  interval,
		repeat:    true,
		fn:        fn,
	})
}

func (s *Scheduler) add(t *scheduledTask) *TaskHandle {
	s.tasks = append(s.tasks, t)
	return t.handle
}

// Update 推进所有任务
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *Scheduler) Update(deltaTime float64) {
	// 只处理本次 Update 开始前注册的任务；回调中可能增删任务，因此遍历快照
	current := append([]*scheduledTask(nil), s.tasks...)
	for _, t := range current {
		if !t.handle.Active() {
			continue
		}

		t.remaining -= deltaTime
		for t.remaining <= 0 && t.handle.Active() {
			if !t.repeat {
				t.handle.done = true
				t.fn()
				break
			}
			t.fn()
			if t.interval <= 0 {
				t.remaining = 0
				break
			}
			t.remaining += t.interval
		}
	}

	s.compact()
}

func (s *Scheduler) compact() {
	alive := s.tasks[:0]
	for _, t := range s.tasks {
		if t.handle.Active() {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = alive
}

// CancelAll 取消所有等待中的任务
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.handle.Cancel()
	}
	s.compact()
}

// Pending 等待中的任务数量
func (s *Scheduler) Pending() int {
	count := 0
	for _, t := range s.tasks {
		if t.handle.Active() {
			count++
		}
	}
	return count
}
