package game

import "sync"

// Latch 单槽方向锁存：输入协程写入，游戏循环每 Tick 读取一次
// 只保留最后一次写入（last-write-wins），不排队
type Latch struct {
	mu    sync.Mutex
	dir   Direction
	fresh bool
}

func NewLatch(initial Direction) *Latch {
	return &Latch{dir: initial}
}

// Store 写入最新方向；若覆盖了尚未被读取的不同方向，返回 true
func (l *Latch) Store(d Direction) (overwrote bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	overwrote = l.fresh && l.dir != d
	l.dir = d
	l.fresh = true
	return overwrote
}

// Load 复制当前方向并标记为已读取
func (l *Latch) Load() Direction {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fresh = false
	return l.dir
}
