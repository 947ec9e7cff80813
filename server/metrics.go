package server

import (
	"sync/atomic"
)

// GameMetrics 记录一局游戏运行期的关键指标（用于监控与调试）
type GameMetrics struct {
	TickCount         int64 // 成功推进的 Tick 次数
	FoodEaten         int64
	ReversalsRejected int64 // 因 180° 掉头被仲裁拒绝的方向请求
	InputsAccepted    int64 // 写入锁存的方向按键
	InputsOverwritten int64 // Tick 之间被后续按键覆盖的请求
	SpectatorFrames   int64 // 成功入队的观战帧
	SpectatorDropped  int64 // 因发送队列满被丢弃的观战帧
	TotalTickNs       int64 // Tick 累计耗时（纳秒）
}

func NewGameMetrics() *GameMetrics { return &GameMetrics{} }

func (m *GameMetrics) IncFoodEaten()         { atomic.AddInt64(&m.FoodEaten, 1) }
func (m *GameMetrics) IncReversalsRejected() { atomic.AddInt64(&m.ReversalsRejected, 1) }
func (m *GameMetrics) IncInputsAccepted()    { atomic.AddInt64(&m.InputsAccepted, 1) }
func (m *GameMetrics) IncInputsOverwritten() { atomic.AddInt64(&m.InputsOverwritten, 1) }
func (m *GameMetrics) AddSpectatorFrames(sent, dropped int) {
	atomic.AddInt64(&m.SpectatorFrames, int64(sent))
	atomic.AddInt64(&m.SpectatorDropped, int64(dropped))
}
func (m *GameMetrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Ticks 当前 Tick 序号
func (m *GameMetrics) Ticks() int64 { return atomic.LoadInt64(&m.TickCount) }

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *GameMetrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":         tick,
		"food_eaten":         atomic.LoadInt64(&m.FoodEaten),
		"reversals_rejected": atomic.LoadInt64(&m.ReversalsRejected),
		"inputs_accepted":    atomic.LoadInt64(&m.InputsAccepted),
		"inputs_overwritten": atomic.LoadInt64(&m.InputsOverwritten),
		"spectator_frames":   atomic.LoadInt64(&m.SpectatorFrames),
		"spectator_dropped":  atomic.LoadInt64(&m.SpectatorDropped),
		"avg_tick_ms":        avgMs,
	}
}
