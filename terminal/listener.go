package terminal

import (
	"context"
	"fmt"

	"termsnake/game"
	"termsnake/server"
)

// InputRecorder 输入指标
type InputRecorder interface {
	IncInputsAccepted()
	IncInputsOverwritten()
}

// Listener 独立协程阻塞读取按键，把最新方向写入锁存
// 等待按键时不持有锁
type Listener struct {
	Events    EventReader
	Latch     *game.Latch
	Interrupt func() // Ctrl+C 时调用，由主循环负责有序退出
	Metrics   InputRecorder
}

// Run 直到中断组合键（返回 nil）或读取失败（返回错误）
func (l *Listener) Run(ctx context.Context) error {
	for {
		ev, err := l.Events.ReadEvent()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if ev.IsInterrupt() {
			server.Log.Info("interrupt chord received")
			if l.Interrupt != nil {
				l.Interrupt()
			}
			return nil
		}
		dir, ok := DirectionFor(ev)
		if !ok {
			continue
		}
		overwrote := l.Latch.Store(dir)
		if l.Metrics != nil {
			l.Metrics.IncInputsAccepted()
			if overwrote {
				l.Metrics.IncInputsOverwritten()
			}
		}
	}
}
