// Package session 游戏循环：固定节奏读取输入、推进引擎、渲染与广播
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"termsnake/game"
	"termsnake/server"
)

const (
	// TicksPerSecond 世界推进频率（10 TPS）
	TicksPerSecond = 10
)

var tickInterval = time.Duration(1000/TicksPerSecond) * time.Millisecond // 100ms

// Display 把渲染结果画到终端
type Display interface {
	Draw(rows []string, status string) error
}

// Spectators 观战广播，可为 nil
type Spectators interface {
	Publish(f server.Frame)
}

// Loop 唯一持有并修改游戏状态的协程
type Loop struct {
	engine     *game.Engine
	latch      *game.Latch
	display    Display
	spectators Spectators
	metrics    *server.GameMetrics
	interval   time.Duration
}

func NewLoop(engine *game.Engine, latch *game.Latch, display Display, spectators Spectators, metrics *server.GameMetrics) *Loop {
	if metrics == nil {
		metrics = server.NewGameMetrics()
	}
	return &Loop{
		engine:     engine,
		latch:      latch,
		display:    display,
		spectators: spectators,
		metrics:    metrics,
		interval:   tickInterval,
	}
}

// Run 推进直到终局、取消或输入协程结束
// 终局返回引擎错误（ErrSelfCollision / ErrBoardFull / *InvariantError）；
// ctx 取消或输入协程正常结束（中断组合键）返回 nil
func (l *Loop) Run(ctx context.Context, inputDone <-chan error) error {
	server.Log.Infow("session started", "head", l.engine.Head().String(), "food", l.engine.Food().String())
	if err := l.render(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			server.Log.Info("session cancelled")
			return nil
		case err := <-inputDone:
			if err != nil {
				return fmt.Errorf("input listener: %w", err)
			}
			server.Log.Info("session interrupted")
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := l.step(); err != nil {
				return err
			}
		}
	}
}

// step 核心：读取最新输入 → 推进 → 渲染
func (l *Loop) step() error {
	start := time.Now()
	l.engine.Steer(l.latch.Load())
	res, err := l.engine.Tick()
	if res.Rejected {
		server.Log.Debugw("reversal rejected", "heading", res.Direction.String())
		l.metrics.IncReversalsRejected()
	}
	if res.Ate {
		l.metrics.IncFoodEaten()
		server.Log.Infow("food eaten", "score", l.engine.Score(), "length", l.engine.Length(), "food", res.Food.String())
	}
	if err != nil {
		l.logOutcome(err)
		// 终局帧仍推送给观战端
		l.publish()
		return err
	}
	l.metrics.AddTick(time.Since(start).Nanoseconds())
	return l.render()
}

func (l *Loop) render() error {
	rows := l.engine.Render()
	if err := l.display.Draw(rows, l.status()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	l.publishRows(rows)
	return nil
}

func (l *Loop) publish() {
	l.publishRows(l.engine.Render())
}

func (l *Loop) publishRows(rows []string) {
	if l.spectators == nil {
		return
	}
	l.spectators.Publish(server.NewFrame(l.metrics.Ticks(), l.engine.State().String(),
		l.engine.Score(), l.engine.Length(), rows))
}

func (l *Loop) status() string {
	return fmt.Sprintf("score: %d  length: %d  (arrows/WASD, Ctrl+C quits)", l.engine.Score(), l.engine.Length())
}

func (l *Loop) logOutcome(err error) {
	switch {
	case errors.Is(err, game.ErrSelfCollision), errors.Is(err, game.ErrBoardFull):
		server.Log.Infow("game over", "reason", err.Error(), "score", l.engine.Score(), "length", l.engine.Length())
	default:
		server.Log.Errorw("game aborted", "error", err)
	}
}
