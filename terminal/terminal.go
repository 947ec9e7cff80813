// Package terminal 终端协作方：原始模式、按键读取、光标定位与文本输出
package terminal

import (
	"errors"
	"fmt"
)

// ErrNotTerminal 输入不是交互式终端
var ErrNotTerminal = errors.New("terminal: stdin is not a terminal")

// EventReader 阻塞读取下一个按键事件
type EventReader interface {
	ReadEvent() (KeyEvent, error)
}

// Terminal 游戏核心依赖的四项终端能力
type Terminal interface {
	EventReader
	EnterRaw() error
	Restore() error
	MoveTo(row, col int) error
	NextLine() error
	Write(s string) error
}

// flusher 带缓冲的终端在一帧结束时刷新
type flusher interface {
	Flush() error
}

// WithRawMode 在原始模式下执行 fn；无论正常返回、出错还是 panic 都会恢复终端
// panic 在恢复之后重新抛出
func WithRawMode(t Terminal, fn func() error) (err error) {
	if err := t.EnterRaw(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		r := recover()
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
		if r != nil {
			panic(r)
		}
	}()
	return fn()
}
