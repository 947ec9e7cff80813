package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Screen 在终端左上角绘制带边框的棋盘和一行状态
type Screen struct {
	t Terminal
}

func NewScreen(t Terminal) *Screen {
	return &Screen{t: t}
}

// Draw 每帧从 (0,0) 覆盖重绘，不清屏以避免闪烁
func (s *Screen) Draw(rows []string, status string) error {
	width := 0
	if len(rows) > 0 {
		width = utf8.RuneCountInString(rows[0])
	}
	border := "+" + strings.Repeat("-", width) + "+"

	w := &lineWriter{t: s.t}
	w.moveTo(0, 0)
	w.line(border)
	for _, r := range rows {
		w.line("|" + r + "|")
	}
	w.line(border)
	// 用空格补齐，覆盖上一帧更长的状态文本
	w.write(fmt.Sprintf("%-*s", width+2, status))
	if w.err != nil {
		return w.err
	}
	if f, ok := s.t.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// lineWriter 记录第一个错误，之后的写入全部跳过
type lineWriter struct {
	t   Terminal
	err error
}

func (w *lineWriter) moveTo(row, col int) {
	if w.err == nil {
		w.err = w.t.MoveTo(row, col)
	}
}

func (w *lineWriter) write(s string) {
	if w.err == nil {
		w.err = w.t.Write(s)
	}
}

func (w *lineWriter) line(s string) {
	w.write(s)
	if w.err == nil {
		w.err = w.t.NextLine()
	}
}
