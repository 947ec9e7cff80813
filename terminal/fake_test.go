package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// fakeTerm 记录所有输出操作，按预设序列返回按键
type fakeTerm struct {
	mu       sync.Mutex
	events   []KeyEvent
	readErr  error
	enterErr error
	raw      bool
	restores int
	flushes  int
	ops      []string
}

func (f *fakeTerm) ReadEvent() (KeyEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		if f.readErr != nil {
			return KeyEvent{}, f.readErr
		}
		return KeyEvent{}, io.EOF
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeTerm) EnterRaw() error {
	if f.enterErr != nil {
		return f.enterErr
	}
	f.raw = true
	return nil
}

func (f *fakeTerm) Restore() error {
	f.raw = false
	f.restores++
	return nil
}

func (f *fakeTerm) MoveTo(row, col int) error {
	f.ops = append(f.ops, fmt.Sprintf("move %d,%d", row, col))
	return nil
}

func (f *fakeTerm) NextLine() error {
	f.ops = append(f.ops, "nl")
	return nil
}

func (f *fakeTerm) Write(s string) error {
	f.ops = append(f.ops, "w:"+s)
	return nil
}

func (f *fakeTerm) Flush() error {
	f.flushes++
	return nil
}

// text 将写入内容按 NextLine 切分为行
func (f *fakeTerm) text() []string {
	var lines []string
	var cur strings.Builder
	for _, op := range f.ops {
		switch {
		case op == "nl":
			lines = append(lines, cur.String())
			cur.Reset()
		case strings.HasPrefix(op, "w:"):
			cur.WriteString(strings.TrimPrefix(op, "w:"))
		}
	}
	return append(lines, cur.String())
}
