package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

const (
	csi         = "\x1b["
	hideCursor  = csi + "?25l"
	showCursor  = csi + "?25h"
	clearScreen = csi + "2J"
	resetAttrs  = csi + "0m"
)

// Console 基于 golang.org/x/term 与 ANSI 控制序列的终端实现
type Console struct {
	in *os.File
	fd int

	mu    sync.Mutex
	out   *bufio.Writer
	state *term.State

	// 只由读取协程访问
	pending []KeyEvent
	buf     [64]byte
}

// NewConsole in 必须是终端
func NewConsole(in *os.File, out io.Writer) (*Console, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &Console{in: in, fd: fd, out: bufio.NewWriter(out)}, nil
}

// EnterRaw 关闭行缓冲与回显，清屏并隐藏光标
func (c *Console) EnterRaw() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != nil {
		return nil
	}
	st, err := term.MakeRaw(c.fd)
	if err != nil {
		return err
	}
	c.state = st
	_, _ = c.out.WriteString(hideCursor + clearScreen + csi + "H")
	return c.out.Flush()
}

// Restore 恢复进入原始模式前的终端状态，可重复调用
func (c *Console) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return nil
	}
	_, _ = c.out.WriteString(resetAttrs + showCursor + "\r\n")
	ferr := c.out.Flush()
	err := term.Restore(c.fd, c.state)
	c.state = nil
	if err != nil {
		return err
	}
	return ferr
}

// ReadEvent 阻塞直到读到至少一个按键
func (c *Console) ReadEvent() (KeyEvent, error) {
	for len(c.pending) == 0 {
		n, err := c.in.Read(c.buf[:])
		if err != nil {
			return KeyEvent{}, err
		}
		c.pending = ParseKeys(c.buf[:n])
	}
	ev := c.pending[0]
	c.pending = c.pending[1:]
	return ev, nil
}

// MoveTo 行列从 0 开始
func (c *Console) MoveTo(row, col int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "%s%d;%dH", csi, row+1, col+1)
	return err
}

func (c *Console) NextLine() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.out.WriteString(csi + "1E")
	return err
}

func (c *Console) Write(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.out.WriteString(s)
	return err
}

func (c *Console) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Flush()
}
