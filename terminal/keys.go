package terminal

import (
	"unicode/utf8"

	"termsnake/game"
)

// Key 按键种类
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyEnter
)

// KeyEvent 一次按键；Ctrl 为 true 时 Rune 是被组合的小写字母
type KeyEvent struct {
	Key  Key
	Rune rune
	Ctrl bool
}

// IsInterrupt Ctrl+C 强制退出组合键
func (ev KeyEvent) IsInterrupt() bool {
	return ev.Key == KeyRune && ev.Ctrl && ev.Rune == 'c'
}

// DirectionFor 方向键与 WASD（不区分大小写）映射为方向
func DirectionFor(ev KeyEvent) (game.Direction, bool) {
	switch ev.Key {
	case KeyUp:
		return game.DirUp, true
	case KeyDown:
		return game.DirDown, true
	case KeyLeft:
		return game.DirLeft, true
	case KeyRight:
		return game.DirRight, true
	case KeyRune:
		if ev.Ctrl {
			return game.DirNone, false
		}
		switch ev.Rune {
		case 'w', 'W':
			return game.DirUp, true
		case 's', 'S':
			return game.DirDown, true
		case 'a', 'A':
			return game.DirLeft, true
		case 'd', 'D':
			return game.DirRight, true
		}
	}
	return game.DirNone, false
}

// ParseKeys 解码一次 read 得到的原始字节
// 支持可打印字符（UTF-8）、Ctrl+字母、ESC [ A-D / ESC O A-D 方向键与单独的 ESC
func ParseKeys(b []byte) []KeyEvent {
	var out []KeyEvent
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0x1b:
			if i+1 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				ev, n := parseEscape(b[i:])
				out = append(out, ev)
				i += n
				continue
			}
			out = append(out, KeyEvent{Key: KeyEsc})
			i++
		case c == '\r' || c == '\n':
			out = append(out, KeyEvent{Key: KeyEnter})
			i++
		case c >= 0x01 && c <= 0x1a:
			out = append(out, KeyEvent{Key: KeyRune, Rune: rune('a' + c - 1), Ctrl: true})
			i++
		case c < 0x20 || c == 0x7f:
			out = append(out, KeyEvent{Key: KeyUnknown})
			i++
		default:
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError {
				out = append(out, KeyEvent{Key: KeyUnknown})
			} else {
				out = append(out, KeyEvent{Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return out
}

// parseEscape b 以 ESC [ 或 ESC O 开头，返回事件与消耗的字节数
func parseEscape(b []byte) (KeyEvent, int) {
	if len(b) < 3 {
		return KeyEvent{Key: KeyEsc}, len(b)
	}
	switch b[2] {
	case 'A':
		return KeyEvent{Key: KeyUp}, 3
	case 'B':
		return KeyEvent{Key: KeyDown}, 3
	case 'C':
		return KeyEvent{Key: KeyRight}, 3
	case 'D':
		return KeyEvent{Key: KeyLeft}, 3
	}
	// 其它 CSI 序列：跳到终止字节（0x40-0x7e）为止
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			return KeyEvent{Key: KeyUnknown}, i + 1
		}
	}
	return KeyEvent{Key: KeyUnknown}, len(b)
}
