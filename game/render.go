package game

const (
	GlyphEmpty = ' '
	GlyphFood  = 'O'
)

// Glyph 每种格子对应一个字符，蛇身按方向区分
func Glyph(t Tile) rune {
	switch t.Kind {
	case TileFood:
		return GlyphFood
	case TileSnake:
		switch t.Heading {
		case DirUp:
			return '^'
		case DirDown:
			return 'v'
		case DirLeft:
			return '<'
		case DirRight:
			return '>'
		}
		return '#'
	default:
		return GlyphEmpty
	}
}

// Render 将棋盘转换为逐行字符串，每行宽度等于棋盘宽度
func Render(g *Grid) []string {
	rows := make([]string, g.Height())
	buf := make([]rune, g.Width())
	for y := range rows {
		for x := range buf {
			buf[x] = Glyph(g.cells[y][x])
		}
		rows[y] = string(buf)
	}
	return rows
}

// Render 渲染当前局面
func (e *Engine) Render() []string {
	return Render(e.grid)
}
