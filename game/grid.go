package game

import "fmt"

const (
	// Width, Height 棋盘固定尺寸
	Width  = 16
	Height = 16
)

// Position 棋盘坐标，x 为列、y 为行
type Position struct {
	X uint
	Y uint
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// TileKind 格子内容的种类
type TileKind int

const (
	TileEmpty TileKind = iota
	TileSnake
	TileFood
)

func (k TileKind) String() string {
	switch k {
	case TileSnake:
		return "snake"
	case TileFood:
		return "food"
	default:
		return "empty"
	}
}

// Tile 单个格子；Heading 仅在 Kind 为 TileSnake 时有意义，记录该段最后的移动方向
type Tile struct {
	Kind    TileKind
	Heading Direction
}

func EmptyTile() Tile                  { return Tile{Kind: TileEmpty} }
func FoodTile() Tile                   { return Tile{Kind: TileFood} }
func SnakeTile(heading Direction) Tile { return Tile{Kind: TileSnake, Heading: heading} }

func (t Tile) String() string {
	if t.Kind == TileSnake {
		return fmt.Sprintf("snake(%s)", t.Heading)
	}
	return t.Kind.String()
}

// Grid 环形（toroidal）棋盘，cells 按 [row][col] 存储
// 只负责坐标回绕，游戏规则由 Engine 维护
type Grid struct {
	width  int
	height int
	cells  [][]Tile
}

// NewGrid 创建全部为空的棋盘
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid grid size %dx%d", width, height))
	}
	cells := make([][]Tile, height)
	for y := range cells {
		cells[y] = make([]Tile, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// wrap 将任意坐标折回棋盘内
func (g *Grid) wrap(p Position) Position {
	return Position{X: p.X % uint(g.width), Y: p.Y % uint(g.height)}
}

func (g *Grid) TileAt(p Position) Tile {
	p = g.wrap(p)
	return g.cells[p.Y][p.X]
}

func (g *Grid) SetTile(p Position, t Tile) {
	p = g.wrap(p)
	g.cells[p.Y][p.X] = t
}

// Step 返回 p 沿 dir 方向回绕后的相邻格，不修改棋盘
func (g *Grid) Step(p Position, dir Direction) Position {
	p = g.wrap(p)
	dx, dy := dir.Delta()
	x := (int(p.X) + dx + g.width) % g.width
	y := (int(p.Y) + dy + g.height) % g.height
	return Position{X: uint(x), Y: uint(y)}
}

// Count 统计某类格子的数量
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, row := range g.cells {
		for _, t := range row {
			if t.Kind == kind {
				n++
			}
		}
	}
	return n
}

// EmptyCells 按行优先顺序列出所有空格
func (g *Grid) EmptyCells() []Position {
	var out []Position
	for y, row := range g.cells {
		for x, t := range row {
			if t.Kind == TileEmpty {
				out = append(out, Position{X: uint(x), Y: uint(y)})
			}
		}
	}
	return out
}

// Clone 深拷贝，便于比较 Tick 前后的状态
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal 逐格比较两个棋盘
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}
