package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// State 引擎状态机：Running → GameOver（终态）
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "gameover"
	}
	return "running"
}

var (
	// ErrSelfCollision 蛇头撞上自身，正常的终局
	ErrSelfCollision = errors.New("self-collision")
	// ErrBoardFull 已无空格可放置食物，同样视为终局
	ErrBoardFull = errors.New("board full")
	// ErrInvariant 内部状态不一致（缺陷），需要带上下文上报
	ErrInvariant = errors.New("invariant violation")
)

// InvariantError 记录出现不一致时的完整位置信息
type InvariantError struct {
	Reason string
	Head   Position
	Tail   Position
	At     Position
	Tile   Tile
	Length int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %s at %s (tile=%s head=%s tail=%s length=%d)",
		e.Reason, e.At, e.Tile, e.Head, e.Tail, e.Length)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// 食物拒绝采样的上限：每格 4 次，超出后改为枚举空格
const foodAttemptsPerCell = 4

// Options 引擎构造参数，零值即默认 16x16 棋盘
type Options struct {
	Width  int
	Height int
	Rand   *rand.Rand
	// Food 强制初始食物位置（测试用），为空时随机采样
	Food *Position
}

// TickResult 一次 Tick 的结果摘要
type TickResult struct {
	Direction Direction // 本 Tick 实际生效的方向
	Rejected  bool      // 请求的方向因掉头被拒绝
	Ate       bool
	Head      Position
	Tail      Position
	Food      Position
}

// Engine 游戏引擎：独占棋盘，body 按 尾→头 顺序保存蛇身
type Engine struct {
	grid    *Grid
	body    []Position
	pending Direction
	food    Position
	score   int
	state   State
	err     error
	rng     *rand.Rand
}

// New 创建一局游戏：蛇长度 1 位于棋盘中心，朝右，另放置一个食物
func New(opts Options) (*Engine, error) {
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = Width
	}
	if h == 0 {
		h = Height
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		grid:    NewGrid(w, h),
		pending: DirRight,
		rng:     rng,
	}
	head := Position{X: uint(w / 2), Y: uint(h / 2)}
	e.grid.SetTile(head, SnakeTile(DirRight))
	e.body = []Position{head}

	if opts.Food != nil {
		p := e.grid.wrap(*opts.Food)
		if e.grid.TileAt(p).Kind != TileEmpty {
			return nil, fmt.Errorf("game: food position %s is not empty", p)
		}
		e.setFood(p)
		return e, nil
	}
	if err := e.placeFood(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) Grid() *Grid          { return e.grid }
func (e *Engine) Head() Position       { return e.body[len(e.body)-1] }
func (e *Engine) Tail() Position       { return e.body[0] }
func (e *Engine) Length() int          { return len(e.body) }
func (e *Engine) Food() Position       { return e.food }
func (e *Engine) Score() int           { return e.score }
func (e *Engine) State() State         { return e.state }
func (e *Engine) Err() error           { return e.err }
func (e *Engine) Pending() Direction   { return e.pending }
func (e *Engine) Direction() Direction { return e.grid.TileAt(e.Head()).Heading }

// Body 返回蛇身副本（尾在前，头在后）
func (e *Engine) Body() []Position {
	out := make([]Position, len(e.body))
	copy(out, e.body)
	return out
}

// Steer 记录下一次 Tick 请求的方向，合法性在 Tick 中仲裁
func (e *Engine) Steer(dir Direction) {
	e.pending = dir
}

// Tick 推进一步。终局后不再修改任何状态，始终返回同一个错误
func (e *Engine) Tick() (TickResult, error) {
	if e.state == GameOver {
		return TickResult{}, e.err
	}
	head := e.Head()
	cur := e.grid.TileAt(head)
	if cur.Kind != TileSnake {
		return TickResult{}, e.fail(e.invariant("head cell holds no snake segment", head, cur))
	}

	dir := Resolve(cur.Heading, e.pending)
	res := TickResult{
		Direction: dir,
		Rejected:  e.pending != DirNone && dir != e.pending,
	}
	next := e.grid.Step(head, dir)

	switch e.grid.TileAt(next).Kind {
	case TileSnake:
		return res, e.fail(ErrSelfCollision)
	case TileFood:
		e.advanceHead(head, next, dir)
		e.score++
		res.Ate = true
		if err := e.placeFood(); err != nil {
			e.fill(&res)
			return res, e.fail(err)
		}
	default:
		// 先校验尾部，失败时棋盘保持原样
		if err := e.checkTail(); err != nil {
			return res, e.fail(err)
		}
		e.advanceHead(head, next, dir)
		e.advanceTail()
	}
	e.fill(&res)
	return res, nil
}

func (e *Engine) fill(res *TickResult) {
	res.Head = e.Head()
	res.Tail = e.Tail()
	res.Food = e.food
}

// advanceHead 旧头记录本次移动方向，供尾部以后沿此方向前进
func (e *Engine) advanceHead(head, next Position, dir Direction) {
	e.grid.SetTile(head, SnakeTile(dir))
	e.grid.SetTile(next, SnakeTile(dir))
	e.body = append(e.body, next)
}

// advanceTail 清空旧尾；长度为 1 时尾部即落在新头上
func (e *Engine) advanceTail() {
	e.grid.SetTile(e.body[0], EmptyTile())
	e.body = e.body[1:]
}

// checkTail 尾格必须是蛇身，且其方向指向下一节
func (e *Engine) checkTail() error {
	tail := e.Tail()
	t := e.grid.TileAt(tail)
	if t.Kind != TileSnake {
		return e.invariant("tail cell holds no snake segment", tail, t)
	}
	if len(e.body) > 1 && e.grid.Step(tail, t.Heading) != e.body[1] {
		return e.invariant("tail heading does not lead to the next segment", tail, t)
	}
	return nil
}

func (e *Engine) invariant(reason string, at Position, t Tile) error {
	return &InvariantError{
		Reason: reason,
		Head:   e.Head(),
		Tail:   e.Tail(),
		At:     at,
		Tile:   t,
		Length: len(e.body),
	}
}

func (e *Engine) fail(err error) error {
	e.state = GameOver
	e.err = err
	return err
}

// placeFood 在空格中均匀采样放置食物；先拒绝采样，达到上限后枚举空格
func (e *Engine) placeFood() error {
	w, h := e.grid.Width(), e.grid.Height()
	for i := 0; i < w*h*foodAttemptsPerCell; i++ {
		p := Position{X: uint(e.rng.Intn(w)), Y: uint(e.rng.Intn(h))}
		if e.grid.TileAt(p).Kind == TileEmpty {
			e.setFood(p)
			return nil
		}
	}
	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		return ErrBoardFull
	}
	e.setFood(empty[e.rng.Intn(len(empty))])
	return nil
}

func (e *Engine) setFood(p Position) {
	e.grid.SetTile(p, FoodTile())
	e.food = p
}
