package server

// Frame 广播给观战端的棋盘快照
type Frame struct {
	Type   string   `json:"type"`
	Tick   int64    `json:"tick"`
	State  string   `json:"state"`
	Score  int      `json:"score"`
	Length int      `json:"length"`
	Rows   []string `json:"rows"`
}

// NewFrame 构造一帧，Type 固定为 "frame"
func NewFrame(tick int64, state string, score, length int, rows []string) Frame {
	return Frame{Type: "frame", Tick: tick, State: state, Score: score, Length: length, Rows: rows}
}
