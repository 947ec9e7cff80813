package server

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub 管理观战连接；只读观察，不接受任何游戏输入
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*ClientConn
	latest  []byte

	metrics *GameMetrics
}

// NewHub metrics 可为 nil
func NewHub(metrics *GameMetrics) *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*ClientConn),
		metrics: metrics,
	}
}

// Join 注册观战连接，并立即推送最近一帧
func (h *Hub) Join(ws *websocket.Conn) (uuid.UUID, *ClientConn) {
	id := uuid.New()
	c := NewClientConn(ws)
	h.mu.Lock()
	h.clients[id] = c
	if h.latest != nil {
		c.Enqueue(h.latest)
	}
	n := len(h.clients)
	h.mu.Unlock()
	Log.Infow("spectator joined", "id", id, "spectators", n)
	return id, c
}

// Leave 注销并关闭连接，可重复调用
func (h *Hub) Leave(id uuid.UUID) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	n := len(h.clients)
	h.mu.Unlock()
	if !ok {
		return
	}
	c.Close()
	Log.Infow("spectator left", "id", id, "spectators", n)
}

// Count 当前观战人数
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Latest 最近一帧的 JSON，尚无帧时为 nil
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Publish 编码并广播一帧；慢连接直接丢帧，不阻塞游戏循环
func (h *Hub) Publish(f Frame) {
	b, err := json.Marshal(f)
	if err != nil {
		Log.Errorf("encode frame: %v", err)
		return
	}
	var sent, dropped int
	h.mu.Lock()
	h.latest = b
	for _, c := range h.clients {
		if c.Enqueue(b) {
			sent++
		} else {
			dropped++
		}
	}
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.AddSpectatorFrames(sent, dropped)
	}
}

// Close 断开全部观战连接
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[uuid.UUID]*ClientConn)
	h.mu.Unlock()
	for _, c := range clients {
		c.Close()
	}
}
