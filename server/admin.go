package server

import (
	"encoding/json"
	"net/http"
)

// NewMux 组装观战与监控接口
//
//	GET /ws       观战 WebSocket
//	GET /frame    最近一帧
//	GET /metrics  运行指标
//	GET /healthz  存活检查
func NewMux(h *Hub, m *GameMetrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.HandleWS)
	mux.HandleFunc("/frame", h.HandleFrame)
	mux.HandleFunc("/metrics", HandleMetrics(m, h))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// HandleFrame 输出最近一帧；游戏尚未渲染时返回 204
func (h *Hub) HandleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	b := h.Latest()
	if b == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

// HandleMetrics 输出运行指标与观战人数
func HandleMetrics(m *GameMetrics, h *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		payload := map[string]any{
			"tick":       m.Ticks(),
			"spectators": h.Count(),
			"metrics":    m.Snapshot(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}
}
