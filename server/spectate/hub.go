// Package spectate serves a read-only live view of a session over websockets.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/edup2p/orchid/orchid"
)

const (
	DefaultInterval = time.Second / 20

	writeTimeout = 5 * time.Second
)

// Frame is what spectators receive, one JSON text message per changed snapshot.
type Frame struct {
	Seq uint64

	Width  float32
	Height float32

	Snapshot orchid.Snapshot
}

// Hub is an orchid.Renderer that keeps the latest snapshot for spectators, passing everything on to Next.
type Hub struct {
	Next orchid.Renderer

	// Interval between two frames to one spectator.
	Interval time.Duration

	// Width and Height are the bounds reported when there is no Next renderer.
	Width  float32
	Height float32

	mu    sync.RWMutex
	frame Frame

	spectators sync.WaitGroup
}

func NewHub(next orchid.Renderer) *Hub {
	return &Hub{
		Next:     next,
		Interval: DefaultInterval,
		Width:    800,
		Height:   600,
	}
}

func (h *Hub) Bounds() (float32, float32) {
	if h.Next != nil {
		return h.Next.Bounds()
	}
	return h.Width, h.Height
}

func (h *Hub) Render(snap orchid.Snapshot) {
	w, ht := h.Bounds()

	h.mu.Lock()
	h.frame = Frame{Seq: h.frame.Seq + 1, Width: w, Height: ht, Snapshot: snap}
	h.mu.Unlock()

	if h.Next != nil {
		h.Next.Render(snap)
	}
}

func (h *Hub) latest() Frame {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.frame
}

// Wait blocks until every spectator connection has ended.
func (h *Hub) Wait() {
	h.spectators.Wait()
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("spectate: could not accept", "remote", r.RemoteAddr, "err", err)
		return
	}

	h.spectators.Add(1)
	defer h.spectators.Done()

	slog.Info("spectate: spectator joined", "remote", r.RemoteAddr)

	// Spectators never talk, CloseRead handles their control frames and ends ctx when they leave.
	ctx := conn.CloseRead(r.Context())

	err = h.stream(ctx, conn)

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		conn.Close(websocket.StatusGoingAway, "")
	case websocket.CloseStatus(err) != -1:
		// closed by the spectator
	default:
		slog.Debug("spectate: stream ended", "remote", r.RemoteAddr, "err", err)
		conn.Close(websocket.StatusInternalError, "stream failed")
	}

	slog.Info("spectate: spectator left", "remote", r.RemoteAddr)
}

func (h *Hub) stream(ctx context.Context, conn *websocket.Conn) error {
	interval := h.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var sent uint64

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		f := h.latest()
		if f.Seq == sent {
			continue
		}

		data, err := json.Marshal(f)
		if err != nil {
			return err
		}

		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err = conn.Write(wctx, websocket.MessageText, data)
		cancel()

		if err != nil {
			return err
		}

		sent = f.Seq
	}
}

// Handler mounts the hub on /spectate.
func Handler(h *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /spectate", h)
	return mux
}
