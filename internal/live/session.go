package live

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
)

// ClientMessage is sent by the browser.
//
//	{"type":"scroll","y":123}
//	{"type":"reveal","key":"mentor-0"}
type ClientMessage struct {
	Type string  `json:"type"`
	Y    float64 `json:"y,omitempty"`
	Key  string  `json:"key,omitempty"`
}

// ServerMessage is pushed to the browser when the navbar mode changes.
type ServerMessage struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}

// Handler upgrades page connections to websockets.
type Handler struct {
	reg      *Registry
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	wg     sync.WaitGroup
	closed bool
}

// NewHandler builds a websocket handler. Browser origins are accepted when
// allowed reports true; nil allows same-host origins only.
func NewHandler(reg *Registry, log *zap.Logger, allowed func(origin string) bool) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		reg:   reg,
		log:   log,
		conns: map[*websocket.Conn]struct{}{},
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if allowed != nil {
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed(origin)
		}
	}
	return h
}

// Serve runs a live session for page id. The optional "y" query parameter is
// the client's scroll offset at connect time.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request, id string) {
	page, err := h.reg.Get(id)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	if h.isClosed() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	y, _ := strconv.ParseFloat(r.URL.Query().Get("y"), 64)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", zap.Error(err), zap.String("page", id))
		return
	}
	if !h.track(conn) {
		_ = conn.Close()
		return
	}
	defer h.untrack(conn)

	if err := runSession(r.Context(), conn, page, y); err != nil {
		h.log.Debug("live session ended", zap.Error(err), zap.String("page", id))
	}
}

// Close disconnects every live session and waits for them to finish.
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	for c := range h.conns {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		_ = c.Close()
	}
	h.mu.Unlock()
	h.wg.Wait()
}

// Active returns the number of connected sessions.
func (h *Handler) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Handler) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *Handler) track(c *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.conns[c] = struct{}{}
	h.wg.Add(1)
	return true
}

func (h *Handler) untrack(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	h.wg.Done()
}

// runSession mounts the page navbar for the lifetime of conn. Every exit
// path detaches the page, which removes its scroll listener.
func runSession(ctx context.Context, conn *websocket.Conn, page *Page, y float64) error {
	defer conn.Close()

	initial, ok := page.Attach(y)
	if !ok {
		return ErrPageNotFound
	}
	defer page.Detach()

	// flips coalesce into one pending signal; the writer sends the mode the
	// navbar is in when it gets to run
	changed := make(chan struct{}, 1)
	cancel := page.OnModeChange(func(bool) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readLoop(conn, page) })
	g.Go(func() error {
		// closing the conn unblocks the reader
		defer conn.Close()
		return writeLoop(gctx, conn, page, initial.Solid, changed)
	})
	err := g.Wait()
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func readLoop(conn *websocket.Conn, page *Page) error {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		switch msg.Type {
		case "scroll":
			page.Scroll(msg.Y)
		case "reveal":
			page.MarkInView(msg.Key)
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, page *Page, solid bool, changed <-chan struct{}) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	send := func(solid bool) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(ServerMessage{Type: "navbar", Solid: solid})
	}
	if err := send(solid); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return ctx.Err()
		case <-changed:
			current := page.Navbar().Solid
			if current == solid {
				continue
			}
			solid = current
			if err := send(solid); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}
