package live

import (
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newLiveServer(t *testing.T) (*Registry, *Handler, *httptest.Server) {
	t.Helper()
	reg := NewRegistry(time.Minute, nil)
	h := NewHandler(reg, nil, nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Serve(w, r, r.URL.Query().Get("page"))
	}))
	t.Cleanup(func() {
		h.Close()
		srv.Close()
		reg.Close()
	})
	return reg, h, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	return conn
}

func readNavbar(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "navbar", msg.Type)
	return msg
}

func TestSessionPushesModeChanges(t *testing.T) {
	reg, h, srv := newLiveServer(t)
	page := reg.Create(testSite(t))

	conn := dial(t, srv, "page="+page.ID+"&y=100")
	require.True(t, readNavbar(t, conn).Solid, "offset is sampled on connect")
	require.Eventually(t, func() bool { return h.Active() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "scroll", Y: 10}))
	require.False(t, readNavbar(t, conn).Solid)

	// no flip, no message; the next one must be the flip to solid
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "scroll", Y: 20}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "scroll", Y: 200}))
	require.True(t, readNavbar(t, conn).Solid)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "reveal", Key: "stat-0"}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "bogus"}))
	require.Eventually(t, func() bool { return page.State().Revealed["stat-0"] }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return page.Listeners() == 0 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return h.Active() == 0 }, time.Second, 5*time.Millisecond)

	// updates after disconnect do not reach the navbar
	st := page.Scroll(5)
	require.True(t, st.Solid)
}

func TestSessionLastPushMatchesPageAfterBurst(t *testing.T) {
	reg, _, srv := newLiveServer(t)
	page := reg.Create(testSite(t))

	conn := dial(t, srv, "page="+page.ID)
	defer conn.Close()
	last := readNavbar(t, conn)
	require.False(t, last.Solid)

	// the client writes without reading while the navbar flips on every message
	const flips = 5000
	for i := 0; i < flips; i++ {
		y := 100.0
		if i%2 == 1 {
			y = 0
		}
		require.NoError(t, conn.WriteJSON(ClientMessage{Type: "scroll", Y: y}))
	}
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "reveal", Key: "burst-done"}))
	require.Eventually(t, func() bool { return page.State().Revealed["burst-done"] }, 5*time.Second, 5*time.Millisecond)
	require.False(t, page.State().Navbar.Solid)

	for {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
		var msg ServerMessage
		err := conn.ReadJSON(&msg)
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			break
		}
		require.NoError(t, err)
		last = msg
	}
	require.Equal(t, page.State().Navbar.Solid, last.Solid, "last pushed mode must match the page")
}

func TestSessionUnknownPage(t *testing.T) {
	_, _, srv := newLiveServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?page=nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHandlerCloseDisconnectsSessions(t *testing.T) {
	reg, h, srv := newLiveServer(t)
	page := reg.Create(testSite(t))
	conn := dial(t, srv, "page="+page.ID)
	defer conn.Close()
	readNavbar(t, conn)

	h.Close()
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	require.Equal(t, 0, page.Listeners())
	require.Equal(t, 0, h.Active())

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/?page="+page.ID, nil)
	require.Error(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
}
