package wsclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftaid/pkg/logger"
	ws "swiftaid/pkg/websocket"
)

type testServer struct {
	srv      *httptest.Server
	upgrader gorilla.Upgrader
	conns    chan *gorilla.Conn
	frames   chan []byte
	dials    atomic.Int32
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		conns:  make(chan *gorilla.Conn, 4),
		frames: make(chan []byte, 16),
	}
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := ts.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ts.dials.Add(1)
		ts.conns <- conn
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			ts.frames <- data
		}
	}))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) url() string {
	return "ws" + strings.TrimPrefix(ts.srv.URL, "http")
}

func (ts *testServer) nextConn(t *testing.T) *gorilla.Conn {
	t.Helper()

	select {
	case conn := <-ts.conns:
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a connection")
		return nil
	}
}

func (ts *testServer) nextMessage(t *testing.T) ws.Message {
	t.Helper()

	select {
	case data := <-ts.frames:
		var msg ws.Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a frame")
		return ws.Message{}
	}
}

func quietLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel})
	require.NoError(t, err)
	log.SetOutput(io.Discard)
	return log
}

func testConfig(t *testing.T, ts *testServer, userID int) Config {
	return Config{
		URL:       ts.url(),
		UserID:    userID,
		BaseDelay: 10 * time.Millisecond,
		MaxDelay:  50 * time.Millisecond,
		Logger:    quietLogger(t),
	}
}

func TestConnectAnnouncesIdentity(t *testing.T) {
	ts := newTestServer(t)

	sess := Connect(testConfig(t, ts, 7))
	defer sess.Close()

	msg := ts.nextMessage(t)
	assert.Equal(t, ws.MessageAuth, msg.Type)
	require.NotNil(t, msg.UserID)
	assert.Equal(t, 7, *msg.UserID)
}

func TestSendDeliversWhileConnected(t *testing.T) {
	ts := newTestServer(t)

	sess := Connect(testConfig(t, ts, 1))
	defer sess.Close()

	// First frame is always the identity announcement.
	require.Equal(t, ws.MessageAuth, ts.nextMessage(t).Type)

	id := 12
	require.NoError(t, sess.Send(ws.Message{Type: ws.MessageCancelEmergency, EmergencyID: &id}))

	msg := ts.nextMessage(t)
	assert.Equal(t, ws.MessageCancelEmergency, msg.Type)
	require.NotNil(t, msg.EmergencyID)
	assert.Equal(t, 12, *msg.EmergencyID)
}

func TestSendReportsWhenLinkIsDown(t *testing.T) {
	// Nothing listens on this port, so the session never attaches.
	sess := Connect(Config{
		URL:       "ws://127.0.0.1:1/ws",
		UserID:    1,
		BaseDelay: time.Minute,
		MaxDelay:  time.Minute,
		Logger:    quietLogger(t),
	})
	defer sess.Close()

	err := sess.Send(ws.Message{Type: ws.MessageStatusUpdate})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestSendAfterCloseReturnsErrNotConnected(t *testing.T) {
	ts := newTestServer(t)

	sess := Connect(testConfig(t, ts, 1))
	require.Equal(t, ws.MessageAuth, ts.nextMessage(t).Type)

	sess.Close()

	err := sess.Send(ws.Message{Type: ws.MessageStatusUpdate})
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.False(t, sess.Connected())
}

func TestHandlerReceivesDecodedMessages(t *testing.T) {
	ts := newTestServer(t)

	received := make(chan ws.Message, 4)
	cfg := testConfig(t, ts, 1)
	cfg.Handler = func(msg ws.Message) { received <- msg }

	sess := Connect(cfg)
	defer sess.Close()

	conn := ts.nextConn(t)
	require.Equal(t, ws.MessageAuth, ts.nextMessage(t).Type)

	// A malformed frame is skipped; the next well-formed one still arrives.
	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte(`{not json`)))
	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte(`{"type":"EMERGENCY_CANCELLED","emergencyId":5}`)))

	select {
	case msg := <-received:
		assert.Equal(t, ws.MessageEmergencyCancelled, msg.Type)
		require.NotNil(t, msg.EmergencyID)
		assert.Equal(t, 5, *msg.EmergencyID)
	case <-time.After(2 * time.Second):
		t.Fatal("handler never invoked")
	}
}

func TestReconnectAfterServerDrop(t *testing.T) {
	ts := newTestServer(t)

	sess := Connect(testConfig(t, ts, 3))
	defer sess.Close()

	first := ts.nextConn(t)
	require.Equal(t, ws.MessageAuth, ts.nextMessage(t).Type)

	first.Close()

	// The session redials on its own and announces identity again.
	ts.nextConn(t)
	msg := ts.nextMessage(t)
	assert.Equal(t, ws.MessageAuth, msg.Type)
	require.NotNil(t, msg.UserID)
	assert.Equal(t, 3, *msg.UserID)
	assert.GreaterOrEqual(t, ts.dials.Load(), int32(2))
}

func TestConnectSupersedesPriorSession(t *testing.T) {
	ts := newTestServer(t)

	first := Connect(testConfig(t, ts, 1))
	second := Connect(testConfig(t, ts, 2))
	defer second.Close()

	assert.Same(t, second, Current())
	assert.True(t, first.isClosed())

	require.Eventually(t, second.Connected, 2*time.Second, 10*time.Millisecond)
}

func TestCloseIsIdempotent(t *testing.T) {
	ts := newTestServer(t)

	sess := Connect(testConfig(t, ts, 1))
	sess.Close()
	sess.Close()

	assert.False(t, sess.Connected())
}
