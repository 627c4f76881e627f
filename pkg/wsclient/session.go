// Package wsclient maintains one logical realtime session per client
// process: identity announcement on connect, automatic reconnect with
// linear backoff, and a send contract that reports instead of panicking
// when the link is down.
package wsclient

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	gorilla "github.com/gorilla/websocket"

	"swiftaid/pkg/logger"
	ws "swiftaid/pkg/websocket"
)

// ErrNotConnected is returned by Send when no connection is open. Callers
// treat it as a soft failure; delivery is not guaranteed across reconnects.
var ErrNotConnected = errors.New("wsclient: not connected")

const (
	defaultBaseDelay = 3 * time.Second
	defaultMaxDelay  = 30 * time.Second
)

type Config struct {
	URL    string
	UserID int

	// Handler receives every decoded message. Malformed frames are logged
	// and skipped without invoking it.
	Handler func(ws.Message)

	// BaseDelay grows linearly with consecutive failed attempts, capped at
	// MaxDelay. Zero values use the defaults.
	BaseDelay time.Duration
	MaxDelay  time.Duration

	Logger *logger.Logger
}

type Session struct {
	cfg Config
	log *logger.Logger

	mu        sync.Mutex
	conn      *gorilla.Conn
	connected bool
	closed    bool
	attempts  int

	done chan struct{}
}

var (
	currentMu sync.Mutex
	current   *Session
)

// Connect establishes the canonical session for this process, superseding
// (closing) any prior one so AUTH is registered exactly once server-side.
func Connect(cfg Config) *Session {
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = defaultMaxDelay
	}
	if cfg.Logger == nil {
		cfg.Logger, _ = logger.NewLogger(&logger.Config{Level: logger.InfoLevel})
	}

	s := &Session{
		cfg:  cfg,
		log:  cfg.Logger,
		done: make(chan struct{}),
	}

	currentMu.Lock()
	if current != nil {
		current.Close()
	}
	current = s
	currentMu.Unlock()

	go s.run()
	return s
}

// Current returns the process-wide session, or nil before the first
// Connect.
func Current() *Session {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current
}

// Connected reports whether a connection is currently open.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Send writes a message on the open connection. It returns ErrNotConnected
// rather than blocking or panicking when the link is down.
func (s *Session) Send(msg ws.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.conn == nil {
		return ErrNotConnected
	}
	return s.conn.WriteJSON(msg)
}

// Close disconnects and suppresses automatic reconnection.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	conn := s.conn
	s.conn = nil
	s.connected = false
	close(s.done)
	s.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}

func (s *Session) run() {
	for {
		if s.isClosed() {
			return
		}

		conn, _, err := gorilla.DefaultDialer.Dial(s.cfg.URL, nil)
		if err != nil {
			s.log.WithError(err).Warn("Realtime dial failed")
			if !s.waitBackoff() {
				return
			}
			continue
		}

		if !s.attach(conn) {
			conn.Close()
			return
		}

		userID := s.cfg.UserID
		if err := s.Send(ws.Message{Type: ws.MessageAuth, UserID: &userID}); err != nil {
			s.log.WithError(err).Warn("Failed to announce identity")
		}

		s.readLoop(conn)
		s.detach(conn)

		if s.isClosed() {
			return
		}
		if !s.waitBackoff() {
			return
		}
	}
}

// attach installs the new connection and resets the backoff counter. It
// refuses when the session was closed during the dial.
func (s *Session) attach(conn *gorilla.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.conn = conn
	s.connected = true
	s.attempts = 0
	return true
}

func (s *Session) detach(conn *gorilla.Conn) {
	conn.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == conn {
		s.conn = nil
		s.connected = false
	}
}

func (s *Session) readLoop(conn *gorilla.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ws.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.log.WithError(err).Debug("Ignoring malformed realtime message")
			continue
		}

		if s.cfg.Handler != nil {
			s.cfg.Handler(msg)
		}
	}
}

// waitBackoff sleeps base*attempts capped at the maximum, returning false
// if the session is closed while waiting.
func (s *Session) waitBackoff() bool {
	s.mu.Lock()
	s.attempts++
	delay := time.Duration(s.attempts) * s.cfg.BaseDelay
	if delay > s.cfg.MaxDelay {
		delay = s.cfg.MaxDelay
	}
	s.mu.Unlock()

	s.log.WithField("delay", delay.String()).Debug("Scheduling reconnect")

	select {
	case <-time.After(delay):
		return true
	case <-s.done:
		return false
	}
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
