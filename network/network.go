package network

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"skyfall/protocol"
	"skyfall/session"
)

const (
	readLimit     = 1 << 20 // 1MB
	readDeadline  = 60 * time.Second
	writeDeadline = 10 * time.Second
	pingEvery     = 25 * time.Second
)

// Server terminates websocket clients and routes their messages into
// session inboxes.
type Server struct {
	manager *session.Manager
	up      websocket.Upgrader
}

func NewServer(m *session.Manager, allowedOrigin string) *Server {
	return &Server{
		manager: m,
		up: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" || allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

// Register mounts the websocket and listing endpoints.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/sessions", s.handleSessions)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.manager.List()); err != nil {
		slog.Error("encode session list", "err", err)
	}
}

// handleWS upgrades the connection and joins (or creates) the session for
// the requested code, then pumps messages until the client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		code = s.manager.Create()
	}
	sess := s.manager.GetOrCreate(code)

	conn, err := s.up.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("upgrade", "err", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	wc := newWSConn(conn)
	done := make(chan struct{})
	defer close(done)
	go pingLoop(wc, done)

	slog.Info("client connected", "code", code, "remote", r.RemoteAddr)
	s.readLoop(conn, wc, sess)
	sess.Inbox <- session.Detach{}
	slog.Info("client disconnected", "code", code)
}

func (s *Server) readLoop(conn *websocket.Conn, wc *wsConn, sess *session.Session) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("read", "err", err)
			}
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			slog.Warn("bad envelope", "err", err)
			continue
		}
		if env.T == protocol.MsgHello {
			s.attach(env, wc, sess)
			continue
		}
		if cmd, ok := decodeCommand(env); ok {
			sess.Inbox <- cmd
		}
	}
}

func (s *Server) attach(env protocol.Envelope, wc *wsConn, sess *session.Session) {
	h, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		slog.Warn("bad hello", "err", err)
		return
	}
	reply := make(chan session.AttachResult, 1)
	sess.Inbox <- session.Attach{Conn: wc, Name: h.Name, Reply: reply}
	res := <-reply
	slog.Info("client attached", "code", sess.Code, "client", res.ClientID, "name", h.Name)
}

// decodeCommand maps a wire envelope onto a session command. Malformed
// payloads are dropped with a log line; they never reach the simulation.
func decodeCommand(env protocol.Envelope) (any, bool) {
	switch env.T {
	case protocol.MsgSample:
		p, err := protocol.DecodePayload[protocol.Sample](env)
		if err != nil {
			slog.Warn("bad sample", "err", err)
			return nil, false
		}
		return session.SampleMsg{
			Detected:   p.Detected,
			X:          p.X,
			Y:          p.Y,
			Gesture:    p.Gesture,
			Confidence: p.Confidence,
			Strength:   p.Strength,
		}, true
	case protocol.MsgKey:
		p, err := protocol.DecodePayload[protocol.Key](env)
		if err != nil {
			return nil, false
		}
		return session.KeyMsg{Code: p.Code, Down: p.Down}, true
	case protocol.MsgMouse:
		p, err := protocol.DecodePayload[protocol.Mouse](env)
		if err != nil {
			return nil, false
		}
		return session.MouseMsg{X: p.X, Y: p.Y, W: p.W, H: p.H}, true
	case protocol.MsgButton:
		p, err := protocol.DecodePayload[protocol.Button](env)
		if err != nil {
			return nil, false
		}
		return session.ButtonMsg{Button: p.Button, Down: p.Down}, true
	case protocol.MsgSource:
		p, err := protocol.DecodePayload[protocol.Source](env)
		if err != nil {
			return nil, false
		}
		return session.SourceMsg{Gesture: p.Gesture}, true
	default:
		slog.Debug("unknown message type", "t", env.T)
		return nil, false
	}
}

func pingLoop(wc *wsConn, done <-chan struct{}) {
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := wc.ping(); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
