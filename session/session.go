package session

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"skyfall/fusion"
	"skyfall/game"
	"skyfall/protocol"
	"skyfall/signal"
)

// Session binds one conditioner, one fusion layer and one engine to one
// client connection and drives them from a fixed tick. All pipeline state
// is owned by the Run goroutine; the Inbox is the only way in.
type Session struct {
	Inbox chan any

	Code    string            // join code (e.g. "ABC123")
	OnEmpty func(code string) // called when the client detaches

	tickHz         int
	broadcastEvery int

	cond   *signal.Conditioner
	layer  *fusion.Layer
	engine *game.Engine

	conn     Conn
	clientID string
	attached atomic.Bool

	tick     int
	lastStep time.Time
	outbox   []protocol.EventSnapshot

	quit chan struct{}
}

func New() *Session {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	s := &Session{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		cond:           signal.NewConditioner(signal.DefaultConfig()),
		layer:          fusion.NewLayer(),
		engine:         game.New(time.Now().UnixNano()),
		quit:           make(chan struct{}),
	}
	s.layer.SetSourceChanged(s.sendSourceChanged)
	return s
}

func (s *Session) Stop() {
	close(s.quit)
}

// Attached reports whether a client is connected. Safe to call from other
// goroutines (the manager's listing endpoint).
func (s *Session) Attached() bool {
	return s.attached.Load()
}

func (s *Session) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickHz))
	defer ticker.Stop()
	s.lastStep = time.Now()

	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			s.handleCommand(cmd)
		case now := <-ticker.C:
			s.step(now)
		}
	}
}

// step advances the pipeline one tick: poll the fused input, step the
// engine with the measured (engine-clamped) elapsed time, queue the deltas
// and flush them on broadcast ticks.
func (s *Session) step(now time.Time) {
	dt := now.Sub(s.lastStep).Seconds()
	s.lastStep = now
	s.tick++

	s.engine.Step(dt, s.layer.Poll())
	for _, ev := range s.engine.Drain() {
		s.outbox = append(s.outbox, snapshotEvent(ev))
	}
	if s.tick%s.broadcastEvery == 0 {
		s.flush()
	}
}

func (s *Session) flush() {
	if s.conn == nil {
		s.outbox = s.outbox[:0]
		return
	}
	if len(s.outbox) == 0 {
		return
	}
	b, err := protocol.Encode(protocol.MsgEvents, protocol.Events{Tick: s.tick, Events: s.outbox})
	s.outbox = s.outbox[:0]
	if err != nil {
		slog.Error("encode events", "err", err)
		return
	}
	if err := s.conn.Send(b); err != nil {
		s.detach()
	}
}

func (s *Session) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Attach:
		s.handleAttach(c)
	case SampleMsg:
		raw := signal.Sample{
			Detected:   c.Detected,
			Pos:        mgl32.Vec2{c.X, c.Y},
			Gesture:    signal.ParseGesture(c.Gesture),
			Confidence: c.Confidence,
			Strength:   c.Strength,
		}
		s.layer.IngestConditioned(s.cond.Process(raw))
	case KeyMsg:
		s.layer.IngestKey(c.Code, c.Down)
	case MouseMsg:
		s.layer.IngestMouseMove(c.X, c.Y, c.W, c.H)
	case ButtonMsg:
		s.layer.IngestMouseButton(c.Button, c.Down)
	case SourceMsg:
		s.layer.SetSourceEnabled(c.Gesture)
	case Detach:
		s.detach()
	}
}

func (s *Session) handleAttach(c Attach) {
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = c.Conn
	s.clientID = uuid.NewString()
	s.attached.Store(true)
	c.Reply <- AttachResult{ClientID: s.clientID}

	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		SessionID: s.clientID,
		TickHz:    s.tickHz,
	})
	if err != nil {
		slog.Error("encode welcome", "err", err)
		return
	}
	if err := s.conn.Send(b); err != nil {
		s.detach()
	}
}

func (s *Session) detach() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.attached.Store(false)
	if s.OnEmpty != nil && s.Code != "" {
		s.OnEmpty(s.Code)
	}
}

func (s *Session) sendSourceChanged(src fusion.Source, label string) {
	if s.conn == nil {
		return
	}
	b, err := protocol.Encode(protocol.MsgSourceChanged, protocol.SourceChanged{
		Source: src.String(),
		Label:  label,
	})
	if err != nil {
		slog.Error("encode source change", "err", err)
		return
	}
	if err := s.conn.Send(b); err != nil {
		s.detach()
	}
}
