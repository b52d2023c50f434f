package session

import (
	"testing"
	"time"

	"skyfall/protocol"
)

type fakeConn struct {
	sendCh chan []byte
}

func (f *fakeConn) Send(b []byte) error {
	cp := make([]byte, len(b))
	copy(cp, b)
	f.sendCh <- cp
	return nil
}

func (f *fakeConn) Close() error {
	return nil
}

func attach(t *testing.T, s *Session) *fakeConn {
	t.Helper()
	fc := &fakeConn{sendCh: make(chan []byte, 64)}
	reply := make(chan AttachResult, 1)
	s.Inbox <- Attach{Conn: fc, Name: "test", Reply: reply}
	res := <-reply
	if res.ClientID == "" {
		t.Fatalf("expected client id, got empty")
	}
	return fc
}

func TestSessionAttachSendsWelcome(t *testing.T) {
	s := New()
	go s.Run()
	defer s.Stop()

	fc := attach(t, s)
	timeout := time.After(500 * time.Millisecond)
	for {
		select {
		case b := <-fc.sendCh:
			env, err := protocol.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.T != protocol.MsgWelcome {
				continue
			}
			w, err := protocol.DecodePayload[protocol.Welcome](env)
			if err != nil {
				t.Fatalf("decode welcome: %v", err)
			}
			if w.TickHz != protocol.SimTickHz || w.SessionID == "" {
				t.Fatalf("welcome = %+v", w)
			}
			return
		case <-timeout:
			t.Fatalf("timed out waiting for welcome")
		}
	}
}

func TestStartKeyBroadcastsStateChange(t *testing.T) {
	s := New()
	go s.Run()
	defer s.Stop()

	fc := attach(t, s)
	s.Inbox <- KeyMsg{Code: "Enter", Down: true}

	timeout := time.After(2 * time.Second)
	for {
		select {
		case b := <-fc.sendCh:
			env, err := protocol.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.T != protocol.MsgEvents {
				continue
			}
			batch, err := protocol.DecodePayload[protocol.Events](env)
			if err != nil {
				t.Fatalf("decode events: %v", err)
			}
			for _, ev := range batch.Events {
				if ev.Kind == "state" && ev.State == "playing" {
					if ev.Stats == nil || ev.Stats.Combo != 1 {
						t.Fatalf("state event missing stats snapshot: %+v", ev)
					}
					return
				}
			}
		case <-timeout:
			t.Fatalf("timed out waiting for playing state broadcast")
		}
	}
}

func TestSourceToggleNotifiesClient(t *testing.T) {
	s := New()
	go s.Run()
	defer s.Stop()

	fc := attach(t, s)
	s.Inbox <- SourceMsg{Gesture: true}

	timeout := time.After(2 * time.Second)
	for {
		select {
		case b := <-fc.sendCh:
			env, err := protocol.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.T != protocol.MsgSourceChanged {
				continue
			}
			sc, err := protocol.DecodePayload[protocol.SourceChanged](env)
			if err != nil {
				t.Fatalf("decode source change: %v", err)
			}
			if sc.Source != "gesture" || sc.Label == "" {
				t.Fatalf("source change = %+v", sc)
			}
			return
		case <-timeout:
			t.Fatalf("timed out waiting for source change")
		}
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	code := m.Create()
	if len(code) != 6 {
		t.Fatalf("code = %q, want 6 chars", code)
	}
	s := m.GetOrCreate(code)
	if s == nil || s.Code != code {
		t.Fatalf("expected the created session for %q", code)
	}
	if got := m.List(); len(got) != 1 || got[0].Code != code {
		t.Fatalf("list = %+v", got)
	}
	if m.GetOrCreate("") != nil {
		t.Fatalf("empty code must not create a session")
	}

	attach(t, s)
	s.Inbox <- Detach{}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(m.List()) == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("session not removed after detach")
}
