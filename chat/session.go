package chat

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// errAlreadyOpen guards against double Open on one session.
var errAlreadyOpen = errors.New("chat: session already open")

// Session states.
const (
	StateClosed   = "closed"
	StateLoading  = "loading"
	StateActive   = "active"
	StateNotFound = "not_found"
)

// SessionConfig wires one session to its collaborators.
type SessionConfig struct {
	Directory *Directory
	Store     *Store

	// Simulator overrides the delivery simulator settings; HasHistory is
	// always bound to the store's seeded-history check.
	Simulator SimulatorConfig

	// OnUpdate, if set, is invoked after every transcript change. It runs
	// outside the session lock, so it may call Transcript.
	OnUpdate func()
}

// Session orchestrates one open conversation: it resolves the
// conversation, loads the initial transcript, runs the delivery
// simulator, and accepts locally composed messages. The rendering layer
// observes the transcript through Transcript and never mutates the
// store directly.
//
// State machine: closed → loading → active → closed, with a terminal
// not_found state when resolution fails.
type Session struct {
	cfg      SessionConfig
	resolver *Resolver

	mu           sync.Mutex
	state        string
	conversation Conversation
	key          string
	transcript   []Message
	simulator    *Simulator
}

// NewSession creates a closed session over a directory and store.
func NewSession(cfg SessionConfig) *Session {
	return &Session{
		cfg:      cfg,
		resolver: NewResolver(cfg.Directory),
		state:    StateClosed,
	}
}

// Open resolves an identifier and activates the session. On
// ErrNoConversation the session lands in the terminal not_found state;
// the caller renders that state instead of a transcript.
func (s *Session) Open(identifier string) error {
	s.mu.Lock()
	if s.state != StateClosed {
		s.mu.Unlock()
		return errAlreadyOpen
	}
	s.state = StateLoading
	s.mu.Unlock()

	conversation, err := s.resolver.Resolve(identifier)
	if err != nil {
		s.mu.Lock()
		s.state = StateNotFound
		s.mu.Unlock()
		return err
	}

	key := s.resolver.Key(conversation)
	initial := s.cfg.Store.Load(key)

	simCfg := s.cfg.Simulator
	simCfg.HasHistory = s.cfg.Store.HasSeededHistory
	simulator := NewSimulator(simCfg)

	s.mu.Lock()
	s.conversation = conversation
	s.key = key
	s.transcript = initial
	s.simulator = simulator
	s.state = StateActive
	s.mu.Unlock()

	if err := simulator.Start(key, s.receiveSimulated); err != nil {
		return err
	}

	s.notify()
	return nil
}

// Send appends a locally composed text message. Empty or
// whitespace-only text is silently ignored.
func (s *Session) Send(text string) {
	content := strings.TrimSpace(text)
	if content == "" {
		return
	}

	now := s.now()
	s.appendLocal(Message{
		ID:         nextMessageID(now),
		SenderID:   LocalUserID,
		Content:    content,
		Type:       MessageText,
		Timestamp:  formatClock(now),
		IsRead:     true,
	})
}

// SendImage appends a locally composed image message carrying the
// encoded payload as a data URI. An empty payload is silently ignored.
// Encoding happens before the append, so the transcript only ever holds
// complete messages.
func (s *Session) SendImage(payload []byte, mimeType string) {
	if len(payload) == 0 {
		return
	}

	dataURI := encodeImageDataURI(payload, mimeType)
	now := s.now()
	s.appendLocal(Message{
		ID:         nextMessageID(now),
		SenderID:   LocalUserID,
		Content:    ImagePlaceholder,
		Type:       MessageImage,
		Timestamp:  formatClock(now),
		IsRead:     true,
		ImageURL:   dataURI,
	})
}

// Close stops the delivery simulator and transitions to closed. When
// Close returns, no further simulated delivery can append. Closing a
// session that is not active is a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	simulator := s.simulator
	s.simulator = nil
	s.mu.Unlock()

	if simulator != nil {
		simulator.Stop()
	}
}

// State returns the current session state.
func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Conversation returns the resolved conversation record.
func (s *Session) Conversation() Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversation
}

// Key returns the derived conversation storage key.
func (s *Session) Key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

// Transcript returns a snapshot of the live transcript: the initial
// loaded history followed by appended messages in call order.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) appendLocal(message Message) {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return
	}
	message.ReceiverID = s.receiverID()
	s.cfg.Store.Append(s.key, message)
	s.transcript = append(s.transcript, message)
	s.mu.Unlock()

	s.notify()
}

// receiveSimulated is the simulator delivery callback. The state check
// makes a late tick inert even if it races Close.
func (s *Session) receiveSimulated(message Message) {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return
	}
	s.cfg.Store.Append(s.key, message)
	s.transcript = append(s.transcript, message)
	s.mu.Unlock()

	s.notify()
}

// receiverID is the peer id for private chats or the group
// pseudo-recipient for group chats. Callers hold s.mu.
func (s *Session) receiverID() string {
	if s.conversation.IsGroup() {
		return GroupReceiverPrefix + s.key
	}
	return s.key
}

func (s *Session) notify() {
	if s.cfg.OnUpdate != nil {
		s.cfg.OnUpdate()
	}
}

// now follows the simulator clock override so tests can pin timestamps.
func (s *Session) now() time.Time {
	if s.cfg.Simulator.Now != nil {
		return s.cfg.Simulator.Now()
	}
	return time.Now()
}
