package chat

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

const (
	// DefaultSimulatorInterval is the delivery check period.
	DefaultSimulatorInterval = 5 * time.Second
	// DefaultSimulatorProbability is the per-tick delivery chance.
	DefaultSimulatorProbability = 0.1
)

// defaultPhrases is the pool simulated contacts reply from.
var defaultPhrases = []string{
	"That's interesting!",
	"I see what you mean.",
	"Thanks for sharing!",
	"Got it!",
	"Sounds good!",
	"I'll check it out.",
	"Let me know if you need anything else.",
	"Perfect!",
	"That works for me.",
	"I'll get back to you soon.",
}

// SimulatorConfig controls the delivery simulator. Zero values take the
// defaults above; the function fields exist so tests can drive the loop
// deterministically.
type SimulatorConfig struct {
	Interval    time.Duration
	Probability float64
	Phrases     []string

	// HasHistory gates delivery: only keys with pre-existing seeded
	// history receive simulated traffic.
	HasHistory func(key string) bool

	Rand func() float64
	Now  func() time.Time
}

func (c SimulatorConfig) withDefaults() SimulatorConfig {
	if c.Interval <= 0 {
		c.Interval = DefaultSimulatorInterval
	}
	if c.Probability <= 0 {
		c.Probability = DefaultSimulatorProbability
	}
	if len(c.Phrases) == 0 {
		c.Phrases = defaultPhrases
	}
	if c.Rand == nil {
		c.Rand = rand.Float64
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Simulator emulates inbound traffic for one open conversation without a
// real backend. It is either idle or running; Stop returns only after no
// further delivery callback can fire, so a session that stops its
// simulator before discarding state can never observe a late tick.
type Simulator struct {
	cfg SimulatorConfig

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewSimulator creates an idle simulator with config defaults applied.
func NewSimulator(config SimulatorConfig) *Simulator {
	return &Simulator{cfg: config.withDefaults()}
}

// Start begins periodic delivery checks for a conversation key. Each
// tick draws a uniform random value and, below the probability
// threshold, delivers a synthetic inbound text message via onMessage.
func (s *Simulator) Start(key string, onMessage func(Message)) error {
	if onMessage == nil {
		return errors.New("chat: simulator requires a delivery callback")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errors.New("chat: simulator already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.cancel = cancel
	s.wg.Add(1)
	go s.loop(ctx, key, onMessage)

	return nil
}

// Stop cancels the periodic check and waits for any in-flight tick.
// Safe to call more than once.
func (s *Simulator) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
}

func (s *Simulator) loop(ctx context.Context, key string, onMessage func(Message)) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if message, ok := s.draw(key); ok {
				// Re-check after the draw so a Stop racing this tick
				// never delivers past cancellation.
				select {
				case <-ctx.Done():
					return
				default:
				}
				onMessage(message)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Simulator) draw(key string) (Message, bool) {
	if s.cfg.HasHistory != nil && !s.cfg.HasHistory(key) {
		return Message{}, false
	}
	if s.cfg.Rand() >= s.cfg.Probability {
		return Message{}, false
	}

	now := s.cfg.Now()
	phrase := s.cfg.Phrases[int(s.cfg.Rand()*float64(len(s.cfg.Phrases)))%len(s.cfg.Phrases)]
	return Message{
		ID:         nextMessageID(now),
		SenderID:   key,
		ReceiverID: LocalUserID,
		Content:    phrase,
		Type:       MessageText,
		Timestamp:  formatClock(now),
		IsRead:     false,
	}, true
}
