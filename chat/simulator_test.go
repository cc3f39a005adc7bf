package chat

import (
	"testing"
	"time"
)

func alwaysHistory(string) bool { return true }
func neverHistory(string) bool  { return false }

func TestSimulatorDeliversStructurallyValidMessages(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	simulator := NewSimulator(SimulatorConfig{
		Interval:    time.Millisecond,
		Probability: 1,
		Phrases:     []string{"ping"},
		HasHistory:  alwaysHistory,
		Rand:        func() float64 { return 0 },
		Now:         func() time.Time { return fixed },
	})

	delivered := make(chan Message, 16)
	if err := simulator.Start("mike-johnson", func(message Message) {
		select {
		case delivered <- message:
		default:
		}
	}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer simulator.Stop()

	var message Message
	select {
	case message = <-delivered:
	case <-time.After(time.Second):
		t.Fatalf("expected a simulated delivery within 1s")
	}

	if message.SenderID != "mike-johnson" {
		t.Fatalf("expected sender mike-johnson, got %q", message.SenderID)
	}
	if message.ReceiverID != LocalUserID {
		t.Fatalf("expected receiver %q, got %q", LocalUserID, message.ReceiverID)
	}
	if message.Type != MessageText {
		t.Fatalf("expected text message, got %q", message.Type)
	}
	if message.IsRead {
		t.Fatalf("expected simulated message to be unread")
	}
	if message.Content != "ping" {
		t.Fatalf("expected phrase from configured pool, got %q", message.Content)
	}
	if message.Timestamp != "09:30" {
		t.Fatalf("expected HH:MM timestamp 09:30, got %q", message.Timestamp)
	}
	if message.ID == "" {
		t.Fatalf("expected a generated message id")
	}
}

func TestSimulatorSkipsKeysWithoutSeededHistory(t *testing.T) {
	simulator := NewSimulator(SimulatorConfig{
		Interval:    time.Millisecond,
		Probability: 1,
		HasHistory:  neverHistory,
		Rand:        func() float64 { return 0 },
	})

	delivered := make(chan Message, 16)
	if err := simulator.Start("unknown-42", func(message Message) {
		delivered <- message
	}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	simulator.Stop()

	if len(delivered) != 0 {
		t.Fatalf("expected no deliveries for a key without seeded history, got %d", len(delivered))
	}
}

func TestSimulatorRespectsProbabilityThreshold(t *testing.T) {
	simulator := NewSimulator(SimulatorConfig{
		Interval:    time.Millisecond,
		Probability: 0.1,
		HasHistory:  alwaysHistory,
		Rand:        func() float64 { return 0.99 },
	})

	delivered := make(chan Message, 16)
	if err := simulator.Start("mike-johnson", func(message Message) {
		delivered <- message
	}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	simulator.Stop()

	if len(delivered) != 0 {
		t.Fatalf("expected no deliveries above the threshold, got %d", len(delivered))
	}
}

func TestSimulatorStopIsDeterministic(t *testing.T) {
	simulator := NewSimulator(SimulatorConfig{
		Interval:    time.Millisecond,
		Probability: 1,
		HasHistory:  alwaysHistory,
		Rand:        func() float64 { return 0 },
	})

	delivered := make(chan Message, 1024)
	if err := simulator.Start("mike-johnson", func(message Message) {
		delivered <- message
	}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	simulator.Stop()
	count := len(delivered)

	time.Sleep(30 * time.Millisecond)
	if len(delivered) != count {
		t.Fatalf("deliveries continued after Stop: %d then %d", count, len(delivered))
	}

	// Stop twice is safe.
	simulator.Stop()
}

func TestSimulatorStartTwiceFails(t *testing.T) {
	simulator := NewSimulator(SimulatorConfig{
		Interval:   time.Hour,
		HasHistory: neverHistory,
	})

	if err := simulator.Start("key", func(Message) {}); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	defer simulator.Stop()

	if err := simulator.Start("key", func(Message) {}); err == nil {
		t.Fatalf("expected second Start to fail while running")
	}
}
