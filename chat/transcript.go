package chat

import "sync"

// Store maps conversation keys to ordered transcripts.
//
// Unknown keys behave as empty conversations: Load never fails, so ad-hoc
// and deep-linked chats degrade gracefully. Each conversation exclusively
// owns its transcript; appends to one key never affect another.
type Store struct {
	mu          sync.RWMutex
	transcripts map[string][]Message
	seeded      map[string]bool
}

// NewStore creates an empty message store.
func NewStore() *Store {
	return &Store{
		transcripts: make(map[string][]Message),
		seeded:      make(map[string]bool),
	}
}

// NewStoreWithSeed creates a store preloaded with seeded transcripts.
func NewStoreWithSeed(seed map[string][]Message) *Store {
	store := NewStore()
	for key, messages := range seed {
		copied := make([]Message, len(messages))
		copy(copied, messages)
		store.transcripts[key] = copied
		store.seeded[key] = len(copied) > 0
	}
	return store
}

// Load returns a copy of the transcript for a key, empty for unknown keys.
func (s *Store) Load(key string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transcript := s.transcripts[key]
	out := make([]Message, len(transcript))
	copy(out, transcript)
	return out
}

// Append adds a message to the end of one conversation's transcript.
// Append order per key is the observed transcript order.
func (s *Store) Append(key string, message Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcripts[key] = append(s.transcripts[key], message)
}

// HasSeededHistory reports whether a key started with seeded messages.
// The delivery simulator uses this as a proxy for "real contact".
func (s *Store) HasSeededHistory(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeded[key]
}

// Len returns the current transcript length for a key.
func (s *Store) Len(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcripts[key])
}
