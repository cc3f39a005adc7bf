package chat

import (
	"fmt"
	"sync"
	"testing"
)

func TestLoadUnknownKeyIsEmpty(t *testing.T) {
	store := NewSeededStore()

	if got := store.Load("nobody-here"); len(got) != 0 {
		t.Fatalf("expected empty transcript for unknown key, got %d messages", len(got))
	}
}

func TestLoadReturnsSeededHistoryInOrder(t *testing.T) {
	store := NewSeededStore()

	transcript := store.Load("mike-johnson")
	if len(transcript) != 5 {
		t.Fatalf("expected 5 seeded messages for mike-johnson, got %d", len(transcript))
	}
	for i, message := range transcript {
		if message.ID != fmt.Sprintf("%d", i+1) {
			t.Fatalf("seeded order broken at index %d: id %q", i, message.ID)
		}
	}
}

func TestLoadReturnsACopy(t *testing.T) {
	store := NewSeededStore()

	first := store.Load("sarah-chen")
	first[0].Content = "mutated"

	second := store.Load("sarah-chen")
	if second[0].Content == "mutated" {
		t.Fatalf("Load exposed internal transcript state")
	}
}

func TestAppendPreservesOrderAndIsolation(t *testing.T) {
	store := NewSeededStore()

	before := store.Len("rachel-green")
	store.Append("mike-johnson", Message{ID: "a", Content: "one"})
	store.Append("mike-johnson", Message{ID: "b", Content: "two"})

	transcript := store.Load("mike-johnson")
	if len(transcript) != 7 {
		t.Fatalf("expected 7 messages after two appends, got %d", len(transcript))
	}
	if transcript[5].ID != "a" || transcript[6].ID != "b" {
		t.Fatalf("append order broken: %q then %q", transcript[5].ID, transcript[6].ID)
	}

	if store.Len("rachel-green") != before {
		t.Fatalf("append to mike-johnson affected rachel-green")
	}
}

func TestAppendUnknownKeyCreatesTranscript(t *testing.T) {
	store := NewStore()

	store.Append("ad-hoc", Message{ID: "1", Content: "hello"})
	if got := store.Load("ad-hoc"); len(got) != 1 || got[0].Content != "hello" {
		t.Fatalf("unexpected transcript for ad-hoc key: %+v", got)
	}
	if store.HasSeededHistory("ad-hoc") {
		t.Fatalf("appended history must not count as seeded")
	}
}

func TestHasSeededHistory(t *testing.T) {
	store := NewSeededStore()

	if !store.HasSeededHistory("sarah-chen") {
		t.Fatalf("expected sarah-chen to have seeded history")
	}
	if store.HasSeededHistory("unknown-42") {
		t.Fatalf("expected unknown key to have no seeded history")
	}
}

func TestConcurrentAppendsKeepPerCallerOrder(t *testing.T) {
	store := NewStore()

	const perWriter = 50
	var wg sync.WaitGroup
	for _, writer := range []string{"w1", "w2"} {
		wg.Add(1)
		go func(writer string) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				store.Append("shared", Message{ID: fmt.Sprintf("%s-%d", writer, i), SenderID: writer})
			}
		}(writer)
	}
	wg.Wait()

	transcript := store.Load("shared")
	if len(transcript) != 2*perWriter {
		t.Fatalf("expected %d messages, got %d", 2*perWriter, len(transcript))
	}

	// Interleaving between writers is unspecified, but each writer's
	// own appends must appear in issue order.
	next := map[string]int{}
	for _, message := range transcript {
		want := fmt.Sprintf("%s-%d", message.SenderID, next[message.SenderID])
		if message.ID != want {
			t.Fatalf("per-writer order broken: got %q, want %q", message.ID, want)
		}
		next[message.SenderID]++
	}
}
