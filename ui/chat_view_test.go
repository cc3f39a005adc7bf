package ui

import (
	"testing"

	"campuschat/chat"
)

func groupFixture() chat.Conversation {
	return chat.Conversation{
		ID:       "9",
		Name:     "Study Group",
		Kind:     chat.KindGroup,
		GroupKey: "study-group",
		Members: []chat.Member{
			{ID: "u1", Name: "Anna Lee"},
			{ID: "u2", Name: "Ben Carter"},
		},
	}
}

func TestSenderLabelResolvesMember(t *testing.T) {
	conversation := groupFixture()
	if got := senderLabel(conversation, "u2"); got != "Ben Carter" {
		t.Fatalf("expected member name, got %q", got)
	}
}

func TestSenderLabelUnknownSenderFallsBack(t *testing.T) {
	conversation := groupFixture()
	if got := senderLabel(conversation, "u9"); got != unknownSenderLabel {
		t.Fatalf("expected fallback label, got %q", got)
	}
}

func TestBuildTranscriptRowsRendersUnknownSender(t *testing.T) {
	conversation := groupFixture()
	messages := []chat.Message{
		{ID: "1", SenderID: "u1", Content: "hello", Type: chat.MessageText},
		{ID: "2", SenderID: "u9", Content: "who am I", Type: chat.MessageText},
		{ID: "3", SenderID: chat.LocalUserID, Content: "hi all", Type: chat.MessageText},
	}

	rows := buildTranscriptRows(messages, conversation)
	if len(rows) != len(messages) {
		t.Fatalf("expected %d rows, got %d", len(messages), len(rows))
	}
}

func TestFormatUnreadCount(t *testing.T) {
	if got := formatUnreadCount(3); got != "3" {
		t.Fatalf("expected 3, got %q", got)
	}
	if got := formatUnreadCount(12); got != "9+" {
		t.Fatalf("expected 9+, got %q", got)
	}
	if got := formatUnreadCount(0); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

func TestMimeTypeForPath(t *testing.T) {
	if got := mimeTypeForPath("photo.jpeg"); got != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", got)
	}
	if got := mimeTypeForPath("unknown.bin2"); got != "image/png" {
		t.Fatalf("expected fallback image/png, got %q", got)
	}
}

func TestTruncateReferenceShortensDataURIs(t *testing.T) {
	short := "data:image/png;base64,abc"
	if got := truncateReference(short); got != short {
		t.Fatalf("expected unchanged reference, got %q", got)
	}

	long := "data:image/png;base64,"
	for len(long) <= 48 {
		long += "AAAAAAAA"
	}
	if got := truncateReference(long); got != long[:48]+"…" {
		t.Fatalf("expected truncated reference, got %q", got)
	}
}
