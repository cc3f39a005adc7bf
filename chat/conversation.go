package chat

import "strings"

const (
	// KindPrivate is a one-to-one conversation.
	KindPrivate = "private"
	// KindGroup is a multi-member conversation with per-message sender attribution.
	KindGroup = "group"
)

// LocalUserID is the sender id stamped on locally composed messages.
const LocalUserID = "current-user"

// GroupReceiverPrefix marks a group pseudo-recipient id.
const GroupReceiverPrefix = "group:"

// Member is one participant of a group conversation.
type Member struct {
	ID          string
	Name        string
	AvatarGlyph string
}

// Conversation is one entry of the conversation directory.
//
// GroupKey is the fixed storage key for group conversations; private
// conversations derive their key from the display name (see Resolver.Key).
type Conversation struct {
	ID             string
	Name           string
	AvatarGlyph    string
	Kind           string
	LastMessage    string
	TimestampLabel string
	Unread         bool
	UnreadCount    int
	GroupKey       string
	Members        []Member
}

// IsGroup reports whether the conversation is a group chat.
func (c Conversation) IsGroup() bool {
	return c.Kind == KindGroup
}

// MemberByID looks up a group member for sender attribution.
func (c Conversation) MemberByID(id string) (Member, bool) {
	for _, member := range c.Members {
		if member.ID == id {
			return member, true
		}
	}
	return Member{}, false
}

// Directory is the read-only registry of known conversations.
type Directory struct {
	entries []Conversation
}

// NewDirectory builds a directory preserving the given insertion order.
func NewDirectory(entries []Conversation) *Directory {
	copied := make([]Conversation, len(entries))
	copy(copied, entries)
	return &Directory{entries: copied}
}

// List returns conversations in insertion order, optionally filtered by kind.
// An empty kind returns everything. Conversations without an explicit kind
// count as private, matching the seed data.
func (d *Directory) List(kind string) []Conversation {
	out := make([]Conversation, 0, len(d.entries))
	for _, entry := range d.entries {
		switch kind {
		case "":
			out = append(out, entry)
		case KindPrivate:
			if entry.Kind == "" || entry.Kind == KindPrivate {
				out = append(out, entry)
			}
		default:
			if entry.Kind == kind {
				out = append(out, entry)
			}
		}
	}
	return out
}

// FindByID looks up a conversation by directory id.
//
// Identifiers may arrive as numeric or string route parameters, so the
// comparison trims whitespace and ignores case.
func (d *Directory) FindByID(id string) (Conversation, bool) {
	want := strings.TrimSpace(id)
	if want == "" {
		return Conversation{}, false
	}
	for _, entry := range d.entries {
		if strings.EqualFold(entry.ID, want) {
			return entry, true
		}
	}
	return Conversation{}, false
}

// Len returns the number of directory entries.
func (d *Directory) Len() int {
	return len(d.entries)
}
