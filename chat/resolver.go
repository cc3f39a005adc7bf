package chat

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNoConversation is returned when a session is opened with nothing to
// resolve: no list selection and no route parameter.
var ErrNoConversation = errors.New("chat: no conversation to open")

// keyAliases maps normalized display names to canonical storage keys.
//
// The seed transcripts are indexed by hand-written keys, so multi-word
// display names with inconsistent spellings would otherwise silently
// route to an empty transcript. Names missing from this table fall back
// to their normalized form.
var keyAliases = map[string]string{
	"sarah-chen":    "sarah-chen",
	"mike-johnson":  "mike-johnson",
	"emma-wilson":   "emma-wilson",
	"david-kim":     "david-kim",
	"lisa-park":     "lisa-park",
	"alex-thompson": "alex-thompson",
	"rachel-green":  "rachel-green",
	"tom-anderson":  "tom-anderson",
}

// Resolver maps externally supplied identifiers (list selection or
// deep-link route parameters) to conversation records and canonical
// storage keys. Both entry points funnel through here so the same
// logical conversation always resolves to the same key.
type Resolver struct {
	directory *Directory
}

// NewResolver creates a resolver over a conversation directory.
func NewResolver(directory *Directory) *Resolver {
	return &Resolver{directory: directory}
}

// Resolve returns the directory entry for an identifier, or synthesizes
// a transient private conversation when the identifier is unknown. The
// synthesized entry is not persisted to the directory. An empty
// identifier fails with ErrNoConversation.
func (r *Resolver) Resolve(identifier string) (Conversation, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return Conversation{}, ErrNoConversation
	}

	if conversation, ok := r.directory.FindByID(identifier); ok {
		return conversation, nil
	}

	return Conversation{
		ID:          identifier,
		Name:        identifier,
		AvatarGlyph: avatarGlyph(identifier),
		Kind:        KindPrivate,
	}, nil
}

// Key derives the canonical storage key for a resolved conversation:
// the fixed group key for groups, otherwise the alias-mapped normalized
// display name.
func (r *Resolver) Key(conversation Conversation) string {
	if conversation.IsGroup() && conversation.GroupKey != "" {
		return conversation.GroupKey
	}

	normalized := NormalizeName(conversation.Name)
	if canonical, ok := keyAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeName lowercases a display name and collapses whitespace runs
// to single hyphens.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}

// avatarGlyph uppercases the first two characters of an identifier.
func avatarGlyph(identifier string) string {
	runes := []rune(identifier)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	for i, r := range runes {
		runes[i] = unicode.ToUpper(r)
	}
	return string(runes)
}
