package chat

import (
	"encoding/base64"
	"strconv"
	"sync"
	"time"
)

const (
	// MessageText is a plain text message.
	MessageText = "text"
	// MessageImage is an image message with a data-URI or URL reference.
	MessageImage = "image"
)

// ImagePlaceholder is the content label carried by image messages.
const ImagePlaceholder = "Image"

// Message is one transcript entry. Timestamp is a display label: HH:MM
// for live messages, or a precomputed relative label for seeded history.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	Type       string
	Timestamp  string
	IsRead     bool
	ImageURL   string
}

var (
	messageIDMu   sync.Mutex
	lastMessageID int64
)

// nextMessageID derives a message id from creation time. Two messages
// created within the same millisecond are disambiguated by bumping the
// value, so ids stay unique within a transcript.
func nextMessageID(now time.Time) string {
	messageIDMu.Lock()
	defer messageIDMu.Unlock()

	ms := now.UnixMilli()
	if ms <= lastMessageID {
		ms = lastMessageID + 1
	}
	lastMessageID = ms
	return strconv.FormatInt(ms, 10)
}

// formatClock renders a display timestamp as 24-hour HH:MM.
func formatClock(now time.Time) string {
	return now.Format("15:04")
}

// encodeImageDataURI encodes raw image bytes as a data URI for inline display.
func encodeImageDataURI(payload []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}
