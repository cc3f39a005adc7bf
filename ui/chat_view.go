package ui

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"campuschat/chat"
)

// unknownSenderLabel is shown for group messages whose sender id has no
// membership entry.
const unknownSenderLabel = "Unknown sender"

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// messageEntry is a multiline entry where Enter sends and Shift+Enter
// inserts a newline.
type messageEntry struct {
	widget.Entry
	shiftDown bool
	onSend    func()
}

func newMessageEntry(onSend func()) *messageEntry {
	entry := &messageEntry{onSend: onSend}
	entry.MultiLine = true
	entry.ExtendBaseWidget(entry)
	return entry
}

func (e *messageEntry) KeyDown(key *fyne.KeyEvent) {
	e.Entry.KeyDown(key)
	if key == nil {
		return
	}
	if key.Name == desktop.KeyShiftLeft || key.Name == desktop.KeyShiftRight {
		e.shiftDown = true
	}
}

func (e *messageEntry) KeyUp(key *fyne.KeyEvent) {
	e.Entry.KeyUp(key)
	if key == nil {
		return
	}
	if key.Name == desktop.KeyShiftLeft || key.Name == desktop.KeyShiftRight {
		e.shiftDown = false
	}
}

func (e *messageEntry) TypedKey(key *fyne.KeyEvent) {
	if key == nil {
		return
	}
	if key.Name == fyne.KeyReturn || key.Name == fyne.KeyEnter {
		if e.shiftDown {
			e.Entry.TypedKey(key)
			return
		}
		if e.onSend != nil {
			e.onSend()
		}
		return
	}
	e.Entry.TypedKey(key)
}

func (c *controller) buildChatPane() fyne.CanvasObject {
	c.chatHeader = widget.NewLabel("Select a conversation")
	c.chatHeader.TextStyle = fyne.TextStyle{Bold: true}
	c.chatSubheader = canvas.NewText("", colorMuted)
	c.chatSubheader.TextSize = 11
	header := container.NewPadded(container.NewVBox(c.chatHeader, c.chatSubheader))

	empty := widget.NewLabel("No messages yet")
	empty.Alignment = fyne.TextAlignCenter
	empty.Importance = widget.LowImportance
	c.chatMessagesBox = container.NewVBox(empty)
	c.chatScroll = container.NewVScroll(c.chatMessagesBox)

	c.messageInput = newMessageEntry(c.sendCurrentMessage)
	c.messageInput.SetPlaceHolder("Type a message...")
	c.messageInput.Wrapping = fyne.TextWrapWord
	c.messageInput.SetMinRowsVisible(2)

	attachBtn := widget.NewButtonWithIcon("", theme.MailAttachmentIcon(), c.attachImageToCurrentChat)
	sendBtn := widget.NewButton("Send", c.sendCurrentMessage)
	sendBtn.Importance = widget.HighImportance
	controls := container.NewVBox(sendBtn, attachBtn)
	inputPane := container.NewBorder(nil, nil, nil, container.NewPadded(controls), c.messageInput)
	c.chatComposer = container.NewPadded(inputPane)
	c.chatComposer.Hide()

	return container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), c.chatComposer),
		nil, nil, c.chatScroll,
	)
}

// openConversation closes any active session and opens a new one for the
// identifier. Both list selection and the startup deep link land here.
func (c *controller) openConversation(identifier string) {
	c.closeSession()

	session := chat.NewSession(chat.SessionConfig{
		Directory: c.directory,
		Store:     c.transcripts,
		OnUpdate:  c.refreshTranscript,
	})

	c.sessionMu.Lock()
	c.session = session
	c.sessionMu.Unlock()

	if err := session.Open(identifier); err != nil {
		if errors.Is(err, chat.ErrNoConversation) {
			c.showNotFound(identifier)
			return
		}
		c.setStatus(fmt.Sprintf("Open conversation failed: %v", err))
		return
	}

	c.updateChatHeader()
	c.refreshTranscript()
}

func (c *controller) closeSession() {
	c.sessionMu.Lock()
	session := c.session
	c.session = nil
	c.sessionMu.Unlock()
	if session != nil {
		session.Close()
	}
}

func (c *controller) currentSession() *chat.Session {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.session
}

func (c *controller) updateChatHeader() {
	session := c.currentSession()
	if session == nil {
		return
	}
	conversation := session.Conversation()

	subtitle := ""
	if conversation.IsGroup() {
		subtitle = fmt.Sprintf("%d members", len(conversation.Members))
	}

	fyne.Do(func() {
		if c.chatHeader != nil {
			c.chatHeader.SetText(conversation.Name)
		}
		if c.chatSubheader != nil {
			c.chatSubheader.Text = subtitle
			c.chatSubheader.Refresh()
		}
		if c.chatComposer != nil {
			c.chatComposer.Show()
		}
	})
}

func (c *controller) showNotFound(identifier string) {
	fyne.Do(func() {
		if c.chatHeader != nil {
			c.chatHeader.SetText("Conversation not found")
		}
		if c.chatSubheader != nil {
			c.chatSubheader.Text = fmt.Sprintf("Nothing matches %q", identifier)
			c.chatSubheader.Refresh()
		}
		if c.chatComposer != nil {
			c.chatComposer.Hide()
		}
		if c.chatMessagesBox != nil {
			c.chatMessagesBox.RemoveAll()
			hint := widget.NewLabel("Pick a conversation from the list to start chatting.")
			hint.Alignment = fyne.TextAlignCenter
			hint.Importance = widget.LowImportance
			c.chatMessagesBox.Add(hint)
			c.chatMessagesBox.Refresh()
		}
	})
}

func (c *controller) sendCurrentMessage() {
	session := c.currentSession()
	if session == nil {
		c.setStatus("Select a conversation before sending a message")
		return
	}

	content := c.messageInput.Text
	c.messageInput.SetText("")
	session.Send(content)
}

func (c *controller) attachImageToCurrentChat() {
	session := c.currentSession()
	if session == nil {
		c.setStatus("Select a conversation before attaching an image")
		return
	}

	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			c.setStatus(fmt.Sprintf("Pick image failed: %v", err))
			return
		}
		if reader == nil {
			return
		}
		// Read and encode off the UI loop; the message is appended only
		// once the payload is fully read.
		go func() {
			defer reader.Close()
			payload, readErr := io.ReadAll(reader)
			if readErr != nil {
				c.setStatus(fmt.Sprintf("Read image failed: %v", readErr))
				return
			}
			session.SendImage(payload, mimeTypeForPath(reader.URI().Name()))
		}()
	}, c.window)
	picker.SetFilter(fynestorage.NewExtensionFileFilter(imageExtensions))
	picker.Show()
}

func mimeTypeForPath(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		return mimeType
	}
	return "image/png"
}

func (c *controller) refreshTranscript() {
	session := c.currentSession()
	if session == nil {
		return
	}
	messages := session.Transcript()
	conversation := session.Conversation()

	fyne.Do(func() {
		if c.chatMessagesBox == nil {
			return
		}
		rows := buildTranscriptRows(messages, conversation)
		c.chatMessagesBox.RemoveAll()
		if len(rows) == 0 {
			empty := widget.NewLabel("No messages yet")
			empty.Alignment = fyne.TextAlignCenter
			empty.Importance = widget.LowImportance
			c.chatMessagesBox.Add(empty)
		} else {
			for _, row := range rows {
				c.chatMessagesBox.Add(row)
			}
		}
		c.chatMessagesBox.Refresh()
		if c.chatScroll != nil {
			c.chatScroll.ScrollToBottom()
		}
	})
}

// buildTranscriptRows renders a transcript in order. Consecutive group
// messages from one sender share a single attribution label.
func buildTranscriptRows(messages []chat.Message, conversation chat.Conversation) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, 0, len(messages))
	previousSender := ""
	for _, message := range messages {
		showSender := conversation.IsGroup() &&
			message.SenderID != chat.LocalUserID &&
			message.SenderID != previousSender
		out = append(out, renderMessageRow(message, conversation, showSender))
		previousSender = message.SenderID
	}
	return out
}

func renderMessageRow(message chat.Message, conversation chat.Conversation, showSender bool) fyne.CanvasObject {
	outgoing := message.SenderID == chat.LocalUserID

	items := make([]fyne.CanvasObject, 0, 3)
	if showSender {
		sender := canvas.NewText(senderLabel(conversation, message.SenderID), colorAccent)
		sender.TextSize = 11
		sender.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, sender)
	}

	if message.Type == chat.MessageImage {
		items = append(items, renderImageBody(message))
	} else {
		body := widget.NewLabel(message.Content)
		body.Wrapping = fyne.TextWrapWord
		items = append(items, body)
	}

	ts := canvas.NewText(message.Timestamp, colorMuted)
	ts.TextSize = 11
	ts.Alignment = fyne.TextAlignTrailing
	items = append(items, ts)

	bgColor := colorIncomingMsg
	if outgoing {
		bgColor = colorOutgoingMsg
	}
	bubble := newRoundedBg(bgColor, 10, container.NewVBox(items...))

	if outgoing {
		return container.NewGridWithColumns(2, layout.NewSpacer(), bubble)
	}
	return container.NewGridWithColumns(2, bubble, layout.NewSpacer())
}

func renderImageBody(message chat.Message) fyne.CanvasObject {
	label := widget.NewLabel("🖼 " + message.Content)
	label.TextStyle = fyne.TextStyle{Italic: true}

	reference := strings.TrimSpace(message.ImageURL)
	if reference == "" {
		return label
	}

	ref := canvas.NewText(truncateReference(reference), colorMuted)
	ref.TextSize = 10
	return container.NewVBox(label, ref)
}

// truncateReference keeps data URIs from flooding a bubble.
func truncateReference(reference string) string {
	const maxLen = 48
	if len(reference) <= maxLen {
		return reference
	}
	return reference[:maxLen] + "…"
}

// senderLabel resolves a group sender's display name by membership
// lookup. Messages from unknown senders still render, with a fallback.
func senderLabel(conversation chat.Conversation, senderID string) string {
	if member, ok := conversation.MemberByID(senderID); ok {
		return member.Name
	}
	return unknownSenderLabel
}
