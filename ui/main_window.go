package ui

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"campuschat/auth"
	"campuschat/chat"
	"campuschat/config"
	"campuschat/feed"
	"campuschat/storage"
)

// RunOptions configures the GUI runtime.
type RunOptions struct {
	Profile     *config.Profile
	Store       *storage.Store
	Directory   *chat.Directory
	Transcripts *chat.Store
	Auth        *auth.Service
	Feed        *feed.Service

	// OpenChat, when non-empty, opens this conversation on startup. It
	// accepts the same identifiers as list selection.
	OpenChat string
}

type controller struct {
	app    fyne.App
	window fyne.Window

	profile     *config.Profile
	store       *storage.Store
	directory   *chat.Directory
	transcripts *chat.Store
	auth        *auth.Service
	feed        *feed.Service

	listMu      sync.RWMutex
	listKind    string
	listEntries []chat.Conversation

	sessionMu sync.Mutex
	session   *chat.Session

	conversationList *widget.List
	filterAllBtn     *widget.Button
	filterGroupBtn   *widget.Button
	chatHeader       *widget.Label
	chatSubheader    *canvas.Text
	chatMessagesBox  *fyne.Container
	chatScroll       *container.Scroll
	messageInput     *messageEntry
	chatComposer     *fyne.Container
	statusLabel      *widget.Label
}

// Run starts the desktop client and blocks until the window closes.
func Run(options RunOptions) error {
	if err := options.validate(); err != nil {
		return err
	}

	app := fyneapp.NewWithID("campuschat")
	app.Settings().SetTheme(newCampusTheme())

	ctrl := newController(app, options)
	ctrl.window.ShowAndRun()
	ctrl.closeSession()
	return nil
}

func (o RunOptions) validate() error {
	if o.Profile == nil {
		return errors.New("profile is required")
	}
	if o.Store == nil {
		return errors.New("store is required")
	}
	if o.Directory == nil {
		return errors.New("directory is required")
	}
	if o.Transcripts == nil {
		return errors.New("transcript store is required")
	}
	return nil
}

func newController(app fyne.App, options RunOptions) *controller {
	ctrl := &controller{
		app:         app,
		window:      app.NewWindow("Campus Chat"),
		profile:     options.Profile,
		store:       options.Store,
		directory:   options.Directory,
		transcripts: options.Transcripts,
		auth:        options.Auth,
		feed:        options.Feed,
		listKind:    chat.KindPrivate,
	}

	ctrl.window.Resize(fyne.NewSize(1080, 720))
	ctrl.buildMainWindow()
	ctrl.refreshConversationList()
	ctrl.setStatus(fmt.Sprintf("Signed in as %s", ctrl.displayName()))

	if identifier := strings.TrimSpace(options.OpenChat); identifier != "" {
		ctrl.openConversation(identifier)
	}
	return ctrl
}

func (c *controller) displayName() string {
	if c.auth != nil {
		if user, ok := c.auth.CurrentUser(); ok {
			return user.Name
		}
	}
	return c.profile.DisplayName
}

func (c *controller) buildMainWindow() {
	left := c.buildConversationListPane()
	right := c.buildChatPane()

	c.statusLabel = widget.NewLabel("")
	c.statusLabel.Truncation = fyne.TextTruncateEllipsis

	messagesTab := container.NewHSplit(left, right)
	messagesTab.SetOffset(0.3)

	tabs := container.NewAppTabs(
		container.NewTabItem("Messages", messagesTab),
		container.NewTabItem("Feed", c.buildFeedPane()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	content := container.NewBorder(nil, container.NewPadded(c.statusLabel), nil, nil, tabs)
	c.window.SetContent(content)
}

func (c *controller) buildConversationListPane() fyne.CanvasObject {
	c.conversationList = widget.NewList(
		func() int {
			c.listMu.RLock()
			defer c.listMu.RUnlock()
			return len(c.listEntries)
		},
		func() fyne.CanvasObject {
			avatar := newAvatarBadge("")
			name := widget.NewLabel("")
			name.TextStyle = fyne.TextStyle{Bold: true}
			name.Truncation = fyne.TextTruncateEllipsis
			preview := canvas.NewText("", colorMuted)
			preview.TextSize = 11
			when := canvas.NewText("", colorMuted)
			when.TextSize = 11
			when.Alignment = fyne.TextAlignTrailing
			badge := newUnreadBadge(0)
			badge.Hide()
			meta := container.NewVBox(when, container.NewCenter(badge))
			info := container.NewVBox(name, preview)
			return container.NewBorder(nil, nil, container.NewCenter(avatar), meta, info)
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			entry, ok := c.entryByIndex(int(id))
			if !ok {
				return
			}
			bindConversationRow(object, entry)
		},
	)
	c.conversationList.OnSelected = func(id widget.ListItemID) {
		entry, ok := c.entryByIndex(int(id))
		if !ok {
			return
		}
		c.openConversation(entry.ID)
	}

	heading := widget.NewLabel("Messages")
	heading.TextStyle = fyne.TextStyle{Bold: true}

	c.filterAllBtn = widget.NewButton("Chats", func() { c.setListKind(chat.KindPrivate) })
	c.filterGroupBtn = widget.NewButton("Groups", func() { c.setListKind(chat.KindGroup) })
	c.applyFilterImportance()
	filters := container.NewGridWithColumns(2, c.filterAllBtn, c.filterGroupBtn)

	top := container.NewVBox(container.NewPadded(heading), container.NewPadded(filters), widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, c.conversationList)
}

// bindConversationRow pushes one directory entry into a prebuilt list row.
// Border(top, bottom, left, right, center): Objects = [center, left, right].
func bindConversationRow(object fyne.CanvasObject, entry chat.Conversation) {
	row := object.(*fyne.Container)
	info := row.Objects[0].(*fyne.Container)
	avatarCenter := row.Objects[1].(*fyne.Container)
	meta := row.Objects[2].(*fyne.Container)

	avatarTile := avatarCenter.Objects[0].(*fyne.Container).Objects[0].(*fyne.Container)
	avatarText := avatarTile.Objects[1].(*fyne.Container).Objects[0].(*canvas.Text)
	avatarText.Text = entry.AvatarGlyph
	avatarText.Refresh()

	name := info.Objects[0].(*widget.Label)
	name.SetText(entry.Name)
	preview := info.Objects[1].(*canvas.Text)
	preview.Text = entry.LastMessage
	preview.Refresh()

	when := meta.Objects[0].(*canvas.Text)
	when.Text = entry.TimestampLabel
	when.Refresh()

	badgeWrap := meta.Objects[1].(*fyne.Container)
	badge := badgeWrap.Objects[0].(*fyne.Container)
	if entry.Unread && entry.UnreadCount > 0 {
		badgeText := badge.Objects[0].(*fyne.Container).Objects[1].(*fyne.Container).Objects[0].(*canvas.Text)
		badgeText.Text = formatUnreadCount(entry.UnreadCount)
		badgeText.Refresh()
		badge.Show()
	} else {
		badge.Hide()
	}
}

func (c *controller) entryByIndex(index int) (chat.Conversation, bool) {
	c.listMu.RLock()
	defer c.listMu.RUnlock()
	if index < 0 || index >= len(c.listEntries) {
		return chat.Conversation{}, false
	}
	return c.listEntries[index], true
}

func (c *controller) setListKind(kind string) {
	c.listMu.Lock()
	c.listKind = kind
	c.listMu.Unlock()
	c.applyFilterImportance()
	c.refreshConversationList()
}

func (c *controller) applyFilterImportance() {
	c.listMu.RLock()
	kind := c.listKind
	c.listMu.RUnlock()

	fyne.Do(func() {
		if c.filterAllBtn == nil || c.filterGroupBtn == nil {
			return
		}
		if kind == chat.KindGroup {
			c.filterAllBtn.Importance = widget.MediumImportance
			c.filterGroupBtn.Importance = widget.HighImportance
		} else {
			c.filterAllBtn.Importance = widget.HighImportance
			c.filterGroupBtn.Importance = widget.MediumImportance
		}
		c.filterAllBtn.Refresh()
		c.filterGroupBtn.Refresh()
	})
}

func (c *controller) refreshConversationList() {
	c.listMu.Lock()
	c.listEntries = c.directory.List(c.listKind)
	c.listMu.Unlock()

	fyne.Do(func() {
		if c.conversationList != nil {
			c.conversationList.Refresh()
		}
	})
}

func (c *controller) setStatus(text string) {
	fyne.Do(func() {
		if c.statusLabel != nil {
			c.statusLabel.SetText(text)
		}
	})
}
