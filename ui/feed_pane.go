package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"campuschat/feed"
)

func (c *controller) buildFeedPane() fyne.CanvasObject {
	heading := widget.NewLabel("Campus Feed")
	heading.TextStyle = fyne.TextStyle{Bold: true}

	posts := feed.SeedPosts()
	cards := make([]fyne.CanvasObject, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, c.buildFeedCard(post))
	}

	list := container.NewVBox(cards...)
	top := container.NewVBox(container.NewPadded(heading), widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, container.NewVScroll(container.NewPadded(list)))
}

func (c *controller) buildFeedCard(post feed.Post) fyne.CanvasObject {
	author := widget.NewLabel(post.UserID)
	author.TextStyle = fyne.TextStyle{Bold: true}

	kind := canvas.NewText(post.Kind, colorAccent)
	kind.TextSize = 11

	body := widget.NewLabel(post.Caption)
	body.Wrapping = fyne.TextWrapWord

	meta := post.CreatedLabel
	if post.Location != "" {
		meta = post.Location + " · " + meta
	}
	when := canvas.NewText(meta, colorMuted)
	when.TextSize = 11

	favoriteBtn := widget.NewButtonWithIcon("", theme.ConfirmIcon(), nil)
	c.applyFavoriteIcon(favoriteBtn, post.ID)
	favoriteBtn.OnTapped = func() {
		if c.feed == nil {
			return
		}
		if _, err := c.feed.ToggleFavorite(post.ID); err != nil {
			c.setStatus(fmt.Sprintf("Toggle favorite failed: %v", err))
			return
		}
		c.applyFavoriteIcon(favoriteBtn, post.ID)
	}

	header := container.NewBorder(nil, nil, author, favoriteBtn, container.NewCenter(kind))
	card := container.NewVBox(header, body, when)
	return newRoundedBg(paletteSurface0, 10, card)
}

func (c *controller) applyFavoriteIcon(button *widget.Button, postID string) {
	if c.feed == nil {
		button.Disable()
		return
	}
	favorite, err := c.feed.IsFavorite(postID)
	if err != nil {
		return
	}
	fyne.Do(func() {
		if favorite {
			button.SetIcon(theme.ConfirmIcon())
			button.Importance = widget.HighImportance
		} else {
			button.SetIcon(theme.ContentAddIcon())
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	})
}
