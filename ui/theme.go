package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// Dark palette shared by all panes.
var (
	paletteCrust    = color.NRGBA{R: 17, G: 17, B: 27, A: 255}
	paletteMantle   = color.NRGBA{R: 24, G: 24, B: 37, A: 255}
	paletteBase     = color.NRGBA{R: 30, G: 30, B: 46, A: 255}
	paletteSurface0 = color.NRGBA{R: 49, G: 50, B: 68, A: 255}
	paletteSurface1 = color.NRGBA{R: 69, G: 71, B: 90, A: 255}
	paletteSurface2 = color.NRGBA{R: 88, G: 91, B: 112, A: 255}
	paletteOverlay  = color.NRGBA{R: 127, G: 132, B: 156, A: 255}
	paletteText     = color.NRGBA{R: 205, G: 214, B: 244, A: 255}
	paletteBlue     = color.NRGBA{R: 137, G: 180, B: 250, A: 255}
	paletteGreen    = color.NRGBA{R: 166, G: 227, B: 161, A: 255}
	paletteRed      = color.NRGBA{R: 243, G: 139, B: 168, A: 255}
)

var (
	colorMuted       = paletteOverlay
	colorAccent      = paletteBlue
	colorUnreadBadge = paletteRed
	colorOutgoingMsg = paletteSurface1
	colorIncomingMsg = paletteSurface0
)

// newRoundedBg creates a container with a rounded colored rectangle behind the content.
func newRoundedBg(bgColor color.Color, radius float32, content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(bgColor)
	bg.CornerRadius = radius
	return container.NewStack(bg, container.NewPadded(content))
}

// newAvatarBadge renders a conversation's initials on a rounded tile.
func newAvatarBadge(glyph string) fyne.CanvasObject {
	bg := canvas.NewRectangle(paletteSurface2)
	bg.CornerRadius = 18
	text := canvas.NewText(glyph, paletteText)
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = 13
	text.Alignment = fyne.TextAlignCenter
	tile := container.NewStack(bg, container.NewCenter(text))
	return container.NewGridWrap(fyne.NewSize(36, 36), tile)
}

// newUnreadBadge renders a small count bubble for unread conversations.
func newUnreadBadge(count int) fyne.CanvasObject {
	bg := canvas.NewRectangle(colorUnreadBadge)
	bg.CornerRadius = 9
	text := canvas.NewText(formatUnreadCount(count), paletteCrust)
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = 11
	text.Alignment = fyne.TextAlignCenter
	tile := container.NewStack(bg, container.NewCenter(text))
	return container.NewGridWrap(fyne.NewSize(18, 18), tile)
}

func formatUnreadCount(count int) string {
	if count > 9 {
		return "9+"
	}
	if count <= 0 {
		return ""
	}
	return strconv.Itoa(count)
}

// campusTheme wraps the default theme with the dark palette above.
type campusTheme struct {
	fyne.Theme
}

func newCampusTheme() fyne.Theme {
	return &campusTheme{Theme: theme.DefaultTheme()}
}

func (t *campusTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return paletteBase
	case theme.ColorNameButton:
		return paletteSurface0
	case theme.ColorNameDisabled:
		return paletteOverlay
	case theme.ColorNameForeground:
		return paletteText
	case theme.ColorNameHeaderBackground:
		return paletteMantle
	case theme.ColorNameInputBackground:
		return paletteSurface0
	case theme.ColorNameInputBorder:
		return paletteSurface2
	case theme.ColorNameMenuBackground:
		return paletteMantle
	case theme.ColorNameOverlayBackground:
		return paletteMantle
	case theme.ColorNamePlaceHolder:
		return paletteOverlay
	case theme.ColorNamePrimary:
		return paletteBlue
	case theme.ColorNameScrollBar:
		return paletteSurface2
	case theme.ColorNameSeparator:
		return paletteSurface0
	case theme.ColorNameShadow:
		return color.NRGBA{R: 17, G: 17, B: 27, A: 128}
	case theme.ColorNameHover:
		return paletteSurface1
	case theme.ColorNameFocus:
		return paletteBlue
	case theme.ColorNameForegroundOnPrimary:
		return paletteBase
	case theme.ColorNameSelection:
		return paletteSurface1
	case theme.ColorNameSuccess:
		return paletteGreen
	case theme.ColorNameHyperlink:
		return paletteBlue
	default:
		return t.Theme.Color(name, variant)
	}
}
