package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"MyWhiteboard/internal/state"
)

// SetupMenus installs the Colour, Theme and Erase menus on the window.
func (a *App) SetupMenus() {
	a.mainMenu = a.buildMainMenu()
	a.window.SetMainMenu(a.mainMenu)
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	colourItems := make([]*fyne.MenuItem, 0, len(presetColours)+1)
	for _, c := range presetColours {
		item := fyne.NewMenuItem(c, func() { a.state.SelectColour(c) })
		item.Icon = swatchIcon(c)
		colourItems = append(colourItems, item)
	}
	colourItems = append(colourItems, fyne.NewMenuItem("Other", a.chooseCustomColour))

	light := state.LightTheme(a.cfg.Owner)
	lightItem := fyne.NewMenuItem("Light", func() { a.applyTheme(light) })
	lightItem.Icon = swatchIcon(light.Background)

	a.eraserItem = fyne.NewMenuItem("Eraser", a.toggleEraser)

	return fyne.NewMainMenu(
		fyne.NewMenu("Colour", colourItems...),
		fyne.NewMenu("Theme", lightItem),
		fyne.NewMenu("Erase",
			fyne.NewMenuItem("Clear canvas", a.clearCanvas),
			a.eraserItem,
		),
	)
}

func (a *App) chooseCustomColour() {
	a.pickColour(func(c color.Color) {
		if c == nil {
			return
		}
		a.state.SetCustomColour(state.HexColour(c), true)
	})
}

// showColourPicker opens fyne's picker. Its callback only runs on confirm,
// so dismissing the dialog leaves the colour alone.
func (a *App) showColourPicker(onPicked func(color.Color)) {
	d := dialog.NewColorPicker("Colour", "Pick a drawing colour", onPicked, a.window)
	d.Advanced = true
	d.Show()
}

func (a *App) toggleEraser() {
	on := a.state.ToggleEraser()
	if a.eraserItem != nil {
		a.eraserItem.Checked = on
	}
	if a.mainMenu != nil {
		a.mainMenu.Refresh()
	}
}

func (a *App) applyTheme(t state.Theme) {
	a.state.ApplyTheme(t)
	a.window.SetTitle(a.state.Title)
	a.board.Refresh()
}

func (a *App) clearCanvas() {
	a.state.Clear()
	a.board.Refresh()
	log.Println("[UI] Canvas cleared")
}
