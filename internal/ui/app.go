package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyWhiteboard/internal/config"
	"MyWhiteboard/internal/state"
)

// App wires the board state to one window: the canvas, the width slider
// and the menus.
type App struct {
	cfg    config.Config
	window fyne.Window
	state  *state.Board
	board  *BoardWidget
	slider *widget.Slider

	mainMenu   *fyne.MainMenu
	eraserItem *fyne.MenuItem

	// pickColour asks the user for a colour and calls back only on confirm.
	pickColour func(onPicked func(color.Color))
}

func NewApp(w fyne.Window, cfg config.Config) *App {
	a := &App{
		cfg:    cfg,
		window: w,
		state:  state.NewBoard(cfg),
	}
	a.board = NewBoardWidget(a.state, fyne.NewSize(cfg.MinWidth, cfg.MinHeight))
	a.slider = newWidthSlider(cfg.WidthMin, cfg.WidthMax, a.state)
	a.pickColour = a.showColourPicker
	w.SetTitle(a.state.Title)
	return a
}

// Build returns the window content: slider on top, canvas filling the rest.
// The canvas floor leaves room for the slider row so the whole window
// bottoms out at the configured minimum size.
func (a *App) Build() fyne.CanvasObject {
	toolbar := newToolbar(a.slider)
	rowHeight := toolbar.MinSize().Height + theme.Padding()
	a.board.minSize = fyne.NewSize(a.cfg.MinWidth, a.cfg.MinHeight-rowHeight)
	return container.NewBorder(toolbar, nil, nil, nil, a.board)
}

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("")

	appUI := NewApp(myWindow, cfg)
	appUI.SetupMenus()
	myWindow.SetContent(appUI.Build())
	myWindow.Resize(fyne.NewSize(cfg.CanvasWidth, cfg.CanvasHeight))

	log.Printf("[UI] Window %q ready at %vx%v", appUI.state.Title, cfg.CanvasWidth, cfg.CanvasHeight)
	myWindow.ShowAndRun()
}
