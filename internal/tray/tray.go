//go:build tray

package tray

import (
	"context"
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/indicator"
)

// AppID identifies ggc to the desktop environment.
const AppID = "com.amonks.ggc"

// ErrNoSystemTray is returned when the desktop driver has no tray support.
var ErrNoSystemTray = errors.New("system tray is not supported on this desktop")

// Options configures the tray.
type Options struct {
	Title  string
	Clock  indicator.Clock
	Order  countdown.Order
	Logger *log.Logger
}

// Run shows the tray menu until the app quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	a := app.NewWithID(AppID)
	desk, ok := a.(desktop.App)
	if !ok {
		return ErrNoSystemTray
	}

	window := a.NewWindow(opts.Title)
	window.SetContent(container.NewVBox(widget.NewLabel(opts.Title)))
	window.Resize(fyne.NewSize(360, 120))
	window.SetCloseIntercept(window.Hide)

	var ind *indicator.Indicator
	actions := menuActions{}
	presenter := indicator.PresenterFunc(func(rows []countdown.Remaining) {
		desk.SetSystemTrayMenu(buildMenu(opts.Title, rows, actions))
	})
	actions.add = func() { showAddDialog(window, ind) }
	actions.remove = func(id string) { ind.RequestDelete(id) }

	ind = indicator.New(indicator.Options{
		Presenter: presenter,
		Clock:     opts.Clock,
		Order:     opts.Order,
		Logger:    opts.Logger,
	})
	a.Lifecycle().SetOnStopped(ind.Disable)

	ticks, done := ind.Ticks(), ind.Done()
	go func() {
		for {
			select {
			case <-ticks:
				fyne.Do(ind.Refresh)
			case <-ctx.Done():
				fyne.Do(a.Quit)
				return
			case <-done:
				return
			}
		}
	}()

	a.Run()
	return nil
}

func showAddDialog(window fyne.Window, ind *indicator.Indicator) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Vacances")
	dateEntry := widget.NewEntry()
	dateEntry.SetPlaceHolder(countdown.DateHint)

	window.Show()
	dialog.ShowForm("Add countdown", "Add", "Cancel", []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Date ("+countdown.DateHint+")", dateEntry),
	}, func(submitted bool) {
		if !submitted {
			window.Hide()
			return
		}
		if _, err := ind.RequestAdd(nameEntry.Text, dateEntry.Text); err != nil {
			dialog.ShowError(err, window)
			return
		}
		window.Hide()
	}, window)
}
