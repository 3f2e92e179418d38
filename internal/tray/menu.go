// Package tray shows countdowns in a desktop system tray menu.
package tray

import (
	"fyne.io/fyne/v2"

	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/internal/ui"
)

const (
	addLabel    = "Add countdown"
	deleteLabel = "Delete"
)

type menuActions struct {
	add    func()
	remove func(id string)
}

// buildMenu renders rows as tray menu items, each with a Delete child item.
func buildMenu(title string, rows []countdown.Remaining, actions menuActions) *fyne.Menu {
	items := make([]*fyne.MenuItem, 0, len(rows)+2)
	items = append(items, fyne.NewMenuItem(addLabel, actions.add))
	items = append(items, fyne.NewMenuItemSeparator())

	for _, row := range rows {
		id := row.ID
		item := fyne.NewMenuItem(ui.FormatCountdown(row.Label, row.Days), nil)
		item.ChildMenu = fyne.NewMenu("", fyne.NewMenuItem(deleteLabel, func() {
			if actions.remove != nil {
				actions.remove(id)
			}
		}))
		items = append(items, item)
	}
	return fyne.NewMenu(title, items...)
}
