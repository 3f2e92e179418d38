package panel

import (
	"strings"

	"github.com/amonks/ggc/countdown"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	labelCharLimit = 120
	dateCharLimit  = 25
)

type formField int

const (
	fieldName formField = iota
	fieldDate
)

// addForm collects the label and date for a new countdown.
type addForm struct {
	name  textinput.Model
	date  textinput.Model
	focus formField
	err   string
}

func newAddForm() addForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Vacances"
	name.CharLimit = labelCharLimit

	date := textinput.New()
	date.Prompt = ""
	date.Placeholder = countdown.DateHint
	date.CharLimit = dateCharLimit

	form := addForm{name: name, date: date, focus: fieldName}
	form.name.Focus()
	return form
}

func (form addForm) Label() string {
	return form.name.Value()
}

func (form addForm) Date() string {
	return form.date.Value()
}

func (form addForm) toggleFocus() addForm {
	if form.focus == fieldName {
		form.focus = fieldDate
		form.name.Blur()
		form.date.Focus()
		return form
	}
	form.focus = fieldName
	form.date.Blur()
	form.name.Focus()
	return form
}

func (form addForm) Update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	if form.focus == fieldName {
		form.name, cmd = form.name.Update(msg)
		return form, cmd
	}
	form.date, cmd = form.date.Update(msg)
	return form, cmd
}

func (form addForm) View() string {
	rows := []string{
		labelStyle.Render("Add countdown"),
		"",
		formRow("Name", form.name.View(), form.focus == fieldName),
		formRow("Date ("+countdown.DateHint+")", form.date.View(), form.focus == fieldDate),
	}
	if form.err != "" {
		rows = append(rows, "", statusErrorStyle.Render(form.err))
	}
	rows = append(rows, "", valueMuted.Render("enter add | tab switch field | esc cancel"))
	return strings.Join(rows, "\n")
}

func formRow(label, input string, focused bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	return marker + labelStyle.Render(label+":") + " " + input
}
