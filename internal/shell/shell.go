// Package shell is a line-oriented countdown presenter: it reads commands
// from an input stream and prints the countdown table after every change.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/amonks/ggc/countdown"
	"github.com/amonks/ggc/indicator"
	"github.com/amonks/ggc/internal/ics"
	"github.com/amonks/ggc/internal/ids"
	"github.com/amonks/ggc/internal/markdown"
	internalstrings "github.com/amonks/ggc/internal/strings"
	"github.com/amonks/ggc/internal/ui"
)

const defaultHelpWidth = 80

const helpText = `# Commands

- ` + "`add <date> <label>`" + ` add a countdown; date is YYYY-MM-DD, YYYY-MM-DDTHH:MM or YYYY-MM-DD HH:MM
- ` + "`rm <id-or-label>`" + ` delete a countdown by ID prefix or exact label (also ` + "`del`" + `)
- ` + "`ls`" + ` print the countdowns (also ` + "`list`" + `)
- ` + "`ics`" + ` print the countdowns as an iCalendar document
- ` + "`help`" + ` show this help
- ` + "`quit`" + ` exit (also ` + "`exit`" + `)

The table refreshes every minute.
`

// Options configures a shell session.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Clock defaults to the wall clock.
	Clock indicator.Clock

	// Order selects list ordering.
	Order countdown.Order

	// DateFormat is the layout for the TARGET column.
	DateFormat string

	// HelpWidth wraps help output. Defaults to 80 columns.
	HelpWidth int

	// Import seeds the session before the first render.
	Import []ics.Event

	// NewID overrides countdown ID generation.
	NewID func() string

	Logger *log.Logger
}

type session struct {
	out        io.Writer
	errOut     io.Writer
	dateFormat string
	helpWidth  int
	quiet      bool
}

// Run executes commands from opts.In until EOF, quit, or ctx is done.
//
// Input is read on a separate goroutine. When Run returns because of quit
// or ctx, that goroutine stays blocked in a Read on opts.In until the reader
// returns data, EOF or an error, so callers that keep running should close
// opts.In.
func Run(ctx context.Context, opts Options) error {
	if opts.In == nil || opts.Out == nil {
		return fmt.Errorf("shell input and output are required")
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = opts.Out
	}
	helpWidth := opts.HelpWidth
	if helpWidth <= 0 {
		helpWidth = defaultHelpWidth
	}

	s := &session{
		out:        opts.Out,
		errOut:     errOut,
		dateFormat: opts.DateFormat,
		helpWidth:  helpWidth,
		quiet:      true,
	}
	ind := indicator.New(indicator.Options{
		Presenter: indicator.PresenterFunc(s.render),
		Clock:     opts.Clock,
		Order:     opts.Order,
		NewID:     opts.NewID,
		Logger:    opts.Logger,
	})

	for _, event := range opts.Import {
		if _, err := ind.RequestAddAt(event.Summary, event.Start); err != nil {
			s.errorf("skip imported event %q: %v", event.UID, err)
		}
	}
	s.quiet = false
	ind.Refresh()

	requests := make(chan indicator.Request)
	go readCommands(ctx, opts.In, requests, ind.Done(), s)

	return ind.Run(ctx, requests)
}

func readCommands(ctx context.Context, in io.Reader, requests chan<- indicator.Request, done <-chan struct{}, s *session) {
	defer close(requests)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		request := func(ind *indicator.Indicator) {
			s.execute(ind, line)
		}
		select {
		case requests <- request:
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case requests <- func(*indicator.Indicator) { s.errorf("read input: %v", err) }:
		case <-done:
		case <-ctx.Done():
		}
	}
}

func (s *session) execute(ind *indicator.Indicator, line string) {
	name, rest := internalstrings.SplitCommand(line)
	if name == "" || strings.HasPrefix(name, "#") {
		return
	}

	switch name {
	case "add":
		s.add(ind, rest)
	case "rm", "del", "delete":
		s.remove(ind, rest)
	case "ls", "list":
		ind.Refresh()
	case "ics":
		if err := ics.Write(s.out, ind.Snapshot(), ind.Now()); err != nil {
			s.errorf("%v", err)
		}
	case "help", "?":
		fmt.Fprintln(s.out, string(markdown.SafeRender(s.helpWidth, []byte(helpText))))
	case "quit", "exit", "q":
		ind.Disable()
	default:
		s.errorf("unknown command %q (try help)", name)
	}
}

func (s *session) add(ind *indicator.Indicator, args string) {
	dateText, label := splitDate(args)
	if dateText == "" {
		s.errorf("usage: add <date> <label>")
		return
	}
	s.quiet = true
	id, err := ind.RequestAdd(label, dateText)
	s.quiet = false
	if err != nil {
		s.errorf("%v", err)
		return
	}
	fmt.Fprintf(s.out, "added %s\n", id)
	ind.Refresh()
}

func (s *session) remove(ind *indicator.Indicator, args string) {
	if internalstrings.IsBlank(args) {
		s.errorf("usage: rm <id-or-label>")
		return
	}
	id, err := resolve(ind, args)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.quiet = true
	ind.RequestDelete(id)
	s.quiet = false
	fmt.Fprintf(s.out, "deleted %s\n", id)
	ind.Refresh()
}

// splitDate separates the date from the label in add arguments. A bare
// date followed by an HH:MM or HH:MM:SS word takes that word as its time.
func splitDate(args string) (string, string) {
	dateText, label, _ := strings.Cut(strings.TrimSpace(args), " ")
	label = strings.TrimSpace(label)
	if _, err := time.Parse(time.DateOnly, dateText); err != nil {
		return dateText, label
	}
	clock, rest, _ := strings.Cut(label, " ")
	if isClock(clock) {
		return dateText + " " + clock, strings.TrimSpace(rest)
	}
	return dateText, label
}

func isClock(word string) bool {
	for _, layout := range []string{"15:04", time.TimeOnly} {
		if _, err := time.Parse(layout, word); err == nil {
			return true
		}
	}
	return false
}

// resolve matches an ID prefix first, then an exact case-insensitive label.
func resolve(ind *indicator.Indicator, ref string) (string, error) {
	store := ind.Store()
	if store == nil {
		return "", indicator.ErrDisabled
	}
	id, err := store.Resolve(ref)
	if err == nil || !errors.Is(err, countdown.ErrEntryNotFound) {
		return id, err
	}

	label := internalstrings.NormalizeWhitespace(ref)
	var matches []string
	for _, row := range ind.Snapshot() {
		if strings.EqualFold(row.Label, label) {
			matches = append(matches, row.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", err
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %d countdowns are labeled %q", countdown.ErrAmbiguousIDPrefix, len(matches), label)
	}
}

func (s *session) render(rows []countdown.Remaining) {
	if s.quiet {
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "No countdowns.")
		return
	}

	idList := make([]string, 0, len(rows))
	for _, row := range rows {
		idList = append(idList, row.ID)
	}
	prefixLengths := ids.UniquePrefixLengths(idList)

	table := ui.NewTableBuilder([]string{"ID", "COUNTDOWN", "TARGET"}, len(rows))
	for _, row := range rows {
		table.AddRow(
			ui.HighlightID(row.ID, ui.PrefixLength(prefixLengths, row.ID)),
			ui.TruncateTableCell(ui.FormatCountdown(row.Label, row.Days)),
			ui.FormatTarget(row.Target, s.dateFormat),
		)
	}
	fmt.Fprint(s.out, table.String())
}

func (s *session) errorf(format string, args ...any) {
	fmt.Fprintf(s.errOut, "error: "+format+"\n", args...)
}
