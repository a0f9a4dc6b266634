// Package console is a line-oriented terminal front end over the panels.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/shell"
	"github.com/frahmantamala/rbac-console/pkg/logger"
)

const helpText = `Commands:
  tabs                    show every tab with its record count
  tab <name>              switch to users, roles or permissions
  list                    list records of the active tab
  add                     open the editor with a blank record
  edit <id>               open the editor on an existing record
  set key=value ...       set draft fields (quote values with spaces)
  toggle <label>          flip a permission label on a role draft
  show                    print the editor state
  save                    validate and submit the draft
  cancel                  discard the draft
  delete <id>             delete a record
  help                    print this help
  quit                    leave the console
`

type Console struct {
	shell  *shell.Shell
	views  map[shell.Tab]View
	logger *slog.Logger
}

// New binds one view per tab. Views are matched to tabs by Kind.
func New(sh *shell.Shell, lg *slog.Logger, views ...View) (*Console, error) {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	c := &Console{
		shell:  sh,
		views:  make(map[shell.Tab]View, len(views)),
		logger: lg.With("component", "console"),
	}
	for _, v := range views {
		tab, err := shell.ParseTab(v.Kind())
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", v.Kind(), err)
		}
		c.views[tab] = v
	}
	for _, tab := range shell.Tabs() {
		if _, ok := c.views[tab]; !ok {
			return nil, fmt.Errorf("no view registered for tab %q", tab)
		}
	}
	return c, nil
}

// Run reads commands from in until quit, EOF or ctx is done. Lines are read on
// a separate goroutine so cancelling ctx returns even while in is blocked; that
// goroutine exits once in yields its next line or EOF.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprintln(out, "RBAC console. Type 'help' for commands.")
	for {
		fmt.Fprintf(out, "%s> ", c.shell.Active())
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			c.logger.Debug("console interrupted", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if quit := c.Exec(line, out); quit {
				return nil
			}
		}
	}
}

// Exec runs one command line and reports whether the console should exit.
// Command failures are printed to out.
func (c *Console) Exec(line string, out io.Writer) bool {
	args, err := Tokenize(line)
	if err != nil {
		c.printError(out, err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	c.logger.Debug("command", "name", cmd, "args", len(args), "tab", c.shell.Active())

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(out, helpText)
	case "tabs":
		c.printTabs(out)
	case "tab":
		c.selectTab(out, args)
	case "list", "ls":
		c.printList(out)
	case "add":
		c.report(out, c.active().Add(), "editing new record")
	case "edit":
		if id, ok := c.parseID(out, args); ok {
			c.report(out, c.active().Edit(id), fmt.Sprintf("editing record %d", id))
		}
	case "set":
		c.setFields(out, args)
	case "toggle":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: toggle <label>")
			return false
		}
		c.report(out, c.active().Toggle(args[0]), "")
		if c.active().Draft().Editing {
			c.printDraft(out)
		}
	case "show":
		c.printDraft(out)
	case "save":
		id, err := c.active().Save()
		c.report(out, err, fmt.Sprintf("saved record %d", id))
	case "cancel":
		c.active().Cancel()
		fmt.Fprintln(out, "editor closed")
	case "delete", "rm":
		if id, ok := c.parseID(out, args); ok {
			if c.active().Delete(id) {
				fmt.Fprintf(out, "deleted record %d\n", id)
			} else {
				fmt.Fprintf(out, "no record %d, nothing deleted\n", id)
			}
		}
	default:
		fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
	}
	return false
}

func (c *Console) active() View {
	return c.views[c.shell.Active()]
}

func (c *Console) selectTab(out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: tab <users|roles|permissions>")
		return
	}
	if err := c.shell.Select(shell.Tab(args[0])); err != nil {
		c.printError(out, err)
		return
	}
	c.printList(out)
}

func (c *Console) setFields(out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(out, "usage: set key=value ...")
		return
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			fmt.Fprintf(out, "expected key=value, got %q\n", arg)
			return
		}
		if err := c.active().Set(key, value); err != nil {
			c.printError(out, err)
			return
		}
	}
	c.printDraft(out)
}

func (c *Console) parseID(out io.Writer, args []string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: <command> <id>")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}

func (c *Console) report(out io.Writer, err error, ok string) {
	if err != nil {
		c.printError(out, err)
		return
	}
	if ok != "" {
		fmt.Fprintln(out, ok)
	}
}

func (c *Console) printError(out io.Writer, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		fmt.Fprintf(out, "error: %s\n", appErr.GetDetailedMessage())
		return
	}
	fmt.Fprintf(out, "error: %v\n", err)
}

func (c *Console) printTabs(out io.Writer) {
	snap := c.shell.Snapshot()
	for _, t := range snap.Tabs {
		marker := " "
		if t.Tab == snap.Active {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-12s %d\n", marker, t.Tab, t.Count)
	}
}

func (c *Console) printList(out io.Writer) {
	v := c.active()
	rows := v.Rows()
	if len(rows) == 0 {
		fmt.Fprintf(out, "no %s\n", v.Kind())
		return
	}
	groups := v.Groups()
	if groups == nil {
		printTable(out, v.Columns(), rows)
		return
	}
	for _, g := range groups {
		fmt.Fprintf(out, "%s (%d)\n", g.Title, len(g.Rows))
		printTable(out, v.Columns(), g.Rows)
	}
}

func printTable(out io.Writer, columns []string, rows [][]string) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func (c *Console) printDraft(out io.Writer) {
	d := c.active().Draft()
	if !d.Editing {
		fmt.Fprintln(out, "editor idle")
		return
	}
	if d.TargetID != 0 {
		fmt.Fprintf(out, "editing %s record %d (%s)\n", c.active().Kind(), d.TargetID, d.Mode)
	} else {
		fmt.Fprintf(out, "editing new %s record (%s)\n", c.active().Kind(), d.Mode)
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, col := range d.Columns {
		if col == "ID" {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", strings.ToLower(col), d.Values[i])
	}
	tw.Flush()
	for _, line := range d.Details {
		fmt.Fprintf(out, "  %s\n", line)
	}
}
