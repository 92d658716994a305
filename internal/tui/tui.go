// Package tui is the terminal front end. It owns no synchronization logic:
// every action is delegated to the use cases and the screen re-renders from
// the store. The TUI itself serves as the navigator (screen switching) and
// the confirmer (blocking yes/no gates).
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/avydrenko/shortdash/internal/api"
	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/avydrenko/shortdash/internal/store"
	"github.com/avydrenko/shortdash/internal/usecase"
	"go.uber.org/zap"
)

const noticeTTL = 2 * time.Second

type screen int

const (
	screenLogin screen = iota
	screenDashboard
)

// TUI drives the interactive session.
type TUI struct {
	auth    *usecase.Auth
	dash    *usecase.Dashboard
	baseURL string
	logger  *zap.Logger

	in  *bufio.Scanner
	out io.Writer
	scr screen

	mu        sync.Mutex
	notice    string
	noticeTTL time.Duration
}

// New wires the use cases around the shared API client.
func New(client *api.Client, in io.Reader, out io.Writer, logger *zap.Logger) *TUI {
	t := &TUI{
		baseURL:   client.BaseURL(),
		logger:    logger,
		in:        bufio.NewScanner(in),
		out:       out,
		scr:       screenLogin,
		noticeTTL: noticeTTL,
	}

	session := api.NewSessionClient(client)
	st := store.New()
	guard := usecase.NewSessionGuard(st, t, logger)

	t.auth = usecase.NewAuth(session, logger)
	t.dash = usecase.NewDashboard(api.NewRecordsClient(client), session, st, guard, t, t, logger)

	return t
}

// ToLogin implements usecase.Navigator: any session loss lands here.
func (t *TUI) ToLogin() {
	if t.scr != screenLogin {
		t.scr = screenLogin
		fmt.Fprintln(t.out, "Session ended. Please log in again.")
	}
}

// Confirm implements usecase.Confirmer with a blocking yes/no prompt.
func (t *TUI) Confirm(prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	if !t.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(t.in.Text()))
	return answer == "y" || answer == "yes"
}

// Run reads commands until EOF or quit.
func (t *TUI) Run(ctx context.Context) error {
	fmt.Fprintln(t.out, "shortdash — URL shortener dashboard. Type 'help' for commands.")

	for {
		fmt.Fprint(t.out, t.prompt())
		if !t.in.Scan() {
			return t.in.Err()
		}

		line := strings.TrimSpace(t.in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		if cmd == "quit" || cmd == "exit" {
			return nil
		}

		if t.scr == screenLogin {
			t.dispatchLogin(ctx, cmd, args)
		} else {
			t.dispatchDashboard(ctx, cmd, args)
		}
	}
}

func (t *TUI) prompt() string {
	if t.scr == screenLogin {
		return "(login)> "
	}
	if notice := t.currentNotice(); notice != "" {
		return fmt.Sprintf("[%s]\nshortdash> ", notice)
	}
	return "shortdash> "
}

func (t *TUI) dispatchLogin(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		fmt.Fprintln(t.out, "Commands: login <email> <password> | signup <email> <first> <last> <role> <password> | quit")
	case "login":
		if len(args) != 2 {
			fmt.Fprintln(t.out, "Usage: login <email> <password>")
			return
		}
		err := t.auth.Login(ctx, api.LoginInput{Email: args[0], Password: args[1]})
		if err != nil {
			t.printError(err)
			return
		}
		t.enterDashboard(ctx)
	case "signup":
		if len(args) != 5 {
			fmt.Fprintln(t.out, "Usage: signup <email> <first> <last> <role> <password>")
			return
		}
		err := t.auth.Signup(ctx, api.SignupInput{
			Email:     args[0],
			FirstName: args[1],
			LastName:  args[2],
			Role:      entity.Role(args[3]),
			Password:  args[4],
		})
		if err != nil {
			t.printError(err)
			return
		}
		t.enterDashboard(ctx)
	default:
		fmt.Fprintf(t.out, "Unknown command %q. Type 'help'.\n", cmd)
	}
}

// enterDashboard is the mount: the whole collection is fetched once.
func (t *TUI) enterDashboard(ctx context.Context) {
	t.scr = screenDashboard
	if err := t.dash.Refresh(ctx); err != nil {
		t.printError(err)
		return
	}
	t.renderList()
}

func (t *TUI) dispatchDashboard(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		fmt.Fprintln(t.out, "Commands: list | stats | add <url> | edit <id|#> | set <url> | save | cancel | delete <id|#> | copy <id|#> [short|orig] | refresh | logout | quit")

	case "list":
		t.renderList()

	case "stats":
		links, clicks := t.dash.Store().Stats()
		fmt.Fprintf(t.out, "Total links: %d, total clicks: %d\n", links, clicks)

	case "refresh":
		if err := t.dash.Refresh(ctx); err != nil {
			t.printError(err)
			return
		}
		t.renderList()

	case "add":
		if len(args) != 1 {
			fmt.Fprintln(t.out, "Usage: add <url>")
			return
		}
		record, err := t.dash.Add(ctx, args[0])
		if err != nil {
			t.printError(err)
			return
		}
		fmt.Fprintf(t.out, "Created %s -> %s\n", record.OriginalURL, t.shortLink(*record))

	case "edit":
		id, ok := t.resolveID(args)
		if !ok {
			return
		}
		ed, err := t.dash.BeginEdit(id)
		if err != nil {
			t.printError(err)
			return
		}
		fmt.Fprintf(t.out, "Editing %s (current: %s). Use 'set <url>' then 'save', or 'cancel'.\n", ed.ID, ed.Draft)

	case "set":
		if len(args) != 1 {
			fmt.Fprintln(t.out, "Usage: set <url>")
			return
		}
		if err := t.dash.SetDraft(args[0]); err != nil {
			t.printError(err)
			return
		}

	case "save":
		record, err := t.dash.SaveEdit(ctx)
		if err != nil {
			t.printError(err)
			return
		}
		fmt.Fprintf(t.out, "Saved %s -> %s\n", record.ID, record.OriginalURL)

	case "cancel":
		t.dash.CancelEdit()
		fmt.Fprintln(t.out, "Edit cancelled.")

	case "delete":
		id, ok := t.resolveID(args)
		if !ok {
			return
		}
		removed, err := t.dash.Remove(ctx, id)
		if err != nil {
			t.printError(err)
			return
		}
		if removed {
			fmt.Fprintln(t.out, "Record deleted.")
		}

	case "copy":
		t.copy(args)

	case "logout":
		t.dash.Logout(ctx)

	default:
		fmt.Fprintf(t.out, "Unknown command %q. Type 'help'.\n", cmd)
	}
}

// copy has no clipboard in a plain terminal; the link is printed for the
// terminal's own selection and the transient notice mirrors the web UI.
func (t *TUI) copy(args []string) {
	id, ok := t.resolveID(args)
	if !ok {
		return
	}
	record, ok := t.dash.Store().Get(id)
	if !ok {
		t.printError(entity.ErrNoRecord)
		return
	}

	which := "short"
	if len(args) > 1 {
		which = args[1]
	}

	switch which {
	case "short":
		fmt.Fprintln(t.out, t.shortLink(record))
		t.setNotice("Short URL copied!")
	case "orig":
		fmt.Fprintln(t.out, record.OriginalURL)
		t.setNotice("Original URL copied!")
	default:
		fmt.Fprintln(t.out, "Usage: copy <id|#> [short|orig]")
	}
}

// resolveID accepts either a record id or a 1-based index from the last list.
func (t *TUI) resolveID(args []string) (string, bool) {
	if len(args) == 0 {
		fmt.Fprintln(t.out, "A record id or list position is required.")
		return "", false
	}

	records := t.dash.Store().Records()
	if n, err := strconv.Atoi(args[0]); err == nil {
		if n < 1 || n > len(records) {
			fmt.Fprintf(t.out, "No record at position %d.\n", n)
			return "", false
		}
		return records[n-1].ID, true
	}
	return args[0], true
}

func (t *TUI) renderList() {
	records := t.dash.Store().Records()
	if len(records) == 0 {
		fmt.Fprintln(t.out, "No URL records found. Add your first URL with 'add <url>'.")
		return
	}

	ed, editing := t.dash.Store().EditingState()

	w := tabwriter.NewWriter(t.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tORIGINAL\tSHORT\tCLICKS\tCREATED")
	for i, r := range records {
		original := r.OriginalURL
		if editing && ed.ID == r.ID {
			original = fmt.Sprintf("%s (editing: %s)", original, ed.Draft)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			i+1, r.ID, original, t.shortLink(r), r.Counter, r.CreatedAt.Local().Format("02/01/2006 15:04:05"))
	}
	w.Flush()
}

func (t *TUI) shortLink(r entity.Record) string {
	return t.baseURL + "/" + r.ShortURL
}

func (t *TUI) printError(err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyDraft):
		fmt.Fprintln(t.out, "Please enter a URL.")
	case errors.Is(err, entity.ErrInvalidURL):
		fmt.Fprintln(t.out, "Please enter a valid URL starting with http:// or https://")
	case errors.Is(err, entity.ErrMutationInFlight):
		fmt.Fprintln(t.out, "A request for this record is still in flight. Try again in a moment.")
	case errors.Is(err, entity.ErrNoRecord), errors.Is(err, entity.ErrNotFound):
		fmt.Fprintln(t.out, "No such record.")
	case errors.Is(err, entity.ErrNotEditing):
		fmt.Fprintln(t.out, "Nothing is being edited. Use 'edit <id|#>' first.")
	case errors.Is(err, entity.ErrAuth):
		// ToLogin already announced the session loss.
	case errors.Is(err, entity.ErrValidation):
		fmt.Fprintln(t.out, "Invalid input:", err)
	case errors.Is(err, entity.ErrTransport):
		fmt.Fprintln(t.out, "Could not reach the server. Is it running?")
	default:
		fmt.Fprintln(t.out, "An unknown error occurred.")
		t.logger.Error("unexpected error", zap.Error(err))
	}
}

// setNotice shows a transient message that clears itself after the TTL.
// A pure timer: the data model is never touched.
func (t *TUI) setNotice(msg string) {
	t.mu.Lock()
	t.notice = msg
	t.mu.Unlock()

	time.AfterFunc(t.noticeTTL, func() {
		t.mu.Lock()
		if t.notice == msg {
			t.notice = ""
		}
		t.mu.Unlock()
	})
}

func (t *TUI) currentNotice() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.notice
}
