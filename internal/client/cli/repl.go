package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/catalog-admin/internal/flagx"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Fprintln

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Retry(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Filter(ctx context.Context, categoryID string) error
	Page(ctx context.Context, page int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Show(ctx context.Context, slug string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) error
}

const (
	helpGuest = "Available commands: login, help, exit"
	helpUser  = "Available commands: (l)ist, search <text>, filter [categoryId], page <n>, next, prev, " +
		"show <slug>, new, edit <id>, delete <id>, categories, retry, whoami, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the catalog admin CLI.
//
// It reads a line from reader, splits it with flagx.Fields
// (quotes group words), and dispatches the first token to methods on 'a'.
// Unknown commands and missing arguments are reported back to the user.
// Prompts opened by the handlers read from the same reader, so piped input
// is consumed in order. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and is printed only
// when prompt is true (stdin is a terminal). Commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - login            authenticate with an email
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - list | l         product list for the current page/filter/search
//	  - search <text>    debounced search; "search" alone clears it
//	  - filter [id]      filter by category; no id (or "-") clears it
//	  - page <n>, next, prev
//	  - show <slug>      product detail
//	  - new              create a product
//	  - edit <id>        edit a product
//	  - delete <id>      delete a product after confirmation
//	  - categories       list categories
//	  - retry            reload the list after an error
//	  - whoami, logout
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer, prompt bool) {
	for {
		if prompt {
			printlnFn(w, fmt.Sprintf("catalog %s> ", statusFn()))
		}
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts, err := flagx.Fields(line)
		if err != nil {
			printlnFn(w, "Error:", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(w, helpUser)
			} else {
				printlnFn(w, helpGuest)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "filter":
			id := ""
			if len(args) > 0 && args[0] != "-" {
				id = args[0]
			}
			_ = a.Filter(ctx, id)

		case "page":
			if len(args) == 0 {
				printlnFn(w, "Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				printlnFn(w, "Page must be a positive number")
				continue
			}
			_ = a.Page(ctx, n)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn(w, "Usage: show <slug>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "new", "create":
			_ = a.Create(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn(w, "Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn(w, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "categories":
			_ = a.Categories(ctx)

		case "exit", "quit":
			printlnFn(w, "Bye!")
			return

		default:
			printlnFn(w, "Unknown command:", cmd)
		}
	}
}

// readLine returns the next line without its line ending. A final line
// without a newline is still returned; ok is false once input is exhausted.
func readLine(reader *bufio.Reader) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
