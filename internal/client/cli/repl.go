package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Show(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Save(ctx context.Context) error
	Password(ctx context.Context) error
	Notifications(ctx context.Context) error
	Reload(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the admin settings CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - show           print the profile form
//	  - set <f> <v>    edit first or last name
//	  - save           save the profile
//	  - password       change the password
//	  - notifications  toggle email notifications (not saved)
//	  - reload         load the saved profile again
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("as %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please log in first (type 'login')")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: show, set <first|last> <value>, save, password, notifications, reload, logout, exit")

		case "login":
			printlnFn("Already logged in, use 'logout' first")

		case "show":
			_ = a.Show(ctx)

		case "set":
			_ = a.Set(ctx, args)

		case "save":
			_ = a.Save(ctx)

		case "password":
			_ = a.Password(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
