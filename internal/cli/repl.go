package cli

import (
	"bufio"
	"context"
	"fmt"
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
	Info(ctx context.Context) error
	Mood(ctx context.Context) error
	Boards(ctx context.Context) error
	Open(ctx context.Context, key string) error
	Post(ctx context.Context) error
	Lock(ctx context.Context) error
	AddBoard(ctx context.Context) error
	RenameBoard(ctx context.Context, key string) error
	DeleteBoard(ctx context.Context, key string) error
	Charts(ctx context.Context) error
	Calendar(ctx context.Context) error
	Admin(ctx context.Context) error
	ChangeAdminPass(ctx context.Context) error
	RecoverAdmin(ctx context.Context) error
	Wipe(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the moodkeeper CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures to the user. This keeps the loop focused on line I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mood %s> ", statusFn()))
		// on EOF the last partial line is still dispatched below
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: mood, boards, open <key>, post, lock, add, rename <key>, delete <key>, charts, calendar, admin, chadmin, recover, wipe, logout, info, exit")
			} else {
				printlnFn("Available commands: login, info, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "info":
			_ = a.Info(ctx)

		case "mood":
			_ = a.Mood(ctx)

		case "b", "boards":
			_ = a.Boards(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <key>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "post":
			_ = a.Post(ctx)

		case "lock":
			_ = a.Lock(ctx)

		case "add":
			_ = a.AddBoard(ctx)

		case "rename":
			if len(args) == 0 {
				printlnFn("Usage: rename <key>")
				continue
			}
			_ = a.RenameBoard(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <key>")
				continue
			}
			_ = a.DeleteBoard(ctx, args[0])

		case "charts":
			_ = a.Charts(ctx)

		case "calendar":
			_ = a.Calendar(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "chadmin":
			_ = a.ChangeAdminPass(ctx)

		case "recover":
			_ = a.RecoverAdmin(ctx)

		case "wipe":
			_ = a.Wipe(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
