package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// execIface is the minimal command surface the REPL needs to dispatch. The
// real App type satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	getStatus() string
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context)
	Refresh(ctx context.Context) error
	Status()
	Goto(path string)
}

func (a *App) getStatus() string {
	s := ""
	if user := a.session.User(); user != nil {
		s = user.Username + " "
	}
	s += a.router.Title()
	return fmt.Sprintf("(%s)", s)
}

// Goto requests a navigation and reports where the guard let it land.
func (a *App) Goto(path string) {
	a.router.Navigate(path)
	a.Status()
}

// Root runs the console's read-eval-print loop over stdin.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Blog Admin console (type 'help' for commands)")
	runREPL(ctx, bufio.NewScanner(os.Stdin), os.Stdout, a)
}

// runREPL reads a line at a time, takes the first token as the command, and
// dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, scanner *bufio.Scanner, w io.Writer, a execIface) {

	for {
		fmt.Fprintf(w, "admin %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, refresh, status, goto <path>, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, status, goto <path>, exit")
			}

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.Whoami(ctx)
		case "refresh":
			a.Refresh(ctx)
		case "status":
			a.Status()
		case "goto":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: goto <path>")
				continue
			}
			a.Goto(args[0])
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}

}
