package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb. Protected commands require a session.
type command struct {
	name      string
	usage     string
	protected bool
	run       func(ctx context.Context, args []string) error
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	lookup(name string) (command, bool)
	commandNames(loggedIn bool) []string
	report(ctx context.Context, err error)
}

// runREPL starts a read–eval–print loop over reader.
//
// The first token of a line is the command, the rest are its arguments.
// "help" lists the commands available in the current state: without a
// session only the public ones (captcha, login, register). Protected commands
// are refused until the user logs in. Command errors are handed to
// a.report and never stop the loop. The loop exits on EOF or on "exit" or
// "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("admin %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn("Available commands: " + strings.Join(a.commandNames(a.isLoggedIn()), ", ") + ", exit")

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			cmd, ok := a.lookup(name)
			if !ok {
				printlnFn("Unknown command:", name)
				break
			}
			if cmd.protected && !a.isLoggedIn() {
				printlnFn("Please log in first (type 'login')")
				break
			}
			if err := cmd.run(ctx, args); err != nil {
				a.report(ctx, err)
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}
