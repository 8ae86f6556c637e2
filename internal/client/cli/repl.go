package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Balance(ctx context.Context) error
	Sign(ctx context.Context, args []string) error
	Submit(ctx context.Context, args []string) error
}

// runREPL reads commands from reader line by line and dispatches them to a
// until EOF, "exit" or "quit". Command errors are printed and the loop goes on.
//
//	Not logged in: help, register, login, sign, exit
//	Logged in:     help, status, balance, sign, submit, logout, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("game %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, balance, sign, submit, logout, exit")
				printlnFn("  sign <game> <match> <score> [duration]")
				printlnFn("  submit <tournament> <game> <match> <score> [duration] [key=value ...]")
			} else {
				printlnFn("Available commands: register, login, sign, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "balance":
			cmdErr = a.Balance(ctx)

		case "sign":
			cmdErr = a.Sign(ctx, args)

		case "submit":
			cmdErr = a.Submit(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
