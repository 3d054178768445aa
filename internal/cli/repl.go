package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	hasOpenRepo() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Repos(ctx context.Context, args []string) error
	CreateRepo(ctx context.Context) error
	DeleteRepo(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	CloseRepo(ctx context.Context) error

	Papers(ctx context.Context) error
	Upload(ctx context.Context) error
	Update(ctx context.Context, args []string) error
	Versions(ctx context.Context, args []string) error
	Preview(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	DeletePaper(ctx context.Context, args []string) error
	Activity(ctx context.Context) error
	Collaborators(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to a. Unknown commands are reported back to the user. The loop exits on
// scanner EOF or when the user types "exit" or "quit". Command handlers
// print their own errors; the loop stays resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hub> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)

		case "repos":
			_ = a.Repos(ctx, args)
		case "mkrepo":
			_ = a.CreateRepo(ctx)
		case "rmrepo":
			_ = a.DeleteRepo(ctx, args)
		case "open":
			_ = a.Open(ctx, args)
		case "close":
			_ = a.CloseRepo(ctx)

		case "papers":
			_ = a.Papers(ctx)
		case "upload":
			_ = a.Upload(ctx)
		case "update":
			_ = a.Update(ctx, args)
		case "versions":
			_ = a.Versions(ctx, args)
		case "preview":
			_ = a.Preview(ctx, args)
		case "download":
			_ = a.Download(ctx, args)
		case "rmpaper":
			_ = a.DeletePaper(ctx, args)
		case "activity":
			_ = a.Activity(ctx)
		case "collab":
			_ = a.Collaborators(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, repos [global|my], open <repoId>, papers, versions <paperId>, exit")
		return
	}
	if a.hasOpenRepo() {
		printlnFn("Available commands: papers, upload, update <paperId>, versions <paperId>, preview <paperId> [version], download <paperId> [version], rmpaper <paperId>, activity, collab, close, whoami, logout, exit")
		return
	}
	printlnFn("Available commands: repos [global|my] [query], mkrepo, rmrepo <repoId>, open <repoId>, whoami, logout, exit")
}
