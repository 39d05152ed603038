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
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	AdditionalInfo(ctx context.Context) error
	Skills(ctx context.Context) error
	Pathways(ctx context.Context) error
	HighlightVideo(ctx context.Context) error
	ProfileImage(ctx context.Context) error
	Profile(ctx context.Context) error
	Directory(ctx context.Context) error
	View(ctx context.Context) error
	UpdateEmail(ctx context.Context) error
	UpdatePassword(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Fynd CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - info           — additional-info screen
//	  - skills         — skills screen
//	  - pathways       — career-pathways screen
//	  - video          — highlight-video upload
//	  - image          — profile-image upload
//	  - profile        — show own profile
//	  - directory      — list students
//	  - view           — show one student (interactive id prompt)
//	  - email          — update account email
//	  - password       — update account password
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fynd> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: info, skills, pathways, video, image, profile, directory, view, email, password, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "info":
			_ = a.AdditionalInfo(ctx)

		case "skills":
			_ = a.Skills(ctx)

		case "pathways":
			_ = a.Pathways(ctx)

		case "video":
			_ = a.HighlightVideo(ctx)

		case "image":
			_ = a.ProfileImage(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "d", "directory":
			_ = a.Directory(ctx)

		case "view":
			_ = a.View(ctx)

		case "email":
			_ = a.UpdateEmail(ctx)

		case "password":
			_ = a.UpdatePassword(ctx)

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
