package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return ""
}

// Root greets the user and hands control to the REPL. It blocks until the
// user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Printf("Welcome to Fynd CLI, backend %s (type 'help' for commands)\n", a.config.BaseURL)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
