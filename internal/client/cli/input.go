package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetToggles prints the available options of one category and reads option
// numbers one per line until an empty line. Each number toggles the matching
// option. Out-of-range or non-numeric lines are reported and skipped.
func GetToggles(reader *bufio.Reader, category string, options []string, w io.Writer) ([]int, error) {
	fmt.Fprintf(w, "%s:\n", category)
	for i, opt := range options {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, opt)
	}
	fmt.Fprint(w, "Enter option numbers one per line (empty line to finish)\n")

	var picks []int
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				return picks, nil
			}
			break
		}
		var n int
		if _, convErr := fmt.Sscanf(line, "%d", &n); convErr != nil || n < 1 || n > len(options) {
			fmt.Fprintf(w, "invalid option: %s\n", line)
			continue
		}
		picks = append(picks, n-1)
		if err != nil {
			break
		}
	}
	return picks, nil
}
