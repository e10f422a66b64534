package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword prompts for a password without echoing when stdin is a
// terminal. Piped input falls back to a plain line read so the tool stays
// scriptable.
func (a *app) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(a.out)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	return a.readLine("")
}

// readNewPassword prompts twice and rejects mismatched entries.
func (a *app) readNewPassword() (string, error) {
	password, err := a.readPassword("New password: ")
	if err != nil {
		return "", err
	}
	confirm, err := a.readPassword("Repeat password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}

func (a *app) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(a.out, prompt)
	}

	// a.in is shared across prompts so that buffered read-ahead from one
	// prompt does not swallow the lines meant for the next.
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
