// Package prompts provides the interactive console prompts used during
// setup: confirmations, free-text path input with defaults, and snapshot
// selection.
package prompts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/ui"
)

// Prompter asks the user questions on a console. When Interactive is
// false every prompt short-circuits to its default, which is how
// --skip-prompt and piped stdin behave.
type Prompter struct {
	Interactive bool

	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing to out
func New(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		Interactive: interactive,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

// NewConsole creates a Prompter on stdin/stdout. skipPrompt forces
// non-interactive mode; so does a stdin that is not a terminal.
func NewConsole(skipPrompt bool) *Prompter {
	interactive := !skipPrompt && ui.IsInteractive(os.Stdin)
	return New(os.Stdin, os.Stdout, interactive)
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to read user input")
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Empty input selects the default.
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	if !p.Interactive {
		return def, nil
	}

	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", message, marker)

	response, err := p.readLine()
	if err != nil {
		return false, err
	}
	if response == "" {
		return def, nil
	}
	response = strings.ToLower(response)
	return response == "y" || response == "yes", nil
}

// Input asks for a free-text value. With a default, empty input accepts
// it; without one, empty input returns "" (the caller treats that as
// "skip").
func (p *Prompter) Input(message, def string) (string, error) {
	if !p.Interactive {
		return def, nil
	}

	if def != "" {
		fmt.Fprintf(p.out, "%s (default: %s): ", message, def)
	} else {
		fmt.Fprintf(p.out, "%s (empty to skip): ", message)
	}

	response, err := p.readLine()
	if err != nil {
		return "", err
	}
	if response == "" {
		return def, nil
	}
	return response, nil
}

// Select asks the user to pick one of options. The default is marked
// with » in the listing. Input may be the option number or free text;
// empty input accepts the default.
func (p *Prompter) Select(message string, options []string, def string) (string, error) {
	if !p.Interactive {
		return def, nil
	}

	if len(options) > 0 {
		fmt.Fprintln(p.out, "\nAvailable options:")
		for i, option := range options {
			prefix := " "
			if option == def {
				prefix = "»"
			}
			fmt.Fprintf(p.out, " %s %d. %s\n", prefix, i+1, option)
		}
	}

	if def != "" {
		fmt.Fprintf(p.out, "%s (default: %s): ", message, def)
	} else {
		fmt.Fprintf(p.out, "%s (empty to skip): ", message)
	}

	response, err := p.readLine()
	if err != nil {
		return "", err
	}
	if response == "" {
		return def, nil
	}

	// Accept a 1-based option number
	if n, err := strconv.Atoi(response); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return response, nil
}
