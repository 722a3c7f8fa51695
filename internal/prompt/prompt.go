// Package prompt implements the line-oriented interactive prompts the CLI
// uses: yes/no confirmation, numbered-menu selection, and free-text input.
// Prompters read and write injected streams so tests can script answers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions on an input/output stream pair.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a Prompter over the given streams.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		out:    w,
	}
}

// Confirm asks a yes/no question and returns the answer. An empty line
// takes the default; anything other than a y/n answer re-asks.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(p.out, "%s %s: ", question, hint)

		line, err := p.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Select presents a numbered list and returns the chosen index. Invalid
// input re-asks until a number in range is entered.
func (p *Prompter) Select(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to select from")
	}

	fmt.Fprintf(p.out, "\n%s\n", title)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
	}

	for {
		fmt.Fprintf(p.out, "Enter number [1-%d]: ", len(items))

		line, err := p.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, fmt.Errorf("reading selection: %w", err)
		}

		num, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintf(p.out, "Invalid selection %q: choose 1-%d.\n", strings.TrimSpace(line), len(items))
	}
}

// Input asks for a free-text answer and re-asks until validate accepts it.
// A nil validate accepts any answer, including an empty one.
func (p *Prompter) Input(question string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", question)

		line, err := p.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("reading input: %w", err)
		}

		answer := strings.TrimSpace(line)
		if validate == nil {
			return answer, nil
		}
		if vErr := validate(answer); vErr != nil {
			fmt.Fprintf(p.out, "%v\n", vErr)
			continue
		}
		return answer, nil
	}
}
