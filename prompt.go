package bikeshare

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on a terminal-like reader/writer pair
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading answers line by line from r
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Ask prints question and reads answers until parse accepts one, printing
// retry after every rejected answer. It returns io.EOF when input ends.
func (p *Prompter) Ask(question, retry string, parse func(string) (string, error)) (string, error) {
	for {
		answer, err := p.readLine(question)
		if err != nil {
			return "", err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, retry)
	}
}

// Confirm asks a yes/no question; only "y" and "yes" count as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.readLine(question)
	if err != nil {
		return false, err
	}
	return isAffirmative(answer), nil
}

func (p *Prompter) readLine(question string) (string, error) {
	fmt.Fprintf(p.out, "\n%s\n", question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
