// Package console is the interactive I/O boundary of the tool. The CLI
// talks to a Console instead of os.Stdin/os.Stdout directly, so the full
// prompt flow can run under test against a scripted implementation.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console provides line-oriented prompt input and message output.
type Console interface {
	// Prompt prints label, reads one line, and returns it trimmed.
	// An empty answer returns def.
	Prompt(label, def string) (string, error)

	// Printf writes a formatted message to the console output.
	Printf(format string, args ...any)
}

// Stdio is a Console over arbitrary reader/writer pairs, normally
// os.Stdin and os.Stdout.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio creates a Console reading from in and writing to out.
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

// Prompt prints the label and blocks until one line of input arrives.
func (c *Stdio) Prompt(label, def string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Printf writes a formatted message.
func (c *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Script is a Console for tests: answers are consumed in order and all
// output is captured.
type Script struct {
	Answers []string
	Output  strings.Builder
	next    int
}

// Prompt returns the next scripted answer, or def once answers run out.
func (c *Script) Prompt(label, def string) (string, error) {
	fmt.Fprintf(&c.Output, "%s: \n", label)
	if c.next >= len(c.Answers) {
		return def, nil
	}
	a := strings.TrimSpace(c.Answers[c.next])
	c.next++
	if a == "" {
		return def, nil
	}
	return a, nil
}

// Printf captures a formatted message.
func (c *Script) Printf(format string, args ...any) {
	fmt.Fprintf(&c.Output, format, args...)
}

// YesNo reports whether a prompt answer means yes. Accepts "y" and "yes",
// case-insensitively; everything else is no.
func YesNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
