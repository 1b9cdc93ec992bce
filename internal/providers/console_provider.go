package providers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PrompterInterface is the injected console capability. Planning and
// execution code never reads the terminal directly, which keeps it
// testable without one.
type PrompterInterface interface {
	// Line prints a label and returns one trimmed input line.
	Line(label string) (string, error)
	// Secret reads a line without echoing it back.
	Secret(label string) (string, error)
	// Confirm asks a yes/no question; anything but "y" declines.
	Confirm(label string) bool
	// Say writes a plain line to the console.
	Say(format string, args ...interface{})
}

type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter() PrompterInterface {
	return &ConsolePrompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func (p *ConsolePrompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *ConsolePrompter) Secret(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.Line(label)
	}

	fmt.Fprintf(p.out, "%s: ", label)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func (p *ConsolePrompter) Confirm(label string) bool {
	answer, err := p.Line(label + " (y/n)")
	if err != nil {
		return false
	}
	return strings.ToLower(answer) == "y"
}

func (p *ConsolePrompter) Say(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
