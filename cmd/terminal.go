package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/savings"
)

// terminalConfirmer asks yes/no questions on the terminal. Anything but an
// explicit yes, including end of input, is a no.
type terminalConfirmer struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
}

func (c *terminalConfirmer) Confirm(question string) bool {
	if c.assumeYes {
		fmt.Fprintf(c.out, "%s [y/N] y (assumed)\n", question)
		return true
	}
	fmt.Fprintf(c.out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(c.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// terminalNotifier prints notices as "<kind>: <message>" lines.
type terminalNotifier struct {
	out io.Writer
}

func (n *terminalNotifier) Notify(kind savings.NoticeKind, message string) {
	fmt.Fprintf(n.out, "%s: %s\n", kind, message)
}
