package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line-oriented answers to interactive prompts.
// The reader is injected so command flows can be tested with scripted input.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Line prints the label and reads one line, trimmed of surrounding space.
func (p *Prompter) Line(label string) string {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}
