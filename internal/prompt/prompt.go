// Package prompt implements the operator questions asked by the seeder.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the operator questions. Implementations never fail: a closed
// input reads as an empty answer.
type Prompter interface {
	// Confirm asks a y/n question; only "y" (any case) is yes.
	Confirm(question string) bool
	// AskInt asks for a number, returning def on empty or unparsable input.
	AskInt(question string, def int) int
	// Ask returns the raw trimmed answer.
	Ask(question string) string
}

// Console reads answers line by line from in and writes questions to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Ask(question string) string {
	fmt.Fprint(c.out, question)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *Console) Confirm(question string) bool {
	return IsYes(c.Ask(question + " (y/n): "))
}

func (c *Console) AskInt(question string, def int) int {
	return ParseInt(c.Ask(fmt.Sprintf("%s [%d]: ", question, def)), def)
}

func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func ParseInt(answer string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return def
	}
	return n
}

// AutoConfirm answers yes to every y/n question and takes every default,
// delegating free-text questions to next.
type AutoConfirm struct {
	next Prompter
}

func NewAutoConfirm(next Prompter) *AutoConfirm {
	return &AutoConfirm{next: next}
}

func (a *AutoConfirm) Confirm(string) bool {
	return true
}

func (a *AutoConfirm) AskInt(_ string, def int) int {
	return def
}

func (a *AutoConfirm) Ask(question string) string {
	return a.next.Ask(question)
}

// Scripted replays canned answers in order; once exhausted every answer is
// empty. Used for non-interactive runs and tests.
type Scripted struct {
	answers []string
	Asked   []string
}

func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) Ask(question string) string {
	s.Asked = append(s.Asked, question)
	if len(s.answers) == 0 {
		return ""
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *Scripted) Confirm(question string) bool {
	return IsYes(s.Ask(question))
}

func (s *Scripted) AskInt(question string, def int) int {
	return ParseInt(s.Ask(question), def)
}
