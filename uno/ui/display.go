package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Terminal reads answers line by line and writes everything else.
type Terminal struct {
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// WithDelay pauses after every printed line so bots do not flood the screen.
func (t *Terminal) WithDelay(delay time.Duration) *Terminal {
	t.delay = delay
	return t
}

func (t *Terminal) Printfln(format string, args ...interface{}) {
	t.Println(fmt.Sprintf(format, args...))
}

func (t *Terminal) Println(args ...interface{}) {
	fmt.Fprintln(t.out, args...)
	t.pause()
}

// Print writes text as is.
func (t *Terminal) Print(text string) {
	fmt.Fprint(t.out, text)
	t.pause()
}

func (t *Terminal) pause() {
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
}

func (t *Terminal) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}
