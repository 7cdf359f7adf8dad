// Package console is the text front end of the game: line input, board
// rendering, the help text and the start menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

type Console struct {
	in  io.Reader
	out io.Writer

	lines chan line
	once  sync.Once
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

// ReadLine prints prompt (when not empty) and waits for the next input line.
// It returns io.EOF once the input is exhausted and ctx.Err() when ctx is done first.
func (that *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	if prompt != "" {
		that.Println(prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return next.text, next.err
	}
}

// scan feeds input lines to ReadLine, so a blocked read never holds up cancellation.
// Lines have no length limit.
func (that *Console) scan() {
	defer close(that.lines)

	reader := bufio.NewReader(that.in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" && (err == nil || errors.Is(err, io.EOF)) {
			that.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			return
		default:
			that.lines <- line{err: fmt.Errorf("could not read input: %w", err)}
			return
		}
	}
}

func (that *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(that.out, a...)
}

func (that *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(that.out, format, a...)
}
