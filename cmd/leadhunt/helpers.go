package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// waitForEnter prints prompt and blocks until a line is read from r or ctx
// ends. EOF counts as ENTER so piped runs do not hang.
func waitForEnter(ctx context.Context, r io.Reader, w io.Writer, prompt string) error {
	fmt.Fprintln(w, prompt)

	done := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(r).ReadString('\n')
		if err == io.EOF {
			err = nil
		}
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n- ")
}
