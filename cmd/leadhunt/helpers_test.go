package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	err := waitForEnter(context.Background(), strings.NewReader("\n"), &out, "press ENTER")
	assert.NoError(t, err)
	assert.Equal(t, "press ENTER\n", out.String())
}

func TestWaitForEnter_EOF(t *testing.T) {
	assert.NoError(t, waitForEnter(context.Background(), strings.NewReader(""), io.Discard, "go"))
}

func TestWaitForEnter_Canceled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := waitForEnter(ctx, r, io.Discard, "go")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
