package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(input string) *app {
	return &app{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: &bytes.Buffer{},
	}
}

func TestReadLine_ConsecutivePrompts(t *testing.T) {
	// Piped invocations answer several prompts on one stream. The buffered
	// reader reads ahead, so it must be shared across calls or the second
	// prompt would see only EOF.
	a := newTestApp("admin\nsecretpw\n")

	username, err := a.readLine("Username: ")
	require.NoError(t, err)
	assert.Equal(t, "admin", username)

	password, err := a.readLine("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secretpw", password)
}

func TestReadLine_TrimsCarriageReturn(t *testing.T) {
	a := newTestApp("admin\r\n")

	line, err := a.readLine("")
	require.NoError(t, err)
	assert.Equal(t, "admin", line)
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	a := newTestApp("admin")

	line, err := a.readLine("")
	require.NoError(t, err)
	assert.Equal(t, "admin", line)
}

func TestReadLine_EmptyInput(t *testing.T) {
	a := newTestApp("")

	_, err := a.readLine("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

func TestReadNewPassword_Piped(t *testing.T) {
	a := newTestApp("s3cret\ns3cret\n")

	password, err := a.readNewPassword()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
}

func TestReadNewPassword_Mismatch(t *testing.T) {
	a := newTestApp("s3cret\nother\n")

	_, err := a.readNewPassword()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}

func TestReadNewPassword_Empty(t *testing.T) {
	a := newTestApp("\n\n")

	_, err := a.readNewPassword()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")
}
