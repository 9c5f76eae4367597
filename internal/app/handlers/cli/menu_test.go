package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockService struct {
	shortened []string
}

func (m *mockService) ShortenURL(_ context.Context, input string) string {
	m.shortened = append(m.shortened, input)
	if input == "http://example.com" {
		return "abcdef"
	}
	return "123456"
}

func (m *mockService) GetOriginalURL(_ context.Context, input string) string {
	if input == "abcdef" {
		return "http://example.com"
	}
	return "Invalid short URL"
}

func runMenu(t *testing.T, input string) (string, *mockService, error) {
	t.Helper()
	svc := &mockService{}
	var out bytes.Buffer
	h := NewMenuHandler(svc, svc, strings.NewReader(input), &out, zap.NewNop().Sugar())
	err := h.Run(context.Background())
	return out.String(), svc, err
}

func TestMenu_Shorten(t *testing.T) {
	out, svc, err := runMenu(t, "1\nhttp://example.com\n3\n")
	require.NoError(t, err)

	want := menuText +
		shortenPrompt + "Shortened URL: abcdef\n" +
		menuText + goodbyeText + "\n"
	assert.Equal(t, want, out)
	assert.Equal(t, []string{"http://example.com"}, svc.shortened)
}

func TestMenu_Expand(t *testing.T) {
	out, _, err := runMenu(t, "2\nabcdef\n2\nzzzzzz\n3\n")
	require.NoError(t, err)

	assert.Contains(t, out, expandPrompt+"Expanded URL: http://example.com\n")
	assert.Contains(t, out, expandPrompt+"Expanded URL: Invalid short URL\n")
	assert.True(t, strings.HasSuffix(out, goodbyeText+"\n"))
}

func TestMenu_InvalidChoice(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown number", input: "7\n3\n"},
		{name: "zero", input: "0\n3\n"},
		{name: "negative", input: "-1\n3\n"},
		{name: "not a number", input: "abc\n3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runMenu(t, tt.input)
			require.NoError(t, err)

			want := menuText + invalidChoice + "\n" + menuText + goodbyeText + "\n"
			assert.Equal(t, want, out)
		})
	}
}

func TestMenu_ChoiceIgnoresBlankLinesAndRestOfLine(t *testing.T) {
	out, svc, err := runMenu(t, "\n   \n 1 trailing words\nhttp://example.com\n3\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"http://example.com"}, svc.shortened)
	assert.Equal(t, 2, strings.Count(out, menuText))
}

func TestMenu_URLKeepsWholeLine(t *testing.T) {
	_, svc, err := runMenu(t, "1\nhttp://a/b c,d\n3\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a/b c,d"}, svc.shortened)
}

func TestMenu_EOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "after command", input: "2\nabcdef\n"},
		{name: "inside prompt", input: "1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runMenu(t, tt.input)
			require.NoError(t, err)
			assert.NotContains(t, out, goodbyeText)
		})
	}
}

func TestMenu_LogsCommands(t *testing.T) {
	core, obs := observer.New(zap.DebugLevel)
	svc := &mockService{}
	var out bytes.Buffer
	h := NewMenuHandler(svc, svc, strings.NewReader("1\nhttp://example.com\n9\n3\n"), &out, zap.New(core).Sugar())

	require.NoError(t, h.Run(context.Background()))

	entries := obs.FilterMessage("Command").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].ContextMap()["choice"])
	assert.Equal(t, "9", entries[1].ContextMap()["choice"])
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestMenu_WriteError(t *testing.T) {
	svc := &mockService{}
	h := NewMenuHandler(svc, svc, strings.NewReader("1\nhttp://example.com\n3\n"), failingWriter{}, zap.NewNop().Sugar())

	err := h.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
	assert.Empty(t, svc.shortened)
}

type failingReader struct{}

var errRead = errors.New("broken pipe")

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestMenu_ReadError(t *testing.T) {
	svc := &mockService{}
	var out bytes.Buffer
	h := NewMenuHandler(svc, svc, failingReader{}, &out, zap.NewNop().Sugar())

	err := h.Run(context.Background())
	assert.ErrorIs(t, err, errRead)
}

func TestMenu_LongURL(t *testing.T) {
	long := "http://example.com/" + strings.Repeat("x", 2<<20)

	out, svc, err := runMenu(t, "1\n"+long+"\n3\n")
	require.NoError(t, err)

	assert.Equal(t, []string{long}, svc.shortened)
	assert.True(t, strings.HasSuffix(out, goodbyeText+"\n"))
}

func TestMenu_CarriageReturnInput(t *testing.T) {
	out, svc, err := runMenu(t, "1\r\nhttp://example.com\r\n2\rabcdef\r3\r")
	require.NoError(t, err)

	assert.Equal(t, []string{"http://example.com"}, svc.shortened)
	assert.Contains(t, out, "Expanded URL: http://example.com\n")
	assert.True(t, strings.HasSuffix(out, goodbyeText+"\n"))
}
