package bridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/promptbridge/history"
)

// fakeRenderer records every invocation and returns canned output.
type fakeRenderer struct {
	output      string
	err         error
	invocations []Invocation
}

func (f *fakeRenderer) Render(_ context.Context, inv Invocation) (string, error) {
	f.invocations = append(f.invocations, inv)
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func testConfig() Config {
	return Config{
		Executable:   "/usr/local/bin/render",
		Theme:        "~/.config/theme.json",
		ShellTag:     "xonsh",
		ShellVersion: "0.19.0",
		SessionID:    "f2a40dd785f5404d81f5fc2a0f5c4b6d",
	}
}

func TestRenderWithEmptyHistory(t *testing.T) {
	renderer := &fakeRenderer{output: "prompt> \n"}
	b := New(testConfig(), history.NewMemoryProvider(), renderer)

	out, err := b.RenderPrimary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "prompt> ", out)

	require.Len(t, renderer.invocations, 1)
	inv := renderer.invocations[0]
	assert.Equal(t, 0, inv.Status, "no command yet should report status 0")
	assert.Equal(t, int64(0), inv.DurationMillis, "no command yet should report zero duration")
}

func TestRenderForwardsLastCommandResult(t *testing.T) {
	provider := history.NewMemoryProvider(
		history.Record{Command: "ls", Status: 0, Start: 1.0, End: 1.1},
		history.Record{Command: "false", Status: 1, Start: 10.0, End: 10.5},
	)
	renderer := &fakeRenderer{output: "x\n"}
	b := New(testConfig(), provider, renderer)

	_, err := b.RenderPrimary(context.Background())
	require.NoError(t, err)

	inv := renderer.invocations[0]
	assert.Equal(t, 1, inv.Status)
	assert.Equal(t, int64(500), inv.DurationMillis)
}

func TestModeSelectorDiffersOnlyByMode(t *testing.T) {
	provider := history.NewMemoryProvider(
		history.Record{Status: 2, Start: 0.0, End: 1.2345},
	)
	renderer := &fakeRenderer{output: "out\n"}
	b := New(testConfig(), provider, renderer)

	_, err := b.RenderPrimary(context.Background())
	require.NoError(t, err)
	_, err = b.RenderRight(context.Background())
	require.NoError(t, err)

	require.Len(t, renderer.invocations, 2)
	primary, right := renderer.invocations[0], renderer.invocations[1]

	assert.Equal(t, ModePrimary, primary.Mode)
	assert.Equal(t, ModeRight, right.Mode)

	// Everything but the mode selector is identical within a draw cycle.
	primary.Mode = ""
	right.Mode = ""
	assert.Equal(t, primary, right)

	assert.Equal(t, int64(1235), primary.DurationMillis, "duration rounds half-up")
}

func TestSessionIDStableAcrossDraws(t *testing.T) {
	renderer := &fakeRenderer{output: "\n"}
	b := New(testConfig(), history.NewMemoryProvider(), renderer)

	for i := 0; i < 5; i++ {
		_, err := b.RenderPrimary(context.Background())
		require.NoError(t, err)
	}

	for _, inv := range renderer.invocations {
		assert.Equal(t, "f2a40dd785f5404d81f5fc2a0f5c4b6d", inv.SessionID)
	}
}

func TestRenderPropagatesRendererError(t *testing.T) {
	renderer := &fakeRenderer{err: fmt.Errorf("boom")}
	b := New(testConfig(), history.NewMemoryProvider(), renderer)

	out, err := b.RenderPrimary(context.Background())
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestHooksSwallowRendererErrors(t *testing.T) {
	renderer := &fakeRenderer{err: fmt.Errorf("renderer missing")}
	b := New(testConfig(), history.NewMemoryProvider(), renderer)

	assert.Equal(t, "", b.PrimaryHook()())
	assert.Equal(t, "", b.RightHook()())
}

func TestHookReturnsPromptText(t *testing.T) {
	renderer := &fakeRenderer{output: "λ \n"}
	b := New(testConfig(), history.NewMemoryProvider(), renderer)

	assert.Equal(t, "λ ", b.PrimaryHook()())
}

func TestZeroResultOnHistoryError(t *testing.T) {
	provider := history.NewFileProvider("/proc/nonexistent/dir/session.jsonl")
	renderer := &fakeRenderer{output: "p\n"}
	b := New(testConfig(), provider, renderer)

	out, err := b.RenderPrimary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p", out)

	inv := renderer.invocations[0]
	assert.Equal(t, 0, inv.Status)
	assert.Equal(t, int64(0), inv.DurationMillis)
}

func TestTrimTrailingNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing newline", "foo\n", "foo"},
		{"no newline", "foo", "foo"},
		{"only one newline stripped", "foo\n\n", "foo\n"},
		{"crlf pair", "foo\r\n", "foo"},
		{"bare carriage return kept", "foo\r", "foo\r"},
		{"interior newline kept", "line1\nline2\n", "line1\nline2"},
		{"empty", "", ""},
		{"lone newline", "\n", ""},
		{"trailing space kept", "foo \n", "foo "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimTrailingNewline(tt.input))
		})
	}
}

func TestInvocationArgs(t *testing.T) {
	inv := Invocation{
		Mode:           ModePrimary,
		ShellTag:       "xonsh",
		Status:         1,
		DurationMillis: 500,
		ShellVersion:   "0.19.0",
	}

	assert.Equal(t, []string{
		"print",
		"primary",
		"--shell=xonsh",
		"--status=1",
		"--execution-time=500",
		"--shell-version=0.19.0",
	}, inv.Args())
}
