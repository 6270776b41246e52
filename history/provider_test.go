package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/promptbridge/errors"
)

func TestMemoryProvider(t *testing.T) {
	p := NewMemoryProvider()

	_, ok, err := p.Last()
	require.NoError(t, err)
	assert.False(t, ok, "empty provider should report no record")

	p.Append(Record{Command: "ls", Status: 0, Start: 1.0, End: 1.1})
	p.Append(Record{Command: "make", Status: 2, Start: 2.0, End: 7.5})

	record, ok, err := p.Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "make", record.Command)
	assert.Equal(t, 2, record.Status)
	assert.Equal(t, int64(5500), record.DurationMillis())
}

func TestStaticProvider(t *testing.T) {
	p := &StaticProvider{Record: Record{Status: 1, Start: 10.0, End: 10.5}}

	record, ok, err := p.Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, record.Status)
	assert.Equal(t, int64(500), record.DurationMillis())

	empty := &StaticProvider{Empty: true}
	_, ok, err = empty.Last()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileProviderMissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "absent.jsonl"))

	_, ok, err := p.Last()
	require.NoError(t, err)
	assert.False(t, ok, "missing log should mean no commands yet")
}

func TestFileProviderReadsLastLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	content := `{"cmd":"ls","status":0,"start":1.0,"end":1.2}
{"cmd":"false","status":1,"start":10.0,"end":10.5}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p := NewFileProvider(path)
	record, ok, err := p.Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", record.Command)
	assert.Equal(t, 1, record.Status)
	assert.Equal(t, int64(500), record.DurationMillis())
}

func TestFileProviderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	p := NewFileProvider(path)
	_, ok, err := p.Last()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileProviderMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json\n"), 0o644))

	p := NewFileProvider(path)
	_, _, err := p.Last()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeHistoryUnavailable))
}
