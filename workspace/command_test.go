package workspace

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
		ok   bool
	}{
		{"/add notes.txt", Command{Kind: CommandAdd, Path: "notes.txt"}, true},
		{"  /ADD notes.txt ", Command{Kind: CommandAdd, Path: "notes.txt"}, true},
		{"/add", Command{Kind: CommandAdd, Malformed: true}, true},
		{"/add two words", Command{Kind: CommandAdd, Path: "two words", Malformed: true}, true},
		{"/remove notes.txt", Command{Kind: CommandRemove, Path: "notes.txt"}, true},
		{"/drop notes.txt", Command{Kind: CommandRemove, Path: "notes.txt"}, true},
		{"/edit a.txt foo bar => baz", Command{Kind: CommandEdit, Path: "a.txt", Old: "foo bar", New: "baz"}, true},
		{"/edit a.txt foo => ", Command{Kind: CommandEdit, Path: "a.txt", Old: "foo", New: ""}, true},
		{"/edit a.txt foo", Command{Kind: CommandEdit, Path: "a.txt", Old: "foo", Malformed: true}, true},
		{"/files", Command{Kind: CommandList}, true},
		{"/unknown x", Command{}, false},
		{"add notes.txt", Command{}, false},
		{"use greeting tool", Command{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCommand(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandle(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plan.txt", []byte("step one"), 0o644))
	ws := New(fs)

	run := func(in string) string {
		cmd, ok := ParseCommand(in)
		require.True(t, ok, in)
		return ws.Handle(cmd)
	}

	assert.Equal(t, "No files in context", run("/files"))
	assert.Equal(t, "Cannot edit plan.txt: file is not in context", run("/edit plan.txt one => two"))
	assert.Equal(t, "Added plan.txt to context", run("/add plan.txt"))
	assert.Equal(t, "Cannot add ghost.txt: file does not exist", run("/add ghost.txt"))
	assert.Equal(t, "Files in context:\n  plan.txt", run("/files"))
	assert.Equal(t, "Edited plan.txt", run("/edit plan.txt one => two"))
	assert.Equal(t, "Cannot edit plan.txt: text not found", run("/edit plan.txt one => two"))
	assert.Equal(t, "Usage: /edit <path> <old> => <new>", run("/edit plan.txt"))
	assert.Equal(t, "Removed plan.txt from context", run("/remove plan.txt"))
	assert.Equal(t, "File plan.txt is not in context", run("/remove plan.txt"))
	assert.Equal(t, "Usage: /add <path>", run("/add"))

	b, err := afero.ReadFile(fs, "plan.txt")
	require.NoError(t, err)
	assert.Equal(t, "step two", string(b))
}
