package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/toolmesh"
	"github.com/hupe1980/toolmesh/agent"
	"github.com/hupe1980/toolmesh/config"
	"github.com/hupe1980/toolmesh/internal/testutil"
	"github.com/hupe1980/toolmesh/logging"
	"github.com/hupe1980/toolmesh/workspace"
)

type scenario struct {
	Name   string
	Args   []string
	Stdin  string
	Stdout []string
	Absent []string
	Error  string
}

func testDeps(fs afero.Fs) Deps {
	return Deps{NewAgent: func(cfg config.Config, logger logging.Logger) (*agent.DispatchAgent, error) {
		return toolmesh.NewToolAgent(func(o *toolmesh.Options) {
			o.Config = cfg
			o.Logger = logger
			o.Stat = testutil.FixedStat
			o.Workspace = workspace.New(fs)
		}), nil
	}}
}

func run(t *testing.T, deps Deps, args []string, stdin string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(deps)
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	scenarios := []scenario{
		{
			Name:   "basic message",
			Args:   []string{"--message", "Hello"},
			Stdout: []string{"Agent: Hello World!"},
		},
		{
			Name:   "tool usage",
			Args:   []string{"--message", "use greeting tool"},
			Stdout: []string{"Hello from tool!", "greeting_tool"},
		},
		{
			Name:   "verbose shows reflection",
			Args:   []string{"-m", "Hello there", "--verbose"},
			Stdout: []string{"Agent: Hello World!", "[System reflection] Hello World!"},
		},
		{
			Name:   "short message asks for details",
			Args:   []string{"-m", "hi"},
			Stdout: []string{"Agent: Could you provide more details about what you need?"},
		},
		{
			Name:   "empty message",
			Args:   []string{"--message", ""},
			Error:  "Received empty message",
			Absent: []string{"Agent:"},
		},
		{
			Name:   "no message starts interactive mode",
			Args:   []string{},
			Stdout: []string{"How can I help you?"},
		},
		{
			Name:   "interactive session",
			Stdin:  "Hello\ndisk_usage\n\nquit\nHello again\n",
			Stdout: []string{"How can I help you?", "Agent: Hello World!", "Used: 40.00 GB (40.0%)"},
			Absent: []string{"Hello again"},
		},
		{
			Name:   "interactive exit is case-insensitive",
			Stdin:  "EXIT\nuse greeting tool\n",
			Absent: []string{"Hello from tool!"},
		},
		{
			Name:  "unexpected argument",
			Args:  []string{"stray"},
			Error: "unknown command",
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			out, err := run(t, testDeps(afero.NewMemMapFs()), sc.Args, sc.Stdin)
			if sc.Error != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), sc.Error)
			} else {
				require.NoError(t, err)
			}
			for _, want := range sc.Stdout {
				assert.Contains(t, out, want)
			}
			for _, absent := range sc.Absent {
				assert.NotContains(t, out, absent)
			}
		})
	}
}

func TestRootCmd_Help(t *testing.T) {
	out, err := run(t, Deps{}, []string{"--help"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "--message string")
	assert.Contains(t, out, "--verbose")
	assert.Contains(t, out, "--config")
}

func TestRootCmd_WorkspaceSession(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "todo.txt", []byte("buy milk"), 0o644))

	out, err := run(t, testDeps(fs), nil, "/add todo.txt\n/edit todo.txt milk => bread\n/files\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Agent: Added todo.txt to context")
	assert.Contains(t, out, "Agent: Edited todo.txt")
	assert.Contains(t, out, "todo.txt")

	b, err := afero.ReadFile(fs, "todo.txt")
	require.NoError(t, err)
	assert.Equal(t, "buy bread", string(b))
}

func TestRootCmd_ConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "toolmesh.yaml")
	require.NoError(t, os.WriteFile(p, []byte("acknowledgement: Roger that\n"), 0o644))

	out, err := run(t, testDeps(afero.NewMemMapFs()), []string{"--config", p, "-m", "status report"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Agent: Roger that\n", out)
}

func TestRootCmd_BadConfig(t *testing.T) {
	_, err := run(t, testDeps(afero.NewMemMapFs()), []string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "-m", "hello"}, "")
	assert.ErrorContains(t, err, "read config")
}

func TestProcessMessage_Verbose(t *testing.T) {
	a := toolmesh.NewToolAgent()
	got, err := ProcessMessage(context.Background(), a, "use greeting tool", true)
	require.NoError(t, err)
	assert.Equal(t, "Agent: Used greeting_tool: Hello from tool!\n[System reflection] Used greeting_tool: Hello from tool!", got)
}
