package toolmesh_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/toolmesh"
	"github.com/hupe1980/toolmesh/config"
	"github.com/hupe1980/toolmesh/core"
	"github.com/hupe1980/toolmesh/internal/testutil"
	"github.com/hupe1980/toolmesh/memory"
	"github.com/hupe1980/toolmesh/tool"
)

func TestNewToolAgent_Defaults(t *testing.T) {
	a := toolmesh.NewToolAgent()
	assert.Equal(t, "Assistant", a.Name())

	var names []string
	for _, tl := range a.Tools() {
		names = append(names, tl.Name())
	}
	assert.Equal(t, []string{"greeting_tool", "text_rating", "disk_usage"}, names)

	w, ok := a.Memory().(*memory.Window)
	require.True(t, ok)
	assert.Equal(t, 10, w.WindowSize())
}

func TestChat_GreetingTool(t *testing.T) {
	a := toolmesh.NewToolAgent()
	out, err := toolmesh.Chat(context.Background(), a, "User", "Use the greeting tool to say hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello from tool!")
	assert.Contains(t, out, "greeting_tool")
}

func TestChat_DiskUsageWithInjectedStat(t *testing.T) {
	a := toolmesh.NewToolAgent(func(o *toolmesh.Options) { o.Stat = testutil.FixedStat })
	out, err := toolmesh.Chat(context.Background(), a, "User", "show disk_usage")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 100.00 GB")
	assert.Contains(t, out, "Used: 40.00 GB (40.0%)")
}

func TestNewToolAgent_ConfigAndExtraTools(t *testing.T) {
	cfg := config.Default()
	cfg.WindowSize = 3
	cfg.Acknowledgement = "Understood."
	calls := 0

	a := toolmesh.NewToolAgent(func(o *toolmesh.Options) {
		o.Config = cfg
		o.Tools = []tool.Tool{testutil.StubTool("weather_report", "Sunny", &calls)}
	})

	out, err := toolmesh.Chat(context.Background(), a, "User", "what is the weather like")
	require.NoError(t, err)
	assert.Equal(t, "Used weather_report: Sunny", out)
	assert.Equal(t, 1, calls)

	out, err = toolmesh.Chat(context.Background(), a, "User", "thanks a lot")
	require.NoError(t, err)
	assert.Equal(t, "Understood.", out)

	want := []string{"Used weather_report: Sunny", "thanks a lot", "Understood."}
	if diff := cmp.Diff(want, testutil.Contents(a.Memory().Messages())); diff != "" {
		t.Fatalf("memory mismatch (-want +got):\n%s", diff)
	}
}

func TestNewToolAgent_SharedMemory(t *testing.T) {
	shared := memory.NewWindow()
	worker := toolmesh.NewToolAgent(func(o *toolmesh.Options) {
		o.Name = "Worker"
		o.Memory = shared
	})
	manager := toolmesh.NewToolAgent(func(o *toolmesh.Options) {
		o.Name = "Manager"
		o.Memory = shared
		o.Delegates = []core.Agent{worker}
	})

	out, err := toolmesh.Chat(context.Background(), manager, "User", "delegate: use greeting tool")
	require.NoError(t, err)
	assert.Equal(t, "Delegated to Worker: Used greeting_tool: Hello from tool!", out)

	want := []core.Message{
		testutil.NewMessageBuilder().Content("delegate: use greeting tool").Build(),
		testutil.NewMessageBuilder().Content("delegate: use greeting tool").Build(),
		testutil.NewMessageBuilder().From("Worker").System().Content("Used greeting_tool: Hello from tool!").Build(),
		testutil.NewMessageBuilder().From("Worker").Assistant().Content("Used greeting_tool: Hello from tool!").Build(),
		testutil.NewMessageBuilder().From("Manager").Assistant().Content(out).Build(),
	}
	if diff := cmp.Diff(want, shared.Messages()); diff != "" {
		t.Fatalf("shared memory mismatch (-want +got):\n%s", diff)
	}
}

func TestNewToolAgent_ExclusionMarkerFromConfig(t *testing.T) {
	a := toolmesh.NewToolAgent()
	out, err := toolmesh.Chat(context.Background(), a, "User", "[private] greeting_tool")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello from tool!")
	for _, m := range a.Memory().Messages() {
		assert.NotContains(t, m.Content, "[private]")
	}
}
