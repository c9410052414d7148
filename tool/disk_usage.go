package tool

import (
	"context"
	"fmt"
	"math"
)

// DiskUsageToolName is the registry key of the disk usage tool.
const DiskUsageToolName = "disk_usage"

// DefaultDiskPath is the volume reported when no path is configured.
const DefaultDiskPath = "/"

const bytesPerGB = 1 << 30

// DiskStats is a filesystem-wide space summary in bytes.
type DiskStats struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// StatFunc reads live space usage for the volume holding path.
type StatFunc func(path string) (DiskStats, error)

// DiskUsageTool reports space usage of a volume. It reads OS state and never
// mutates it.
type DiskUsageTool struct {
	path string
	stat StatFunc
}

var (
	_ Tool    = (*DiskUsageTool)(nil)
	_ Aliaser = (*DiskUsageTool)(nil)
)

// NewDiskUsageTool reports on path (DefaultDiskPath when empty). A nil stat
// uses the platform statfs.
func NewDiskUsageTool(path string, stat StatFunc) *DiskUsageTool {
	if path == "" {
		path = DefaultDiskPath
	}
	if stat == nil {
		stat = Statfs
	}
	return &DiskUsageTool{path: path, stat: stat}
}

// Name implements Tool.
func (t *DiskUsageTool) Name() string { return DiskUsageToolName }

// Description implements Tool.
func (t *DiskUsageTool) Description() string {
	return "Report total, used and free space of the root volume."
}

// Aliases implements Aliaser.
func (t *DiskUsageTool) Aliases() []string { return []string{"disk space", "disk usage"} }

// Call ignores input and returns a multi-line report.
func (t *DiskUsageTool) Call(_ context.Context, _ string) (string, error) {
	st, err := t.stat(t.path)
	if err != nil {
		return "", &ToolError{Tool: DiskUsageToolName, Message: err.Error(), Code: "STAT_ERROR", Err: err}
	}
	return FormatDiskReport(t.path, st), nil
}

// FormatDiskReport renders st with GB totals rounded to two decimals.
func FormatDiskReport(path string, st DiskStats) string {
	var pct float64
	if st.Total > 0 {
		pct = float64(st.Used) / float64(st.Total) * 100
	}
	return fmt.Sprintf("Disk usage for %s:\n  Total: %.2f GB\n  Used: %.2f GB (%.1f%%)\n  Free: %.2f GB",
		path, toGB(st.Total), toGB(st.Used), pct, toGB(st.Free))
}

func toGB(b uint64) float64 {
	return math.Round(float64(b)/bytesPerGB*100) / 100
}
