//go:build !(linux || darwin || freebsd)

package tool

import (
	"fmt"
	"runtime"
)

// Statfs is unsupported on this platform.
func Statfs(string) (DiskStats, error) {
	return DiskStats{}, fmt.Errorf("disk usage is not supported on %s", runtime.GOOS)
}
