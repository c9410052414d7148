//go:build linux || darwin || freebsd

package tool

import "golang.org/x/sys/unix"

// Statfs reads space usage with statfs(2). Free counts blocks available to
// unprivileged users; Used counts all allocated blocks.
func Statfs(path string) (DiskStats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskStats{}, err
	}
	bsize := uint64(st.Bsize)
	return DiskStats{
		Total: uint64(st.Blocks) * bsize,
		Used:  (uint64(st.Blocks) - uint64(st.Bfree)) * bsize,
		Free:  uint64(st.Bavail) * bsize,
	}, nil
}
