package workspace

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// Workspace is the tracked file context of an agent.
type Workspace struct {
	fs      afero.Fs
	mu      sync.Mutex
	tracked []string
}

// New creates a workspace over fs.
func New(fs afero.Fs) *Workspace {
	return &Workspace{fs: fs}
}

// NewOS creates a workspace confined to root on the local filesystem. An
// empty root means the current directory.
func NewOS(root string) (*Workspace, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), abs)), nil
}

// Fs exposes the underlying filesystem.
func (w *Workspace) Fs() afero.Fs { return w.fs }

// Add starts tracking path. Adding a tracked file again is a no-op.
func (w *Workspace) Add(path string) (string, error) {
	clean, err := cleanPath(path)
	if err != nil {
		return "", err
	}
	fi, err := w.fs.Stat(clean)
	if err != nil {
		return "", &Error{Code: CodeNotFound, Path: clean, Message: "file does not exist"}
	}
	if fi.IsDir() {
		return "", &Error{Code: CodeNotAFile, Path: clean, Message: "path is a directory"}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.tracked, clean) {
		w.tracked = append(w.tracked, clean)
	}
	return clean, nil
}

// Remove stops tracking path.
func (w *Workspace) Remove(path string) (string, error) {
	clean, err := cleanPath(path)
	if err != nil {
		return "", err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	i := slices.Index(w.tracked, clean)
	if i < 0 {
		return "", &Error{Code: CodeNotTracked, Path: clean, Message: "file is not in context"}
	}
	w.tracked = slices.Delete(w.tracked, i, i+1)
	return clean, nil
}

// Edit replaces every occurrence of oldStr with newStr in a tracked file.
func (w *Workspace) Edit(path, oldStr, newStr string) (string, error) {
	clean, err := cleanPath(path)
	if err != nil {
		return "", err
	}
	if !w.IsTracked(clean) {
		return "", &Error{Code: CodeNotTracked, Path: clean, Message: "file is not in context"}
	}
	if oldStr == "" || oldStr == newStr {
		return "", &Error{Code: CodeInvalidEdit, Path: clean, Message: "old text must be non-empty and differ from new text"}
	}

	b, err := afero.ReadFile(w.fs, clean)
	if err != nil {
		return "", err
	}
	content := string(b)
	if !strings.Contains(content, oldStr) {
		return "", &Error{Code: CodeTextNotFound, Path: clean, Message: "text not found"}
	}

	fi, err := w.fs.Stat(clean)
	if err != nil {
		return "", err
	}
	updated := strings.ReplaceAll(content, oldStr, newStr)
	if err := afero.WriteFile(w.fs, clean, []byte(updated), fi.Mode().Perm()); err != nil {
		return "", err
	}
	return clean, nil
}

// IsTracked reports whether path is in context.
func (w *Workspace) IsTracked(path string) bool {
	clean, err := cleanPath(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.tracked, clean)
}

// Files returns the tracked paths in the order they were added.
func (w *Workspace) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.tracked)
}

// cleanPath normalises a relative path and rejects anything that would
// resolve outside the workspace root.
func cleanPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", &Error{Code: CodeNotFound, Path: path, Message: "empty path"}
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return "", &Error{Code: CodeOutsideSandbox, Path: path, Message: "absolute paths are not allowed"}
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", &Error{Code: CodeOutsideSandbox, Path: path, Message: "path resolves outside the workspace"}
	}
	return clean, nil
}
