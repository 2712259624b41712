package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Output abstracts where build artifacts land so tests can capture them in
// memory while production builds hit the filesystem.
type Output interface {
	// WriteFile stores data under the given slash-separated relative path,
	// creating parent directories as needed.
	WriteFile(path string, data []byte) error
	// Clean removes previous build artifacts.
	Clean() error
}

type dirOutput struct {
	root string
}

// NewDirOutput returns an Output rooted at the given directory.
func NewDirOutput(root string) Output {
	return &dirOutput{root: root}
}

func (o *dirOutput) WriteFile(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output: empty path")
	}
	target := filepath.Join(o.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

func (o *dirOutput) Clean() error {
	if err := os.RemoveAll(o.root); err != nil {
		return err
	}
	return os.MkdirAll(o.root, 0o755)
}

// MemoryOutput collects build artifacts in memory for assertions.
type MemoryOutput struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemoryOutput returns an empty in-memory Output.
func NewMemoryOutput() *MemoryOutput {
	return &MemoryOutput{files: map[string][]byte{}}
}

func (o *MemoryOutput) WriteFile(path string, data []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	o.files[path] = copied
	return nil
}

func (o *MemoryOutput) Clean() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.files = map[string][]byte{}
	return nil
}

// File returns the stored contents for a path.
func (o *MemoryOutput) File(path string) ([]byte, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	data, ok := o.files[path]
	return data, ok
}

// Paths lists every written path, sorted.
func (o *MemoryOutput) Paths() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.files))
	for path := range o.files {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
