package channel

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Dumper writes raw pages to a directory for offline inspection.
// A Dumper with an empty dir is disabled.
type Dumper struct {
	dir string
	now func() time.Time
}

// NewDumper creates a Dumper writing into dir.
func NewDumper(dir string) *Dumper {
	return &Dumper{dir: dir, now: time.Now}
}

// Dump writes html and returns the file path, or "" when disabled.
func (d *Dumper) Dump(channelID, html string) (string, error) {
	if d == nil || d.dir == "" {
		return "", nil
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("dump: create dir: %w", err)
	}
	name := fmt.Sprintf("%s-%d.html", unsafeName.ReplaceAllString(channelID, "_"), d.now().UnixNano())
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("dump: write: %w", err)
	}
	return path, nil
}
